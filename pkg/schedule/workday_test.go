package schedule

import (
	"testing"
	"time"
)

func TestPreviousWorkingDay(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	}

	tests := []struct {
		name     string
		in       time.Time
		expected time.Time
	}{
		{"monday goes back to friday", day(2024, 6, 3), day(2024, 5, 31)},
		{"sunday goes back to friday", day(2024, 6, 2), day(2024, 5, 31)},
		{"saturday goes back to friday", day(2024, 6, 1), day(2024, 5, 31)},
		{"wednesday goes back one day", day(2024, 6, 5), day(2024, 6, 4)},
		{"tuesday goes back one day", day(2024, 6, 4), day(2024, 6, 3)},
		{"monday across month boundary", day(2024, 7, 1), day(2024, 6, 28)},
		{"monday across year boundary", day(2024, 1, 1), day(2023, 12, 29)},
		{"time of day is ignored", time.Date(2024, 6, 3, 18, 45, 12, 0, time.Local), day(2024, 5, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PreviousWorkingDay(tt.in)
			if !got.Equal(tt.expected) {
				t.Errorf("PreviousWorkingDay(%v) = %v, expected %v", tt.in, got, tt.expected)
			}
		})
	}
}
