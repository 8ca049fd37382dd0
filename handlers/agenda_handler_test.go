package handlers

import (
	"testing"
	"time"
)

func TestWeekStart(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 15, 30, 0, 0, time.Local)
	}

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday is its own week start", date(2024, time.June, 3), date(2024, time.June, 3)},
		{"wednesday", date(2024, time.June, 5), date(2024, time.June, 3)},
		{"saturday", date(2024, time.June, 8), date(2024, time.June, 3)},
		{"sunday belongs to the week in progress", date(2024, time.June, 9), date(2024, time.June, 3)},
		{"sunday across a month boundary", date(2024, time.September, 1), date(2024, time.August, 26)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := weekStart(tt.in)
			gy, gm, gd := got.Date()
			wy, wm, wd := tt.want.Date()
			if gy != wy || gm != wm || gd != wd {
				t.Errorf("weekStart(%s) = %s, expected %s",
					tt.in.Format("2006-01-02"), got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}
