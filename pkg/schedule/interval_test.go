package schedule

import (
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 6, 3, hour, min, 0, 0, time.Local)
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Interval
		expected bool
	}{
		{"disjoint before", Interval{at(8, 0), at(9, 0)}, Interval{at(10, 0), at(11, 0)}, false},
		{"disjoint after", Interval{at(12, 0), at(13, 0)}, Interval{at(10, 0), at(11, 0)}, false},
		{"partial overlap", Interval{at(10, 30), at(11, 30)}, Interval{at(10, 0), at(11, 0)}, true},
		{"contained", Interval{at(10, 15), at(10, 45)}, Interval{at(10, 0), at(11, 0)}, true},
		{"containing", Interval{at(9, 0), at(12, 0)}, Interval{at(10, 0), at(11, 0)}, true},
		{"touching at boundary", Interval{at(11, 0), at(12, 0)}, Interval{at(10, 0), at(11, 0)}, true},
		{"identical", Interval{at(10, 0), at(11, 0)}, Interval{at(10, 0), at(11, 0)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.expected {
				t.Errorf("Overlaps(%v, %v) = %v, expected %v", tt.a, tt.b, got, tt.expected)
			}
			// Overlap is symmetric
			if got := tt.b.Overlaps(tt.a); got != tt.expected {
				t.Errorf("Overlaps(%v, %v) = %v, expected %v (symmetry)", tt.b, tt.a, got, tt.expected)
			}
		})
	}
}

func TestEffectiveInterval(t *testing.T) {
	start := at(10, 0)
	end := at(11, 30)
	before := at(9, 0)

	tests := []struct {
		name        string
		end         *time.Time
		expectedEnd time.Time
	}{
		{"end after start kept", &end, end},
		{"missing end defaults to one hour", nil, start.Add(time.Hour)},
		{"end equal to start defaults", &start, start.Add(time.Hour)},
		{"end before start defaults", &before, start.Add(time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv := EffectiveInterval(start, tt.end)
			if !iv.Start.Equal(start) {
				t.Errorf("start = %v, expected %v", iv.Start, start)
			}
			if !iv.End.Equal(tt.expectedEnd) {
				t.Errorf("end = %v, expected %v", iv.End, tt.expectedEnd)
			}
		})
	}
}

func TestContainsStrict(t *testing.T) {
	iv := Interval{at(10, 0), at(11, 0)}

	if iv.ContainsStrict(at(10, 0)) {
		t.Error("start endpoint should not be strictly inside")
	}
	if iv.ContainsStrict(at(11, 0)) {
		t.Error("end endpoint should not be strictly inside")
	}
	if !iv.ContainsStrict(at(10, 30)) {
		t.Error("midpoint should be strictly inside")
	}
}

func TestWindowAround(t *testing.T) {
	ref := at(10, 0)

	w := WindowAround(ref, 90)
	if !w.Start.Equal(at(8, 30)) || !w.End.Equal(at(11, 30)) {
		t.Errorf("WindowAround(ref, 90) = %v, expected [08:30, 11:30]", w)
	}

	// Non-positive falls back to the default width
	w = WindowAround(ref, 0)
	if !w.Start.Equal(at(8, 30)) || !w.End.Equal(at(11, 30)) {
		t.Errorf("WindowAround(ref, 0) = %v, expected default 90-minute window", w)
	}
}

func TestDayInterval(t *testing.T) {
	iv := DayInterval(at(14, 37))
	if !iv.Start.Equal(time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local)) {
		t.Errorf("day start = %v", iv.Start)
	}
	next := time.Date(2024, 6, 4, 0, 0, 0, 0, time.Local)
	if !iv.End.Before(next) || next.Sub(iv.End) != time.Nanosecond {
		t.Errorf("day end = %v, expected last instant before %v", iv.End, next)
	}
	if DayKey(at(14, 37)) != "2024-06-03" {
		t.Errorf("DayKey = %q", DayKey(at(14, 37)))
	}
}
