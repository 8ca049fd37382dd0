// Package schedule implements the scheduling engine of the back-office:
// resource-conflict detection over time windows, per-driver agenda grouping,
// and document-suggestion matching. It reasons over snapshots of rows already
// loaded by the caller and performs no I/O of its own.
package schedule

import "time"

// DefaultDuration is the effective duration of an activity whose end
// is missing or not after its start.
const DefaultDuration = time.Hour

// DefaultWindowMinutes is the half-width of the conflict-check window
// around an activity's start time.
const DefaultWindowMinutes = 90

// Interval is a time span used for overlap checks.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps reports whether two intervals intersect:
// max(s1,s2) <= min(e1,e2).
func (iv Interval) Overlaps(other Interval) bool {
	start := iv.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := iv.End
	if other.End.Before(end) {
		end = other.End
	}
	return !start.After(end)
}

// ContainsStrict reports whether t falls strictly inside the interval,
// excluding both endpoints.
func (iv Interval) ContainsStrict(t time.Time) bool {
	return t.After(iv.Start) && t.Before(iv.End)
}

// EffectiveInterval computes an activity's interval for overlap math.
// An end missing or not after the start is treated as start + 1 hour.
func EffectiveInterval(start time.Time, end *time.Time) Interval {
	if end != nil && end.After(start) {
		return Interval{Start: start, End: *end}
	}
	return Interval{Start: start, End: start.Add(DefaultDuration)}
}

// WindowAround returns the interval centered on ref, extending the given
// number of minutes on each side. Non-positive minutes fall back to the
// default width.
func WindowAround(ref time.Time, minutes int) Interval {
	if minutes <= 0 {
		minutes = DefaultWindowMinutes
	}
	d := time.Duration(minutes) * time.Minute
	return Interval{Start: ref.Add(-d), End: ref.Add(d)}
}

// DayInterval returns the interval covering the whole calendar day of t
// in t's location, from midnight to the last instant before the next day.
func DayInterval(t time.Time) Interval {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return Interval{Start: start, End: start.AddDate(0, 0, 1).Add(-time.Nanosecond)}
}

// DayKey formats t as the YYYY-MM-DD bucket key used by the agenda grouping.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
