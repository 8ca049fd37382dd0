package schedule

import "time"

// PreviousWorkingDay returns the most recent day strictly before d that is
// neither Saturday nor Sunday, truncated to midnight in d's location.
// Monday resolves to the preceding Friday; holidays are not considered.
func PreviousWorkingDay(d time.Time) time.Time {
	y, m, day := d.Date()
	cur := time.Date(y, m, day, 0, 0, 0, 0, d.Location())
	for {
		cur = cur.AddDate(0, 0, -1)
		if wd := cur.Weekday(); wd != time.Saturday && wd != time.Sunday {
			return cur
		}
	}
}
