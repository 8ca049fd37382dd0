package schedule

import "time"

// AgendaEntry is one activity occurrence in a driver's day bucket.
type AgendaEntry struct {
	ActivityID int64     `json:"activityId"`
	Label      string    `json:"label"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

// AgendaIndex maps driver id -> day key (YYYY-MM-DD) -> activities, in pool
// iteration order within each bucket.
type AgendaIndex map[int64]map[string][]AgendaEntry

// GroupByDriverDay projects the pool into a per-driver, per-day index for
// agenda rendering. For every day in [from, to] an activity is bucketed under
// each of its resolved drivers when its effective interval overlaps that
// calendar day; an activity spanning several days appears in every overlapped
// bucket. Driver resolution goes through PoolActivity.ResolveDrivers, so the
// index tolerates all upstream payload shapes; activities whose drivers
// cannot be resolved are simply absent. Status filtering matches the conflict
// resolver's.
func GroupByDriverDay(pool []PoolActivity, from, to time.Time, known map[int64]DriverRef, includeAll bool) AgendaIndex {
	index := make(AgendaIndex)
	if to.Before(from) {
		return index
	}

	fy, fm, fd := from.Date()
	day := time.Date(fy, fm, fd, 0, 0, 0, 0, from.Location())
	ty, tm, td := to.Date()
	last := time.Date(ty, tm, td, 0, 0, 0, 0, to.Location())

	for !day.After(last) {
		window := DayInterval(day)
		key := DayKey(day)

		for _, a := range pool {
			if a.Start == nil {
				continue
			}
			if !statusIncluded(a.Status, includeAll) {
				continue
			}
			iv := EffectiveInterval(*a.Start, a.End)
			if !iv.Overlaps(window) {
				continue
			}

			entry := AgendaEntry{
				ActivityID: a.ID,
				Label:      a.Description,
				Start:      iv.Start,
				End:        iv.End,
			}
			for _, drv := range a.ResolveDrivers(known) {
				if index[drv.ID] == nil {
					index[drv.ID] = make(map[string][]AgendaEntry)
				}
				index[drv.ID][key] = append(index[drv.ID][key], entry)
			}
		}

		day = day.AddDate(0, 0, 1)
	}

	return index
}
