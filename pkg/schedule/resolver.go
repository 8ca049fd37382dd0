package schedule

import "time"

// BusyResource is one driver or vehicle occupied by an activity that
// intersects the reference window. Conflict is true only when the reference
// instant itself falls strictly inside the activity's interval; entries with
// Conflict false are merely nearby within the window.
type BusyResource struct {
	ResourceID          int64    `json:"resourceId"`
	Label               string   `json:"label"`
	ActivityID          int64    `json:"activityId"`
	ActivityDescription string   `json:"activityDescription"`
	Interval            Interval `json:"interval"`
	Conflict            bool     `json:"conflict"`
}

// BusyReport is the resolver output: the drivers and vehicles occupied
// inside the window, deduplicated by resource id (first occurrence wins).
type BusyReport struct {
	Drivers  []BusyResource `json:"drivers"`
	Vehicles []BusyResource `json:"vehicles"`
}

// EmptyBusyReport returns a report whose lists encode as empty JSON arrays
// rather than null.
func EmptyBusyReport() BusyReport {
	return BusyReport{Drivers: []BusyResource{}, Vehicles: []BusyResource{}}
}

// FindBusyResources scans the pool for activities intersecting the window and
// returns their resource assignments. ref is the instant conflicts are judged
// against (normally the start of the activity under edit); excludeID skips
// that activity so it never conflicts with itself. Activities without a start
// are dropped as a data-quality gap. The status filter keeps only active-like
// activities unless includeAll is set.
func FindBusyResources(window Interval, ref time.Time, pool []PoolActivity, includeAll bool, excludeID int64) BusyReport {
	var drivers, vehicles []BusyResource

	for _, a := range pool {
		if a.ID != 0 && a.ID == excludeID {
			continue
		}
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
		conflict := iv.ContainsStrict(ref)

		for _, pair := range a.Pairs {
			if pair.Driver != nil {
				drivers = append(drivers, BusyResource{
					ResourceID:          pair.Driver.ID,
					Label:               pair.Driver.Name,
					ActivityID:          a.ID,
					ActivityDescription: a.Description,
					Interval:            iv,
					Conflict:            conflict,
				})
			}
			if pair.Vehicle != nil {
				vehicles = append(vehicles, BusyResource{
					ResourceID:          pair.Vehicle.ID,
					Label:               pair.Vehicle.Label,
					ActivityID:          a.ID,
					ActivityDescription: a.Description,
					Interval:            iv,
					Conflict:            conflict,
				})
			}
		}
	}

	return BusyReport{
		Drivers:  DedupeResources(drivers),
		Vehicles: DedupeResources(vehicles),
	}
}
