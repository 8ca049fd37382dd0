package schedule

import (
	"time"

	"v8e.it/flotta/models"
)

// DriverRef identifies a driver for engine output.
type DriverRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// VehicleRef identifies a vehicle for engine output.
type VehicleRef struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// ResourcePair is one (vehicle, driver) assignment on an activity.
// Driver may be nil when a vehicle is booked without a driver.
type ResourcePair struct {
	Vehicle *VehicleRef `json:"vehicle,omitempty"`
	Driver  *DriverRef  `json:"driver,omitempty"`
}

// PoolActivity is the engine's view of one activity in the candidate pool.
//
// The driver fields beyond Pairs mirror the shapes different upstream API
// paths produce for the same information: an explicit per-pair assignment
// list, a flat driver array, a bare driver id, or a single nested driver
// object. ResolveDrivers walks them in that order.
type PoolActivity struct {
	ID          int64
	Start       *time.Time
	End         *time.Time
	Status      models.ActivityStatus
	Description string

	Pairs    []ResourcePair
	Drivers  []DriverRef
	DriverID *int64
	Driver   *DriverRef
}

// activeStatuses are the statuses that occupy resources. Completed and
// cancelled activities never count as busy unless the caller asks for all.
var activeStatuses = map[models.ActivityStatus]bool{
	models.ActivityStatusInProgress: true,
	models.ActivityStatusScheduled:  true,
	models.ActivityStatusAssigned:   true,
	models.ActivityStatusDocIssued:  true,
	models.ActivityStatusUnassigned: true,
}

// statusIncluded applies the shared status filter of the resolver and the
// agenda grouping.
func statusIncluded(s models.ActivityStatus, includeAll bool) bool {
	return includeAll || activeStatuses[s]
}

// ResolveDrivers resolves the activity's drivers through the ordered fallback
// chain, stopping at the first shape that yields at least one driver present
// in the known reference set. All shapes failing resolves to zero drivers.
func (a PoolActivity) ResolveDrivers(known map[int64]DriverRef) []DriverRef {
	if len(a.Pairs) > 0 {
		var out []DriverRef
		for _, pair := range a.Pairs {
			if pair.Driver == nil {
				continue
			}
			if ref, ok := known[pair.Driver.ID]; ok {
				out = append(out, ref)
			}
		}
		if len(out) > 0 {
			return out
		}
	}

	if len(a.Drivers) > 0 {
		var out []DriverRef
		for _, d := range a.Drivers {
			if ref, ok := known[d.ID]; ok {
				out = append(out, ref)
			}
		}
		if len(out) > 0 {
			return out
		}
	}

	if a.DriverID != nil {
		if ref, ok := known[*a.DriverID]; ok {
			return []DriverRef{ref}
		}
	}

	if a.Driver != nil {
		if ref, ok := known[a.Driver.ID]; ok {
			return []DriverRef{ref}
		}
	}

	return nil
}
