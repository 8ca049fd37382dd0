package schedule

import (
	"testing"
	"time"

	"v8e.it/flotta/models"
)

func knownDrivers() map[int64]DriverRef {
	return map[int64]DriverRef{
		1: {ID: 1, Name: "Rossi"},
		2: {ID: 2, Name: "Bianchi"},
	}
}

func TestGroupByDriverDay_SpanningActivity(t *testing.T) {
	// Overnight trip: 03/06 22:00 -> 04/06 04:00, driver 1.
	start := time.Date(2024, 6, 3, 22, 0, 0, 0, time.Local)
	end := time.Date(2024, 6, 4, 4, 0, 0, 0, time.Local)
	a := PoolActivity{
		ID:          1,
		Start:       &start,
		End:         &end,
		Status:      models.ActivityStatusScheduled,
		Description: "Consegna notturna",
		Pairs:       []ResourcePair{pair(1, "Rossi", 10, "Daily")},
	}

	index := GroupByDriverDay([]PoolActivity{a}, day(2024, 6, 3), day(2024, 6, 4), knownDrivers(), false)

	for _, key := range []string{"2024-06-03", "2024-06-04"} {
		entries := index[1][key]
		if len(entries) != 1 {
			t.Fatalf("expected activity under driver 1 on %s, got %d entries", key, len(entries))
		}
		if entries[0].ActivityID != 1 || entries[0].Label != "Consegna notturna" {
			t.Errorf("entry on %s = %+v", key, entries[0])
		}
	}
}

func TestGroupByDriverDay_FallbackShapes(t *testing.T) {
	start := time.Date(2024, 6, 3, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		activity PoolActivity
		expected []int64
	}{
		{
			name: "explicit pairs win",
			activity: PoolActivity{
				ID: 1, Start: &start, Status: models.ActivityStatusScheduled,
				Pairs:    []ResourcePair{pair(1, "Rossi", 10, "Daily")},
				DriverID: int64Ptr(2),
			},
			expected: []int64{1},
		},
		{
			name: "flat driver array when pairs carry no drivers",
			activity: PoolActivity{
				ID: 2, Start: &start, Status: models.ActivityStatusScheduled,
				Pairs:   []ResourcePair{{Vehicle: &VehicleRef{ID: 10, Label: "Daily"}}},
				Drivers: []DriverRef{{ID: 1, Name: "Rossi"}, {ID: 2, Name: "Bianchi"}},
			},
			expected: []int64{1, 2},
		},
		{
			name: "bare driver id",
			activity: PoolActivity{
				ID: 3, Start: &start, Status: models.ActivityStatusScheduled,
				DriverID: int64Ptr(2),
			},
			expected: []int64{2},
		},
		{
			name: "nested driver object",
			activity: PoolActivity{
				ID: 4, Start: &start, Status: models.ActivityStatusScheduled,
				Driver: &DriverRef{ID: 1, Name: "Rossi"},
			},
			expected: []int64{1},
		},
		{
			name: "unknown driver in every shape resolves to nothing",
			activity: PoolActivity{
				ID: 5, Start: &start, Status: models.ActivityStatusScheduled,
				Drivers:  []DriverRef{{ID: 99, Name: "Ignoto"}},
				DriverID: int64Ptr(98),
				Driver:   &DriverRef{ID: 97},
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index := GroupByDriverDay([]PoolActivity{tt.activity}, day(2024, 6, 3), day(2024, 6, 3), knownDrivers(), false)

			var got []int64
			for id := range index {
				got = append(got, id)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("bucketed drivers = %v, expected %v", got, tt.expected)
			}
			for _, id := range tt.expected {
				if index[id]["2024-06-03"] == nil {
					t.Errorf("driver %d missing from the 2024-06-03 bucket", id)
				}
			}
		})
	}
}

func TestGroupByDriverDay_FiltersAndOrder(t *testing.T) {
	morning := time.Date(2024, 6, 3, 8, 0, 0, 0, time.Local)
	noon := time.Date(2024, 6, 3, 12, 0, 0, 0, time.Local)

	cancelled := PoolActivity{
		ID: 1, Start: &morning, Status: models.ActivityStatusCancelled,
		Driver: &DriverRef{ID: 1},
	}
	first := PoolActivity{
		ID: 2, Start: &morning, Status: models.ActivityStatusScheduled,
		Driver: &DriverRef{ID: 1}, Description: "prima",
	}
	second := PoolActivity{
		ID: 3, Start: &noon, Status: models.ActivityStatusInProgress,
		Driver: &DriverRef{ID: 1}, Description: "seconda",
	}

	index := GroupByDriverDay([]PoolActivity{cancelled, first, second}, day(2024, 6, 3), day(2024, 6, 3), knownDrivers(), false)

	entries := index[1]["2024-06-03"]
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries (cancelled filtered), got %d", len(entries))
	}
	if entries[0].ActivityID != 2 || entries[1].ActivityID != 3 {
		t.Errorf("entries out of pool order: %+v", entries)
	}

	// includeAll brings the cancelled activity back
	index = GroupByDriverDay([]PoolActivity{cancelled, first, second}, day(2024, 6, 3), day(2024, 6, 3), knownDrivers(), true)
	if len(index[1]["2024-06-03"]) != 3 {
		t.Errorf("includeAll should keep cancelled activities, got %d entries", len(index[1]["2024-06-03"]))
	}
}

func TestGroupByDriverDay_EmptyRange(t *testing.T) {
	start := time.Date(2024, 6, 3, 8, 0, 0, 0, time.Local)
	a := PoolActivity{ID: 1, Start: &start, Status: models.ActivityStatusScheduled, Driver: &DriverRef{ID: 1}}

	index := GroupByDriverDay([]PoolActivity{a}, day(2024, 6, 4), day(2024, 6, 3), knownDrivers(), false)
	if len(index) != 0 {
		t.Errorf("inverted range should produce an empty index, got %v", index)
	}
}
