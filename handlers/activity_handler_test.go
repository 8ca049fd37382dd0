package handlers

import (
	"testing"
	"time"

	"v8e.it/flotta/models"
	"v8e.it/flotta/pkg/schedule"
)

func tm(h, m int) time.Time {
	return time.Date(2024, 6, 3, h, m, 0, 0, time.Local)
}

func tmPtr(h, m int) *time.Time {
	t := tm(h, m)
	return &t
}

func TestToPoolActivitiesInvertedEndStaysBusy(t *testing.T) {
	// An end recorded before the start must not drop the row: the engine
	// falls back to a one-hour effective duration.
	driverID := int64(1)
	a := models.Activity{
		ID:      5,
		StartAt: tmPtr(10, 0),
		EndAt:   tmPtr(9, 0),
		Status:  models.ActivityStatusScheduled,
		Resources: []models.ActivityResource{{
			VehicleID: 10,
			Vehicle:   &models.Vehicle{ID: 10, Plate: "AB123CD", Name: "Daily"},
			DriverID:  &driverID,
			Driver:    &models.Driver{ID: 1, Name: "Rossi"},
		}},
	}

	pool := toPoolActivities([]models.Activity{a})
	if len(pool) != 1 || len(pool[0].Pairs) != 1 {
		t.Fatalf("unexpected pool shape: %+v", pool)
	}

	// Effective interval 10:00-11:00 still overlaps the 10:30-13:30 window.
	window := schedule.Interval{Start: tm(10, 30), End: tm(13, 30)}
	report := schedule.FindBusyResources(window, tm(10, 30), pool, false, 0)
	if len(report.Drivers) != 1 || report.Drivers[0].ResourceID != 1 {
		t.Fatalf("driver should be busy despite the inverted end, got %+v", report.Drivers)
	}
	if len(report.Vehicles) != 1 || report.Vehicles[0].ResourceID != 10 {
		t.Fatalf("vehicle should be busy despite the inverted end, got %+v", report.Vehicles)
	}
}

func TestToPoolActivitiesResourceWithoutPreloads(t *testing.T) {
	// Rows loaded without their Driver/Vehicle associations still carry ids.
	driverID := int64(2)
	a := models.Activity{
		ID:        6,
		StartAt:   tmPtr(14, 0),
		Status:    models.ActivityStatusAssigned,
		Resources: []models.ActivityResource{{VehicleID: 11, DriverID: &driverID}},
	}

	pool := toPoolActivities([]models.Activity{a})
	if len(pool) != 1 || len(pool[0].Pairs) != 1 {
		t.Fatalf("unexpected pool shape: %+v", pool)
	}
	p := pool[0].Pairs[0]
	if p.Vehicle == nil || p.Vehicle.ID != 11 {
		t.Errorf("vehicle ref = %+v, expected id 11", p.Vehicle)
	}
	if p.Driver == nil || p.Driver.ID != 2 {
		t.Errorf("driver ref = %+v, expected id 2", p.Driver)
	}
}

func TestActivityUpdateColumnsClearsNullableFields(t *testing.T) {
	cols := activityUpdateColumns(models.Activity{
		StartAt: tmPtr(10, 0),
		Status:  models.ActivityStatusScheduled,
	})

	for _, key := range []string{"start_at", "end_at", "status", "client_id", "site_id", "notes"} {
		if _, ok := cols[key]; !ok {
			t.Errorf("column %q missing from update set", key)
		}
	}
	if v, ok := cols["end_at"].(*time.Time); !ok || v != nil {
		t.Errorf("end_at = %#v, expected explicit nil so the column is cleared", cols["end_at"])
	}
	if v, ok := cols["site_id"].(*int64); !ok || v != nil {
		t.Errorf("site_id = %#v, expected explicit nil so the column is cleared", cols["site_id"])
	}
	if cols["notes"] != "" {
		t.Errorf("notes = %#v, expected empty string to overwrite", cols["notes"])
	}
	if cols["status"] != models.ActivityStatusScheduled {
		t.Errorf("status = %#v", cols["status"])
	}
}
