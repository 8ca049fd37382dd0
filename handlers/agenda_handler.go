package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"v8e.it/flotta/config"
	"v8e.it/flotta/middleware"
	"v8e.it/flotta/models"
	"v8e.it/flotta/pkg/schedule"
)

// AgendaRow is one driver's lane in the agenda view, with its day buckets.
type AgendaRow struct {
	Driver schedule.DriverRef                `json:"driver"`
	Days   map[string][]schedule.AgendaEntry `json:"days"`
}

// GetAgenda builds the per-driver, per-day agenda for ?from=&to= (ISO dates,
// default: current week) and applies the caller's driver ordering and hidden
// set. Rows come back in display order.
func GetAgenda(w http.ResponseWriter, r *http.Request) {
	from := weekStart(time.Now())
	to := from.AddDate(0, 0, 6)
	if v := r.URL.Query().Get("from"); v != "" {
		if t, err := time.ParseInLocation("2006-01-02", v, time.Local); err == nil {
			from = t
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if t, err := time.ParseInLocation("2006-01-02", v, time.Local); err == nil {
			to = t
		}
	}
	includeAll := r.URL.Query().Get("all") == "true"

	var drivers []models.Driver
	if err := config.DB.Where("is_active = ?", true).Order("name").Find(&drivers).Error; err != nil {
		http.Error(w, "failed to fetch drivers", http.StatusInternalServerError)
		return
	}
	known := make(map[int64]schedule.DriverRef, len(drivers))
	baseOrder := make([]int64, 0, len(drivers))
	for _, d := range drivers {
		known[d.ID] = schedule.DriverRef{ID: d.ID, Name: d.Name}
		baseOrder = append(baseOrder, d.ID)
	}

	window := schedule.Interval{
		Start: schedule.DayInterval(from).Start,
		End:   schedule.DayInterval(to).End,
	}
	pool, err := loadActivityPool(window)
	if err != nil {
		// The agenda is advisory: degrade to empty rather than failing.
		log.Printf("agenda: failed to load activities: %v", err)
		pool = nil
	}

	index := schedule.GroupByDriverDay(pool, from, to, known, includeAll)

	pref := resolveAgendaPreference(r)
	ordered := schedule.OrderDrivers(baseOrder, pref.OrderedDriverIDs, pref.HiddenDriverIDs)

	rows := make([]AgendaRow, 0, len(ordered))
	for _, id := range ordered {
		days := index[id]
		if days == nil {
			days = map[string][]schedule.AgendaEntry{}
		}
		rows = append(rows, AgendaRow{Driver: known[id], Days: days})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rows)
}

// weekStart returns the Monday of the week containing t. Sunday belongs to
// the week that started six days earlier, not the week about to begin.
func weekStart(t time.Time) time.Time {
	offset := int(t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset = 6
	}
	return t.AddDate(0, 0, -offset)
}

// resolveAgendaPreference returns the caller's preference record, falling
// back to the global record, then to an empty preference.
func resolveAgendaPreference(r *http.Request) models.AgendaPreference {
	var pref models.AgendaPreference

	if userID := middleware.GetUserID(r); userID != "" {
		if err := config.DB.Where("user_id = ?", userID).First(&pref).Error; err == nil {
			return pref
		}
	}
	if err := config.DB.Where("is_global = ?", true).First(&pref).Error; err == nil {
		return pref
	}
	return models.AgendaPreference{}
}
