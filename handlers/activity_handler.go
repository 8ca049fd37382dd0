package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
	"v8e.it/flotta/config"
	"v8e.it/flotta/models"
	"v8e.it/flotta/pkg/schedule"
)

// GetAllActivities returns activities in a date range (?from=&to=, ISO dates)
// with resources, client and site preloaded.
func GetAllActivities(w http.ResponseWriter, r *http.Request) {
	query := config.DB.
		Preload("Resources.Driver").
		Preload("Resources.Vehicle").
		Preload("Client").
		Preload("Site").
		Order("start_at")

	if from := r.URL.Query().Get("from"); from != "" {
		if t, err := time.ParseInLocation("2006-01-02", from, time.Local); err == nil {
			query = query.Where("start_at >= ?", t)
		}
	}
	if to := r.URL.Query().Get("to"); to != "" {
		if t, err := time.ParseInLocation("2006-01-02", to, time.Local); err == nil {
			query = query.Where("start_at < ?", t.AddDate(0, 0, 1))
		}
	}
	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var activities []models.Activity
	if err := query.Find(&activities).Error; err != nil {
		http.Error(w, "failed to fetch activities", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(activities)
}

func GetActivity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var activity models.Activity
	if err := config.DB.
		Preload("Resources.Driver").
		Preload("Resources.Vehicle").
		Preload("Client").
		Preload("Site").
		Preload("Documents").
		First(&activity, "id = ?", vars["id"]).Error; err != nil {
		http.Error(w, "activity not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(activity)
}

func CreateActivity(w http.ResponseWriter, r *http.Request) {
	var activity models.Activity
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if activity.Status == "" {
		activity.Status = models.ActivityStatusUnassigned
	}
	if !models.ValidActivityStatus(activity.Status) {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	if err := config.DB.Create(&activity).Error; err != nil {
		http.Error(w, "failed to create activity", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(activity)
}

func UpdateActivity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var activity models.Activity
	if err := config.DB.First(&activity, "id = ?", vars["id"]).Error; err != nil {
		http.Error(w, "activity not found", http.StatusNotFound)
		return
	}

	var updates models.Activity
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if updates.Status == "" {
		updates.Status = activity.Status
	}
	if !models.ValidActivityStatus(updates.Status) {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	if err := config.DB.Model(&activity).Updates(activityUpdateColumns(updates)).Error; err != nil {
		http.Error(w, "failed to update activity", http.StatusInternalServerError)
		return
	}
	config.DB.First(&activity, "id = ?", activity.ID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(activity)
}

// activityUpdateColumns builds the full replacement column set for a PUT.
// A struct update would skip zero values, making it impossible to clear an
// end time, site or notes once set, so the map carries every column.
func activityUpdateColumns(a models.Activity) map[string]interface{} {
	return map[string]interface{}{
		"start_at":  a.StartAt,
		"end_at":    a.EndAt,
		"status":    a.Status,
		"client_id": a.ClientID,
		"site_id":   a.SiteID,
		"notes":     a.Notes,
	}
}

// DeleteActivity soft-deletes the activity and removes its resource pairs
// and document links in the same transaction.
func DeleteActivity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("activity_id = ?", vars["id"]).Delete(&models.ActivityResource{}).Error; err != nil {
			return err
		}
		if err := tx.Where("activity_id = ?", vars["id"]).Delete(&models.ActivityDocument{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Activity{}, "id = ?", vars["id"]).Error
	})
	if err != nil {
		http.Error(w, "failed to delete activity", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type resourcePairReq struct {
	VehicleID int64  `json:"vehicleId"`
	DriverID  *int64 `json:"driverId"`
}

// ReplaceActivityResources replaces the activity's (vehicle, driver) pairs.
func ReplaceActivityResources(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var activity models.Activity
	if err := config.DB.First(&activity, "id = ?", vars["id"]).Error; err != nil {
		http.Error(w, "activity not found", http.StatusNotFound)
		return
	}

	var pairs []resourcePairReq
	if err := json.NewDecoder(r.Body).Decode(&pairs); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	for _, p := range pairs {
		if p.VehicleID == 0 {
			http.Error(w, "vehicleId is required on every pair", http.StatusBadRequest)
			return
		}
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("activity_id = ?", activity.ID).Delete(&models.ActivityResource{}).Error; err != nil {
			return err
		}
		for _, p := range pairs {
			res := models.ActivityResource{
				ActivityID: activity.ID,
				VehicleID:  p.VehicleID,
				DriverID:   p.DriverID,
			}
			if err := tx.Create(&res).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		http.Error(w, "failed to update resources", http.StatusInternalServerError)
		return
	}

	var resources []models.ActivityResource
	config.DB.Preload("Driver").Preload("Vehicle").
		Where("activity_id = ?", activity.ID).Find(&resources)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resources)
}

type statusReq struct {
	Status models.ActivityStatus `json:"status"`
}

// UpdateActivityStatus performs a status transition.
func UpdateActivityStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req statusReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !models.ValidActivityStatus(req.Status) {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	var activity models.Activity
	if err := config.DB.First(&activity, "id = ?", vars["id"]).Error; err != nil {
		http.Error(w, "activity not found", http.StatusNotFound)
		return
	}

	if err := config.DB.Model(&activity).Update("status", req.Status).Error; err != nil {
		http.Error(w, "failed to update status", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(activity)
}

// CheckActivityConflicts runs the busy-resource resolver around the
// activity's start time. ?window= overrides the half-width in minutes
// (default 90); ?all=true includes completed/cancelled activities.
func CheckActivityConflicts(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var activity models.Activity
	if err := config.DB.First(&activity, "id = ?", vars["id"]).Error; err != nil {
		http.Error(w, "activity not found", http.StatusNotFound)
		return
	}
	if activity.StartAt == nil {
		// No start time yet: nothing to check, answer with an empty report.
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(schedule.EmptyBusyReport())
		return
	}

	minutes := schedule.DefaultWindowMinutes
	if v := r.URL.Query().Get("window"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			minutes = n
		}
	}
	includeAll := r.URL.Query().Get("all") == "true"

	window := schedule.WindowAround(*activity.StartAt, minutes)
	pool, err := loadActivityPool(window)
	if err != nil {
		// Advisory information only: degrade to an empty report.
		log.Printf("conflict check: failed to load activity pool: %v", err)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(schedule.EmptyBusyReport())
		return
	}

	report := schedule.FindBusyResources(window, *activity.StartAt, pool, includeAll, activity.ID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// SuggestDocuments proposes synced ERP documents for the activity using the
// previous-working-day rule with strict client+site+date matching.
func SuggestDocuments(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var activity models.Activity
	if err := config.DB.First(&activity, "id = ?", vars["id"]).Error; err != nil {
		http.Error(w, "activity not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	// Missing client, site or start is a data-quality gap: empty, not an error.
	if activity.ClientID == nil || activity.SiteID == nil || activity.StartAt == nil {
		json.NewEncoder(w).Encode([]models.Document{})
		return
	}

	var docs []models.Document
	if err := config.DB.Where("client_id = ?", *activity.ClientID).Find(&docs).Error; err != nil {
		log.Printf("document suggestions: failed to load documents: %v", err)
		json.NewEncoder(w).Encode([]models.Document{})
		return
	}

	records := make([]schedule.DocumentRecord, 0, len(docs))
	byID := make(map[int64]models.Document, len(docs))
	for _, d := range docs {
		synced := d.SyncedAt
		records = append(records, schedule.DocumentRecord{
			ID:           d.ID,
			CodiceDoc:    d.CodiceDoc,
			NumeroDoc:    d.NumeroDoc,
			ClientID:     d.ClientID,
			SiteID:       d.SiteID,
			DataDoc:      d.DataDoc,
			DataConsegna: d.DataConsegna,
			RecordedAt:   &synced,
		})
		byID[d.ID] = d
	}

	matched := schedule.MatchDocuments(activity.ClientID, activity.SiteID, activity.StartAt, records)

	suggestions := make([]models.Document, 0, len(matched))
	for _, m := range matched {
		suggestions = append(suggestions, byID[m.ID])
	}
	json.NewEncoder(w).Encode(suggestions)
}

// loadActivityPool fetches the activities intersecting the window together
// with their resource pairs, converted to the engine's input shape. The SQL
// filter must be a superset of the engine's effective-interval overlap: an
// end at or before the start counts as start + 1 hour, and the window bounds
// are closed, so GREATEST keeps rows with a bogus end and <= keeps an
// activity starting exactly at the window end. The engine makes the final
// call per row.
func loadActivityPool(window schedule.Interval) ([]schedule.PoolActivity, error) {
	var activities []models.Activity
	err := config.DB.
		Preload("Resources.Driver").
		Preload("Resources.Vehicle").
		Preload("Client").
		Where("start_at IS NOT NULL").
		Where("start_at <= ?", window.End).
		Where("GREATEST(COALESCE(end_at, start_at), start_at + interval '1 hour') >= ?", window.Start).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return toPoolActivities(activities), nil
}

// toPoolActivities converts persisted activities to engine pool entries.
func toPoolActivities(activities []models.Activity) []schedule.PoolActivity {
	pool := make([]schedule.PoolActivity, 0, len(activities))
	for _, a := range activities {
		pa := schedule.PoolActivity{
			ID:          a.ID,
			Start:       a.StartAt,
			End:         a.EndAt,
			Status:      a.Status,
			Description: activityLabel(a),
		}
		for _, res := range a.Resources {
			pair := schedule.ResourcePair{}
			if res.Vehicle != nil {
				pair.Vehicle = &schedule.VehicleRef{ID: res.Vehicle.ID, Label: res.Vehicle.Label()}
			} else {
				pair.Vehicle = &schedule.VehicleRef{ID: res.VehicleID}
			}
			if res.Driver != nil {
				pair.Driver = &schedule.DriverRef{ID: res.Driver.ID, Name: res.Driver.Name}
			} else if res.DriverID != nil {
				pair.Driver = &schedule.DriverRef{ID: *res.DriverID}
			}
			pa.Pairs = append(pa.Pairs, pair)
		}
		pool = append(pool, pa)
	}
	return pool
}

// activityLabel builds the display label shown in agenda and conflict output.
func activityLabel(a models.Activity) string {
	if a.Client != nil {
		if a.Site != nil {
			return a.Client.RagioneSociale + " - " + a.Site.Name
		}
		return a.Client.RagioneSociale
	}
	return a.Notes
}
