package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"v8e.it/flotta/config"
	"v8e.it/flotta/middleware"
	"v8e.it/flotta/models"
)

// GetAgendaPreference returns the caller's agenda preference, or the global
// record with ?global=true. A missing record answers an empty preference.
func GetAgendaPreference(w http.ResponseWriter, r *http.Request) {
	var pref models.AgendaPreference

	if r.URL.Query().Get("global") == "true" {
		config.DB.Where("is_global = ?", true).First(&pref)
	} else if userID := middleware.GetUserID(r); userID != "" {
		config.DB.Where("user_id = ?", userID).First(&pref)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pref)
}

type preferenceReq struct {
	OrderedDriverIDs []int64 `json:"orderedDriverIds"`
	HiddenDriverIDs  []int64 `json:"hiddenDriverIds"`
}

// PutAgendaPreference upserts the caller's preference record, or the global
// one with ?global=true (admins only).
func PutAgendaPreference(w http.ResponseWriter, r *http.Request) {
	var req preferenceReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	global := r.URL.Query().Get("global") == "true"
	if global && middleware.GetRole(r) != "admin" {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var pref models.AgendaPreference
	var err error
	if global {
		err = config.DB.Where("is_global = ?", true).First(&pref).Error
		pref.IsGlobal = true
		pref.UserID = nil
	} else {
		userID, parseErr := uuid.Parse(middleware.GetUserID(r))
		if parseErr != nil {
			http.Error(w, "user not found", http.StatusUnauthorized)
			return
		}
		err = config.DB.Where("user_id = ?", userID).First(&pref).Error
		pref.IsGlobal = false
		pref.UserID = &userID
	}

	pref.OrderedDriverIDs = pq.Int64Array(req.OrderedDriverIDs)
	pref.HiddenDriverIDs = pq.Int64Array(req.HiddenDriverIDs)

	if err != nil {
		err = config.DB.Create(&pref).Error
	} else {
		err = config.DB.Save(&pref).Error
	}
	if err != nil {
		http.Error(w, "failed to save preference", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pref)
}
