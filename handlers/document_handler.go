package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"v8e.it/flotta/config"
	"v8e.it/flotta/models"
)

// GetAllDocuments lists synced ERP documents. Filters: ?clientId=, ?siteId=,
// ?from=, ?to= (on the document date). Documents are created only by the
// Arca sync, so the surface is read-only.
func GetAllDocuments(w http.ResponseWriter, r *http.Request) {
	query := config.DB.Preload("Client").Preload("Site").Order("data_doc DESC, numero_doc DESC")

	if clientID := r.URL.Query().Get("clientId"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if siteID := r.URL.Query().Get("siteId"); siteID != "" {
		query = query.Where("site_id = ?", siteID)
	}
	if from := r.URL.Query().Get("from"); from != "" {
		if t, err := time.ParseInLocation("2006-01-02", from, time.Local); err == nil {
			query = query.Where("data_doc >= ?", t)
		}
	}
	if to := r.URL.Query().Get("to"); to != "" {
		if t, err := time.ParseInLocation("2006-01-02", to, time.Local); err == nil {
			query = query.Where("data_doc < ?", t.AddDate(0, 0, 1))
		}
	}

	var docs []models.Document
	if err := query.Find(&docs).Error; err != nil {
		http.Error(w, "failed to fetch documents", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(docs)
}

func GetDocument(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var doc models.Document
	if err := config.DB.
		Preload("Client").
		Preload("Site").
		Preload("Lines").
		First(&doc, "id = ?", vars["id"]).Error; err != nil {
		http.Error(w, "document not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc)
}

// GetSyncRuns lists recent Arca synchronization runs, newest first.
func GetSyncRuns(w http.ResponseWriter, r *http.Request) {
	var runs []models.SyncRun
	if err := config.DB.Order("started_at DESC").Limit(50).Find(&runs).Error; err != nil {
		http.Error(w, "failed to fetch sync runs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(runs)
}
