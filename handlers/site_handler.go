package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"v8e.it/flotta/config"
	"v8e.it/flotta/models"
)

// GetAllSites returns sites, optionally filtered by ?clientId=.
func GetAllSites(w http.ResponseWriter, r *http.Request) {
	query := config.DB.Where("is_active = ?", true).Order("name")
	if clientID := r.URL.Query().Get("clientId"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}

	var sites []models.Site
	if err := query.Find(&sites).Error; err != nil {
		http.Error(w, "failed to fetch sites", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sites)
}

func GetSite(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var site models.Site
	if err := config.DB.Preload("Client").First(&site, "id = ?", vars["id"]).Error; err != nil {
		http.Error(w, "site not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(site)
}

func CreateSite(w http.ResponseWriter, r *http.Request) {
	var site models.Site
	if err := json.NewDecoder(r.Body).Decode(&site); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if site.Name == "" || site.ClientID == 0 {
		http.Error(w, "name and clientId are required", http.StatusBadRequest)
		return
	}

	var client models.Client
	if err := config.DB.First(&client, "id = ?", site.ClientID).Error; err != nil {
		http.Error(w, "client not found", http.StatusBadRequest)
		return
	}

	if err := config.DB.Create(&site).Error; err != nil {
		http.Error(w, "failed to create site", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(site)
}

func UpdateSite(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var site models.Site
	if err := config.DB.First(&site, "id = ?", vars["id"]).Error; err != nil {
		http.Error(w, "site not found", http.StatusNotFound)
		return
	}

	var updates models.Site
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	updates.ID = site.ID

	if err := config.DB.Model(&site).Updates(updates).Error; err != nil {
		http.Error(w, "failed to update site", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(site)
}

func DeleteSite(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := config.DB.Delete(&models.Site{}, "id = ?", vars["id"]).Error; err != nil {
		http.Error(w, "failed to delete site", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
