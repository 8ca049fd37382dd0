package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"v8e.it/flotta/config"
	"v8e.it/flotta/models"
)

// GetAllVehicles returns vehicles; ?status= filters on the operational status.
func GetAllVehicles(w http.ResponseWriter, r *http.Request) {
	query := config.DB.Where("is_active = ?", true).Order("plate")
	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var vehicles []models.Vehicle
	if err := query.Find(&vehicles).Error; err != nil {
		http.Error(w, "failed to fetch vehicles", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vehicles)
}

func GetVehicle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, "id = ?", vars["id"]).Error; err != nil {
		http.Error(w, "vehicle not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vehicle)
}

func CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var vehicle models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if vehicle.Plate == "" {
		http.Error(w, "plate is required", http.StatusBadRequest)
		return
	}

	if err := config.DB.Create(&vehicle).Error; err != nil {
		http.Error(w, "failed to create vehicle", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(vehicle)
}

func UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, "id = ?", vars["id"]).Error; err != nil {
		http.Error(w, "vehicle not found", http.StatusNotFound)
		return
	}

	var updates models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	updates.ID = vehicle.ID

	if err := config.DB.Model(&vehicle).Updates(updates).Error; err != nil {
		http.Error(w, "failed to update vehicle", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vehicle)
}

func DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := config.DB.Delete(&models.Vehicle{}, "id = ?", vars["id"]).Error; err != nil {
		http.Error(w, "failed to delete vehicle", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
