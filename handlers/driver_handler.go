package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"v8e.it/flotta/config"
	"v8e.it/flotta/models"
)

// GetAllDrivers returns drivers; ?status= filters on the operational status.
func GetAllDrivers(w http.ResponseWriter, r *http.Request) {
	query := config.DB.Where("is_active = ?", true).Order("name")
	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var drivers []models.Driver
	if err := query.Find(&drivers).Error; err != nil {
		http.Error(w, "failed to fetch drivers", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(drivers)
}

func GetDriver(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var driver models.Driver
	if err := config.DB.First(&driver, "id = ?", vars["id"]).Error; err != nil {
		http.Error(w, "driver not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(driver)
}

func CreateDriver(w http.ResponseWriter, r *http.Request) {
	var driver models.Driver
	if err := json.NewDecoder(r.Body).Decode(&driver); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if driver.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	if err := config.DB.Create(&driver).Error; err != nil {
		http.Error(w, "failed to create driver", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(driver)
}

func UpdateDriver(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var driver models.Driver
	if err := config.DB.First(&driver, "id = ?", vars["id"]).Error; err != nil {
		http.Error(w, "driver not found", http.StatusNotFound)
		return
	}

	var updates models.Driver
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	updates.ID = driver.ID

	if err := config.DB.Model(&driver).Updates(updates).Error; err != nil {
		http.Error(w, "failed to update driver", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(driver)
}

func DeleteDriver(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := config.DB.Delete(&models.Driver{}, "id = ?", vars["id"]).Error; err != nil {
		http.Error(w, "failed to delete driver", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
