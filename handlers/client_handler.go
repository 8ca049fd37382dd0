package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"v8e.it/flotta/config"
	"v8e.it/flotta/models"
)

// GetAllClients returns clients, optionally filtered by ?q= on the name.
func GetAllClients(w http.ResponseWriter, r *http.Request) {
	query := config.DB.Where("is_active = ?", true).Order("ragione_sociale")
	if q := r.URL.Query().Get("q"); q != "" {
		query = query.Where("ragione_sociale ILIKE ?", "%"+q+"%")
	}

	var clients []models.Client
	if err := query.Find(&clients).Error; err != nil {
		http.Error(w, "failed to fetch clients", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(clients)
}

func GetClient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var client models.Client
	if err := config.DB.Preload("Sites").First(&client, "id = ?", vars["id"]).Error; err != nil {
		http.Error(w, "client not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(client)
}

func CreateClient(w http.ResponseWriter, r *http.Request) {
	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if client.RagioneSociale == "" {
		http.Error(w, "ragioneSociale is required", http.StatusBadRequest)
		return
	}

	if err := config.DB.Create(&client).Error; err != nil {
		http.Error(w, "failed to create client", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(client)
}

func UpdateClient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var client models.Client
	if err := config.DB.First(&client, "id = ?", vars["id"]).Error; err != nil {
		http.Error(w, "client not found", http.StatusNotFound)
		return
	}

	var updates models.Client
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	updates.ID = client.ID

	if err := config.DB.Model(&client).Updates(updates).Error; err != nil {
		http.Error(w, "failed to update client", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(client)
}

func DeleteClient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := config.DB.Delete(&models.Client{}, "id = ?", vars["id"]).Error; err != nil {
		http.Error(w, "failed to delete client", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetClientSites returns the sites of one client.
func GetClientSites(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var sites []models.Site
	if err := config.DB.Where("client_id = ? AND is_active = ?", vars["id"], true).
		Order("name").Find(&sites).Error; err != nil {
		http.Error(w, "failed to fetch sites", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sites)
}
