package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"v8e.it/flotta/config"
	"v8e.it/flotta/models"
)

// ListActivityDocuments returns the documents linked to an activity.
func ListActivityDocuments(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var docs []models.Document
	err := config.DB.
		Joins("JOIN activity_documents ON activity_documents.document_id = documents.id").
		Where("activity_documents.activity_id = ?", vars["id"]).
		Preload("Lines").
		Find(&docs).Error
	if err != nil {
		http.Error(w, "failed to fetch linked documents", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(docs)
}

type attachDocumentReq struct {
	DocumentID int64 `json:"documentId"`
}

// AttachDocument links a document to an activity. Attaching an already
// linked document is a no-op, so the operation is idempotent.
func AttachDocument(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var activity models.Activity
	if err := config.DB.First(&activity, "id = ?", vars["id"]).Error; err != nil {
		http.Error(w, "activity not found", http.StatusNotFound)
		return
	}

	var req attachDocumentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DocumentID == 0 {
		http.Error(w, "documentId is required", http.StatusBadRequest)
		return
	}

	var doc models.Document
	if err := config.DB.First(&doc, "id = ?", req.DocumentID).Error; err != nil {
		http.Error(w, "document not found", http.StatusNotFound)
		return
	}

	link := models.ActivityDocument{ActivityID: activity.ID, DocumentID: doc.ID}
	if err := config.DB.Create(&link).Error; err != nil {
		// Unique (activity_id, document_id) index: an existing link is fine.
		if strings.Contains(err.Error(), "duplicate key") {
			w.WriteHeader(http.StatusOK)
			return
		}
		http.Error(w, "failed to link document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(link)
}

// DetachDocument unlinks a document from an activity. Detaching a link that
// does not exist succeeds with no effect.
func DetachDocument(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := config.DB.
		Where("activity_id = ? AND document_id = ?", vars["id"], vars["docId"]).
		Delete(&models.ActivityDocument{}).Error; err != nil {
		http.Error(w, "failed to unlink document", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
