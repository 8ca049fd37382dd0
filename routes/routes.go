package routes

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"v8e.it/flotta/handlers"
	"v8e.it/flotta/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/register", handlers.Register).Methods("POST")
	r.HandleFunc("/login", handlers.Login).Methods("POST")
	r.HandleFunc("/token", handlers.GetCurrentUser).Methods("GET")

	// =====================================================
	// Protected API Routes (require JWT authentication)
	// =====================================================
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.JWTMiddleware)

	// User profile endpoint
	api.HandleFunc("/profile", handleProfile).Methods("GET")

	registerMasterRoutes(api)
	registerActivityRoutes(api)
	registerDocumentRoutes(api)
	registerAgendaRoutes(api)

	// =====================================================
	// Admin Routes (require admin role)
	// =====================================================
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(func(next http.Handler) http.Handler {
		return middleware.RequireRole([]string{"admin"}, next)
	})
	admin.HandleFunc("/sync/run", handlers.TriggerArcaSync).Methods("POST")
	admin.HandleFunc("/sync/runs", handlers.GetSyncRuns).Methods("GET")

	return r
}

// handleProfile returns user profile information
func handleProfile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	user := middleware.GetUser(r)

	response := map[string]interface{}{
		"userID": claims.UserID,
		"name":   user.Name,
		"email":  user.Email,
		"role":   user.Role,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// crudHandlers bundles the standard handler set for one resource.
type crudHandlers struct {
	getAll http.HandlerFunc
	create http.HandlerFunc
	getOne http.HandlerFunc
	update http.HandlerFunc
	delete http.HandlerFunc
}

// registerCRUDRoutes wires the standard REST verbs for a resource prefix.
func registerCRUDRoutes(api *mux.Router, prefix string, h crudHandlers) {
	if h.getAll != nil {
		api.HandleFunc(prefix, h.getAll).Methods("GET")
	}
	if h.create != nil {
		api.HandleFunc(prefix, h.create).Methods("POST")
	}
	if h.getOne != nil {
		api.HandleFunc(prefix+"/{id}", h.getOne).Methods("GET")
	}
	if h.update != nil {
		api.HandleFunc(prefix+"/{id}", h.update).Methods("PUT")
	}
	if h.delete != nil {
		api.HandleFunc(prefix+"/{id}", h.delete).Methods("DELETE")
	}
}

// registerMasterRoutes registers the master-data resources.
func registerMasterRoutes(api *mux.Router) {
	registerCRUDRoutes(api, "/clients", crudHandlers{
		getAll: handlers.GetAllClients,
		create: handlers.CreateClient,
		getOne: handlers.GetClient,
		update: handlers.UpdateClient,
		delete: handlers.DeleteClient,
	})
	api.HandleFunc("/clients/{id}/sites", handlers.GetClientSites).Methods("GET")

	registerCRUDRoutes(api, "/sites", crudHandlers{
		getAll: handlers.GetAllSites,
		create: handlers.CreateSite,
		getOne: handlers.GetSite,
		update: handlers.UpdateSite,
		delete: handlers.DeleteSite,
	})

	registerCRUDRoutes(api, "/drivers", crudHandlers{
		getAll: handlers.GetAllDrivers,
		create: handlers.CreateDriver,
		getOne: handlers.GetDriver,
		update: handlers.UpdateDriver,
		delete: handlers.DeleteDriver,
	})

	registerCRUDRoutes(api, "/vehicles", crudHandlers{
		getAll: handlers.GetAllVehicles,
		create: handlers.CreateVehicle,
		getOne: handlers.GetVehicle,
		update: handlers.UpdateVehicle,
		delete: handlers.DeleteVehicle,
	})
}

// registerActivityRoutes registers activities and their sub-resources.
func registerActivityRoutes(api *mux.Router) {
	// Export before the parameterized routes so "export" is not matched as an id.
	api.HandleFunc("/activities/export", handlers.ExportActivitiesToExcel).Methods("GET")

	registerCRUDRoutes(api, "/activities", crudHandlers{
		getAll: handlers.GetAllActivities,
		create: handlers.CreateActivity,
		getOne: handlers.GetActivity,
		update: handlers.UpdateActivity,
		delete: handlers.DeleteActivity,
	})

	api.HandleFunc("/activities/{id}/resources", handlers.ReplaceActivityResources).Methods("PUT")
	api.HandleFunc("/activities/{id}/status", handlers.UpdateActivityStatus).Methods("PUT")
	api.HandleFunc("/activities/{id}/conflicts", handlers.CheckActivityConflicts).Methods("GET")
	api.HandleFunc("/activities/{id}/suggestions", handlers.SuggestDocuments).Methods("GET")
	api.HandleFunc("/activities/{id}/documents", handlers.ListActivityDocuments).Methods("GET")
	api.HandleFunc("/activities/{id}/documents", handlers.AttachDocument).Methods("POST")
	api.HandleFunc("/activities/{id}/documents/{docId}", handlers.DetachDocument).Methods("DELETE")
}

// registerDocumentRoutes registers the read-only ERP document surface.
func registerDocumentRoutes(api *mux.Router) {
	api.HandleFunc("/documents", handlers.GetAllDocuments).Methods("GET")
	api.HandleFunc("/documents/{id}", handlers.GetDocument).Methods("GET")
}

// registerAgendaRoutes registers the agenda view and its preferences.
func registerAgendaRoutes(api *mux.Router) {
	api.HandleFunc("/agenda", handlers.GetAgenda).Methods("GET")
	api.HandleFunc("/agenda/preferences", handlers.GetAgendaPreference).Methods("GET")
	api.HandleFunc("/agenda/preferences", handlers.PutAgendaPreference).Methods("PUT")
}
