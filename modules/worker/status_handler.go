package worker

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/NurisJAkbar/omni-vibe/modules/common/database"
)

// StatusHandler - job status lookup API
type StatusHandler struct {
	db *database.Client
}

// NewStatusHandler - handler construction
func NewStatusHandler() *StatusHandler {
	db := database.NewClient()
	if db == nil {
		log.Println("❌ [StatusHandler] Failed to initialize Database client")
		return nil
	}

	return &StatusHandler{db: db}
}

// RegisterRoutes - register status route
func (h *StatusHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/jobs/{jobId}", h.GetJob).Methods("GET")
	log.Println("✅ [StatusHandler] Routes registered: GET /api/jobs/{jobId}")
}

// GetJob - GET /api/jobs/{jobId}
func (h *StatusHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	jobID := vars["jobId"]

	job, err := h.db.FetchJob(jobID)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "Job not found",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job)
}
