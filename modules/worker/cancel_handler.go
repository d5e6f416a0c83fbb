package worker

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/NurisJAkbar/omni-vibe/modules/common/config"
	"github.com/NurisJAkbar/omni-vibe/modules/common/database"
	"github.com/NurisJAkbar/omni-vibe/modules/common/model"
	redisutil "github.com/NurisJAkbar/omni-vibe/modules/common/redis"
)

// CancelHandler - job cancellation API
type CancelHandler struct {
	rdb *redis.Client
	db  *database.Client
}

// NewCancelHandler - handler construction
func NewCancelHandler() *CancelHandler {
	cfg := config.GetConfig()
	if cfg == nil {
		log.Println("❌ [CancelHandler] Failed to get config")
		return nil
	}

	rdb := redisutil.Connect(cfg)
	if rdb == nil {
		log.Println("❌ [CancelHandler] Failed to connect to Redis")
		return nil
	}

	db := database.NewClient()
	if db == nil {
		log.Println("❌ [CancelHandler] Failed to initialize Database client")
		return nil
	}

	return &CancelHandler{
		rdb: rdb,
		db:  db,
	}
}

// RegisterRoutes - register cancel route
func (h *CancelHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/jobs/{jobId}/cancel", h.CancelJob).Methods("POST", "OPTIONS")
	log.Println("✅ [CancelHandler] Routes registered: POST /api/jobs/{jobId}/cancel")
}

// CancelJob - POST /api/jobs/{jobId}/cancel
func (h *CancelHandler) CancelJob(w http.ResponseWriter, r *http.Request) {
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	vars := mux.Vars(r)
	jobID := vars["jobId"]

	if jobID == "" {
		http.Error(w, `{"error": "jobId is required"}`, http.StatusBadRequest)
		return
	}

	log.Printf("🛑 [CancelHandler] Cancel requested for job: %s", jobID)

	if err := redisutil.SetJobCancelled(h.rdb, jobID); err != nil {
		log.Printf("❌ [CancelHandler] Failed to set cancel flag: %v", err)
		http.Error(w, `{"error": "Failed to set cancel flag"}`, http.StatusInternalServerError)
		return
	}

	job, err := h.db.FetchJob(jobID)
	if err != nil {
		log.Printf("❌ [CancelHandler] Job not found: %s", jobID)
		http.Error(w, `{"error": "Job not found"}`, http.StatusNotFound)
		return
	}

	// completed or cancelled jobs cannot be cancelled again
	if job.JobStatus == model.StatusCompleted || job.JobStatus == model.StatusUserCancelled {
		log.Printf("⚠️ [CancelHandler] Job already %s: %s", job.JobStatus, jobID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":          false,
			"message":          "Job already " + job.JobStatus,
			"job_id":           jobID,
			"job_status":       job.JobStatus,
			"completed_assets": job.CompletedAssets,
		})
		return
	}

	log.Printf("✅ [CancelHandler] Cancel flag set for job: %s (current status: %s, completed: %d)",
		jobID, job.JobStatus, job.CompletedAssets)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":          true,
		"message":          "Cancel request sent. Job will stop after current asset.",
		"job_id":           jobID,
		"current_status":   job.JobStatus,
		"completed_assets": job.CompletedAssets,
		"total_assets":     job.TotalAssets,
	})
}
