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
	redisClient "github.com/NurisJAkbar/omni-vibe/modules/common/redis"
)

// EnqueueHandler - pushes persisted jobs onto the Redis queue
type EnqueueHandler struct {
	rdb *redis.Client
	db  *database.Client
}

// EnqueueRequest - enqueue body
type EnqueueRequest struct {
	JobID string `json:"job_id"`
}

// EnqueueResponse - enqueue result
type EnqueueResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message,omitempty"`
	Error         string `json:"error,omitempty"`
	JobID         string `json:"job_id,omitempty"`
	Queue         string `json:"queue,omitempty"`
	QueuePosition int64  `json:"queuePosition,omitempty"`
}

// NewEnqueueHandler - handler with its own Redis connection
func NewEnqueueHandler() *EnqueueHandler {
	cfg := config.GetConfig()

	rdb := redisClient.Connect(cfg)
	if rdb == nil {
		log.Println("⚠️ [Enqueue] Failed to connect to Redis")
		return nil
	}

	db := database.NewClient()
	if db == nil {
		log.Println("⚠️ [Enqueue] Failed to initialize Database client")
		return nil
	}

	log.Println("✅ [Enqueue] Handler initialized with Redis connection")
	return &EnqueueHandler{
		rdb: rdb,
		db:  db,
	}
}

// RegisterRoutes - register enqueue route
func (h *EnqueueHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/enqueue", h.HandleEnqueue).Methods("POST", "OPTIONS")
	log.Println("✅ Enqueue routes registered: POST /api/enqueue")
}

// HandleEnqueue - POST /api/enqueue
func (h *EnqueueHandler) HandleEnqueue(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req EnqueueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.JobID == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(EnqueueResponse{
			Success: false,
			Error:   "job_id is required",
		})
		return
	}

	// job must already exist in omni_jobs before it can be queued
	job, err := h.db.FetchJob(req.JobID)
	if err != nil {
		log.Printf("❌ [Enqueue] Job not found: %s", req.JobID)
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(EnqueueResponse{
			Success: false,
			Error:   "job not found",
			JobID:   req.JobID,
		})
		return
	}

	if job.JobStatus == model.StatusProcessing {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(EnqueueResponse{
			Success: false,
			Error:   "job is already processing",
			JobID:   req.JobID,
		})
		return
	}

	// a re-queued job must not inherit an old cancel flag
	redisClient.ClearJobCancelled(h.rdb, req.JobID)

	position, err := redisClient.EnqueueJob(r.Context(), h.rdb, req.JobID)
	if err != nil {
		log.Printf("❌ [Enqueue] Failed to enqueue job %s: %v", req.JobID, err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(EnqueueResponse{
			Success: false,
			Error:   "failed to enqueue job",
			JobID:   req.JobID,
		})
		return
	}

	log.Printf("✅ [Enqueue] Job %s queued at position %d", req.JobID, position)
	json.NewEncoder(w).Encode(EnqueueResponse{
		Success:       true,
		Message:       "Job queued",
		JobID:         req.JobID,
		Queue:         redisClient.QueueKey,
		QueuePosition: position,
	})
}
