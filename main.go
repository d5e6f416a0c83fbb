package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/NurisJAkbar/omni-vibe/modules/assets"
	"github.com/NurisJAkbar/omni-vibe/modules/brand"
	"github.com/NurisJAkbar/omni-vibe/modules/common/config"
	"github.com/NurisJAkbar/omni-vibe/modules/common/progress"
	"github.com/NurisJAkbar/omni-vibe/modules/worker"
)

var startTime = time.Now()

// enableCORS - the browser client runs on a different origin
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// healthCheck - health endpoint
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "omni-vibe-server",
	})
}

// getMetrics - server and progress hub metrics
func getMetrics(hub *progress.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot := hub.Snapshot()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"server": map[string]interface{}{
				"uptime":    time.Since(startTime).String(),
				"startTime": startTime,
			},
			"progress": map[string]interface{}{
				"totalSubscribers": snapshot.TotalSubscribers,
				"activeJobs":       snapshot.ActiveJobs,
				"totalEvents":      snapshot.TotalEvents,
			},
		})
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// progress hub shared by the websocket endpoint and the queue worker
	hub := progress.NewHub()

	// Redis queue worker (background)
	go worker.StartWorker(hub)

	r := mux.NewRouter()
	r.Use(enableCORS)

	r.HandleFunc("/", healthCheck).Methods("GET")
	r.HandleFunc("/health", healthCheck).Methods("GET")
	r.HandleFunc("/ws", hub.ServeWS)
	r.HandleFunc("/metrics", getMetrics(hub)).Methods("GET")

	brand.NewHandler().RegisterRoutes(r)
	assets.NewHandler().RegisterRoutes(r)

	if enqueueHandler := worker.NewEnqueueHandler(); enqueueHandler != nil {
		enqueueHandler.RegisterRoutes(r)
	}
	if cancelHandler := worker.NewCancelHandler(); cancelHandler != nil {
		cancelHandler.RegisterRoutes(r)
	}
	if statusHandler := worker.NewStatusHandler(); statusHandler != nil {
		statusHandler.RegisterRoutes(r)
	}

	port := cfg.Port

	log.Printf("🚀 OMNI-VIBE Server starting on port %s", port)
	log.Printf("🎨 Brand analysis: POST http://localhost:%s/api/brand/analyze", port)
	log.Printf("🖼️  Asset generation: POST http://localhost:%s/api/assets/generate", port)
	log.Printf("📡 Progress stream: ws://localhost:%s/ws?job=<id>", port)
	log.Printf("❤️  Health check: http://localhost:%s/health", port)
	log.Printf("📊 Metrics: http://localhost:%s/metrics", port)

	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
