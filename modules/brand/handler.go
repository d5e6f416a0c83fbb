package brand

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/NurisJAkbar/omni-vibe/modules/common/config"
	"github.com/NurisJAkbar/omni-vibe/modules/common/media"
)

type Handler struct {
	service *Service
}

func NewHandler() *Handler {
	return &Handler{
		service: NewService(),
	}
}

// RegisterRoutes - brand analysis routes
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/brand/analyze", h.Analyze).Methods("POST", "OPTIONS")
	log.Println("✅ [Brand] Routes registered: POST /api/brand/analyze")
}

// Analyze - POST /api/brand/analyze
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}

	cfg := config.GetConfig()

	// a bad upload is the caller's fault, not a model failure
	src, err := media.NormalizeDataURL(req.MediaDataURL, cfg.MaxMediaBytes, cfg.MaxImageEdge)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "failed to normalize media: "+err.Error())
		return
	}

	identity, modelUsed, err := h.service.Analyze(r.Context(), src, req.TargetVibe, req.ActionTrigger)
	if err != nil {
		log.Printf("❌ [Brand] Analysis failed: %v", err)
		writeError(w, http.StatusBadGateway, ErrCodeInternalError, err.Error())
		return
	}

	json.NewEncoder(w).Encode(AnalyzeResponse{
		Success:   true,
		Identity:  identity,
		ModelUsed: modelUsed,
	})
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(AnalyzeResponse{
		Success:      false,
		ErrorCode:    code,
		ErrorMessage: message,
	})
}
