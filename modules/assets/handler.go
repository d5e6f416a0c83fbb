package assets

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

// RegisterRoutes - asset generation routes
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/assets/generate", h.Generate).Methods("POST", "OPTIONS")
	log.Println("✅ [Assets] Routes registered: POST /api/assets/generate")
}

// Generate - POST /api/assets/generate (synchronous single asset)
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		code := ErrCodeInvalidRequest
		if !IsValidAssetType(req.AssetType) {
			code = ErrCodeInvalidAsset
		}
		writeError(w, http.StatusBadRequest, code, err.Error())
		return
	}

	cfg := config.GetConfig()

	var ref *media.NormalizedMedia
	if req.MediaDataURL != "" {
		normalized, err := media.NormalizeDataURL(req.MediaDataURL, cfg.MaxMediaBytes, cfg.MaxImageEdge)
		if err != nil {
			writeError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "failed to normalize reference media: "+err.Error())
			return
		}
		ref = normalized
	}

	req.Identity.Normalize()

	asset, modelUsed, err := h.service.Generate(r.Context(), &req.Identity, AssetType(req.AssetType), ref)
	if err != nil {
		log.Printf("❌ [Assets] Generation failed: %v", err)
		writeError(w, http.StatusBadGateway, ErrCodeInternalError, err.Error())
		return
	}

	json.NewEncoder(w).Encode(GenerateResponse{
		Success:   true,
		Asset:     asset,
		ModelUsed: modelUsed,
	})
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(GenerateResponse{
		Success:      false,
		ErrorCode:    code,
		ErrorMessage: message,
	})
}
