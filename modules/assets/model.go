package assets

import (
	"fmt"
	"strings"
	"time"

	"github.com/NurisJAkbar/omni-vibe/modules/brand"
)

// AssetType - the branded visuals the pipeline can render
type AssetType string

const (
	AssetLogo   AssetType = "logo"
	AssetBanner AssetType = "banner"
	AssetMockup AssetType = "mockup"
)

// DefaultAssetTypes - standard batch produced for a fresh identity
var DefaultAssetTypes = []AssetType{AssetLogo, AssetBanner, AssetMockup}

var validAssetTypes = map[AssetType]bool{
	AssetLogo:   true,
	AssetBanner: true,
	AssetMockup: true,
}

// IsValidAssetType - asset type validation
func IsValidAssetType(t string) bool {
	return validAssetTypes[AssetType(t)]
}

// GeneratedAsset - one rendered branded visual
type GeneratedAsset struct {
	ID        string    `json:"id"`
	Type      AssetType `json:"type"`
	DataURL   string    `json:"dataUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// GenerateRequest - POST /api/assets/generate body
type GenerateRequest struct {
	Identity     brand.BrandIdentity `json:"identity"`
	AssetType    string              `json:"assetType"`
	MediaDataURL string              `json:"mediaDataUrl,omitempty"` // optional reference media
}

// GenerateResponse - POST /api/assets/generate result
type GenerateResponse struct {
	Success      bool            `json:"success"`
	Asset        *GeneratedAsset `json:"asset,omitempty"`
	ModelUsed    string          `json:"modelUsed,omitempty"`
	ErrorMessage string          `json:"errorMessage,omitempty"`
	ErrorCode    string          `json:"errorCode,omitempty"`
}

// Error codes
const (
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeInternalError  = "INTERNAL_ERROR"
	ErrCodeInvalidAsset   = "INVALID_ASSET_TYPE"
)

// Validate - basic request validation
func (r *GenerateRequest) Validate() error {
	if !IsValidAssetType(r.AssetType) {
		return fmt.Errorf("invalid asset type: %s", r.AssetType)
	}
	if strings.TrimSpace(r.Identity.Vibe) == "" {
		return fmt.Errorf("identity.vibe is required")
	}
	if len(r.Identity.Colors) == 0 {
		return fmt.Errorf("identity.colors must not be empty")
	}
	return nil
}
