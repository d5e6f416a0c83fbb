package brand

import (
	"fmt"
	"strings"

	"github.com/NurisJAkbar/omni-vibe/modules/common/fallback"
)

// BrandColor - one palette entry, order matters (primary first)
type BrandColor struct {
	Hex   string `json:"hex"`
	Name  string `json:"name"`
	Usage string `json:"usage"`
}

// BrandIdentity - the structured identity derived from the uploaded media
type BrandIdentity struct {
	Vibe       string       `json:"vibe"`
	Voice      string       `json:"voice"`
	Typography string       `json:"typography"`
	Colors     []BrandColor `json:"colors"`
	Directives []string     `json:"directives"`
}

// AnalyzeRequest - POST /api/brand/analyze body
type AnalyzeRequest struct {
	MediaDataURL  string `json:"mediaDataUrl"`
	TargetVibe    string `json:"targetVibe"`
	ActionTrigger string `json:"actionTrigger"` // e.g. "Analyze Vibe"
}

// AnalyzeResponse - POST /api/brand/analyze result
type AnalyzeResponse struct {
	Success      bool           `json:"success"`
	Identity     *BrandIdentity `json:"identity,omitempty"`
	ModelUsed    string         `json:"modelUsed,omitempty"`
	ErrorMessage string         `json:"errorMessage,omitempty"`
	ErrorCode    string         `json:"errorCode,omitempty"`
}

// Error codes
const (
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeInternalError  = "INTERNAL_ERROR"
)

const maxTargetVibeLength = 500

// Validate - basic request validation
func (r *AnalyzeRequest) Validate() error {
	if strings.TrimSpace(r.MediaDataURL) == "" {
		return fmt.Errorf("mediaDataUrl is required")
	}
	if strings.TrimSpace(r.TargetVibe) == "" {
		return fmt.Errorf("targetVibe is required")
	}
	if len(r.TargetVibe) > maxTargetVibeLength {
		return fmt.Errorf("targetVibe too long (max %d characters)", maxTargetVibeLength)
	}
	return nil
}

// Normalize - defensive cleanup of model output. The schema already rejects
// structurally broken payloads; this trims whitespace and repairs the values
// the model tends to fumble (shorthand hex, blank list entries).
func (id *BrandIdentity) Normalize() {
	id.Vibe = fallback.SafeString(id.Vibe, "Modern and versatile")
	id.Voice = fallback.SafeString(id.Voice, "Confident, clear and human")
	id.Typography = fallback.SafeString(id.Typography, "Clean geometric sans-serif for headlines, readable humanist sans for body")

	colors := make([]BrandColor, 0, len(id.Colors))
	for _, c := range id.Colors {
		hex := fallback.SafeHex(c.Hex, "")
		if hex == "" {
			continue
		}
		colors = append(colors, BrandColor{
			Hex:   hex,
			Name:  fallback.SafeString(c.Name, "Untitled"),
			Usage: fallback.SafeString(c.Usage, "accent"),
		})
	}
	if len(colors) == 0 {
		colors = []BrandColor{
			{Hex: "#1A1A1A", Name: "Ink", Usage: "primary"},
			{Hex: "#F5F2EC", Name: "Paper", Usage: "background"},
		}
	}
	id.Colors = colors

	id.Directives = fallback.SafeList(id.Directives, "Keep compositions clean with generous negative space")
}

// PaletteLine - compact palette summary for downstream image prompts
func (id *BrandIdentity) PaletteLine() string {
	parts := make([]string, 0, len(id.Colors))
	for _, c := range id.Colors {
		parts = append(parts, fmt.Sprintf("%s (%s, %s)", c.Hex, c.Name, c.Usage))
	}
	return strings.Join(parts, ", ")
}
