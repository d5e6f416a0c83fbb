package assets

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/NurisJAkbar/omni-vibe/modules/brand"
	"github.com/NurisJAkbar/omni-vibe/modules/common/config"
	"github.com/NurisJAkbar/omni-vibe/modules/common/fallback"
	"github.com/NurisJAkbar/omni-vibe/modules/common/gemini"
	"github.com/NurisJAkbar/omni-vibe/modules/common/media"
)

type Service struct{}

func NewService() *Service {
	log.Println("✅ [Assets] Service initialized")
	return &Service{}
}

// Generate - render one branded asset. The primary image model gets the full
// key waterfall; on any failure the fallback image model gets one more pass.
func (s *Service) Generate(ctx context.Context, identity *brand.BrandIdentity, assetType AssetType, ref *media.NormalizedMedia) (*GeneratedAsset, string, error) {
	cfg := config.GetConfig()

	prompt := BuildAssetPrompt(assetType, identity)
	aspectRatio := resolveAspectRatio(assetType)

	parts := referenceParts(ref)
	parts = append(parts, genai.NewPartFromText(prompt))

	contents := []*genai.Content{{Parts: parts}}

	generationConfig := &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{
			AspectRatio: aspectRatio,
		},
		Temperature: floatPtr(0.45),
	}

	log.Printf("🎨 [Assets] Generating %s (ratio: %s, prompt: %d chars)", assetType, aspectRatio, len(prompt))

	imageData, modelUsed, err := s.invoke(ctx, cfg.ImageModel, contents, generationConfig)
	if err != nil {
		log.Printf("⚠️ [Assets] Primary model %s failed for %s: %v", cfg.ImageModel, assetType, err)
		log.Printf("🔁 [Assets] Falling back to %s", cfg.ImageFallbackModel)

		imageData, modelUsed, err = s.invoke(ctx, cfg.ImageFallbackModel, contents, generationConfig)
		if err != nil {
			return nil, "", fmt.Errorf("asset generation failed on both models: %w", err)
		}
	}

	asset := &GeneratedAsset{
		ID:        uuid.NewString(),
		Type:      assetType,
		DataURL:   media.ToDataURL("image/png", imageData),
		CreatedAt: time.Now().UTC(),
	}

	log.Printf("✅ [Assets] Generated %s %s via %s (%d bytes)", assetType, asset.ID, modelUsed, len(imageData))
	return asset, modelUsed, nil
}

// referenceParts - inline reference media for the image prompt. Asset slots
// with no reference media get the transparent placeholder pixel so the
// request shape stays the same either way.
func referenceParts(ref *media.NormalizedMedia) []*genai.Part {
	if ref == nil {
		return []*genai.Part{{
			InlineData: &genai.Blob{
				MIMEType: "image/png",
				Data:     fallback.PlaceholderBytes(),
			},
		}}
	}

	log.Printf("📎 [Assets] Added reference media (%s, %d bytes)", ref.MIMEType, len(ref.Data))
	return []*genai.Part{{
		InlineData: &genai.Blob{
			MIMEType: ref.MIMEType,
			Data:     ref.Data,
		},
	}}
}

// resolveAspectRatio - per-type frame shape, guarded against ratios the
// image API does not accept
func resolveAspectRatio(assetType AssetType) string {
	return fallback.SafeAspectRatio(AspectRatioFor(assetType))
}

// invoke - one image model across the key waterfall
func (s *Service) invoke(ctx context.Context, model string, contents []*genai.Content, generationConfig *genai.GenerateContentConfig) ([]byte, string, error) {
	cfg := config.GetConfig()

	resp, modelUsed, err := gemini.GenerateWithWaterfall(ctx, cfg.GeminiAPIKeys, []string{model}, contents, generationConfig)
	if err != nil {
		return nil, "", err
	}

	imageData, _, err := gemini.ExtractInlineImage(resp)
	if err != nil {
		return nil, modelUsed, err
	}

	return imageData, modelUsed, nil
}

// floatPtr - float32 pointer for genai config fields
func floatPtr(f float32) *float32 {
	return &f
}
