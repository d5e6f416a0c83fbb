package brand

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"

	"github.com/NurisJAkbar/omni-vibe/modules/common/config"
	"github.com/NurisJAkbar/omni-vibe/modules/common/gemini"
	"github.com/NurisJAkbar/omni-vibe/modules/common/media"
)

type Service struct{}

func NewService() *Service {
	log.Println("✅ [Brand] Service initialized")
	return &Service{}
}

// Analyze - derive a brand identity from normalized media and a target vibe
func (s *Service) Analyze(ctx context.Context, src *media.NormalizedMedia, targetVibe string, actionTrigger string) (*BrandIdentity, string, error) {
	cfg := config.GetConfig()

	prompt := BuildAnalysisPrompt(targetVibe, actionTrigger)

	content := &genai.Content{
		Parts: []*genai.Part{
			{
				InlineData: &genai.Blob{
					MIMEType: src.MIMEType,
					Data:     src.Data,
				},
			},
			genai.NewPartFromText(prompt),
		},
	}

	log.Printf("🎨 [Brand] Analyzing media (%s, %d bytes) - vibe: %s",
		src.MIMEType, len(src.Data), targetVibe)

	var identity BrandIdentity
	modelUsed, err := gemini.GenerateJSON(ctx, gemini.StructuredRequest{
		APIKeys:           cfg.GeminiAPIKeys,
		Models:            cfg.BrandModels,
		Contents:          []*genai.Content{content},
		SystemInstruction: SystemInstruction(),
		ResponseSchema:    ResponseSchema(),
		SchemaJSON:        SchemaJSON(),
		Temperature:       0.7,
	}, &identity)
	if err != nil {
		return nil, modelUsed, fmt.Errorf("brand analysis failed: %w", err)
	}

	identity.Normalize()

	log.Printf("✅ [Brand] Identity derived by %s - %d colors, %d directives",
		modelUsed, len(identity.Colors), len(identity.Directives))

	return &identity, modelUsed, nil
}
