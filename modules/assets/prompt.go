package assets

import (
	"fmt"
	"strings"

	"github.com/NurisJAkbar/omni-vibe/modules/brand"
)

// assetPromptConfig - per-asset-type prompt sections
type assetPromptConfig struct {
	SystemPrefix   string
	QualityRules   string
	ForbiddenRules string
	AspectRatio    string
}

var assetPromptConfigs = map[AssetType]*assetPromptConfig{
	AssetLogo: {
		SystemPrefix: `[BRAND IDENTITY DESIGNER'S LOGO BRIEF]
You are a world-class identity designer creating a primary logo mark.
Focus on a single, distinctive, scalable symbol with perfect balance.

KEY ELEMENTS:
- One clean vector-style mark centered on a plain background
- Strictly limited to the brand palette
- Works at favicon size and on a billboard
- Typography only if the brand voice demands a wordmark`,

		QualityRules: `
QUALITY REQUIREMENTS:
- Crisp edges, flat color fills, no photographic texture
- Strong silhouette readable in monochrome
- Generous clear space around the mark`,

		ForbiddenRules: `
AVOID:
- Gradients, drop shadows or 3D bevels
- More than one competing symbol
- Busy backgrounds or scene context
- Tiny unreadable lettering`,

		AspectRatio: "1:1",
	},

	AssetBanner: {
		SystemPrefix: `[SOCIAL MEDIA ART DIRECTOR'S BANNER BRIEF]
You are a world-class social media art director creating a hero banner.
Focus on immediate visual impact in a wide horizontal frame.

KEY ELEMENTS:
- Bold composition built from the brand palette
- Clear focal point positioned off-center (rule of thirds)
- Space reserved for headline copy on one side
- Atmosphere and texture that express the brand vibe`,

		QualityRules: `
QUALITY REQUIREMENTS:
- Full-bleed composition that uses the entire wide frame
- Rich, cohesive color grading from the palette
- Professional advertising-grade finish`,

		ForbiddenRules: `
AVOID:
- Centered, static compositions
- Colors outside the brand palette
- Cluttered layouts with no copy space
- Watermarks or UI chrome`,

		AspectRatio: "16:9",
	},

	AssetMockup: {
		SystemPrefix: `[PRODUCT PHOTOGRAPHER'S MOCKUP BRIEF]
You are a world-class product photographer staging a branded mockup.
Focus on a believable physical product carrying the brand identity.

KEY ELEMENTS:
- One hero product (packaging, bottle, box or bag) in a styled scene
- Brand palette applied to the product surfaces and set dressing
- Soft studio lighting with realistic shadows and reflections
- Materials and styling that match the brand vibe`,

		QualityRules: `
QUALITY REQUIREMENTS:
- Photorealistic rendering with accurate materials
- Sharp focus on the product, gentle depth of field behind it
- Color-accurate reproduction of the palette`,

		ForbiddenRules: `
AVOID:
- Flat illustration or cartoon rendering
- Floating products with no ground contact
- Legible placeholder text or lorem ipsum
- Crowded scenes with multiple competing products`,

		AspectRatio: "4:3",
	},
}

// BuildAssetPrompt - fold the derived identity into the per-type image prompt
func BuildAssetPrompt(assetType AssetType, identity *brand.BrandIdentity) string {
	cfg := assetPromptConfigs[assetType]
	if cfg == nil {
		cfg = assetPromptConfigs[AssetLogo]
	}

	var sb strings.Builder
	sb.WriteString(cfg.SystemPrefix)

	sb.WriteString("\n\n[BRAND IDENTITY]\n")
	sb.WriteString(fmt.Sprintf("Vibe: %s\n", identity.Vibe))
	sb.WriteString(fmt.Sprintf("Voice: %s\n", identity.Voice))
	sb.WriteString(fmt.Sprintf("Typography: %s\n", identity.Typography))
	sb.WriteString(fmt.Sprintf("Palette: %s\n", identity.PaletteLine()))

	if len(identity.Directives) > 0 {
		sb.WriteString("\n[CREATIVE DIRECTIVES]\n")
		for i, directive := range identity.Directives {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, directive))
		}
	}

	sb.WriteString(cfg.QualityRules)
	sb.WriteString(cfg.ForbiddenRules)

	return sb.String()
}

// AspectRatioFor - frame shape per asset type
func AspectRatioFor(assetType AssetType) string {
	if cfg := assetPromptConfigs[assetType]; cfg != nil {
		return cfg.AspectRatio
	}
	return "1:1"
}
