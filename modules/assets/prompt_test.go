package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NurisJAkbar/omni-vibe/modules/brand"
)

func testIdentity() *brand.BrandIdentity {
	return &brand.BrandIdentity{
		Vibe:       "Industrial luxury",
		Voice:      "Assured and precise",
		Typography: "Condensed grotesque headlines",
		Colors: []brand.BrandColor{
			{Hex: "#2B2B2B", Name: "Iron", Usage: "primary"},
			{Hex: "#C9A96A", Name: "Brass", Usage: "accent"},
		},
		Directives: []string{
			"Favor raw textures",
			"Keep lighting directional",
		},
	}
}

func TestBuildAssetPromptIncludesIdentity(t *testing.T) {
	identity := testIdentity()

	for _, assetType := range DefaultAssetTypes {
		prompt := BuildAssetPrompt(assetType, identity)

		assert.Contains(t, prompt, "#2B2B2B", "palette hex missing for %s", assetType)
		assert.Contains(t, prompt, "Industrial luxury", "vibe missing for %s", assetType)
		assert.Contains(t, prompt, "1. Favor raw textures", "directives missing for %s", assetType)
		assert.Contains(t, prompt, "AVOID:", "forbidden rules missing for %s", assetType)
	}
}

func TestBuildAssetPromptTypeSpecific(t *testing.T) {
	identity := testIdentity()

	logo := BuildAssetPrompt(AssetLogo, identity)
	banner := BuildAssetPrompt(AssetBanner, identity)
	mockup := BuildAssetPrompt(AssetMockup, identity)

	assert.Contains(t, logo, "LOGO BRIEF")
	assert.Contains(t, banner, "BANNER BRIEF")
	assert.Contains(t, mockup, "MOCKUP BRIEF")
	assert.NotEqual(t, logo, banner)
	assert.NotEqual(t, banner, mockup)
}

func TestBuildAssetPromptUnknownTypeFallsBackToLogo(t *testing.T) {
	identity := testIdentity()

	prompt := BuildAssetPrompt(AssetType("poster"), identity)
	assert.Contains(t, prompt, "LOGO BRIEF")
}

func TestAspectRatioFor(t *testing.T) {
	assert.Equal(t, "1:1", AspectRatioFor(AssetLogo))
	assert.Equal(t, "16:9", AspectRatioFor(AssetBanner))
	assert.Equal(t, "4:3", AspectRatioFor(AssetMockup))
	assert.Equal(t, "1:1", AspectRatioFor(AssetType("poster")))
}
