package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NurisJAkbar/omni-vibe/modules/brand"
)

func TestIsValidAssetType(t *testing.T) {
	assert.True(t, IsValidAssetType("logo"))
	assert.True(t, IsValidAssetType("banner"))
	assert.True(t, IsValidAssetType("mockup"))
	assert.False(t, IsValidAssetType("poster"))
	assert.False(t, IsValidAssetType(""))
}

func TestGenerateRequestValidate(t *testing.T) {
	valid := GenerateRequest{
		Identity: brand.BrandIdentity{
			Vibe:   "Industrial luxury",
			Colors: []brand.BrandColor{{Hex: "#2B2B2B", Name: "Iron", Usage: "primary"}},
		},
		AssetType: "logo",
	}
	assert.NoError(t, valid.Validate())

	badType := valid
	badType.AssetType = "hologram"
	assert.Error(t, badType.Validate())

	noVibe := valid
	noVibe.Identity.Vibe = "  "
	assert.Error(t, noVibe.Validate())

	noColors := valid
	noColors.Identity.Colors = nil
	assert.Error(t, noColors.Validate())
}

func TestDefaultAssetTypes(t *testing.T) {
	assert.Equal(t, []AssetType{AssetLogo, AssetBanner, AssetMockup}, DefaultAssetTypes)
	for _, assetType := range DefaultAssetTypes {
		assert.True(t, IsValidAssetType(string(assetType)))
	}
}
