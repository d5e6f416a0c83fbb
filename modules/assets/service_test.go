package assets

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NurisJAkbar/omni-vibe/modules/common/media"
)

func TestReferencePartsUsesPlaceholderWhenMissing(t *testing.T) {
	parts := referenceParts(nil)

	require.Len(t, parts, 1)
	require.NotNil(t, parts[0].InlineData)
	assert.Equal(t, "image/png", parts[0].InlineData.MIMEType)

	img, err := png.Decode(bytes.NewReader(parts[0].InlineData.Data))
	require.NoError(t, err)
	assert.Equal(t, 1, img.Bounds().Dx())
	assert.Equal(t, 1, img.Bounds().Dy())
}

func TestReferencePartsKeepsProvidedMedia(t *testing.T) {
	ref := &media.NormalizedMedia{MIMEType: "image/jpeg", Data: []byte{0xFF, 0xD8}}

	parts := referenceParts(ref)

	require.Len(t, parts, 1)
	require.NotNil(t, parts[0].InlineData)
	assert.Equal(t, "image/jpeg", parts[0].InlineData.MIMEType)
	assert.Equal(t, ref.Data, parts[0].InlineData.Data)
}

func TestResolveAspectRatio(t *testing.T) {
	assert.Equal(t, "1:1", resolveAspectRatio(AssetLogo))
	assert.Equal(t, "16:9", resolveAspectRatio(AssetBanner))
	assert.Equal(t, "4:3", resolveAspectRatio(AssetMockup))
	assert.Equal(t, "1:1", resolveAspectRatio(AssetType("poster")))
}
