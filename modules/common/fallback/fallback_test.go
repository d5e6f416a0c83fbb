package fallback

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderBytesDecodes(t *testing.T) {
	data := PlaceholderBytes()
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1, img.Bounds().Dx())
	assert.Equal(t, 1, img.Bounds().Dy())
}

func TestSafeString(t *testing.T) {
	assert.Equal(t, "value", SafeString("  value  ", "fallback"))
	assert.Equal(t, "fallback", SafeString("   ", "fallback"))
	assert.Equal(t, "fallback", SafeString("", "fallback"))
}

func TestSafeHex(t *testing.T) {
	assert.Equal(t, "#1A2B3C", SafeHex("#1a2b3c", "#000000"))
	assert.Equal(t, "#1A2B3C", SafeHex("1a2b3c", "#000000"))
	assert.Equal(t, "#FFAA00", SafeHex("#fa0", "#000000"))
	assert.Equal(t, "#000000", SafeHex("#12345", "#000000"))
	assert.Equal(t, "#000000", SafeHex("red", "#000000"))
	assert.Equal(t, "#000000", SafeHex("", "#000000"))
}

func TestSafeList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SafeList([]string{" a ", "", "b", "  "}, "default"))
	assert.Equal(t, []string{"default"}, SafeList(nil, "default"))
	assert.Empty(t, SafeList(nil, ""))
}

func TestSafeAspectRatio(t *testing.T) {
	assert.Equal(t, "16:9", SafeAspectRatio("16:9"))
	assert.Equal(t, "3:4", SafeAspectRatio(" 3:4 "))
	assert.Equal(t, "1:1", SafeAspectRatio("21:9"))
	assert.Equal(t, "1:1", SafeAspectRatio(""))
}
