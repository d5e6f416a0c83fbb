package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestParseDataURLRoundTrip(t *testing.T) {
	data := []byte("hello media")
	dataURL := ToDataURL("image/png", data)

	mimeType, decoded, err := ParseDataURL(dataURL)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.Equal(t, data, decoded)
}

func TestParseDataURLErrors(t *testing.T) {
	cases := []string{
		"http://example.com/image.png",
		"data:image/png;base64",
		"data:image/png,plainpayload",
		"data:image/png;base64,!!!not-base64!!!",
	}
	for _, input := range cases {
		_, _, err := ParseDataURL(input)
		assert.Error(t, err, "expected error for %q", input)
	}
}

func TestNormalizeImageReencodesAsPNG(t *testing.T) {
	src := testPNG(t, 16, 16)

	out, err := Normalize(src, "image/png", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "image/png", out.MIMEType)

	img, err := png.Decode(bytes.NewReader(out.Data))
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
}

func TestNormalizeSniffsMissingMIME(t *testing.T) {
	src := testPNG(t, 8, 8)

	out, err := Normalize(src, "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "image/png", out.MIMEType)
}

func TestNormalizeDownscalesLargeImages(t *testing.T) {
	src := testPNG(t, 64, 16)

	out, err := Normalize(src, "image/png", 0, 32)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out.Data))
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
}

func TestNormalizeKeepsSmallImages(t *testing.T) {
	src := testPNG(t, 10, 10)

	out, err := Normalize(src, "image/png", 0, 1536)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out.Data))
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())
}

func TestNormalizeVideoPassthrough(t *testing.T) {
	data := []byte("not really a video but the bytes must survive")

	out, err := Normalize(data, "video/mp4", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "video/mp4", out.MIMEType)
	assert.Equal(t, data, out.Data)
}

func TestNormalizeRejectsOversizedMedia(t *testing.T) {
	src := testPNG(t, 16, 16)

	_, err := Normalize(src, "image/png", 10, 0)
	assert.ErrorContains(t, err, "too large")
}

func TestNormalizeRejectsUnsupportedType(t *testing.T) {
	_, err := Normalize([]byte("%PDF-1.4 ..."), "application/pdf", 0, 0)
	assert.ErrorContains(t, err, "unsupported media type")
}

func TestNormalizeRejectsEmptyPayload(t *testing.T) {
	_, err := Normalize(nil, "image/png", 0, 0)
	assert.Error(t, err)
}

func TestNormalizeDataURL(t *testing.T) {
	dataURL := ToDataURL("image/png", testPNG(t, 4, 4))

	out, err := NormalizeDataURL(dataURL, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "image/png", out.MIMEType)
}

func TestIsVideoMIME(t *testing.T) {
	assert.True(t, IsVideoMIME("video/mp4"))
	assert.True(t, IsVideoMIME("video/webm"))
	assert.True(t, IsVideoMIME("video/quicktime"))
	assert.False(t, IsVideoMIME("video/x-msvideo"))
	assert.False(t, IsVideoMIME("image/png"))
}
