package media

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	"image/png"
	"log"
	"net/http"
	"strings"

	"github.com/disintegration/imaging"
	_ "github.com/kolesa-team/go-webp/decoder" // WebP decoder registration
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

// NormalizedMedia - media in the consistent form sent to the model
type NormalizedMedia struct {
	MIMEType string
	Data     []byte
}

// videoMIMETypes - video uploads are passed through untouched,
// only images get re-encoded
var videoMIMETypes = map[string]bool{
	"video/mp4":       true,
	"video/webm":      true,
	"video/quicktime": true,
}

var imageMIMETypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
	"image/gif":  true,
}

// ParseDataURL - split a data:<mime>;base64,<payload> string
func ParseDataURL(dataURL string) (string, []byte, error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return "", nil, fmt.Errorf("not a data URL")
	}

	rest := dataURL[len("data:"):]
	commaIdx := strings.Index(rest, ",")
	if commaIdx < 0 {
		return "", nil, fmt.Errorf("malformed data URL: missing payload separator")
	}

	meta := rest[:commaIdx]
	payload := rest[commaIdx+1:]

	if !strings.HasSuffix(meta, ";base64") {
		return "", nil, fmt.Errorf("unsupported data URL encoding (base64 only)")
	}
	mimeType := strings.TrimSuffix(meta, ";base64")

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode data URL payload: %w", err)
	}

	return mimeType, data, nil
}

// ToDataURL - encode bytes back into a data URL
func ToDataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// IsVideoMIME - reports whether the MIME type is a supported video format
func IsVideoMIME(mimeType string) bool {
	return videoMIMETypes[mimeType]
}

// Normalize - convert an arbitrary upload into the form expected by the model.
// Images are decoded, bounded to maxEdge on the long side and re-encoded as PNG.
// Videos pass through as-is. Everything else is rejected.
func Normalize(data []byte, declaredMIME string, maxBytes int64, maxEdge int) (*NormalizedMedia, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty media payload")
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("media too large: %d bytes (max %d)", len(data), maxBytes)
	}

	mimeType := strings.ToLower(strings.TrimSpace(declaredMIME))
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
		log.Printf("🔍 Sniffed media type: %s", mimeType)
	}

	if IsVideoMIME(mimeType) {
		log.Printf("🎞️  Video upload passed through: %s (%d bytes)", mimeType, len(data))
		return &NormalizedMedia{MIMEType: mimeType, Data: data}, nil
	}

	if !imageMIMETypes[mimeType] {
		return nil, fmt.Errorf("unsupported media type: %s", mimeType)
	}

	pngData, err := normalizeImage(data, maxEdge)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Image normalized: %s %d bytes → image/png %d bytes", mimeType, len(data), len(pngData))
	return &NormalizedMedia{MIMEType: "image/png", Data: pngData}, nil
}

// NormalizeDataURL - Normalize for a data URL input
func NormalizeDataURL(dataURL string, maxBytes int64, maxEdge int) (*NormalizedMedia, error) {
	mimeType, data, err := ParseDataURL(dataURL)
	if err != nil {
		return nil, err
	}
	return Normalize(data, mimeType, maxBytes, maxEdge)
}

// normalizeImage - decode, bound to maxEdge, re-encode as PNG
func normalizeImage(data []byte, maxEdge int) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if maxEdge > 0 && (bounds.Dx() > maxEdge || bounds.Dy() > maxEdge) {
		img = imaging.Fit(img, maxEdge, maxEdge, imaging.Lanczos)
		log.Printf("📐 Downscaled %s image %dx%d → %dx%d",
			format, bounds.Dx(), bounds.Dy(), img.Bounds().Dx(), img.Bounds().Dy())
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// ConvertPNGToWebP - PNG bytes to WebP for storage upload
func ConvertPNGToWebP(pngData []byte, quality float32) ([]byte, error) {
	log.Printf("🔄 Converting PNG to WebP (quality: %.1f)", quality)

	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode PNG: %w", err)
	}

	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, quality)
	if err != nil {
		return nil, fmt.Errorf("failed to create WebP encoder options: %w", err)
	}

	var webpBuffer bytes.Buffer
	if err := webp.Encode(&webpBuffer, img, options); err != nil {
		return nil, fmt.Errorf("failed to encode WebP: %w", err)
	}

	webpData := webpBuffer.Bytes()
	log.Printf("✅ PNG converted to WebP: %d bytes → %d bytes (%.1f%% reduction)",
		len(pngData), len(webpData),
		float64(len(pngData)-len(webpData))/float64(len(pngData))*100)

	return webpData, nil
}
