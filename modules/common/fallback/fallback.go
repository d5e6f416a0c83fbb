package fallback

import (
	"encoding/base64"
	"log"
	"regexp"
	"strings"
)

const transparentPixelBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAAC0lEQVR42mNgAAIAAAUAAen63NgAAAAASUVORK5CYII="

var transparentPixelBytes []byte

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func init() {
	data, err := base64.StdEncoding.DecodeString(transparentPixelBase64)
	if err != nil {
		log.Printf("⚠️ Failed to decode placeholder pixel: %v", err)
		return
	}
	transparentPixelBytes = data
}

// PlaceholderBytes returns a copy of a 1x1 transparent PNG, used as stand-in
// reference media for asset slots that have none.
func PlaceholderBytes() []byte {
	if len(transparentPixelBytes) == 0 {
		return []byte{}
	}
	out := make([]byte, len(transparentPixelBytes))
	copy(out, transparentPixelBytes)
	return out
}

// SafeString returns a trimmed string or the provided fallback.
func SafeString(value string, fallbackValue string) string {
	value = strings.TrimSpace(value)
	if value != "" {
		return value
	}
	return fallbackValue
}

// SafeHex validates a #RRGGBB color, normalizing shorthand the model likes to emit.
func SafeHex(value string, fallbackValue string) string {
	value = strings.TrimSpace(value)
	if value != "" && value[0] != '#' {
		value = "#" + value
	}
	// expand #RGB shorthand
	if len(value) == 4 && value[0] == '#' {
		value = "#" + strings.Repeat(string(value[1]), 2) +
			strings.Repeat(string(value[2]), 2) +
			strings.Repeat(string(value[3]), 2)
	}
	if hexColorPattern.MatchString(value) {
		return strings.ToUpper(value)
	}
	return fallbackValue
}

// SafeList drops blank entries and guarantees at least the fallback entry.
func SafeList(values []string, fallbackValue string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 && fallbackValue != "" {
		out = append(out, fallbackValue)
	}
	return out
}

// SafeAspectRatio provides a sane default aspect ratio.
func SafeAspectRatio(value string) string {
	valid := map[string]bool{
		"1:1":  true,
		"16:9": true,
		"9:16": true,
		"4:3":  true,
		"3:4":  true,
	}
	value = strings.TrimSpace(value)
	if valid[value] {
		return value
	}
	return "1:1"
}
