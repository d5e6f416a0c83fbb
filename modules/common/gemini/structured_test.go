package gemini

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripJSONFences(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"{\"a\":1}", `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  \n```json\n{\"a\":1}\n```\n  ", `{"a":1}`},
		{"```json\n{\"a\": \"```\"}\n", `{"a": "` + "```" + `"}`},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, StripJSONFences(tc.input))
	}
}

func TestValidateJSON(t *testing.T) {
	schema := []byte(`{
		"type": "object",
		"properties": {
			"name": { "type": "string" }
		},
		"required": ["name"]
	}`)

	assert.NoError(t, ValidateJSON(schema, []byte(`{"name": "x"}`)))
	assert.Error(t, ValidateJSON(schema, []byte(`{"name": 7}`)))
	assert.Error(t, ValidateJSON(schema, []byte(`{}`)))
	assert.Error(t, ValidateJSON(schema, []byte(`not json`)))
	assert.Error(t, ValidateJSON(schema, nil))

	// no schema means no local enforcement
	assert.NoError(t, ValidateJSON(nil, []byte(`{"anything": true}`)))
}

func TestIsRateLimitError(t *testing.T) {
	assert.False(t, isRateLimitError(nil))
	assert.True(t, isRateLimitError(errors.New("googleapi: Error 429: too many requests")))
	assert.True(t, isRateLimitError(errors.New("RESOURCE_EXHAUSTED: quota exceeded for model")))
	assert.True(t, isRateLimitError(errors.New("rate limit hit, slow down")))
	assert.False(t, isRateLimitError(errors.New("invalid argument: bad schema")))
	assert.False(t, isRateLimitError(errors.New("permission denied")))
}
