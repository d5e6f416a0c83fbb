package brand

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NurisJAkbar/omni-vibe/modules/common/gemini"
)

func validIdentityJSON(t *testing.T) []byte {
	t.Helper()

	identity := BrandIdentity{
		Vibe:       "Industrial luxury with warm metallic undertones",
		Voice:      "Assured, understated, precise",
		Typography: "Condensed grotesque for headlines, light serif for body",
		Colors: []BrandColor{
			{Hex: "#2B2B2B", Name: "Forged Iron", Usage: "primary"},
			{Hex: "#C9A96A", Name: "Brushed Brass", Usage: "accent"},
		},
		Directives: []string{
			"Favor raw textures against polished surfaces",
			"Keep lighting low and directional",
		},
	}

	raw, err := json.Marshal(identity)
	require.NoError(t, err)
	return raw
}

func TestSchemaAcceptsValidIdentity(t *testing.T) {
	err := gemini.ValidateJSON(SchemaJSON(), validIdentityJSON(t))
	assert.NoError(t, err)
}

func TestSchemaRejectsMissingColors(t *testing.T) {
	raw := []byte(`{
		"vibe": "v",
		"voice": "v",
		"typography": "t",
		"colors": [],
		"directives": ["d"]
	}`)

	err := gemini.ValidateJSON(SchemaJSON(), raw)
	assert.Error(t, err)
}

func TestSchemaRejectsMalformedHex(t *testing.T) {
	raw := []byte(`{
		"vibe": "v",
		"voice": "v",
		"typography": "t",
		"colors": [{"hex": "not-a-color", "name": "n", "usage": "u"}],
		"directives": ["d"]
	}`)

	err := gemini.ValidateJSON(SchemaJSON(), raw)
	assert.Error(t, err)
}

func TestSchemaRejectsMissingField(t *testing.T) {
	raw := []byte(`{
		"vibe": "v",
		"voice": "v",
		"colors": [{"hex": "#FFFFFF", "name": "n", "usage": "u"}],
		"directives": ["d"]
	}`)

	err := gemini.ValidateJSON(SchemaJSON(), raw)
	assert.Error(t, err)
}

func TestSchemaAllowsShorthandHex(t *testing.T) {
	// the model occasionally emits #RGB; Normalize expands it afterwards
	raw := []byte(`{
		"vibe": "v",
		"voice": "v",
		"typography": "t",
		"colors": [{"hex": "#FA0", "name": "n", "usage": "u"}],
		"directives": ["d"]
	}`)

	err := gemini.ValidateJSON(SchemaJSON(), raw)
	assert.NoError(t, err)
}

func TestResponseSchemaMatchesContract(t *testing.T) {
	schema := ResponseSchema()

	require.NotNil(t, schema)
	for _, field := range []string{"vibe", "voice", "typography", "colors", "directives"} {
		assert.Contains(t, schema.Properties, field)
		assert.Contains(t, schema.Required, field)
	}
	assert.NotNil(t, schema.Properties["colors"].Items)
	assert.ElementsMatch(t, []string{"hex", "name", "usage"}, schema.Properties["colors"].Items.Required)
}
