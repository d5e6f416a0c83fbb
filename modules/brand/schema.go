package brand

import "google.golang.org/genai"

// identitySchemaJSON - the contract enforced on model output before the
// payload is accepted. Kept in sync with ResponseSchema below.
const identitySchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "vibe": { "type": "string", "minLength": 1 },
    "voice": { "type": "string", "minLength": 1 },
    "typography": { "type": "string", "minLength": 1 },
    "colors": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "properties": {
          "hex": { "type": "string", "pattern": "^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$" },
          "name": { "type": "string" },
          "usage": { "type": "string" }
        },
        "required": ["hex", "name", "usage"]
      }
    },
    "directives": {
      "type": "array",
      "minItems": 1,
      "items": { "type": "string" }
    }
  },
  "required": ["vibe", "voice", "typography", "colors", "directives"]
}`

// SchemaJSON - raw JSON Schema for local validation
func SchemaJSON() []byte {
	return []byte(identitySchemaJSON)
}

// ResponseSchema - the same contract in the shape the Gemini API wants
func ResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"vibe": {
				Type:        genai.TypeString,
				Description: "One or two sentences capturing the overall mood and aesthetic of the brand",
			},
			"voice": {
				Type:        genai.TypeString,
				Description: "How the brand speaks: tone, register, personality",
			},
			"typography": {
				Type:        genai.TypeString,
				Description: "Typeface recommendations for headlines and body copy",
			},
			"colors": {
				Type:        genai.TypeArray,
				Description: "Ordered palette, most important color first",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"hex":   {Type: genai.TypeString, Description: "#RRGGBB hex value"},
						"name":  {Type: genai.TypeString, Description: "Evocative color name"},
						"usage": {Type: genai.TypeString, Description: "Where this color is used (primary, background, accent...)"},
					},
					Required: []string{"hex", "name", "usage"},
				},
			},
			"directives": {
				Type:        genai.TypeArray,
				Description: "Ordered creative directives for producing on-brand visuals",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"vibe", "voice", "typography", "colors", "directives"},
	}
}
