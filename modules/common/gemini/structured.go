package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"google.golang.org/genai"
)

// StructuredRequest - one structured-output call against the model waterfall
type StructuredRequest struct {
	APIKeys           []string
	Models            []string
	Contents          []*genai.Content
	SystemInstruction string
	ResponseSchema    *genai.Schema // sent to the model
	SchemaJSON        []byte        // enforced locally before unmarshalling
	Temperature       float32
}

// GenerateJSON - ask the model for JSON, strip markdown fences, validate the
// payload against the JSON Schema and unmarshal into out. Returns the model
// that produced the accepted payload.
func GenerateJSON(ctx context.Context, req StructuredRequest, out any) (string, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   req.ResponseSchema,
		Temperature:      floatPtr(req.Temperature),
	}
	if req.SystemInstruction != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(req.SystemInstruction)},
		}
	}

	resp, modelUsed, err := GenerateWithWaterfall(ctx, req.APIKeys, req.Models, req.Contents, config)
	if err != nil {
		return "", err
	}

	text, err := ExtractText(resp)
	if err != nil {
		return modelUsed, err
	}

	raw := []byte(StripJSONFences(text))

	if err := ValidateJSON(req.SchemaJSON, raw); err != nil {
		return modelUsed, fmt.Errorf("model %s returned non-conforming JSON: %w", modelUsed, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return modelUsed, fmt.Errorf("failed to unmarshal structured output: %w", err)
	}

	log.Printf("✅ [Gemini] Structured output accepted from %s (%d bytes)", modelUsed, len(raw))
	return modelUsed, nil
}

// StripJSONFences - models wrap JSON in ```json fences even when asked not to
func StripJSONFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	}
	return strings.TrimSpace(trimmed)
}

// ValidateJSON - enforce a JSON Schema on a raw payload
func ValidateJSON(schemaJSON []byte, raw []byte) error {
	if len(schemaJSON) == 0 {
		return nil
	}
	if len(raw) == 0 {
		return fmt.Errorf("empty json")
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", bytes.NewReader(schemaJSON)); err != nil {
		return fmt.Errorf("schema resource: %w", err)
	}
	s, err := c.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	return s.Validate(doc)
}

// floatPtr - float32 pointer for genai config fields
func floatPtr(f float32) *float32 {
	return &f
}
