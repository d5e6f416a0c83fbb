package gemini

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"
)

const maxRetriesPerKey = 3

// GenerateWithWaterfall - invoke Gemini across an ordered model waterfall.
// For each model every API key gets up to 3 attempts on 429/quota errors
// (2s pause between attempts). A non-rate-limit error moves straight on to
// the next model in the waterfall instead of aborting the whole call.
// Returns the response and the model name that produced it.
func GenerateWithWaterfall(
	ctx context.Context,
	apiKeys []string,
	models []string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, string, error) {

	if len(apiKeys) == 0 {
		return nil, "", fmt.Errorf("no API keys provided")
	}
	if len(models) == 0 {
		return nil, "", fmt.Errorf("no models provided")
	}

	var lastErr error

modelLoop:
	for modelIndex, model := range models {
		log.Printf("🧠 [Gemini] Trying model %s (#%d/%d)", model, modelIndex+1, len(models))

		for keyIndex, apiKey := range apiKeys {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				log.Printf("⚠️  [Gemini] Failed to create client with key #%d, trying next key: %v", keyIndex+1, err)
				lastErr = err
				continue
			}

			for attempt := 1; attempt <= maxRetriesPerKey; attempt++ {
				if attempt > 1 {
					log.Printf("   🔄 Retry attempt %d/%d for key #%d", attempt, maxRetriesPerKey, keyIndex+1)
				}

				result, err := client.Models.GenerateContent(ctx, model, contents, config)
				if err == nil {
					log.Printf("✅ [Gemini] Success with model %s, key #%d (attempt %d/%d)",
						model, keyIndex+1, attempt, maxRetriesPerKey)
					return result, model, nil
				}

				lastErr = err

				if !isRateLimitError(err) {
					// model-level failure, fall through the waterfall
					log.Printf("❌ [Gemini] Model %s failed with non-429 error: %v", model, err)
					continue modelLoop
				}

				log.Printf("⚠️  [Gemini] Key #%d hit rate limit (429) on attempt %d/%d",
					keyIndex+1, attempt, maxRetriesPerKey)

				if attempt < maxRetriesPerKey {
					log.Printf("   ⏳ Waiting 2 seconds before retry...")
					time.Sleep(2 * time.Second)
				}
			}

			log.Printf("⚠️  [Gemini] Key #%d exhausted all %d attempts on model %s, trying next key...",
				keyIndex+1, maxRetriesPerKey, model)
		}
	}

	return nil, "", fmt.Errorf("all %d models exhausted across %d API keys, last error: %w",
		len(models), len(apiKeys), lastErr)
}

// isRateLimitError - 429 / quota errors are retryable on the same model
func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "429") ||
		strings.Contains(strings.ToLower(errStr), "rate limit") ||
		strings.Contains(strings.ToLower(errStr), "quota") ||
		strings.Contains(strings.ToLower(errStr), "resource_exhausted")
}

// ExtractText - concatenated text parts of the first usable candidate
func ExtractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}

		var sb strings.Builder
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
		if sb.Len() > 0 {
			return sb.String(), nil
		}
	}

	return "", fmt.Errorf("no text data in response")
}

// ExtractInlineImage - first inline image part of the response
func ExtractInlineImage(resp *genai.GenerateContentResponse) ([]byte, string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, "", fmt.Errorf("no candidates in response")
	}

	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}

		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mimeType := part.InlineData.MIMEType
				if mimeType == "" {
					mimeType = "image/png"
				}
				log.Printf("✅ [Gemini] Received image: %d bytes (%s)", len(part.InlineData.Data), mimeType)
				return part.InlineData.Data, mimeType, nil
			}
		}
	}

	return nil, "", fmt.Errorf("no image data in response")
}
