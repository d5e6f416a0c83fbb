package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/NurisJAkbar/omni-vibe/modules/common/config"
	"github.com/NurisJAkbar/omni-vibe/modules/common/media"
)

type Client struct {
	httpClient *http.Client
}

// NewClient - Supabase Storage client
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// DownloadMedia - fetch uploaded source media from Supabase Storage
func (c *Client) DownloadMedia(ctx context.Context, filePath string) ([]byte, string, error) {
	cfg := config.GetConfig()

	// uploads land under uploads/ even when the path column omits the folder
	if filePath != "" && filePath[0] != '/' && strings.HasPrefix(filePath, "upload-") {
		filePath = "uploads/" + filePath
		log.Printf("🔧 Auto-fixed path to include uploads/ folder: %s", filePath)
	}

	fullURL := cfg.SupabaseStorageBaseURL + filePath
	log.Printf("📥 Downloading media from: %s", fullURL)

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("❌ HTTP GET failed: %v", err)
		return nil, "", fmt.Errorf("failed to download media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("❌ Download failed - Status: %d, URL: %s", resp.StatusCode, fullURL)
		return nil, "", fmt.Errorf("failed to download media: status %d, body: %s", resp.StatusCode, string(body))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read media data: %w", err)
	}

	mimeType := resp.Header.Get("Content-Type")
	log.Printf("✅ Media downloaded successfully: %d bytes (%s)", len(data), mimeType)
	return data, mimeType, nil
}

// UploadAsset - convert a generated PNG to WebP and upload it
func (c *Client) UploadAsset(ctx context.Context, pngData []byte, assetType string) (string, int64, error) {
	cfg := config.GetConfig()

	webpData, err := media.ConvertPNGToWebP(pngData, 90.0)
	if err != nil {
		return "", 0, fmt.Errorf("failed to convert PNG to WebP: %w", err)
	}

	timestamp := time.Now().UnixNano() / int64(time.Millisecond)
	randomID := rand.Intn(999999)
	fileName := fmt.Sprintf("%s_%d_%d.webp", assetType, timestamp, randomID)
	filePath := fmt.Sprintf("generated-assets/%s/%s", assetType, fileName)

	log.Printf("📤 Uploading WebP asset to storage: %s", filePath)

	uploadURL := fmt.Sprintf("%s/storage/v1/object/assets/%s", cfg.SupabaseURL, filePath)

	req, err := http.NewRequestWithContext(ctx, "POST", uploadURL, bytes.NewReader(webpData))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create upload request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+cfg.SupabaseServiceKey)
	req.Header.Set("Content-Type", "image/webp")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("failed to upload asset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return "", 0, fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, string(body))
	}

	webpSize := int64(len(webpData))
	log.Printf("✅ WebP asset uploaded successfully: %s (%d bytes)", filePath, webpSize)
	return filePath, webpSize, nil
}
