package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config - every environment variable the server needs
type Config struct {
	// Gemini API
	GeminiAPIKeys      []string // waterfall order
	BrandModels        []string // analysis model waterfall order
	ImageModel         string
	ImageFallbackModel string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisUsername string
	RedisPassword string
	RedisUseTLS   bool

	// Supabase
	SupabaseURL            string
	SupabaseServiceKey     string
	SupabaseStorageBaseURL string

	// Server
	Port string

	// Media normalization limits
	MaxMediaBytes int64
	MaxImageEdge  int
}

var globalConfig *Config

// LoadConfig - load environment variables
func LoadConfig() (*Config, error) {
	// .env file is optional
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using environment variables")
	}

	useTLS := true
	if tlsStr := os.Getenv("REDIS_USE_TLS"); tlsStr != "" {
		if parsed, err := strconv.ParseBool(tlsStr); err == nil {
			useTLS = parsed
		}
	}

	maxMediaBytes := int64(20 * 1024 * 1024) // 20MB upload cap
	if sizeStr := os.Getenv("MAX_MEDIA_BYTES"); sizeStr != "" {
		if parsed, err := strconv.ParseInt(sizeStr, 10, 64); err == nil && parsed > 0 {
			maxMediaBytes = parsed
		}
	}

	maxImageEdge := 1536
	if edgeStr := os.Getenv("MAX_IMAGE_EDGE"); edgeStr != "" {
		if parsed, err := strconv.Atoi(edgeStr); err == nil && parsed > 0 {
			maxImageEdge = parsed
		}
	}

	globalConfig = &Config{
		// Gemini API
		GeminiAPIKeys:      splitList(getEnv("GEMINI_API_KEYS", os.Getenv("GEMINI_API_KEY"))),
		BrandModels:        splitList(getEnv("BRAND_MODELS", "gemini-2.5-flash,gemini-2.5-pro,gemini-2.0-flash")),
		ImageModel:         getEnv("IMAGE_MODEL", "gemini-2.5-flash-image"),
		ImageFallbackModel: getEnv("IMAGE_FALLBACK_MODEL", "gemini-2.0-flash-preview-image-generation"),

		// Redis
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisUsername: getEnv("REDIS_USERNAME", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisUseTLS:   useTLS,

		// Supabase
		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey:     getEnv("SUPABASE_SERVICE_KEY", ""),
		SupabaseStorageBaseURL: getEnv("SUPABASE_STORAGE_BASE_URL", ""),

		// Server
		Port: getEnv("PORT", "8080"),

		// Media
		MaxMediaBytes: maxMediaBytes,
		MaxImageEdge:  maxImageEdge,
	}

	if err := globalConfig.validate(); err != nil {
		return nil, err
	}

	log.Println("✅ Configuration loaded successfully")
	log.Printf("   Gemini keys: %d, brand models: %v", len(globalConfig.GeminiAPIKeys), globalConfig.BrandModels)
	log.Printf("   Image model: %s (fallback: %s)", globalConfig.ImageModel, globalConfig.ImageFallbackModel)
	log.Printf("   Redis: %s:%s (TLS: %v)", globalConfig.RedisHost, globalConfig.RedisPort, globalConfig.RedisUseTLS)
	log.Printf("   Supabase: %s", globalConfig.SupabaseURL)

	return globalConfig, nil
}

// GetConfig - fetch the loaded configuration
func GetConfig() *Config {
	if globalConfig == nil {
		log.Fatal("❌ Config not loaded. Call LoadConfig() first.")
	}
	return globalConfig
}

// validate - required environment variables
func (c *Config) validate() error {
	if len(c.GeminiAPIKeys) == 0 {
		return fmt.Errorf("GEMINI_API_KEYS is required")
	}
	if len(c.BrandModels) == 0 {
		return fmt.Errorf("BRAND_MODELS must not be empty")
	}
	if c.ImageModel == "" {
		return fmt.Errorf("IMAGE_MODEL is required")
	}
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabaseServiceKey == "" {
		return fmt.Errorf("SUPABASE_SERVICE_KEY is required")
	}
	return nil
}

// getEnv - environment variable with default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitList - comma-separated env value into a trimmed list
func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// GetRedisAddr - Redis connection string
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
