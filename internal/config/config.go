package config

import (
	"os"
	"strconv"

	"legal-ai-analyzer/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort     string
	MaxFileSize    int64
	LogLevel       string
	GeminiAPIKey   string
	GeminiModel    string
	GoogleProject  string
	GoogleLocation string
}

// NewConfig creates a new configuration instance with default values.
// GEMINI_API_KEY carries the required provider credential; its absence is
// checked (and fatal) at container construction, not here.
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:     getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		MaxFileSize:    getEnvInt64OrDefault("MAX_FILE_SIZE", 20*1024*1024), // 20MB default
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		GeminiAPIKey:   getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:    getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash-001"),
		GoogleProject:  getEnvOrDefault("GOOGLE_CLOUD_PROJECT", ""),
		GoogleLocation: getEnvOrDefault("GOOGLE_CLOUD_LOCATION", "us-central1"),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetGeminiAPIKey returns the Gemini API key
func (c *AppConfig) GetGeminiAPIKey() string {
	return c.GeminiAPIKey
}

// GetGeminiModel returns the generative model name
func (c *AppConfig) GetGeminiModel() string {
	return c.GeminiModel
}

// GetGoogleProject returns the Google Cloud project ID
func (c *AppConfig) GetGoogleProject() string {
	return c.GoogleProject
}

// GetGoogleLocation returns the Google Cloud region
func (c *AppConfig) GetGoogleLocation() string {
	return c.GoogleLocation
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
