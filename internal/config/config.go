package config

import "os"

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	CORSOrigins string
	// Auth
	JWTSecret   string
	AuthJWKSURL string // when set, bearer tokens are verified against a remote JWKS instead of JWTSecret
	SeedUser    bool   // create the default editor user on startup
	// Generation
	GeminiAPIKey string
	GeminiModel  string
	// Export
	ChromeBin string // optional explicit Chrome/Chromium binary for the rasterizer
	// History
	HistoryDir string
	// Logging
	LogDir string // when set, logs are mirrored to timestamped files in this directory
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:         getEnv("PORT", "3001"),
		Environment:  env,
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		CORSOrigins:  getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000"),
		JWTSecret:    getEnv("JWT_SECRET", "fallback_secret"),
		AuthJWKSURL:  getEnv("AUTH_JWKS_URL", ""),
		SeedUser:     getEnv("SEED_USER", "true") == "true",
		GeminiAPIKey: getEnv("GEMINI_API_KEY", os.Getenv("API_KEY")),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-3-pro-preview"),
		ChromeBin:    getEnv("CHROME_BIN", ""),
		HistoryDir:   getEnv("HISTORY_DIR", "data"),
		LogDir:       getEnv("LOG_DIR", ""),
		Debug:        getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
