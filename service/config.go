package service

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Port        string
	BaseURL     string
	DBPath      string

	Session struct {
		Secret string
	}

	Email struct {
		From       string
		Provider   string
		APIKey     string
		AdminEmail string
	}

	RateLimit struct {
		RPS   float64
		Burst int
	}

	OGImage struct {
		Dir string
	}
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8000"),
		DBPath:      getEnv("DB_PATH", "./db/faraday.db"),
	}

	// Session
	config.Session.Secret = getEnv("SESSION_SECRET", "development-secret")

	// Email
	config.Email.From = getEnv("EMAIL_FROM", "noreply@faraday.ai")
	config.Email.Provider = getEnv("EMAIL_PROVIDER", "console")
	config.Email.APIKey = getEnv("SENDGRID_API_KEY", "")
	config.Email.AdminEmail = getEnv("ADMIN_EMAIL", "hello@faraday.ai")

	// Rate limiting for auth and form endpoints
	if rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "5"), 64); err == nil {
		config.RateLimit.RPS = rps
	} else {
		config.RateLimit.RPS = 5
	}
	config.RateLimit.Burst = getEnvInt("RATE_LIMIT_BURST", 10)

	// OG images
	config.OGImage.Dir = getEnv("OG_IMAGE_DIR", "./public/og-images")

	return config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development" || c.Environment == "test"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
