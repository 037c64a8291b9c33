package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	REDIS_ADDR     string
	REDIS_PASSWORD string

	UPLOAD_DIR  string
	CORS_ORIGIN string

	// Category applied when a competition name matches no known key.
	// See internal/domain/competition.CategoryOrDefault.
	CATEGORY_FALLBACK string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	REDIS_ADDR = getEnv("REDIS_ADDR", "localhost:6379")
	REDIS_PASSWORD = getEnv("REDIS_PASSWORD", "")

	UPLOAD_DIR = getEnv("UPLOAD_DIR", "./uploads")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:3000")

	CATEGORY_FALLBACK = getEnv("CATEGORY_FALLBACK", "UI_UX")

	GOOGLE_CLIENT_ID = mustEnv("GOOGLE_CLIENT_ID")
	GOOGLE_CLIENT_SECRET = mustEnv("GOOGLE_CLIENT_SECRET")
	GOOGLE_REDIRECT_URL = mustEnv("GOOGLE_REDIRECT_URL")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
