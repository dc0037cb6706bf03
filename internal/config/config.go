package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	Port            string
	MongoURI        string
	DBName          string
	StripeSecretKey string
	AdminJWTSecret  string
	AllowedOrigins  []string
}

var defaultOrigins = []string{
	"http://localhost:5173",
	"https://garment-grid-two.vercel.app",
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		MongoURI:        getEnvOrDefault("MONGO_URI", ""),
		DBName:          getEnvOrDefault("DB_NAME", "garment_grid_db"),
		StripeSecretKey: getEnvOrDefault("STRIPE_SECRET_KEY", ""),
		AdminJWTSecret:  getEnvOrDefault("ADMIN_JWT_SECRET", ""),
		AllowedOrigins:  getEnvList("ALLOWED_ORIGINS", defaultOrigins),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	values := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
