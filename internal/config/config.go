package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"assessment-service/internal/i18n"
)

type Config struct {
	Port             string
	MongoURI         string
	MongoDatabase    string
	RabbitMQURI      string
	RabbitMQExchange string
	DefaultLanguage  string
	AllowedOrigins   []string
}

// Load reads configuration from the environment, with a .env file as a
// development convenience. MONGO_URI is the only required value.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}

	cfg := &Config{
		Port:             getEnv("PORT", "6700"),
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDatabase:    getEnv("MONGO_DB", "assessment_service"),
		RabbitMQURI:      os.Getenv("RABBITMQ_URI"),
		RabbitMQExchange: os.Getenv("RABBITMQ_EXCHANGE"),
		DefaultLanguage:  getEnv("DEFAULT_LANGUAGE", i18n.DefaultLanguage),
		AllowedOrigins:   splitEnv("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	if !i18n.IsSupported(cfg.DefaultLanguage) {
		log.Fatalf("DEFAULT_LANGUAGE %q is not a supported language", cfg.DefaultLanguage)
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitEnv(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
