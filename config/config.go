package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Environment    string
	Port           string
	MongoURI       string
	DBName         string
	AllowedOrigins []string

	EmailProvider   string
	EmailFrom       string
	EmailFromName   string
	SESRegion       string
	SESAccessKeyID  string
	SESSecretKey    string
}

// Load reads configuration from environment variables, loading a .env file
// first outside production. MONGODB_URI is the one hard requirement: without
// it there is no document store to talk to, so Load fails.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production we rely on real environment variables; elsewhere a
	// missing .env is only worth a warning.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:    env,
		Port:           os.Getenv("PORT"),
		MongoURI:       os.Getenv("MONGODB_URI"),
		DBName:         os.Getenv("MONGODB_DATABASE"),
		EmailProvider:  os.Getenv("EMAIL_PROVIDER"),
		EmailFrom:      os.Getenv("EMAIL_FROM_ADDRESS"),
		EmailFromName:  os.Getenv("EMAIL_FROM_NAME"),
		SESRegion:      os.Getenv("AWS_SES_REGION"),
		SESAccessKeyID: os.Getenv("AWS_SES_ACCESS_KEY_ID"),
		SESSecretKey:   os.Getenv("AWS_SES_SECRET_ACCESS_KEY"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI environment variable is not set")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBName == "" {
		cfg.DBName = "eventline"
	}
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	return cfg, nil
}
