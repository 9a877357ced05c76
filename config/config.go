package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	Env      string
	DBDriver string // sqlite|postgres
	DBPath   string
	DBDSN    string
	LogMode  string // dev|prod
}

// IsProd reports whether the app runs with production settings.
func (c AppConfig) IsProd() bool {
	switch strings.ToLower(c.Env) {
	case "prod", "production":
		return true
	}
	return false
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}
	cfg := FromEnv()
	log.Printf("[cfg] %+v", cfg.Redacted())
	return cfg
}

// FromEnv builds the config from the current environment only.
func FromEnv() AppConfig {
	get := func(k, def string) string {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:     get("PORT", "3000"),
		Env:      get("ENV", "dev"),
		DBDriver: strings.ToLower(get("DB_DRIVER", "sqlite")),
		DBPath:   get("DB_PATH", "agbrain.db"),
		DBDSN:    get("DB_DSN", ""),
		LogMode:  get("LOG_MODE", ""),
	}
	if cfg.LogMode == "" {
		cfg.LogMode = "dev"
		if cfg.IsProd() {
			cfg.LogMode = "prod"
		}
	}
	return cfg
}

// Redacted hides the DSN, which may carry credentials.
func (c AppConfig) Redacted() AppConfig {
	if c.DBDSN != "" {
		c.DBDSN = "***"
	}
	return c
}
