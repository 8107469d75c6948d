package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// SessionMaxAge is the maximum lifetime of a login session cookie.
const SessionMaxAge = 30 * 24 * time.Hour

type Config struct {
	DBDSN         string
	ServerPort    string
	SessionSecret string
	LogLevel      string
	LogPretty     bool
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		LogPretty:     os.Getenv("LOG_PRETTY") == "true",
	}

	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}

	return cfg
}
