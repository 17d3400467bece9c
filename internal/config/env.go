package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	Env              string
	LogLevel         string
	DatabaseDriver   string
	DatabaseDSN      string
	JWTSecret        string
	FunctionsURL     string
	FunctionsAPIKey  string
	RemoteTimeout    time.Duration
	SimulatedLatency bool
	ExtractionMode   string
	RandomSeed       uint64
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; variables already set win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:             String("PORT", "8080"),
		Env:              String("APP_ENV", "development"),
		LogLevel:         String("LOG_LEVEL", "info"),
		DatabaseDriver:   strings.ToLower(String("DATABASE_DRIVER", "postgres")),
		DatabaseDSN:      String("DATABASE_DSN", ""),
		JWTSecret:        String("JWT_SECRET", ""),
		FunctionsURL:     strings.TrimRight(String("FUNCTIONS_URL", ""), "/"),
		FunctionsAPIKey:  String("FUNCTIONS_API_KEY", ""),
		RemoteTimeout:    time.Duration(Int("REMOTE_TIMEOUT_MS", 10000)) * time.Millisecond,
		SimulatedLatency: Bool("SIMULATED_LATENCY", true),
		ExtractionMode:   strings.ToLower(String("EXTRACTION_MODE", "placeholder")),
		RandomSeed:       uint64(Int("RANDOM_SEED", 0)),
	}
}

func String(name, def string) string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	return v
}

func Int(name string, def int) int {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func Bool(name string, def bool) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	switch v {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}
