package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BaseURL string
	Token   string

	// RequestTimeout bounds a single HTTP round trip.
	RequestTimeout time.Duration
	// ExecTimeout bounds a whole execution; 0 means wait indefinitely.
	ExecTimeout time.Duration
	// PollInterval is the delay between result polls.
	PollInterval time.Duration
	// MaxCodeLength rejects oversized submissions client-side; 0 disables.
	MaxCodeLength int

	Environment string
}

func LoadConfig() Config {
	err := godotenv.Load(".env")
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	return Config{
		BaseURL:        getEnv("JUPYTER_SERVER_URL", "http://localhost:8888"),
		Token:          getEnv("JUPYTER_TOKEN", ""),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		ExecTimeout:    getEnvDuration("EXEC_TIMEOUT", 0),
		PollInterval:   getEnvDuration("POLL_INTERVAL", 100*time.Millisecond),
		MaxCodeLength:  getEnvInt("MAX_CODE_LENGTH", 0),
		Environment:    getEnv("ENVIRONMENT", "production"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
