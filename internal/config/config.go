package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port             string
	APIBaseURL       string
	APIDatabaseReset string
	ReqTimeoutSec    int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func Load() *Config {
	return &Config{
		Port:             getenv("PORT", "3000"),
		APIBaseURL:       getenv("API_BASE_URL", "http://localhost:5000/api/v1/conta"),
		APIDatabaseReset: getenv("API_DATABASE_RESET", "http://localhost:5000/api/v1/database/reset"),
		ReqTimeoutSec:    atoi("REQUEST_TIMEOUT_SECONDS", 30),
	}
}
