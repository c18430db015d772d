package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Redis
	RedisURL string

	// External services
	SchemaServiceURL     string
	SubmissionServiceURL string

	// Schema resolution
	SchemaCacheTTL  time.Duration
	SchemaWaitLimit time.Duration
}

func Load() *Config {
	cacheTTLMin, _ := strconv.Atoi(getEnv("SCHEMA_CACHE_TTL_MINUTES", "15"))
	waitSec, _ := strconv.Atoi(getEnv("SCHEMA_WAIT_SECONDS", "10"))

	return &Config{
		Port:        getEnv("PORT", "8089"),
		Environment: getEnv("ENVIRONMENT", "development"),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		SchemaServiceURL:     getEnv("SCHEMA_SERVICE_URL", "http://categories-service:8080"),
		SubmissionServiceURL: getEnv("SUBMISSION_SERVICE_URL", "http://products-service:8080"),

		SchemaCacheTTL:  time.Duration(cacheTTLMin) * time.Minute,
		SchemaWaitLimit: time.Duration(waitSec) * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
