package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server configuration
	Port        string
	Environment string

	// Content source configuration
	ContentProjectID  string
	ContentDataset    string
	ContentAPIVersion string
	ContentToken      string
	ContentUseCDN     bool
	// ContentBaseURL overrides the derived API endpoint (local emulators).
	ContentBaseURL string

	// Redis cache configuration (optional; empty URL disables caching)
	RedisURL      string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	// Cache warmer schedule (cron expression; empty disables warming)
	WarmCron string

	// PubNub configuration (optional; form notifications)
	PubNubPublishKey   string
	PubNubSubscribeKey string
	PubNubSecretKey    string

	// Form rate limiting
	FormRateLimit  int
	FormRateWindow time.Duration

	// Monitoring
	EnableMetrics bool
	MetricsPort   string
}

func LoadConfig() *Config {
	return &Config{
		// Server
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// Content source
		ContentProjectID:  getEnv("CONTENT_PROJECT_ID", ""),
		ContentDataset:    getEnv("CONTENT_DATASET", "production"),
		ContentAPIVersion: getEnv("CONTENT_API_VERSION", "2023-05-03"),
		ContentToken:      getEnv("CONTENT_TOKEN", ""),
		ContentUseCDN:     getEnvAsBool("CONTENT_USE_CDN", true),
		ContentBaseURL:    getEnv("CONTENT_BASE_URL", ""),

		// Redis
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		CacheTTL:      getEnvAsDuration("CACHE_TTL", "5m"),

		// Warmer
		WarmCron: getEnv("WARM_CRON", "*/15 * * * *"),

		// PubNub
		PubNubPublishKey:   getEnv("PUBNUB_PUBLISH_KEY", ""),
		PubNubSubscribeKey: getEnv("PUBNUB_SUBSCRIBE_KEY", ""),
		PubNubSecretKey:    getEnv("PUBNUB_SECRET_KEY", ""),

		// Forms
		FormRateLimit:  getEnvAsInt("FORM_RATE_LIMIT", 5),
		FormRateWindow: getEnvAsDuration("FORM_RATE_WINDOW", "1m"),

		// Monitoring
		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),
		MetricsPort:   getEnv("METRICS_PORT", "9090"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	// If parsing fails, try to parse default value
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
