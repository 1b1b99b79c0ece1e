package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	AutoMigrate bool
	// Logging
	LogLevel  string
	LogFormat string // json or pretty
	// Auth
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	ResetCodeTTL time.Duration
	// SMTP Configuration
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SMTPFromEmail  string
	ContactEmailTo string
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitAuthThreshold   int
	// Job listing cache
	JobCacheTTL time.Duration
}

func LoadConfig() (*Config, error) {
	// Only effective locally; production injects env vars directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		AutoMigrate: getEnvBool("AUTO_MIGRATE", true),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		JWTSecret:    getEnv("JWT_SECRET", ""),
		JWTTTL:       time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		BcryptCost:   getEnvInt("BCRYPT_COST", 10),
		ResetCodeTTL: time.Duration(getEnvInt("RESET_CODE_TTL_MINUTES", 30)) * time.Minute,

		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:  getEnv("SMTP_FROM_EMAIL", ""),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", ""),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		RateLimitAuthThreshold:   getEnvInt("RATE_LIMIT_AUTH_THRESHOLD", 10),

		JobCacheTTL: time.Duration(getEnvInt("JOB_CACHE_TTL_SECONDS", 30)) * time.Second,
	}

	if cfg.SMTPFromEmail == "" {
		cfg.SMTPFromEmail = cfg.SMTPUsername
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Login and protected routes will be rejected.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
