package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret     string
	Issuer        string
	TokenLifetime time.Duration
	IsProduction  bool

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string

	RedisAddress    string
	RedisPassword   string
	RedisDB         int
	ListingCacheTTL time.Duration

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
	MinioPublicURL string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	HBARUSDRate    float64
	FeaturedMinUSD float64
	PolicyFile     string

	LogLevel  string
	LogFormat string

	AllowedOrigins []string

	ReservedAdminEmail string
	ReconcileInterval  time.Duration
	AuditRetentionDays int
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "freelance-market")
	TokenLifetime = getEnvAsDuration("TOKEN_LIFETIME", 24*time.Hour)
	IsProduction = getEnvAsBool("IS_PRODUCTION", false)

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "marketplace")
	ServerPort = getEnv("SERVER_PORT", "8080")

	RedisAddress = getEnv("REDIS_ADDRESS", "")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
	RedisDB = getEnvAsInt("REDIS_DB", 0)
	ListingCacheTTL = getEnvAsDuration("LISTING_CACHE_TTL", 30*time.Second)

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "avatars")
	MinioUseSSL = getEnvAsBool("MINIO_USE_SSL", false)
	MinioPublicURL = getEnv("MINIO_PUBLIC_URL", "")

	SMTPHost = getEnv("SMTP_HOST", "")
	SMTPPort = getEnvAsInt("SMTP_PORT", 587)
	SMTPUser = getEnv("SMTP_USER", "")
	SMTPPassword = getEnv("SMTP_PASSWORD", "")
	SMTPFrom = getEnv("SMTP_FROM", "no-reply@freelance-market.local")

	HBARUSDRate = getEnvAsFloat("HBAR_USD_RATE", 0.07)
	FeaturedMinUSD = getEnvAsFloat("FEATURED_MIN_USD", 10)
	PolicyFile = getEnv("POLICY_FILE", "")

	LogLevel = getEnv("LOG_LEVEL", "info")
	LogFormat = getEnv("LOG_FORMAT", "json")

	AllowedOrigins = splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000"))

	ReservedAdminEmail = getEnv("RESERVED_ADMIN_EMAIL", "admin@freelance-market.local")
	ReconcileInterval = getEnvAsDuration("RECONCILE_INTERVAL", time.Hour)
	AuditRetentionDays = getEnvAsInt("AUDIT_RETENTION_DAYS", 30)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			return v
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if v, err := time.ParseDuration(value); err == nil {
			return v
		}
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
