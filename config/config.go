package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	JWTSecret         string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPass            string
	DBName            string
	RedisHost         string
	RedisPort         string
	RedisPassword     string
	RedisDB           int
	MinioHost         string
	MinioPort         string
	MinioUsername     string
	MinioPassword     string
	PublicMinioURL    string
	BucketName        string
	BucketNameTest    string
	RabbitMQURL       string
	RabbitMQPrefetch  int
	ElevatedRoles     []string
	DefaultRole       string
	SignedURLTTL      time.Duration
	SignedURLCacheTTL time.Duration
	AuditRate         float64
	AuditBurst        int
}

var AppConfig Config

// getEnv returns the environment value or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvList(key string, defaultValue []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// InitConfig loads configuration from the environment.
func InitConfig() {
	rabbitHost := getEnv("RABBITMQ_HOST", "localhost")
	rabbitPort := getEnv("RABBITMQ_PORT", "5672")
	rabbitUser := getEnv("RABBITMQ_USER", "guest")
	rabbitPass := getEnv("RABBITMQ_PASSWORD", "guest")
	rabbitVhost := getEnv("RABBITMQ_VHOST", "/")
	rabbitURL := getEnv("RABBITMQ_URL", "")
	if rabbitURL == "" {
		rabbitURL = fmt.Sprintf(
			"amqp://%s:%s@%s:%s/%s",
			url.PathEscape(rabbitUser),
			url.PathEscape(rabbitPass),
			rabbitHost,
			rabbitPort,
			url.PathEscape(rabbitVhost),
		)
	}
	minioHost := getEnv("MINIO_HOST", "localhost")
	minioPort := getEnv("MINIO_PORT", "9000")
	AppConfig = Config{
		JWTSecret:         getEnv("JWT_SECRET", "l=ax+b"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBUser:            getEnv("DB_USER", "root"),
		DBPass:            getEnv("DB_PASS", "root"),
		DBName:            getEnv("DB_NAME", "PhotoVault"),
		RedisHost:         getEnv("REDIS_HOST", "localhost"),
		RedisPort:         getEnv("REDIS_PORT", "6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           0,
		MinioHost:         minioHost,
		MinioPort:         minioPort,
		MinioUsername:     getEnv("MINIO_USERNAME", "minioadmin"),
		MinioPassword:     getEnv("MINIO_PASSWORD", "minioadmin"),
		PublicMinioURL:    getEnv("PUBLIC_MINIO_URL", fmt.Sprintf("http://%s:%s", minioHost, minioPort)),
		BucketName:        getEnv("PHOTO_BUCKET", "photovault"),
		BucketNameTest:    getEnv("PHOTO_BUCKET_TEST", "photovault-test"),
		RabbitMQURL:       rabbitURL,
		RabbitMQPrefetch:  getEnvInt("RABBITMQ_PREFETCH", 8),
		ElevatedRoles:     getEnvList("ELEVATED_ROLES", []string{"admin", "manager"}),
		DefaultRole:       getEnv("DEFAULT_ROLE", "customer"),
		SignedURLTTL:      getEnvDuration("SIGNED_URL_TTL", time.Hour),
		SignedURLCacheTTL: getEnvDuration("SIGNED_URL_CACHE_TTL", 5*time.Minute),
		AuditRate:         getEnvFloat("AUDIT_RATE", 50),
		AuditBurst:        getEnvInt("AUDIT_BURST", 100),
	}
}
