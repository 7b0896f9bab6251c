package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// minSecretLength is the minimum accepted length for the JWT signing secret.
const minSecretLength = 64

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort         string
	MySQLDSN           string
	RedisAddr          string
	RedisDB            int
	RedisPass          string
	JWTSecret          string
	JWTExpiresHours    int
	CORSAllowedOrigins string
}

// Load builds Config from environment with sensible defaults. JWT settings
// carry no defaults; Validate rejects a missing or weak configuration.
func Load() *Config {
	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		MySQLDSN:           getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/app?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		JWTSecret:          os.Getenv("JWT_SECRET_KEY"),
		JWTExpiresHours:    getEnvInt("JWT_EXPIRES_HOURS", 0),
		CORSAllowedOrigins: os.Getenv("CORS_ALLOWED_ORIGINS"),
	}
}

// Validate enforces the startup contract for the token configuration.
// The process must not come up with a missing or short secret or a
// non-positive expiry window.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET_KEY is not configured")
	}
	if len(c.JWTSecret) < minSecretLength {
		return fmt.Errorf("JWT_SECRET_KEY must be at least %d characters", minSecretLength)
	}
	if c.JWTExpiresHours <= 0 {
		return errors.New("JWT_EXPIRES_HOURS must be a positive integer")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
