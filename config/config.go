package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Pagination policy. Limits above the max are clamped, never rejected.
const (
	DefaultLimitPosts = 10
	MaxLimitPosts     = 20

	DefaultLimitComments = 3
	MaxLimitComments     = 10
)

type Config struct {
	MongoURI  string
	MongoDB   string
	Port      string
	JWTSecret string
	RedisAddr string
	TokenTTL  time.Duration
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func LoadConfig() Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using system environment variables")
	}

	cfg := Config{
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "blogbase"),
		Port:      getEnv("PORT", "8000"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		RedisAddr: getEnv("REDIS_ADDR", ""),
		TokenTTL:  time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
	}
	return cfg
}
