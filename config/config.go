package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBPath    string
	GinMode   string
	JWTSecret []byte
	JWTTTL    time.Duration
}

// Load reads the environment (plus an optional .env file) into a Config.
func Load() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "8080"),
		DBPath:    getEnv("DB_PATH", "food_ordering.db"),
		GinMode:   os.Getenv("GIN_MODE"),
		JWTSecret: []byte(getEnv("JWT_SECRET", "food_ordering_super_secret_2024")),
		JWTTTL:    24 * time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
