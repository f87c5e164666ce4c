package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	DatabaseURL   string
	Environment   string
	FrontendDir   string
	ReviewerName  string
	RunMigrations bool
	MigrationsDir string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:          getEnv("APP_ADDR", ":8080"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		Environment:   getEnv("APP_ENV", "development"),
		FrontendDir:   getEnv("FRONTEND_DIR", "frontend/dist"),
		ReviewerName:  getEnv("REVIEWER_NAME", "HR Manager"),
		RunMigrations: getEnvBool("RUN_MIGRATIONS", true),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if c.Environment == "production" && strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required in production")
	}
	if strings.TrimSpace(c.ReviewerName) == "" {
		return fmt.Errorf("REVIEWER_NAME must not be empty")
	}
	return nil
}
