package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver      string
	DBPath        string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	SessionSecret string
	GinMode       string
	Port          string
	CORSOrigins   string
}

func Load() *Config {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBPath:        getEnv("DB_PATH", "fwfps.db"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "fwfps"),
		DBPassword:    getEnv("DB_PASSWORD", "fwfps"),
		DBName:        getEnv("DB_NAME", "fwfps"),
		SessionSecret: getEnv("SESSION_SECRET", "fwfps-demo-secret-key"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		Port:          getEnv("PORT", "5000"),
		CORSOrigins:   getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:4200"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
