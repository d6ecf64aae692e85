package config

import (
	"os"
	"strconv"
)

type Config struct {
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	JWTSecret      string
	JWTExpiryHours int
	UploadDir      string
	Port           string
	GinMode        string
}

func Load() *Config {
	return &Config{
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "3306"),
		DBUser:         getEnv("DB_USER", "studious"),
		DBPassword:     getEnv("DB_PASSWORD", "studious"),
		DBName:         getEnv("DB_NAME", "studious"),
		JWTSecret:      getEnv("JWT_SECRET", "default-secret-key-change-me"),
		JWTExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24*30),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
