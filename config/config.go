package config

import (
	"net/url"
	"os"
)

// Config holds every environment-provided setting the server needs.
type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string
}

// Load reads configuration from environment variables, falling back to
// defaults that work for local development.
func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "hospital_management"),
		DBPort:     getEnv("DB_PORT", "5432"),
		Port:       getEnv("PORT", "5005"),
	}
}

// DatabaseURL renders the postgres connection string for pgx. url.URL
// applies userinfo escaping, so credentials survive any special characters.
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
