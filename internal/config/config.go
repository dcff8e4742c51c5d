package config

import (
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Port             string
	DBPath           string
	JWTSecret        string
	JWTExpireMinutes int
	CORSOrigin       string
}

// Load reads configuration from environment variables with defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/horarios.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	expireMinutes := 120
	if v := os.Getenv("JWT_EXPIRE_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			expireMinutes = n
		}
	}

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:5173"
	}

	return &Config{
		Port:             port,
		DBPath:           dbPath,
		JWTSecret:        jwtSecret,
		JWTExpireMinutes: expireMinutes,
		CORSOrigin:       corsOrigin,
	}
}
