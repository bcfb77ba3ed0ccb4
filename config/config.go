package config

import "os"

// Config is the env-var configuration surface. Call godotenv.Load before
// Load so a local .env is picked up.
type Config struct {
	Port           string
	DataDir        string
	StaticDir      string
	JWTSecret      string
	AllowedOrigins []string
}

func Load() *Config {
	return &Config{
		Port:           getenv("PORT", "3001"),
		DataDir:        getenv("DATA_DIR", "data"),
		StaticDir:      getenv("STATIC_DIR", "uploads"),
		JWTSecret:      getenv("JWT_SECRET", "dev-secret-change-me"),
		AllowedOrigins: []string{getenv("ALLOWED_ORIGIN", "*")},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
