package config

import (
	"log"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Config holds everything the process reads from the environment. The login
// is a demonstration stub: a single admin account configured here, students
// identified by their registry ID.
type Config struct {
	Port              string
	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string
	GeminiAPIKey      string
	SeedDemoData      bool
	SeedStudentCount  int
}

// Load reads the process configuration from the environment, falling back
// to development defaults where a value is unset.
func Load() *Config {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		JWTSecret:        getEnv("JWT_SECRET", "hostel-management-secret-key"),
		AdminUsername:    getEnv("ADMIN_USERNAME", "admin"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		SeedDemoData:     getEnv("SEED_DEMO_DATA", "true") == "true",
		SeedStudentCount: getEnvInt("SEED_STUDENT_COUNT", 500),
	}

	// The admin password is kept only as a bcrypt hash for the session the
	// process lives.
	password := getEnv("ADMIN_PASSWORD", "admin")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		log.Fatal("Failed to hash admin password:", err)
	}
	cfg.AdminPasswordHash = string(hash)

	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set, the AI assistant will return its fallback reply")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
