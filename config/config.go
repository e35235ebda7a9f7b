// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os" // For reading environment variables

	"github.com/joho/godotenv" // Loads .env files into the environment
)

type Config struct { // Config struct holds all configuration values
	Port          string // Port the HTTP server listens on
	DBPath        string // Path to the SQLite database file
	JWTSecret     string // Secret key for signing session tokens
	Env           string // "development" or "production"
	CreateAdmin   bool   // Whether to seed a default admin on startup
	AdminEmail    string // Email for the seeded admin
	AdminPassword string // Password for the seeded admin
}

func Load() *Config { // Load reads config from .env / environment variables or uses defaults
	_ = godotenv.Load() // Load .env if present (missing file is fine)
	return &Config{
		Port:          getEnv("PORT", "8080"),                   // Get server port or use default
		DBPath:        getEnv("DB_PATH", "data.db"),             // Get DB path or use default
		JWTSecret:     getEnv("JWT_SECRET", "caseStudy123"),     // Get JWT secret or use default
		Env:           getEnv("APP_ENV", "development"),         // Get environment or use default
		CreateAdmin:   getEnv("CREATE_ADMIN", "") == "true",     // Only seed admin when explicitly enabled
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@localhost"), // Seeded admin email
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),             // Seeded admin password (required to seed)
	}
}

// IsProduction reports whether the app runs in production mode.
// Controls the cookie Secure flag and whether 500 responses carry error detail.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}
