// config.go - Handles configuration for the project

package config

import (
	"os"
)

type Config struct { // Config struct holds all configuration values
	Port      string // HTTP port the server listens on
	DBPath    string // Path to the SQLite database file
	JWTSecret string // Secret key for JWT authentication
	UploadDir string // Directory for uploaded images

	// Optional MQTT notifier (disabled when MQTTBroker is empty)
	MQTTBroker string // Address of the MQTT broker
	MQTTTopic  string // Topic for transaction status events

	// Optional admin seeding at startup
	CreateAdmin   bool   // Whether to seed an admin user on first run
	AdminEmail    string // Seed admin email
	AdminPassword string // Seed admin password
	AdminName     string // Seed admin display name
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	return &Config{
		Port:          getEnv("PORT", "4001"),
		DBPath:        getEnv("DB_PATH", "shop.db"),
		JWTSecret:     getEnv("JWT_SECRET", "supersecret"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		MQTTBroker:    getEnv("MQTT_BROKER", ""),
		MQTTTopic:     getEnv("MQTT_TOPIC", "transactions/status"),
		CreateAdmin:   getEnv("CREATE_ADMIN", "false") == "true",
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		AdminName:     getEnv("ADMIN_NAME", "Administrator"),
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
