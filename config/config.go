package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	dsn := os.Getenv("DB_DSN")
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
}

// Hardcoded fallbacks match the values the deployed site shipped with, so a
// bare environment still produces a working install.
const (
	defaultAdminKey    = "treetek-portal-2025"
	defaultAlertEmail  = "landtekbiz@gmail.com"
	defaultEmailFrom   = "TREE TEK <noreply@updates.treetek.com>"
	defaultPhone       = "(321) 282-9795"
	defaultServiceArea = "Port Orange, Daytona Beach, Ormond Beach, New Smyrna Beach, and surrounding Central Florida"
)

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// AdminKey is the pre-shared key exchanged for an admin session token.
func AdminKey() string {
	return envOrDefault("ADMIN_KEY", defaultAdminKey)
}

// AdminKeyHash, when set, replaces the plaintext AdminKey comparison with a
// bcrypt check.
func AdminKeyHash() string {
	return os.Getenv("ADMIN_KEY_HASH")
}

// AlertEmail receives the operator notification for each new service request.
func AlertEmail() string {
	return envOrDefault("ALERT_TO_EMAIL", defaultAlertEmail)
}

func ResendAPIKey() string {
	return os.Getenv("RESEND_API_KEY")
}

func EmailFrom() string {
	return envOrDefault("EMAIL_FROM", defaultEmailFrom)
}

// PublishableKey gates the public quote endpoint. It is shipped inside the
// client bundle, so it is not a secret; an empty value disables the check.
func PublishableKey() string {
	return os.Getenv("QUOTE_PUBLISHABLE_KEY")
}

func GalleryBucket() string {
	return envOrDefault("GALLERY_BUCKET", "gallery")
}

func RequestsBucket() string {
	return envOrDefault("REQUESTS_BUCKET", "requests")
}

// Display constants rendered by the contact page and footer chrome.

func BusinessPhone() string {
	return envOrDefault("BUSINESS_PHONE", defaultPhone)
}

func BusinessEmail() string {
	return envOrDefault("BUSINESS_EMAIL", defaultAlertEmail)
}

func ServiceArea() string {
	return envOrDefault("SERVICE_AREA", defaultServiceArea)
}
