package settings

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const Version = "0.1.0"

type Environment int

const (
	Production Environment = iota
	Testing
	Development
)

func (e Environment) String() string {
	switch e {
	case Testing:
		return "testing"
	case Development:
		return "development"
	default:
		return "production"
	}
}

type Settings struct {
	Environment     Environment
	Name            string
	Host            string
	Port            uint16
	DatabasePath    string
	SessionLifetime time.Duration
	AdminEmail      string
	AdminPassword   string
}

func New() *Settings {
	// A missing .env file is fine, the environment takes precedence anyway
	_ = godotenv.Load()

	settings := Settings{
		Environment:     Production,
		Name:            "go-api-base",
		Host:            "http://localhost:8080",
		Port:            8080,
		DatabasePath:    "var/data/go-api-base.db",
		SessionLifetime: 24 * time.Hour,
		AdminEmail:      "admin@example.com",
		AdminPassword:   "admin-secret",
	}

	if environment := os.Getenv("ENVIRONMENT"); environment != "" {
		switch environment {
		case "production":
			settings.Environment = Production
		case "testing":
			settings.Environment = Testing
		case "development":
			settings.Environment = Development
		default:
			panic(fmt.Sprintf("unknown environment provided %s", environment))
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		settings.Host = host
	}

	if port := os.Getenv("PORT"); port != "" {
		parsed, err := strconv.ParseUint(port, 10, 16)
		if err != nil {
			panic(fmt.Sprintf("invalid env PORT provided: %s", port))
		}
		settings.Port = uint16(parsed)
	}

	if databasePath := os.Getenv("DATABASE_PATH"); databasePath != "" {
		settings.DatabasePath = databasePath
	}

	if lifetime := os.Getenv("SESSION_LIFETIME"); lifetime != "" {
		parsed, err := time.ParseDuration(lifetime)
		if err != nil {
			panic(fmt.Sprintf("invalid env SESSION_LIFETIME provided: %s", lifetime))
		}
		settings.SessionLifetime = parsed
	}

	if adminEmail := os.Getenv("ADMIN_EMAIL"); adminEmail != "" {
		settings.AdminEmail = adminEmail
	}

	if adminPassword := os.Getenv("ADMIN_PASSWORD"); adminPassword != "" {
		settings.AdminPassword = adminPassword
	}

	return &settings
}
