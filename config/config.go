package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/jeil-marcom/site_end/utils"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port     int
	Debug    bool
	MongoURI string
	MongoDB  string

	JWTSecret string
	TokenTTL  time.Duration

	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	MailTimeout time.Duration

	// MailFrom is the authenticated sender address; OwnerEmails receive a
	// copy of every form submission.
	MailFrom    string
	OwnerEmails []string

	CatalogueURL string
	BrochureURL  string

	AdminEmail    string
	AdminPassword string
	// AdminRoleRequired additionally gates management endpoints on the
	// "admin" role claim. Deployment choice, on by default.
	AdminRoleRequired bool

	AllowedOrigins []string
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() *Config {
	// A missing .env is fine; production sets real env vars.
	_ = godotenv.Load()

	port := getEnvInt("PORT", 5000)
	smtpPort := getEnvInt("SMTP_PORT", 587)
	ttlHours := getEnvInt("TOKEN_TTL_HOURS", 168)
	mailTimeout := getEnvInt("MAIL_TIMEOUT_SECONDS", 120)

	return &Config{
		Port:     port,
		Debug:    getEnv("GIN_MODE", "debug") == "debug",
		MongoURI: getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "jeil_catalogue"),

		JWTSecret: getEnv("JWT_SECRET", "your-secret-key"),
		TokenTTL:  time.Duration(ttlHours) * time.Hour,

		SMTPHost:    getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:    smtpPort,
		SMTPUser:    os.Getenv("SMTP_USER"),
		SMTPPass:    os.Getenv("SMTP_PASS"),
		MailTimeout: time.Duration(mailTimeout) * time.Second,

		MailFrom:    getEnv("MAIL_FROM", os.Getenv("SMTP_USER")),
		OwnerEmails: splitList(getEnv("OWNER_EMAILS", "info@jeil.in,nilesh@pelwrap.com")),

		CatalogueURL: getEnv("CATALOGUE_URL", "https://jeil.in/assets/Product%20Catalogue-PEPL-JEIL.pdf"),
		BrochureURL:  getEnv("BROCHURE_URL", "https://jeil.in/assets/Product%20Catalogue-PEPL-JEIL.pdf"),

		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@jeil.in"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
		AdminRoleRequired: getEnv("ADMIN_ROLE_REQUIRED", "true") == "true",

		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
	}
}

// getEnvInt returns the environment value as an integer, falling back to the
// default when unset or unparseable.
func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		utils.Logger.Warn().
			Str("key", key).
			Str("value", raw).
			Int("default", defaultValue).
			Msg("ignoring non-numeric environment value")
		return defaultValue
	}
	return value
}

// getEnv returns the environment value or a default when unset.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// splitList parses a comma-separated env value, dropping empty entries.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
