package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the API binary reads from the environment.
type Config struct {
	Addr string

	// DBDriver is "postgres" or "sqlite". sqlite is meant for local
	// development; production runs against Postgres.
	DBDriver string
	DBDSN    string

	JWTSecret string
	JWTTTL    time.Duration

	// ResumeDir is where uploaded resumes land; ResumeBaseURL is the
	// public prefix they are served under.
	ResumeDir     string
	ResumeBaseURL string

	// SMTP relay for the resume-submission endpoint. Optional: with no
	// host configured the relay still accepts submissions but sends
	// nothing.
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	OperatorMail string

	// Optional Gemini key for headhunt candidate suggestions.
	GeminiAPIKey string
}

// Load reads .env (if present) and assembles the config. Missing optional
// values fall back to development defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:          getenv("ADDR", ":8080"),
		DBDriver:      getenv("DB_DRIVER", "postgres"),
		DBDSN:         getenv("DB_DSN", "host=localhost user=postgres password=postgres dbname=qazimatch port=5432 sslmode=disable"),
		JWTSecret:     getenv("JWT_SECRET", "dev-secret-change-me"),
		JWTTTL:        getenvDuration("JWT_TTL_HOURS", 24),
		ResumeDir:     getenv("RESUME_DIR", "uploads/resumes"),
		ResumeBaseURL: getenv("RESUME_BASE_URL", "/uploads/resumes"),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getenv("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:      os.Getenv("SMTP_FROM"),
		OperatorMail:  os.Getenv("OPERATOR_EMAIL"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvDuration(key string, fallbackHours int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h > 0 {
			return time.Duration(h) * time.Hour
		}
	}
	return time.Duration(fallbackHours) * time.Hour
}
