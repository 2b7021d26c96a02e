package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Port              string
	DBConn            string
	LogLevel          string
	JWTSecret         string
	AdminPasswordHash string
	CBRURL            string
	RedisAddr         string
	CacheTTL          time.Duration
	SMTPHost          string
	SMTPPort          string
	SMTPUsername      string
	SMTPPassword      string
	SenderEmail       string
	LeadInbox         string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		DBConn:            getEnv("DB_CONN", "host=localhost port=5436 user=test password=test dbname=calculator sslmode=disable"),
		LogLevel:          getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:         getEnv("JWT_SECRET", "secret"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		CBRURL:            getEnv("CBR_URL", "https://www.cbr.ru/DailyInfoWebServ/DailyInfo.asmx"),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		SMTPHost:          getEnv("SMTP_HOST", "localhost"),
		SMTPPort:          getEnv("SMTP_PORT", "587"),
		SMTPUsername:      getEnv("SMTP_USERNAME", ""),
		SMTPPassword:      getEnv("SMTP_PASSWORD", ""),
		SenderEmail:       getEnv("SENDER_EMAIL", "calculator@localhost"),
		LeadInbox:         getEnv("LEAD_INBOX", ""),
	}

	ttlMinutes, err := strconv.Atoi(getEnv("CACHE_TTL_MINUTES", "60"))
	if err != nil || ttlMinutes < 0 {
		return nil, fmt.Errorf("CACHE_TTL_MINUTES must be a non-negative integer")
	}
	cfg.CacheTTL = time.Duration(ttlMinutes) * time.Minute

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.AdminPasswordHash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
