package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	SMTP     SMTPConfig
	Geocode  GeocodeConfig
	Auth     AuthConfig
	Cron     CronConfig
	Payslip  PayslipConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// SMTPConfig holds outbound mail configuration. Leaving Host empty
// disables sending (payslip emails are skipped with a warning).
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// GeocodeConfig holds the reverse-geocoding provider settings.
type GeocodeConfig struct {
	BaseURL string
	Timeout time.Duration
}

// AuthConfig holds the role-credential table. Values are bcrypt hashes
// supplied via environment, never hardcoded.
type AuthConfig struct {
	AdminPasswordHash    string
	ApproverPasswordHash string
}

// CronConfig gates the optional automatic monthly leave reset. The
// POST /api/leave-balance/reset-monthly endpoint stays the primary
// mechanism; the job exists for deployments that want it on a timer.
type CronConfig struct {
	AutoLeaveReset         bool
	AutoLeaveResetInterval time.Duration
}

// PayslipConfig holds batch payslip settings. SalaryWorkbookPath is the
// default workbook parsed by the merge endpoint when no file is
// uploaded.
type PayslipConfig struct {
	SalaryWorkbookPath string
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, relying on environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbMaxConns, err := strconv.ParseInt(getEnv("DB_MAX_CONNS", "25"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	dbMinConns, err := strconv.ParseInt(getEnv("DB_MIN_CONNS", "5"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "staffhub-hr"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(dbMaxConns),
		MinConns: int32(dbMinConns),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	// SMTP configuration
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "payroll@staffhub.local"),
		FromName: getEnv("SMTP_FROM_NAME", "StaffHub Payroll"),
	}

	// Reverse geocoding configuration
	geocodeTimeout, err := time.ParseDuration(getEnv("GEOCODE_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid GEOCODE_TIMEOUT: %w", err)
	}
	config.Geocode = GeocodeConfig{
		BaseURL: getEnv("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org"),
		Timeout: geocodeTimeout,
	}

	// Role credentials
	config.Auth = AuthConfig{
		AdminPasswordHash:    getEnv("ADMIN_PASSWORD_HASH", ""),
		ApproverPasswordHash: getEnv("APPROVER_PASSWORD_HASH", ""),
	}

	// Optional automatic monthly leave reset
	autoReset, err := strconv.ParseBool(getEnv("CRON_AUTO_LEAVE_RESET", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid CRON_AUTO_LEAVE_RESET: %w", err)
	}
	resetInterval, err := time.ParseDuration(getEnv("CRON_AUTO_LEAVE_RESET_INTERVAL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CRON_AUTO_LEAVE_RESET_INTERVAL: %w", err)
	}
	config.Cron = CronConfig{
		AutoLeaveReset:         autoReset,
		AutoLeaveResetInterval: resetInterval,
	}

	config.Payslip = PayslipConfig{
		SalaryWorkbookPath: getEnv("PAYSLIP_SALARY_FILE", "salary.xlsx"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Auth.AdminPasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
