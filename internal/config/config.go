package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/timestamp"
	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Overtime OvertimeConfig
	Import   ImportConfig
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

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// OvertimeConfig holds the detection policy
type OvertimeConfig struct {
	SentinelID  int64
	WindowStart string // HH:MM
	WindowEnd   string // HH:MM
	Rounding    string
}

// ImportConfig holds batch import tunables
type ImportConfig struct {
	ChunkSize      int
	MaxUploadBytes int64
	RetryAfter     time.Duration
}

func Load() (*Config, error) {
	// .env is optional; real deployments inject the environment directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	maxConns, err := strconv.ParseInt(getEnv("DB_MAX_CONNS", "10"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	minConns, err := strconv.ParseInt(getEnv("DB_MIN_CONNS", "2"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "overtime"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
		MinConns: int32(minConns),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "3000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "*"),
		ReadTimeout:    getDurationEnv("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   getDurationEnv("HTTP_WRITE_TIMEOUT", 60*time.Second),
	}

	// Overtime detection policy
	sentinelID, err := strconv.ParseInt(getEnv("OVERTIME_SENTINEL_ID", "9"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OVERTIME_SENTINEL_ID: %w", err)
	}

	config.Overtime = OvertimeConfig{
		SentinelID:  sentinelID,
		WindowStart: getEnv("OVERTIME_WINDOW_START", "13:40"),
		WindowEnd:   getEnv("OVERTIME_WINDOW_END", "14:15"),
		Rounding:    getEnv("OVERTIME_ROUNDING", string(overtime.RoundNearest)),
	}

	// Import configuration
	chunkSize, err := strconv.Atoi(getEnv("IMPORT_CHUNK_SIZE", "50"))
	if err != nil {
		return nil, fmt.Errorf("invalid IMPORT_CHUNK_SIZE: %w", err)
	}

	maxUpload, err := strconv.ParseInt(getEnv("IMPORT_MAX_UPLOAD_BYTES", strconv.Itoa(32<<20)), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid IMPORT_MAX_UPLOAD_BYTES: %w", err)
	}

	config.Import = ImportConfig{
		ChunkSize:      chunkSize,
		MaxUploadBytes: maxUpload,
		RetryAfter:     getDurationEnv("IMPORT_RETRY_AFTER", 30*time.Second),
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
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be at least 1")
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS")
	}
	if c.Import.ChunkSize < 1 {
		return fmt.Errorf("IMPORT_CHUNK_SIZE must be at least 1")
	}
	if c.Import.MaxUploadBytes < 1 {
		return fmt.Errorf("IMPORT_MAX_UPLOAD_BYTES must be positive")
	}
	if _, err := c.OvertimePolicy(); err != nil {
		return err
	}
	return nil
}

// OvertimePolicy converts the textual overtime settings into a detection config.
func (c *Config) OvertimePolicy() (overtime.Config, error) {
	start, err := timestamp.ParseClock(c.Overtime.WindowStart)
	if err != nil {
		return overtime.Config{}, fmt.Errorf("invalid OVERTIME_WINDOW_START: %w", err)
	}
	end, err := timestamp.ParseClock(c.Overtime.WindowEnd)
	if err != nil {
		return overtime.Config{}, fmt.Errorf("invalid OVERTIME_WINDOW_END: %w", err)
	}
	rounding, err := overtime.ParseRounding(c.Overtime.Rounding)
	if err != nil {
		return overtime.Config{}, fmt.Errorf("invalid OVERTIME_ROUNDING: %w", err)
	}

	policy := overtime.Config{
		SentinelID:  c.Overtime.SentinelID,
		WindowStart: start,
		WindowEnd:   end,
		Rounding:    rounding,
	}
	if err := policy.Validate(); err != nil {
		return overtime.Config{}, err
	}
	return policy, nil
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

func getEnvSlice(env, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
