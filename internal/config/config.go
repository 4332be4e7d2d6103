package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Services  ServicesConfig
	Downloads DownloadsConfig
	Receipts  ReceiptsConfig
	Redis     RedisConfig
	Storage   StorageConfig
	Admin     AdminConfig
	Server    ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	ResendAPIKey       string
	DefaultEmailSender string
	OpenAIAPIKey       string
	GoogleAIAPIKey     string
	WebAppURI          string
}

// DownloadsConfig holds signed download link configuration
type DownloadsConfig struct {
	// TokenSecret signs download and newsletter link tokens. Startup fails
	// when it is unset so a bad deployment can never mint unverifiable links.
	TokenSecret string
	BaseURL     string
}

// ReceiptsConfig holds receipt pipeline tuning
type ReceiptsConfig struct {
	OCRMaxAttempts int
	MaxUploadBytes int64
}

// RedisConfig holds Redis connection settings for the job queue and rate limiter
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Enabled  bool
}

// StorageConfig holds object storage settings for receipt images and bonus assets
type StorageConfig struct {
	// Backend is "s3" or "local"
	Backend         string
	Bucket          string
	AccountID       string
	AccessKeyID     string
	AccessKeySecret string
	LocalDir        string
}

// AdminConfig holds admin API authentication settings
type AdminConfig struct {
	// APIKeyHash is the bcrypt hash of the admin API key
	APIKeyHash string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Services configuration
	if cfg.Services.ResendAPIKey, err = requireEnv("RESEND_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.DefaultEmailSender, err = requireEnv("DEFAULT_EMAIL_SENDER_ADDRESS"); err != nil {
		return nil, err
	}
	if cfg.Services.OpenAIAPIKey, err = requireEnv("OPENAI_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.GoogleAIAPIKey, err = requireEnv("GOOGLE_AI_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.WebAppURI, err = requireEnv("WEBAPP_URI"); err != nil {
		return nil, err
	}

	// Downloads configuration
	if cfg.Downloads.TokenSecret, err = requireEnv("DOWNLOAD_TOKEN_SECRET"); err != nil {
		return nil, err
	}
	cfg.Downloads.BaseURL = getEnvWithDefault("DOWNLOAD_BASE_URL", cfg.Services.WebAppURI)

	// Receipt pipeline configuration
	ocrAttempts := getEnvWithDefault("OCR_MAX_ATTEMPTS", "2")
	cfg.Receipts.OCRMaxAttempts, err = strconv.Atoi(ocrAttempts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OCR_MAX_ATTEMPTS: %w", err)
	}
	maxUpload := getEnvWithDefault("MAX_UPLOAD_BYTES", "10485760")
	cfg.Receipts.MaxUploadBytes, err = strconv.ParseInt(maxUpload, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse MAX_UPLOAD_BYTES: %w", err)
	}

	// Redis configuration
	if cfg.Redis.Addr, err = requireEnv("REDIS_ADDR"); err != nil {
		return nil, err
	}
	cfg.Redis.Password = getEnvWithDefault("REDIS_PASSWORD", "")
	redisDB := getEnvWithDefault("REDIS_DB", "0")
	cfg.Redis.DB, err = strconv.Atoi(redisDB)
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
	}
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "true") == "true"

	// Storage configuration
	cfg.Storage.Backend = getEnvWithDefault("STORAGE_BACKEND", "s3")
	switch cfg.Storage.Backend {
	case "s3":
		if cfg.Storage.Bucket, err = requireEnv("STORAGE_BUCKET"); err != nil {
			return nil, err
		}
		if cfg.Storage.AccountID, err = requireEnv("STORAGE_ACCOUNT_ID"); err != nil {
			return nil, err
		}
		if cfg.Storage.AccessKeyID, err = requireEnv("STORAGE_ACCESS_KEY_ID"); err != nil {
			return nil, err
		}
		if cfg.Storage.AccessKeySecret, err = requireEnv("STORAGE_ACCESS_KEY_SECRET"); err != nil {
			return nil, err
		}
	case "local":
		cfg.Storage.LocalDir = getEnvWithDefault("STORAGE_LOCAL_DIR", "./uploads")
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.Storage.Backend)
	}

	// Admin configuration
	if cfg.Admin.APIKeyHash, err = requireEnv("ADMIN_API_KEY_HASH"); err != nil {
		return nil, err
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
