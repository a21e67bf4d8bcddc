package config

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

type StorageConfig struct {
	Endpoint        string `env:"S3_ENDPOINT"`
	Region          string `env:"S3_REGION" envDefault:"auto"`
	AccessKeyID     string `env:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY"`
	UsePathStyle    bool   `env:"S3_USE_PATH_STYLE" envDefault:"true"`
}

type FederatedConfig struct {
	DataRepoURL     string `env:"DATA_REPO_URL" envDefault:"https://data.terra.bio"`
	CredentialsFile string `env:"DATA_REPO_CREDENTIALS_FILE"`
	AzulURL         string `env:"AZUL_URL" envDefault:"https://service.azul.data.humancellatlas.org"`
	AzulCatalog     string `env:"AZUL_CATALOG" envDefault:"dcp2"`
}

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DB_URL      string `env:"DB_URL"`
	RedisURL    string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	JWTSecret   string `env:"JWT_SECRET" envDefault:"not-so-secret-now-is-it?"`
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	// Bytes a user may request per quota period.
	DownloadQuota      int64         `env:"DOWNLOAD_QUOTA_BYTES" envDefault:"2000000000000"`
	QuotaResetInterval time.Duration `env:"QUOTA_RESET_INTERVAL" envDefault:"24h"`

	SignedURLTTL   time.Duration `env:"SIGNED_URL_TTL" envDefault:"24h"`
	AuthCodeTTL    time.Duration `env:"AUTH_CODE_TTL" envDefault:"30m"`
	MaxConcurrency int           `env:"MAX_CONCURRENCY" envDefault:"100"`

	RetryMaxAttempts    int           `env:"RETRY_MAX_ATTEMPTS" envDefault:"3"`
	RetryInitialBackoff time.Duration `env:"RETRY_INITIAL_BACKOFF" envDefault:"200ms"`
	RetryMaxBackoff     time.Duration `env:"RETRY_MAX_BACKOFF" envDefault:"2s"`

	InsecureManifestFetch bool     `env:"INSECURE_MANIFEST_FETCH" envDefault:"false"`
	CorsAllowedOrigins    []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	Storage   StorageConfig
	Federated FederatedConfig
}

// Load reads the env file named by ENV_FILE (default .env) when present, then
// parses and validates the environment.
func Load() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		slog.Debug("No env file found", "file", envFile)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	logLevel := strings.ToLower(c.LogLevel)
	isValidLevel := false
	for _, level := range validLogLevels {
		if logLevel == level {
			isValidLevel = true
			break
		}
	}
	if !isValidLevel {
		return fmt.Errorf("invalid log level %q, must be one of: %v", c.LogLevel, validLogLevels)
	}

	if c.DownloadQuota <= 0 {
		return fmt.Errorf("DOWNLOAD_QUOTA_BYTES must be positive, got %d", c.DownloadQuota)
	}
	if c.MaxConcurrency < 1 {
		return fmt.Errorf("MAX_CONCURRENCY must be at least 1, got %d", c.MaxConcurrency)
	}
	if c.RetryMaxAttempts < 1 {
		return fmt.Errorf("RETRY_MAX_ATTEMPTS must be at least 1, got %d", c.RetryMaxAttempts)
	}
	if c.SignedURLTTL <= 0 || c.AuthCodeTTL <= 0 {
		return fmt.Errorf("SIGNED_URL_TTL and AUTH_CODE_TTL must be positive")
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("BASE_URL must be an absolute URL, got: %q", c.BaseURL)
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) CorsConfig() cors.Options {
	return cors.Options{
		AllowedOrigins:   c.CorsAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
}
