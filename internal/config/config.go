package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"lumina-storefront/internal/infrastructure/database"

	"github.com/rs/zerolog/log"
)

// Config holds the whole application configuration.
// Populated from environment variables (a .env file is loaded by cmd/* first).
type Config struct {
	App        AppConfig
	Database   *database.DBConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Admin      AdminConfig
	Storefront StorefrontConfig
	MinIO      MinIOConfig
	SMTP       SMTPConfig
	Worker     WorkerConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string

	AllowedOrigins []string // CORS, empty allows any origin
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret            string
	AccessTokenExpiry int // minutes
}

// AdminConfig selects the admin gate.
// Mode "password" compares against a shared secret, mode "auth_service"
// delegates email/password sign-in to an external auth endpoint.
type AdminConfig struct {
	Mode         string
	Password     string
	PasswordHash string // bcrypt, preferred over Password when set
	AuthURL      string
	AuthAPIKey   string
}

type StorefrontConfig struct {
	HandoffBaseURL string // e.g. https://wa.me
	CustomerName   string // placeholder customer on checkout
	GreetingLine   string
	CartKeyPrefix  string
	CartTTL        time.Duration
	AuthorEmail    string // receives order notifications, empty disables mail
}

type MinIOConfig struct {
	Endpoint  string // empty disables object storage, images are embedded instead
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// WorkerConfig drives cmd/worker. DigestCron "off" disables the digest.
type WorkerConfig struct {
	Concurrency int
	DigestCron  string
}

type SMTPConfig struct {
	Host string
	Port string
	From string
}

const (
	AdminModePassword    = "password"
	AdminModeAuthService = "auth_service"

	defaultJWTSecret = "your-secret-key-change-in-production"
)

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Lumina Storefront"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),

			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", defaultJWTSecret),
			AccessTokenExpiry: getEnvInt("JWT_ACCESS_EXPIRY", 12*60),
		},
		Admin: AdminConfig{
			Mode:         getEnv("ADMIN_AUTH_MODE", AdminModePassword),
			Password:     getEnv("ADMIN_PASSWORD", ""),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			AuthURL:      strings.TrimRight(getEnv("AUTH_URL", ""), "/"),
			AuthAPIKey:   getEnv("AUTH_API_KEY", ""),
		},
		Storefront: StorefrontConfig{
			HandoffBaseURL: strings.TrimRight(getEnv("HANDOFF_BASE_URL", "https://wa.me"), "/"),
			CustomerName:   getEnv("CHECKOUT_CUSTOMER_NAME", "Bibliófilo via WhatsApp"),
			GreetingLine:   getEnv("CHECKOUT_GREETING", "¡Hola Lumina! Quisiera adquirir estas obras:"),
			CartKeyPrefix:  getEnv("CART_KEY_PREFIX", "lumina_cart"),
			CartTTL:        getEnvDuration("CART_TTL", 30*24*time.Hour),
			AuthorEmail:    getEnv("AUTHOR_EMAIL", ""),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "lumina"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		SMTP: SMTPConfig{
			Host: getEnv("SMTP_HOST", "localhost"),
			Port: getEnv("SMTP_PORT", "1025"),
			From: getEnv("SMTP_FROM", "noreply@lumina.local"),
		},
		Worker: WorkerConfig{
			Concurrency: getEnvInt("WORKER_CONCURRENCY", 5),
			DigestCron:  getEnv("PENDING_DIGEST_CRON", "0 8 * * *"),
		},
	}

	dbConfig, err := LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}
	cfg.Database = dbConfig

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the config is usable
func (c *Config) Validate() error {
	switch c.Admin.Mode {
	case AdminModePassword:
		if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
			return fmt.Errorf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
		}
	case AdminModeAuthService:
		if c.Admin.AuthURL == "" {
			return fmt.Errorf("AUTH_URL must be set when ADMIN_AUTH_MODE=%s", AdminModeAuthService)
		}
	default:
		return fmt.Errorf("unknown ADMIN_AUTH_MODE %q", c.Admin.Mode)
	}

	if c.App.Environment == "production" {
		if c.JWT.Secret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Database == nil || c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		if c.Admin.Mode == AdminModePassword && c.Admin.PasswordHash == "" {
			log.Warn().Msg("ADMIN_PASSWORD_HASH not set, falling back to plain ADMIN_PASSWORD")
		}
	}

	return nil
}

// ImageStorageEnabled reports whether uploads go to MinIO instead of data URIs
func (c *Config) ImageStorageEnabled() bool {
	return c.MinIO.Endpoint != ""
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
