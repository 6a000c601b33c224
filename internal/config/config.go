package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Postgres     PostgresConfig
	Redis        RedisConfig
	Logger       LoggerConfig
	Auth         AuthConfig
	Registration RegistrationConfig
	AWS          AWSConfig
	Mail         MailConfig
	GoDaddy      GoDaddyConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	PublicURL             string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret             string
	AccessTokenTTLMinutes int
	BcryptCost            int
}

// RegistrationConfig carries the symmetric key protecting pending passwords.
type RegistrationConfig struct {
	EncryptionKey []byte
}

// AWSConfig holds credentials shared by the S3 and SES clients.
type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
}

// Configured reports whether AWS-backed features can be used.
func (a AWSConfig) Configured() bool {
	return a.Region != "" && a.AccessKeyID != "" && a.SecretAccessKey != ""
}

// MailConfig defines sender identity and default admin recipient.
type MailConfig struct {
	FromAddress  string
	AdminAddress string
}

// GoDaddyConfig holds reseller API credentials for domain availability.
type GoDaddyConfig struct {
	APIKey    string
	APISecret string
	BaseURL   string
}

// Configured reports whether domain search can be served.
func (g GoDaddyConfig) Configured() bool {
	return g.APIKey != "" && g.APISecret != ""
}

// Load reads configuration from environment variables, applying defaults where possible.
// It fails when REGISTRATION_ENCRYPTION_KEY is absent or malformed: pending
// registration passwords must stay decryptable across restarts.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	encryptionKey, err := parseEncryptionKey(os.Getenv("REGISTRATION_ENCRYPTION_KEY"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "support-portal"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			PublicURL:             getEnv("APP_PUBLIC_URL", "http://localhost:3000"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             getEnv("AUTH_JWT_SECRET", "dev-secret"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 60),
			BcryptCost:            getEnvAsInt("AUTH_BCRYPT_COST", 12),
		},
		Registration: RegistrationConfig{
			EncryptionKey: encryptionKey,
		},
		AWS: AWSConfig{
			Region:          os.Getenv("AWS_REGION"),
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			S3Bucket:        os.Getenv("S3_BUCKET_NAME"),
		},
		Mail: MailConfig{
			FromAddress:  getEnv("FROM_EMAIL", "noreply@example.com"),
			AdminAddress: os.Getenv("ADMIN_EMAIL"),
		},
		GoDaddy: GoDaddyConfig{
			APIKey:    os.Getenv("GODADDY_API_KEY"),
			APISecret: os.Getenv("GODADDY_API_SECRET"),
			BaseURL:   getEnv("GODADDY_API_URL", "https://api.godaddy.com"),
		},
	}

	return cfg, nil
}

func parseEncryptionKey(val string) ([]byte, error) {
	if val == "" {
		return nil, fmt.Errorf("REGISTRATION_ENCRYPTION_KEY is required (64 hex characters)")
	}
	key, err := hex.DecodeString(val)
	if err != nil || len(key) != 32 {
		return nil, fmt.Errorf("REGISTRATION_ENCRYPTION_KEY must be 64 hex characters (32 bytes)")
	}
	return key, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
