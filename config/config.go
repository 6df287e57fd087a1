package config

import (
	"errors"
	"os"
	"time"

	"stickynotes/utils"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Port     string
	LogLevel string
	Database DatabaseConfig
	JWT      JWTConfig
	RedisURL string // empty disables the token blacklist
	CORS     CORSConfig

	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	URI             string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	DatabaseName    string
	RetryWrites     bool
	ConnectTimeout  time.Duration
}

type JWTConfig struct {
	Secret          string
	AccessLifetime  time.Duration
	RefreshLifetime time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// IsTest reports whether the server runs under GO_ENV=test.
func (c *Config) IsTest() bool {
	return c.Env == "test"
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	cfg := &Config{
		Env:      utils.GetEnvAsString("GO_ENV", "development"),
		Port:     utils.GetEnvAsString("PORT", "8000"),
		LogLevel: utils.GetEnvAsString("LOG_LEVEL", "info"),
		Database: LoadDatabaseConfig(),
		JWT: JWTConfig{
			Secret:          utils.GetEnvAsString("JWT_SECRET_KEY", ""),
			AccessLifetime:  utils.GetEnvAsDuration("JWT_EXPIRATION_TIME", 30*time.Minute),
			RefreshLifetime: utils.GetEnvAsDuration("REFRESH_TOKEN_EXPIRATION_TIME", 24*time.Hour),
		},
		RedisURL: utils.GetEnvAsString("REDIS_URL", ""),
		CORS: CORSConfig{
			AllowedOrigins: utils.GetEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		MaxBodyBytes:    utils.GetEnvAsInt64("MAX_BODY_BYTES", 1<<20),
		ShutdownTimeout: utils.GetEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if cfg.JWT.Secret == "" {
		if !cfg.IsTest() {
			return nil, errors.New("required environment variable JWT_SECRET_KEY is not set")
		}
		cfg.JWT.Secret = "test_secret_key"
	}
	return cfg, nil
}

func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URI:             utils.GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
		MaxPoolSize:     utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100),
		MinPoolSize:     utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10),
		MaxConnIdleTime: time.Duration(utils.GetEnvAsInt("MONGO_MAX_CONN_IDLE_TIME", 60)) * time.Second,
		DatabaseName:    utils.GetEnvAsString("MONGO_DB", "stickynotes"),
		RetryWrites:     utils.GetEnvAsBool("MONGO_RETRY_WRITES", true),
		ConnectTimeout:  utils.GetEnvAsDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
	}
}
