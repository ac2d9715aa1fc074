package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Storage backends. These live here instead of internal/util because util
// logs through pkg/logger, which reads config; a util import would cycle.
const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig      `mapstructure:"auth"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Web       WebConfig       `mapstructure:"web"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// Runtime flags, set from the command line rather than the config file.
	ForceMigrate bool `mapstructure:"-"`
	MigrateOnly  bool `mapstructure:"-"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

// AuthConfig selects how caller identity is resolved.
//
// Mode "header" trusts the numeric X-User-Id request header as-is; there is
// no signature or session behind it. That matches the system this backend
// replaces and is assumed to sit behind a separately authenticated gateway;
// whether it should survive is an open product question. Mode "token"
// validates a JWT instead without touching any handler.
type AuthConfig struct {
	Mode          string        `mapstructure:"mode"`
	JWTSecret     string        `mapstructure:"jwt_secret"`
	JWTExpireTime time.Duration `mapstructure:"jwt_expire_hours"`

	// AdminFallbackUserID is a legacy rule: this user id passes admin checks
	// even without an admin role row. 0 disables the fallback.
	AdminFallbackUserID uint `mapstructure:"admin_fallback_user_id"`
}

type StorageConfig struct {
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
}

// WebConfig points at the built SPA bundle served on route misses.
type WebConfig struct {
	DistPath string `mapstructure:"dist_path"`
	Index    string `mapstructure:"index"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("SPRINT_EDU")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// Auth
	viper.BindEnv("auth.mode", "AUTH_MODE")
	viper.BindEnv("auth.jwt_secret", "JWT_SECRET")
	viper.BindEnv("auth.admin_fallback_user_id", "ADMIN_FALLBACK_USER_ID")

	// Server
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Storage
	viper.BindEnv("storage.type", "STORAGE_TYPE")
	viper.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("storage.minio_bucket", "MINIO_BUCKET")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Auth.JWTExpireTime = cfg.Auth.JWTExpireTime * time.Hour

	if cfg.Auth.Mode == "token" && cfg.Server.Mode == "release" && len(cfg.Auth.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.Auth.JWTSecret))
	}

	if cfg.Storage.Type == StorageLocal {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, 0755)
		}
	}

	return &cfg, nil
}
