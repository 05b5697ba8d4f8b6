// Package config загружает конфигурацию клиента и сервера через viper
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	serverEnvPrefix          = "SNIPKEEPER_SERVER"
	defaultHTTPAddress       = "0.0.0.0:8080"
	defaultDatabasePath      = "snipkeeper-server.db"
	defaultLogLevel          = "info"
	defaultAccessTTL         = 15 * time.Minute
	defaultRefreshTTL        = 30 * 24 * time.Hour
	defaultTombstoneTTL      = 30 * 24 * time.Hour
	defaultMaintenancePeriod = time.Hour
)

// ServerConfig captures runtime configuration for the folder server.
type ServerConfig struct {
	HTTPAddress       string
	DatabasePath      string
	LogLevel          string
	JWTSecret         string
	AccessTokenTTL    time.Duration
	RefreshTokenTTL   time.Duration
	TombstoneTTL      time.Duration
	MaintenancePeriod time.Duration
	MaxFileSize       int64
	RateLimit         RateLimitConfig
}

// RateLimitConfig лимиты запросов на IP
type RateLimitConfig struct {
	Requests     int
	AuthRequests int
	Window       time.Duration
}

// NewServerViper returns a viper instance with server defaults and env bindings configured.
func NewServerViper() *viper.Viper {
	v := viper.New()
	ApplyServerDefaults(v)
	return v
}

// ApplyServerDefaults configures defaults and env bindings on the provided viper instance.
func ApplyServerDefaults(v *viper.Viper) {
	v.SetEnvPrefix(serverEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http.address", defaultHTTPAddress)
	v.SetDefault("database.path", defaultDatabasePath)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("jwt.access_ttl", defaultAccessTTL)
	v.SetDefault("jwt.refresh_ttl", defaultRefreshTTL)
	v.SetDefault("files.max_size", 4<<20)
	v.SetDefault("files.tombstone_ttl", defaultTombstoneTTL)
	v.SetDefault("maintenance.interval", defaultMaintenancePeriod)
	v.SetDefault("ratelimit.requests", 300)
	v.SetDefault("ratelimit.auth_requests", 10)
	v.SetDefault("ratelimit.window", time.Minute)
}

// LoadServer parses server configuration from viper.
func LoadServer(v *viper.Viper) (ServerConfig, error) {
	cfg := ServerConfig{
		HTTPAddress:       v.GetString("http.address"),
		DatabasePath:      v.GetString("database.path"),
		LogLevel:          v.GetString("log.level"),
		JWTSecret:         v.GetString("jwt.secret"),
		AccessTokenTTL:    v.GetDuration("jwt.access_ttl"),
		RefreshTokenTTL:   v.GetDuration("jwt.refresh_ttl"),
		TombstoneTTL:      v.GetDuration("files.tombstone_ttl"),
		MaintenancePeriod: v.GetDuration("maintenance.interval"),
		MaxFileSize:       v.GetInt64("files.max_size"),
		RateLimit: RateLimitConfig{
			Requests:     v.GetInt("ratelimit.requests"),
			AuthRequests: v.GetInt("ratelimit.auth_requests"),
			Window:       v.GetDuration("ratelimit.window"),
		},
	}

	if err := cfg.validate(); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

func (c ServerConfig) validate() error {
	if len(strings.TrimSpace(c.JWTSecret)) < 16 {
		return fmt.Errorf("jwt.secret is required and must be at least 16 characters")
	}
	if strings.TrimSpace(c.DatabasePath) == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		return fmt.Errorf("jwt token TTLs must be positive")
	}
	if c.TombstoneTTL <= 0 || c.MaintenancePeriod <= 0 {
		return fmt.Errorf("files.tombstone_ttl and maintenance.interval must be positive")
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("ratelimit.window must be positive")
	}
	return nil
}
