package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/iudanet/snipkeeper/internal/models"
	"github.com/iudanet/snipkeeper/internal/retry"
)

const (
	clientEnvPrefix     = "SNIPKEEPER"
	defaultSyncInterval = 5 * time.Minute
	defaultDebounce     = 500 * time.Millisecond
	defaultChannel      = "snipkeeper:catalog"
)

// providerKeys настройки, передаваемые адаптерам как есть
var providerKeys = []string{
	"relay.url",
	"gdrive.client_id",
	"gdrive.client_secret",
	"gdrive.endpoint",
	"s3.endpoint",
	"s3.access_key",
	"s3.secret_key",
	"s3.use_ssl",
	"s3.region",
	"git.cache_dir",
}

// ClientConfig captures runtime configuration for the snipkeeper CLI.
type ClientConfig struct {
	Providers     map[string]string // Providers настройки адаптеров по полному ключу
	DataDir       string
	LogLevel      string
	NotifyURL     string // NotifyURL redis для оповещений между процессами, пусто = выключено
	NotifyChannel string
	ResolveMode   models.ResolveMode
	Retry         retry.Policy
	SyncInterval  time.Duration
	WatchDebounce time.Duration
	Concurrency   int
}

// NewClientViper returns a viper instance with client defaults and env bindings configured.
func NewClientViper() *viper.Viper {
	v := viper.New()
	ApplyClientDefaults(v)
	return v
}

// ApplyClientDefaults configures defaults and env bindings on the provided viper instance.
func ApplyClientDefaults(v *viper.Viper) {
	v.SetEnvPrefix(clientEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	policy := retry.DefaultPolicy()

	v.SetDefault("data.dir", defaultDataDir())
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("retry.max_attempts", policy.MaxAttempts)
	v.SetDefault("retry.base_delay", policy.BaseDelay)
	v.SetDefault("retry.max_delay", policy.MaxDelay)
	v.SetDefault("retry.op_timeout", policy.OpTimeout)
	v.SetDefault("notify.redis_url", "")
	v.SetDefault("notify.channel", defaultChannel)
	v.SetDefault("sync.interval", defaultSyncInterval)
	v.SetDefault("sync.concurrency", 4)
	v.SetDefault("watch.debounce", defaultDebounce)
	v.SetDefault("resolve.mode", string(models.ResolvePriority))
	v.SetDefault("s3.use_ssl", "true")

	// AutomaticEnv видит только известные ключи
	for _, key := range providerKeys {
		_ = v.BindEnv(key)
	}
}

// ReadClientFile merges a config file into v. An empty path is a no-op.
func ReadClientFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return nil
}

// LoadClient parses client configuration from viper.
func LoadClient(v *viper.Viper) (ClientConfig, error) {
	cfg := ClientConfig{
		DataDir:       v.GetString("data.dir"),
		LogLevel:      v.GetString("log.level"),
		NotifyURL:     v.GetString("notify.redis_url"),
		NotifyChannel: v.GetString("notify.channel"),
		ResolveMode:   models.ResolveMode(strings.ToLower(strings.TrimSpace(v.GetString("resolve.mode")))),
		SyncInterval:  v.GetDuration("sync.interval"),
		WatchDebounce: v.GetDuration("watch.debounce"),
		Concurrency:   v.GetInt("sync.concurrency"),
		Retry: retry.Policy{
			MaxAttempts: v.GetInt("retry.max_attempts"),
			BaseDelay:   v.GetDuration("retry.base_delay"),
			MaxDelay:    v.GetDuration("retry.max_delay"),
			OpTimeout:   v.GetDuration("retry.op_timeout"),
		},
		Providers: make(map[string]string, len(providerKeys)),
	}
	for _, key := range providerKeys {
		if val := v.GetString(key); val != "" {
			cfg.Providers[key] = val
		}
	}

	if err := cfg.validate(); err != nil {
		return ClientConfig{}, err
	}
	return cfg, nil
}

// Path returns a file path inside the data directory.
func (c ClientConfig) Path(name string) string {
	return filepath.Join(c.DataDir, name)
}

func (c ClientConfig) validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("data.dir is required")
	}
	switch c.ResolveMode {
	case models.ResolvePriority, models.ResolveUsageFirst:
	default:
		return fmt.Errorf("resolve.mode must be %q or %q", models.ResolvePriority, models.ResolveUsageFirst)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry.max_attempts must be at least 1")
	}
	if c.Retry.BaseDelay <= 0 || c.Retry.MaxDelay < c.Retry.BaseDelay {
		return fmt.Errorf("retry delays must be positive and max_delay >= base_delay")
	}
	if c.SyncInterval <= 0 || c.WatchDebounce <= 0 {
		return fmt.Errorf("sync.interval and watch.debounce must be positive")
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("sync.concurrency must be at least 1")
	}
	return nil
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".snipkeeper"
	}
	return filepath.Join(dir, "snipkeeper")
}
