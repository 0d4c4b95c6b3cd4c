package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/wandertools/wandertools/internal/collector"
)

// Config holds application configuration.
type Config struct {
	Feedback FeedbackConfig
	Database DatabaseConfig
	UI       UIConfig
	Log      LogConfig
	Metrics  MetricsConfig
}

// FeedbackConfig points the feedback dialog at the collection endpoint.
type FeedbackConfig struct {
	Endpoint string
	AppName  string `mapstructure:"app_name"`
	Timeout  time.Duration
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings. Theme "system" follows the
// terminal background.
type UIConfig struct {
	Theme      string
	ContactURL string `mapstructure:"contact_url"`
}

type LogConfig struct {
	Path  string
	Level string
}

type MetricsConfig struct {
	Addr string
}

// Load reads configuration from file and env. Env var overrides use prefix WANDERTOOLS_.
func Load() (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("feedback.endpoint", collector.DefaultEndpoint)
	v.SetDefault("feedback.app_name", "WanderTools")
	v.SetDefault("feedback.timeout", "30s")
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "wandertools", "wandertools.db"))
	v.SetDefault("ui.theme", "system")
	v.SetDefault("ui.contact_url", "https://instagram.com/ad.fgrd")
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "wandertools", "wandertools.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("metrics.addr", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("WANDERTOOLS_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "wandertools"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("WANDERTOOLS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the program cannot start with.
func (c Config) Validate() error {
	u, err := url.Parse(strings.TrimSpace(c.Feedback.Endpoint))
	if err != nil || c.Feedback.Endpoint == "" {
		return fmt.Errorf("config: feedback.endpoint %q is not a valid URL", c.Feedback.Endpoint)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("config: feedback.endpoint must be http or https, got %q", c.Feedback.Endpoint)
	}
	if strings.TrimSpace(c.Feedback.AppName) == "" {
		return fmt.Errorf("config: feedback.app_name is required")
	}
	if c.Feedback.Timeout <= 0 {
		return fmt.Errorf("config: feedback.timeout must be positive, got %s", c.Feedback.Timeout)
	}
	switch c.UI.Theme {
	case "system", "dark", "light":
	default:
		return fmt.Errorf("config: ui.theme must be system, dark or light, got %q", c.UI.Theme)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error", "disabled":
	default:
		return fmt.Errorf("config: log.level %q is not supported", c.Log.Level)
	}
	return nil
}
