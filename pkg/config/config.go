package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. REQCLIENT_BASE_URL.
const EnvPrefix = "REQCLIENT"

// Header merge policy names accepted in config.
const (
	HeaderMergeSkip     = "skip"
	HeaderMergeOverride = "override"
	HeaderMergeReject   = "reject"
)

// Config holds a client profile loaded from files and environment variables.
type Config struct {
	BaseURL        string            `mapstructure:"base_url"`
	Headers        map[string]string `mapstructure:"headers"`
	Serializer     string            `mapstructure:"serializer"`
	Deserializer   string            `mapstructure:"deserializer"`
	TimeoutSeconds int64             `mapstructure:"timeout_seconds"`
	Timeout        time.Duration     `mapstructure:"-"`
	HeaderMerge    string            `mapstructure:"header_merge"`
	StatusCheck    bool              `mapstructure:"status_check"`
	LogLevel       string            `mapstructure:"log_level"`

	RateLimitPerSecond float64 `mapstructure:"rate_limit_per_second"`
	RateLimitBurst     int     `mapstructure:"rate_limit_burst"`
}

// Load reads the profile from file (optional; yaml, json or toml by extension),
// then env files (".env" when none are given), then REQCLIENT_* variables.
// Missing env files are ignored.
func Load(file string, envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	v := viper.New()

	v.SetDefault("base_url", "")
	v.SetDefault("headers", map[string]string{})
	v.SetDefault("serializer", "json")
	v.SetDefault("deserializer", "")
	v.SetDefault("timeout_seconds", 30)
	v.SetDefault("header_merge", HeaderMergeSkip)
	v.SetDefault("status_check", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("rate_limit_per_second", 0)
	v.SetDefault("rate_limit_burst", 0)

	if file = strings.TrimSpace(file); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() error {
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	c.Serializer = strings.ToLower(strings.TrimSpace(c.Serializer))
	c.Deserializer = strings.ToLower(strings.TrimSpace(c.Deserializer))
	if c.Deserializer == "" {
		c.Deserializer = c.Serializer
	}
	if c.Headers == nil {
		c.Headers = map[string]string{}
	}

	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("invalid timeout_seconds (must be zero or positive seconds)")
	}
	c.Timeout = time.Duration(c.TimeoutSeconds) * time.Second

	c.HeaderMerge = strings.ToLower(strings.TrimSpace(c.HeaderMerge))
	switch c.HeaderMerge {
	case "":
		c.HeaderMerge = HeaderMergeSkip
	case HeaderMergeSkip, HeaderMergeOverride, HeaderMergeReject:
	default:
		return fmt.Errorf("invalid header_merge %q (want skip, override or reject)", c.HeaderMerge)
	}

	if c.RateLimitPerSecond < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("invalid rate limit (must not be negative)")
	}
	if c.RateLimitPerSecond > 0 && c.RateLimitBurst == 0 {
		c.RateLimitBurst = 1
	}
	return nil
}
