// Package config loads the process-wide configuration: the AWX connection,
// the authentication provider, logging and the optional invocation history.
package config

import (
	"context"
	"crypto/tls"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tuanngd/awxtool/internal/auth"
	"github.com/tuanngd/awxtool/internal/common"
)

// AWXConfig describes the target AWX instance.
type AWXConfig struct {
	BaseURL       string `mapstructure:"base_url"`
	Timeout       string `mapstructure:"timeout"`
	Insecure      bool   `mapstructure:"insecure"`
	MinTLSVersion string `mapstructure:"min_tls_version"`
	// RateLimit is requests/minute per tool; zero disables limiting.
	RateLimit int `mapstructure:"rate_limit"`
	Burst     int `mapstructure:"burst"`
}

// AuthConfig selects and configures the credential provider.
type AuthConfig struct {
	// Provider type key ("token", "basic", "oauth2", "session").
	Type string `mapstructure:"type"`
	// Logical name under which the acquired credential is stored.
	Name string `mapstructure:"name"`
	// Provider-specific configuration.
	Config map[string]any `mapstructure:"config"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level         string `mapstructure:"level"`  // error, warn, info, debug
	Format        string `mapstructure:"format"` // text, json
	MaskSensitive *bool  `mapstructure:"mask_sensitive"`
}

// HistoryConfig controls the sqlite invocation history.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Config is the root configuration document.
type Config struct {
	AWX     AWXConfig     `mapstructure:"awx"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Logging LoggingConfig `mapstructure:"logging"`
	History HistoryConfig `mapstructure:"history"`
}

// Load reads the YAML config at path (optional) and applies AWXTOOL_* env
// overrides plus the legacy ANSIBLE_* variables the original tooling used.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("AWXTOOL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("awx.timeout", "30s")
	v.SetDefault("awx.rate_limit", 0)
	v.SetDefault("awx.burst", 1)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("history.path", "awxtool.db")

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("config: read %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.applyLegacyEnv()

	if strings.TrimSpace(cfg.AWX.BaseURL) == "" {
		return nil, fmt.Errorf("config: awx.base_url is required (or ANSIBLE_BASE_URL)")
	}
	return &cfg, nil
}

// applyLegacyEnv fills gaps from the ANSIBLE_* variables so existing
// deployments keep working without a config file.
func (c *Config) applyLegacyEnv() {
	if strings.TrimSpace(c.AWX.BaseURL) == "" {
		c.AWX.BaseURL = os.Getenv("ANSIBLE_BASE_URL")
	}
	if strings.TrimSpace(c.Auth.Type) != "" {
		return
	}
	token := os.Getenv("ANSIBLE_TOKEN")
	username := os.Getenv("ANSIBLE_USERNAME")
	password := os.Getenv("ANSIBLE_PASSWORD")
	switch {
	case token != "":
		c.Auth.Type = "token"
		c.Auth.Config = map[string]any{"token": token}
	case username != "" && password != "":
		c.Auth.Type = "basic"
		c.Auth.Config = map[string]any{"username": username, "password": password}
	}
}

// Timeout parses the request timeout, falling back to 30s on bad input.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(c.AWX.Timeout))
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// TLSConfig builds the TLS settings, or nil when defaults suffice.
func (c *Config) TLSConfig() *tls.Config {
	min := tlsVersion(c.AWX.MinTLSVersion)
	if !c.AWX.Insecure && min == 0 {
		return nil
	}
	// #nosec G402 -- InsecureSkipVerify is an explicit operator opt-in for lab AWX instances
	return &tls.Config{InsecureSkipVerify: c.AWX.Insecure, MinVersion: min}
}

func tlsVersion(s string) uint16 {
	switch strings.TrimSpace(s) {
	case "1.2":
		return tls.VersionTLS12
	case "1.3":
		return tls.VersionTLS13
	default:
		return 0
	}
}

// SetupLogger installs the global logger according to the logging section.
func (c *Config) SetupLogger() *common.Logger {
	level := common.ParseLogLevel(c.Logging.Level)
	var logger *common.Logger
	if strings.EqualFold(strings.TrimSpace(c.Logging.Format), "json") {
		logger = common.NewJSONLogger(level)
	} else {
		logger = common.NewLogger(level)
	}
	common.SetDefaultLogger(logger)
	if c.Logging.MaskSensitive != nil {
		common.EnableMasking(*c.Logging.MaskSensitive)
	}
	return logger
}

// AcquireAuth resolves the configured provider and returns the header value
// to attach to every request. An empty provider type means anonymous access.
func (c *Config) AcquireAuth(ctx context.Context) (string, error) {
	typ := strings.TrimSpace(c.Auth.Type)
	if typ == "" {
		return "", nil
	}
	spec := c.Auth.Config
	if spec == nil {
		spec = map[string]any{}
	}
	// Session and oauth2 providers need the instance URL; default it in.
	if _, ok := spec["base_url"]; !ok {
		spec["base_url"] = c.AWX.BaseURL
	}
	return auth.Acquire(ctx, typ, c.Auth.Name, spec)
}
