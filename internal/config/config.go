package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EnvConfigPath       = "CONFIG_PATH"
	EnvDBConnection     = "DB_CONNECTION"
	EnvAnthropicBaseURL = "ANTHROPIC_BASE_URL"
)

// AppConfig holds resolved application configuration values.
type AppConfig struct {
	ConfigPath string
}

// LoadFromEnv loads app config from environment variables.
func LoadFromEnv() (AppConfig, error) {
	return AppConfig{ConfigPath: ResolveConfigPath(os.Getenv(EnvConfigPath))}, nil
}

// ResolveConfigPath normalizes the config path and applies defaults.
func ResolveConfigPath(p string) string {
	trimmed := strings.TrimSpace(p)
	if trimmed == "" {
		trimmed = "./config.yaml"
	}
	if abs, err := filepath.Abs(trimmed); err == nil {
		return abs
	}
	return trimmed
}

// DefaultSQLiteDSN is used when no database DSN is configured.
const DefaultSQLiteDSN = "quoteforge.db"

// LoadDatabaseDSN reads the database DSN from env or the YAML config file.
// A missing DSN falls back to a local SQLite file so the server runs
// without any database setup.
func LoadDatabaseDSN(configPath string) string {
	if dsn := strings.TrimSpace(os.Getenv(EnvDBConnection)); dsn != "" {
		return dsn
	}

	// fileConfig maps the YAML fields needed for DSN resolution.
	type fileConfig struct {
		DatabaseDSN string `yaml:"database-dsn"`
		Database    struct {
			DSN string `yaml:"dsn"`
		} `yaml:"database"`
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return DefaultSQLiteDSN
	}

	var cfg fileConfig
	if errUnmarshal := yaml.Unmarshal(data, &cfg); errUnmarshal != nil {
		return DefaultSQLiteDSN
	}

	if dsn := strings.TrimSpace(cfg.DatabaseDSN); dsn != "" {
		return dsn
	}
	if dsn := strings.TrimSpace(cfg.Database.DSN); dsn != "" {
		return dsn
	}
	return DefaultSQLiteDSN
}

// AnthropicConfig holds upstream provider client settings.
type AnthropicConfig struct {
	BaseURL string        `yaml:"-"`
	Model   string        `yaml:"-"`
	Timeout time.Duration `yaml:"-"`
}

const (
	defaultAnthropicBaseURL = "https://api.anthropic.com"
	defaultAnthropicModel   = "claude-3-haiku-20240307"
	defaultAnthropicTimeout = 30 * time.Second
)

// LoadAnthropicConfig loads provider client settings from the YAML config file.
// Durations are YAML strings parsed with time.ParseDuration.
func LoadAnthropicConfig(configPath string) AnthropicConfig {
	// fileConfig maps the YAML fields needed for provider settings.
	type fileConfig struct {
		Anthropic struct {
			BaseURL string `yaml:"base-url"`
			Model   string `yaml:"model"`
			Timeout string `yaml:"timeout"`
		} `yaml:"anthropic"`
	}

	result := AnthropicConfig{
		BaseURL: defaultAnthropicBaseURL,
		Model:   defaultAnthropicModel,
		Timeout: defaultAnthropicTimeout,
	}

	data, errRead := os.ReadFile(configPath)
	if errRead == nil {
		var cfg fileConfig
		if errUnmarshal := yaml.Unmarshal(data, &cfg); errUnmarshal == nil {
			if v := strings.TrimSpace(cfg.Anthropic.BaseURL); v != "" {
				result.BaseURL = v
			}
			if v := strings.TrimSpace(cfg.Anthropic.Model); v != "" {
				result.Model = v
			}
			if raw := strings.TrimSpace(cfg.Anthropic.Timeout); raw != "" {
				if timeout, errParse := time.ParseDuration(raw); errParse == nil && timeout > 0 {
					result.Timeout = timeout
				}
			}
		}
	}

	if base := strings.TrimSpace(os.Getenv(EnvAnthropicBaseURL)); base != "" {
		result.BaseURL = base
	}
	return result
}

// RateLimitConfig holds probe rate limit settings.
type RateLimitConfig struct {
	Limit         *int   `yaml:"limit"`
	RedisEnabled  bool   `yaml:"redis-enabled"`
	RedisAddr     string `yaml:"redis-addr"`
	RedisPassword string `yaml:"redis-password"`
	RedisDB       int    `yaml:"redis-db"`
	RedisPrefix   string `yaml:"redis-prefix"`
}

const (
	// DefaultRateLimit allows a handful of probes per second per provider+client.
	DefaultRateLimit = 3
	// DefaultRateLimitRedisPrefix namespaces limiter keys in Redis.
	DefaultRateLimitRedisPrefix = "qf:rl"
)

// ResolvedRateLimit captures rate limit settings after defaults are applied.
type ResolvedRateLimit struct {
	Limit         int
	RedisEnabled  bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// LoadRateLimitConfig loads probe rate limit settings from the YAML config file.
// An explicit zero limit disables limiting; an omitted limit uses the default.
func LoadRateLimitConfig(configPath string) ResolvedRateLimit {
	// fileConfig maps the YAML fields needed for rate limit settings.
	type fileConfig struct {
		RateLimit RateLimitConfig `yaml:"rate-limit"`
	}

	result := ResolvedRateLimit{
		Limit:       DefaultRateLimit,
		RedisPrefix: DefaultRateLimitRedisPrefix,
	}

	data, errRead := os.ReadFile(configPath)
	if errRead != nil {
		return result
	}
	var cfg fileConfig
	if errUnmarshal := yaml.Unmarshal(data, &cfg); errUnmarshal != nil {
		return result
	}

	if cfg.RateLimit.Limit != nil && *cfg.RateLimit.Limit >= 0 {
		result.Limit = *cfg.RateLimit.Limit
	}
	result.RedisEnabled = cfg.RateLimit.RedisEnabled
	result.RedisAddr = strings.TrimSpace(cfg.RateLimit.RedisAddr)
	result.RedisPassword = strings.TrimSpace(cfg.RateLimit.RedisPassword)
	result.RedisDB = cfg.RateLimit.RedisDB
	if result.RedisDB < 0 {
		result.RedisDB = 0
	}
	result.RedisPrefix = strings.TrimSpace(cfg.RateLimit.RedisPrefix)
	if result.RedisPrefix == "" {
		result.RedisPrefix = DefaultRateLimitRedisPrefix
	}
	return result
}

// ValidationConfig holds client-facing validation behavior settings.
type ValidationConfig struct {
	DebounceWindow time.Duration
}

// defaultDebounceWindow matches the UI's typing debounce.
const defaultDebounceWindow = time.Second

// LoadValidationConfig loads validation settings from the YAML config file.
// Durations are YAML strings parsed with time.ParseDuration.
func LoadValidationConfig(configPath string) ValidationConfig {
	// fileConfig maps the YAML fields needed for validation settings.
	type fileConfig struct {
		Validation struct {
			DebounceWindow string `yaml:"debounce-window"`
		} `yaml:"validation"`
	}

	result := ValidationConfig{DebounceWindow: defaultDebounceWindow}

	data, errRead := os.ReadFile(configPath)
	if errRead == nil {
		var cfg fileConfig
		if errUnmarshal := yaml.Unmarshal(data, &cfg); errUnmarshal == nil {
			if raw := strings.TrimSpace(cfg.Validation.DebounceWindow); raw != "" {
				if window, errParse := time.ParseDuration(raw); errParse == nil && window > 0 {
					result.DebounceWindow = window
				}
			}
		}
	}
	return result
}
