// Package config loads service settings from the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
)

const (
	DefaultPort            = "8080"
	DefaultGinMode         = "release"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
	DefaultMinKeyLength    = 3
	DefaultMaxKeyLength    = 256
	DefaultMaxTextLength   = 10000
	DefaultShutdownTimeout = 5 * time.Second
)

// Config holds everything the HTTP boundary needs. The cipher itself has no
// settings beyond FoldDiacritics.
type Config struct {
	Port            string
	GinMode         string
	LogLevel        string
	LogFormat       string
	AllowOrigins    []string
	MinKeyLength    int
	MaxKeyLength    int
	MaxTextLength   int
	FoldDiacritics  bool
	ShutdownTimeout time.Duration
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		Port:            DefaultPort,
		GinMode:         DefaultGinMode,
		LogLevel:        DefaultLogLevel,
		LogFormat:       DefaultLogFormat,
		AllowOrigins:    []string{"*"},
		MinKeyLength:    DefaultMinKeyLength,
		MaxKeyLength:    DefaultMaxKeyLength,
		MaxTextLength:   DefaultMaxTextLength,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// Load reads the configuration from environment variables on top of Default.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := getenv("GIN_MODE"); v != "" {
		cfg.GinMode = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v := getenv("CORS_ALLOW_ORIGINS"); v != "" {
		cfg.AllowOrigins = splitList(v)
	}

	var err error
	if cfg.MinKeyLength, err = intVar(getenv, "VIGENERE_MIN_KEY_LENGTH", cfg.MinKeyLength); err != nil {
		return cfg, err
	}
	if cfg.MaxKeyLength, err = intVar(getenv, "VIGENERE_MAX_KEY_LENGTH", cfg.MaxKeyLength); err != nil {
		return cfg, err
	}
	if cfg.MaxTextLength, err = intVar(getenv, "VIGENERE_MAX_TEXT_LENGTH", cfg.MaxTextLength); err != nil {
		return cfg, err
	}
	if v := getenv("VIGENERE_FOLD_DIACRITICS"); v != "" {
		if cfg.FoldDiacritics, err = strconv.ParseBool(v); err != nil {
			return cfg, fmt.Errorf("VIGENERE_FOLD_DIACRITICS: %w", err)
		}
	}
	if v := getenv("SHUTDOWN_TIMEOUT"); v != "" {
		if cfg.ShutdownTimeout, err = time.ParseDuration(v); err != nil {
			return cfg, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
		}
	}

	return cfg, cfg.Validate()
}

// Validate checks limits and enumerated values.
func (c Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New("port is required"))
	}
	switch c.GinMode {
	case "release", "debug", "test":
	default:
		errs = append(errs, fmt.Errorf("unknown gin mode %q", c.GinMode))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}
	if c.MinKeyLength < 1 {
		errs = append(errs, errors.New("minimum key length must be positive"))
	}
	if c.MaxKeyLength < 1 {
		errs = append(errs, errors.New("maximum key length must be positive"))
	}
	if c.MinKeyLength > c.MaxKeyLength {
		errs = append(errs, fmt.Errorf("minimum key length %d exceeds maximum %d", c.MinKeyLength, c.MaxKeyLength))
	}
	if c.MaxTextLength < 1 {
		errs = append(errs, errors.New("maximum text length must be positive"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("shutdown timeout must be positive"))
	}
	// cors.New panics on an origin without a scheme, so check it here.
	if len(c.AllowOrigins) > 0 && !slices.Contains(c.AllowOrigins, "*") {
		if err := (cors.Config{AllowOrigins: c.AllowOrigins}).Validate(); err != nil {
			errs = append(errs, fmt.Errorf("CORS_ALLOW_ORIGINS: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Address is the listen address for the HTTP server.
func (c Config) Address() string {
	return ":" + c.Port
}

func intVar(getenv func(string) string, name string, fallback int) (int, error) {
	v := getenv(name)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
