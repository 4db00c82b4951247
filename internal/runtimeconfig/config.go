package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrFallbackTemplateRequired = errors.New("landing config: fallback template id is required")
var ErrStorageProviderUnknown = errors.New("landing config: storage provider is invalid")
var ErrCacheTTLInvalid = errors.New("landing config: cache ttl must be zero or positive")
var ErrLoggingProviderRequired = errors.New("landing config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("landing config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("landing config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("landing config: logging format is invalid")
var ErrImportDirRequired = errors.New("landing config: testimonial import directory is required when import is enabled")

// Config aggregates feature flags and adapter bindings for the landing module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled          bool
	FallbackTemplate string
	Storage          StorageConfig
	Cache            CacheConfig
	Commands         CommandsConfig
	Import           ImportConfig
	Logging          LoggingConfig
	Features         Features
}

// StorageConfig selects the persistence backend for tenant records.
type StorageConfig struct {
	// Provider is "memory" or "bun".
	Provider string
	// Driver and DSN configure the bun provider ("sqlite" or "postgres").
	Driver string
	DSN    string
}

// CacheConfig captures repository cache behaviour.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled bool
	Timeout time.Duration
}

// ImportConfig captures markdown testimonial ingestion behaviour.
type ImportConfig struct {
	Enabled   bool
	Directory string
}

// LoggingConfig selects the logging provider wired into module loggers.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles optional landing subsystems.
type Features struct {
	Tenants  bool
	Commands bool
	Import   bool
	Logger   bool
}

// DefaultConfig returns opinionated defaults: builtin catalog, memory
// storage, logging disabled.
func DefaultConfig() Config {
	return Config{
		Enabled:          true,
		FallbackTemplate: "classic",
		Storage: StorageConfig{
			Provider: "memory",
			Driver:   "sqlite",
		},
		Cache: CacheConfig{
			Enabled:    false,
			DefaultTTL: time.Minute,
		},
		Commands: CommandsConfig{
			Enabled: true,
			Timeout: 30 * time.Second,
		},
		Features: Features{
			Tenants:  true,
			Commands: true,
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.FallbackTemplate) == "" {
		return ErrFallbackTemplateRequired
	}
	if provider := NormalizeProvider(cfg.Storage.Provider); provider != "" && provider != "memory" && provider != "bun" {
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, provider)
	}
	if cfg.Cache.DefaultTTL < 0 {
		return ErrCacheTTLInvalid
	}
	if cfg.Import.Enabled {
		if strings.TrimSpace(cfg.Import.Directory) == "" {
			return ErrImportDirRequired
		}
	}
	if cfg.Features.Logger {
		provider := NormalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if provider != "gologger" {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

// NormalizeProvider lowercases and trims a provider identifier.
func NormalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
