package runtimeconfig_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-landing/internal/runtimeconfig"
)

func TestDefaultConfig_Validates(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.FallbackTemplate != "classic" {
		t.Fatalf("unexpected fallback template: %q", cfg.FallbackTemplate)
	}
	if cfg.Storage.Provider != "memory" {
		t.Fatalf("unexpected storage provider: %q", cfg.Storage.Provider)
	}
}

func TestValidate_FallbackTemplateRequired(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.FallbackTemplate = "  "
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrFallbackTemplateRequired) {
		t.Fatalf("expected fallback template error, got %v", err)
	}
}

func TestValidate_StorageProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage.Provider = "redis"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrStorageProviderUnknown) {
		t.Fatalf("expected provider error, got %v", err)
	}

	cfg.Storage.Provider = " Bun "
	if err := cfg.Validate(); err != nil {
		t.Fatalf("bun provider should validate: %v", err)
	}
}

func TestValidate_CacheTTL(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Cache.DefaultTTL = -1
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrCacheTTLInvalid) {
		t.Fatalf("expected cache ttl error, got %v", err)
	}
}

func TestValidate_ImportDirectory(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Import.Enabled = true
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrImportDirRequired) {
		t.Fatalf("expected import dir error, got %v", err)
	}
	cfg.Import.Directory = "testimonials"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("import config should validate: %v", err)
	}
}

func TestValidate_Logging(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderRequired) {
		t.Fatalf("expected provider required, got %v", err)
	}

	cfg.Logging.Provider = "zap"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected provider unknown, got %v", err)
	}

	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingLevelInvalid) {
		t.Fatalf("expected level error, got %v", err)
	}

	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected format error, got %v", err)
	}

	cfg.Logging.Format = "console"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("logging config should validate: %v", err)
	}
}
