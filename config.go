package landing

import "github.com/goliatone/go-landing/internal/runtimeconfig"

var (
	ErrFallbackTemplateRequired = runtimeconfig.ErrFallbackTemplateRequired
	ErrStorageProviderUnknown   = runtimeconfig.ErrStorageProviderUnknown
	ErrCacheTTLInvalid          = runtimeconfig.ErrCacheTTLInvalid
	ErrLoggingProviderRequired  = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown   = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid      = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid     = runtimeconfig.ErrLoggingFormatInvalid
	ErrImportDirRequired        = runtimeconfig.ErrImportDirRequired
)

type (
	Config         = runtimeconfig.Config
	StorageConfig  = runtimeconfig.StorageConfig
	CacheConfig    = runtimeconfig.CacheConfig
	CommandsConfig = runtimeconfig.CommandsConfig
	ImportConfig   = runtimeconfig.ImportConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
	Features       = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
