package di

import (
	"fmt"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	buildercmd "github.com/goliatone/go-landing/internal/commands/builder"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/internal/logging/gologger"
	"github.com/goliatone/go-landing/internal/resolver"
	"github.com/goliatone/go-landing/internal/runtimeconfig"
	"github.com/goliatone/go-landing/internal/storage"
	"github.com/goliatone/go-landing/internal/templates"
	"github.com/goliatone/go-landing/internal/tenants"
	"github.com/goliatone/go-landing/landing"
	"github.com/goliatone/go-landing/pkg/interfaces"
	landingtemplates "github.com/goliatone/go-landing/templates"
)

// Container wires module dependencies. Defaults favour in-process adapters so
// the module stays usable without external infrastructure.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider

	registry *landingtemplates.Registry
	catalog  *templates.Catalog

	bunDB         *bun.DB
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	tenantRepo      tenants.TenantRepository
	testimonialRepo tenants.TestimonialRepository

	resolverSvc landing.Service
	tenantSvc   tenants.Service

	updateSectionHandler   *buildercmd.UpdateSectionHandler
	reorderSectionsHandler *buildercmd.ReorderSectionsHandler
	chooseTemplateHandler  *buildercmd.ChooseTemplateHandler
	importHandler          *buildercmd.ImportTestimonialsHandler
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the default logging provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithTemplateRegistry overrides the built-in template registry.
func WithTemplateRegistry(registry *landingtemplates.Registry) Option {
	return func(c *Container) {
		c.registry = registry
	}
}

// WithBunDB supplies an existing database handle instead of opening one from
// the storage configuration.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache enables the repository cache decorators on bun-backed repositories.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithTenantRepository overrides the default tenant repository binding.
func WithTenantRepository(repo tenants.TenantRepository) Option {
	return func(c *Container) {
		c.tenantRepo = repo
	}
}

// WithTestimonialRepository overrides the default testimonial repository binding.
func WithTestimonialRepository(repo tenants.TestimonialRepository) Option {
	return func(c *Container) {
		c.testimonialRepo = repo
	}
}

// WithResolverService overrides the default resolver service binding.
func WithResolverService(svc landing.Service) Option {
	return func(c *Container) {
		c.resolverSvc = svc
	}
}

// WithTenantService overrides the default tenant service binding.
func WithTenantService(svc tenants.Service) Option {
	return func(c *Container) {
		c.tenantSvc = svc
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:   cfg,
		cacheTTL: cacheTTL,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.configureCacheDefaults()

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	if err := c.configureCatalog(); err != nil {
		return nil, err
	}
	if err := c.configureTenants(); err != nil {
		return nil, err
	}
	c.configureResolver()
	c.configureCommands()

	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.Config.Logging.Level,
		Format:    c.Config.Logging.Format,
		AddSource: c.Config.Logging.AddSource,
		Focus:     c.Config.Logging.Focus,
	})
	if err != nil {
		return fmt.Errorf("di: configure logging: %w", err)
	}
	c.loggerProvider = provider
	return nil
}

func (c *Container) configureCatalog() error {
	if c.registry == nil {
		c.registry = templates.Builtin()
	}
	catalog, err := templates.NewCatalog(c.registry,
		templates.WithFallbackTemplate(c.Config.FallbackTemplate),
		templates.WithLogger(logging.CatalogLogger(c.loggerProvider)),
	)
	if err != nil {
		return err
	}
	c.catalog = catalog
	return nil
}

func (c *Container) configureTenants() error {
	if !c.Config.Features.Tenants {
		return nil
	}

	if c.tenantRepo == nil || c.testimonialRepo == nil {
		switch runtimeconfig.NormalizeProvider(c.Config.Storage.Provider) {
		case "bun":
			if c.bunDB == nil {
				db, err := storage.Open(storage.Config{
					Driver: c.Config.Storage.Driver,
					DSN:    c.Config.Storage.DSN,
				})
				if err != nil {
					return err
				}
				c.bunDB = db
			}
			cacheService, serializer := c.cacheBindings()
			if c.tenantRepo == nil {
				c.tenantRepo = tenants.NewBunTenantRepositoryWithCache(c.bunDB, cacheService, serializer)
			}
			if c.testimonialRepo == nil {
				c.testimonialRepo = tenants.NewBunTestimonialRepositoryWithCache(c.bunDB, cacheService, serializer)
			}
		default:
			if c.tenantRepo == nil {
				c.tenantRepo = tenants.NewMemoryTenantRepository()
			}
			if c.testimonialRepo == nil {
				c.testimonialRepo = tenants.NewMemoryTestimonialRepository()
			}
		}
	}

	if c.tenantSvc == nil {
		c.tenantSvc = tenants.NewService(
			c.tenantRepo,
			c.testimonialRepo,
			c.catalog,
			tenants.WithLogger(logging.TenantsLogger(c.loggerProvider)),
		)
	}
	return nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) cacheBindings() (repocache.CacheService, repocache.KeySerializer) {
	if !c.Config.Cache.Enabled {
		return nil, nil
	}
	return c.cacheService, c.keySerializer
}

func (c *Container) configureResolver() {
	if c.resolverSvc != nil {
		return
	}
	c.resolverSvc = resolver.NewService(c.catalog,
		resolver.WithLogger(logging.ResolverLogger(c.loggerProvider)),
	)
}

func (c *Container) configureCommands() {
	if !c.Config.Features.Commands || c.tenantSvc == nil {
		return
	}

	logger := logging.ModuleLogger(c.loggerProvider, "landing.commands")
	timeout := c.Config.Commands.Timeout

	c.updateSectionHandler = buildercmd.NewUpdateSectionHandler(c.tenantSvc, logger,
		commandTimeout[buildercmd.UpdateSectionCommand](timeout)...)
	c.reorderSectionsHandler = buildercmd.NewReorderSectionsHandler(c.tenantSvc, logger,
		commandTimeout[buildercmd.ReorderSectionsCommand](timeout)...)
	c.chooseTemplateHandler = buildercmd.NewChooseTemplateHandler(c.tenantSvc, logger,
		commandTimeout[buildercmd.ChooseTemplateCommand](timeout)...)

	if c.Config.Features.Import {
		c.importHandler = buildercmd.NewImportTestimonialsHandler(c.tenantSvc,
			logging.ImportLogger(c.loggerProvider),
			commandTimeout[buildercmd.ImportTestimonialsCommand](timeout)...)
	}
}

// Catalog returns the immutable template catalog.
func (c *Container) Catalog() *templates.Catalog {
	return c.catalog
}

// TemplateRegistry returns the registry the catalog was built from.
func (c *Container) TemplateRegistry() *landingtemplates.Registry {
	return c.registry
}

// ResolverService returns the landing resolution service.
func (c *Container) ResolverService() landing.Service {
	return c.resolverSvc
}

// TenantService returns the tenant builder service, or nil when disabled.
func (c *Container) TenantService() tenants.Service {
	return c.tenantSvc
}

// LoggerProvider returns the configured logging provider, or nil.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// CacheService returns the repository cache binding, or nil when caching is
// disabled.
func (c *Container) CacheService() repocache.CacheService {
	return c.cacheService
}

// CacheKeySerializer returns the cache key serializer paired with the cache
// service.
func (c *Container) CacheKeySerializer() repocache.KeySerializer {
	return c.keySerializer
}

// DB returns the database handle when bun storage is configured.
func (c *Container) DB() *bun.DB {
	return c.bunDB
}

// UpdateSectionHandler returns the section update command handler.
func (c *Container) UpdateSectionHandler() *buildercmd.UpdateSectionHandler {
	return c.updateSectionHandler
}

// ReorderSectionsHandler returns the section reorder command handler.
func (c *Container) ReorderSectionsHandler() *buildercmd.ReorderSectionsHandler {
	return c.reorderSectionsHandler
}

// ChooseTemplateHandler returns the template selection command handler.
func (c *Container) ChooseTemplateHandler() *buildercmd.ChooseTemplateHandler {
	return c.chooseTemplateHandler
}

// ImportTestimonialsHandler returns the markdown import handler, or nil when
// the import feature is disabled.
func (c *Container) ImportTestimonialsHandler() *buildercmd.ImportTestimonialsHandler {
	return c.importHandler
}
