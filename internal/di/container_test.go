package di_test

import (
	"context"
	"testing"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"

	"github.com/goliatone/go-landing/internal/di"
	"github.com/goliatone/go-landing/internal/runtimeconfig"
	"github.com/goliatone/go-landing/internal/tenants"
	"github.com/goliatone/go-landing/landing"
	landingtemplates "github.com/goliatone/go-landing/templates"
)

func TestNewContainer_Defaults(t *testing.T) {
	container, err := di.NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	if container.Catalog() == nil {
		t.Fatal("expected catalog")
	}
	if container.Catalog().FallbackTemplateID() != "classic" {
		t.Fatalf("unexpected fallback template: %q", container.Catalog().FallbackTemplateID())
	}
	if container.ResolverService() == nil {
		t.Fatal("expected resolver service")
	}
	if container.TenantService() == nil {
		t.Fatal("expected tenant service with default features")
	}
	if container.UpdateSectionHandler() == nil || container.ReorderSectionsHandler() == nil || container.ChooseTemplateHandler() == nil {
		t.Fatal("expected builder command handlers")
	}
	if container.ImportTestimonialsHandler() != nil {
		t.Fatal("import handler should be nil when the feature is disabled")
	}
	if container.DB() != nil {
		t.Fatal("memory storage should not open a database")
	}
}

func TestNewContainer_InvalidConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.FallbackTemplate = ""
	if _, err := di.NewContainer(cfg); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestNewContainer_FeaturesDisabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Tenants = false
	cfg.Features.Commands = false

	container, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	if container.TenantService() != nil {
		t.Fatal("tenant service should be nil when disabled")
	}
	if container.UpdateSectionHandler() != nil {
		t.Fatal("command handlers should be nil when disabled")
	}
	if container.ResolverService() == nil {
		t.Fatal("resolver stays available regardless of features")
	}
}

func TestNewContainer_CustomRegistry(t *testing.T) {
	registry := landingtemplates.NewRegistry()
	registry.Register(landingtemplates.RegisterTemplateInput{
		ID:    "bespoke",
		Name:  "Bespoke",
		Order: []landing.SectionType{landing.SectionHero},
		Defaults: map[landing.SectionType]landing.SectionConfig{
			landing.SectionHero: {Enabled: true, Variant: "hero1"},
		},
		Variants: map[landing.SectionType][]string{
			landing.SectionHero: {"hero1"},
		},
	})

	cfg := runtimeconfig.DefaultConfig()
	cfg.FallbackTemplate = "bespoke"

	container, err := di.NewContainer(cfg, di.WithTemplateRegistry(registry))
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	if container.Catalog().FallbackTemplateID() != "bespoke" {
		t.Fatalf("custom registry not wired: %q", container.Catalog().FallbackTemplateID())
	}

	sections, err := container.ResolverService().Resolve(context.Background(), landing.ResolveInput{TemplateID: "bespoke"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(sections) != 1 || sections[0].Type != landing.SectionHero {
		t.Fatalf("unexpected render plan: %v", sections)
	}
}

func TestNewContainer_CacheDefaults(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Cache.Enabled = true
	cfg.Cache.DefaultTTL = 5 * time.Minute

	container, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	if container.CacheService() == nil {
		t.Fatal("enabling the cache should build a default cache service")
	}
	if container.CacheKeySerializer() == nil {
		t.Fatal("a default key serializer should accompany the cache service")
	}
}

func TestNewContainer_CacheDisabled(t *testing.T) {
	container, err := di.NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	if container.CacheService() != nil || container.CacheKeySerializer() != nil {
		t.Fatal("cache bindings should stay nil while caching is disabled")
	}
}

func TestNewContainer_CacheSerializerDefaulted(t *testing.T) {
	cacheCfg := repocache.DefaultConfig()
	service, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		t.Fatalf("cache service: %v", err)
	}

	cfg := runtimeconfig.DefaultConfig()
	cfg.Cache.Enabled = true

	container, err := di.NewContainer(cfg, di.WithCache(service, nil))
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	if container.CacheService() == nil {
		t.Fatal("injected cache service lost")
	}
	if container.CacheKeySerializer() == nil {
		t.Fatal("missing serializer should be defaulted alongside an injected service")
	}
}

func TestNewContainer_RepositoryOverrides(t *testing.T) {
	tenantRepo := tenants.NewMemoryTenantRepository()
	testimonialRepo := tenants.NewMemoryTestimonialRepository()

	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage.Provider = "bun"

	// Explicit repositories win over the configured provider, so no database
	// connection is opened.
	container, err := di.NewContainer(cfg,
		di.WithTenantRepository(tenantRepo),
		di.WithTestimonialRepository(testimonialRepo),
	)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	if container.DB() != nil {
		t.Fatal("expected no database with repository overrides")
	}
	if container.TenantService() == nil {
		t.Fatal("expected tenant service")
	}
}
