package landing

import (
	buildercmd "github.com/goliatone/go-landing/internal/commands/builder"
	"github.com/goliatone/go-landing/internal/di"
	"github.com/goliatone/go-landing/internal/tenants"
	corelanding "github.com/goliatone/go-landing/landing"
	landingtemplates "github.com/goliatone/go-landing/templates"
)

// ResolverService exports the landing resolution contract for consumers of
// the module package.
type ResolverService = corelanding.Service

// TenantService exports the tenant builder service contract.
type TenantService = tenants.Service

// Catalog exports the template catalog contract.
type Catalog = landingtemplates.Catalog

// TemplateRegistry exports the registry hosts use to add their own templates.
type TemplateRegistry = landingtemplates.Registry

// TemplateDefinition exports the template definition record.
type TemplateDefinition = landingtemplates.Definition

// RegisterTemplateInput exports the template registration payload.
type RegisterTemplateInput = landingtemplates.RegisterTemplateInput

// SectionType exports the closed section type enum.
type SectionType = corelanding.SectionType

// SectionConfig exports the per-section configuration value.
type SectionConfig = corelanding.SectionConfig

// LandingConfig exports the merged per-tenant landing configuration.
type LandingConfig = corelanding.Config

// Override exports the tenant-authored partial configuration blob.
type Override = corelanding.Override

// SectionOverride exports the per-section portion of an override.
type SectionOverride = corelanding.SectionOverride

// ResolvedSection exports the render-plan entry produced by resolution.
type ResolvedSection = corelanding.ResolvedSection

// ResolveInput exports the resolution request payload.
type ResolveInput = corelanding.ResolveInput

// Testimonial exports the normalized testimonial record.
type Testimonial = corelanding.Testimonial

// UpdateSectionCommand exports the builder section update message.
type UpdateSectionCommand = buildercmd.UpdateSectionCommand

// ReorderSectionsCommand exports the builder section reorder message.
type ReorderSectionsCommand = buildercmd.ReorderSectionsCommand

// ChooseTemplateCommand exports the builder template selection message.
type ChooseTemplateCommand = buildercmd.ChooseTemplateCommand

// ImportTestimonialsCommand exports the markdown import message.
type ImportTestimonialsCommand = buildercmd.ImportTestimonialsCommand

// NewTemplateRegistry returns an empty registry for host-defined templates.
func NewTemplateRegistry() *TemplateRegistry {
	return landingtemplates.NewRegistry()
}

// Option exports the DI container option type so hosts can override wiring.
type Option = di.Option

// Re-exported container overrides.
var (
	WithLoggerProvider        = di.WithLoggerProvider
	WithTemplateRegistry      = di.WithTemplateRegistry
	WithBunDB                 = di.WithBunDB
	WithCache                 = di.WithCache
	WithTenantRepository      = di.WithTenantRepository
	WithTestimonialRepository = di.WithTestimonialRepository
	WithResolverService       = di.WithResolverService
	WithTenantService         = di.WithTenantService
)

// Module represents the top level landing runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a landing module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Catalog returns the immutable template catalog.
func (m *Module) Catalog() Catalog {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Catalog()
}

// Resolver returns the configured landing resolution service.
func (m *Module) Resolver() ResolverService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.ResolverService()
}

// Tenants returns the tenant builder service, or nil when the tenants
// feature is disabled.
func (m *Module) Tenants() TenantService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.TenantService()
}

// UpdateSection returns the section update command handler.
func (m *Module) UpdateSection() *buildercmd.UpdateSectionHandler {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.UpdateSectionHandler()
}

// ReorderSections returns the section reorder command handler.
func (m *Module) ReorderSections() *buildercmd.ReorderSectionsHandler {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.ReorderSectionsHandler()
}

// ChooseTemplate returns the template selection command handler.
func (m *Module) ChooseTemplate() *buildercmd.ChooseTemplateHandler {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.ChooseTemplateHandler()
}

// ImportTestimonials returns the markdown import command handler, or nil when
// the import feature is disabled.
func (m *Module) ImportTestimonials() *buildercmd.ImportTestimonialsHandler {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.ImportTestimonialsHandler()
}
