package templates

import (
	"strings"
	"sync"

	"github.com/goliatone/go-landing/landing"
)

// DefinitionFactory returns the registration input for a template definition.
type DefinitionFactory func() RegisterTemplateInput

// RegisterTemplateInput captures the information required to register a template.
type RegisterTemplateInput struct {
	ID          string
	Name        string
	Description *string
	Preview     *string
	Order       []landing.SectionType
	Defaults    map[landing.SectionType]landing.SectionConfig
	Variants    map[landing.SectionType][]string
}

// Registry stores built-in and host-defined template registrations together
// with optional per-section props schemas. Registration happens at process
// start; the catalog snapshots the registry into an immutable value.
type Registry struct {
	mu        sync.RWMutex
	order     []string
	templates map[string]DefinitionFactory
	schemas   map[landing.SectionType]map[string]any
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		templates: make(map[string]DefinitionFactory),
		schemas:   make(map[landing.SectionType]map[string]any),
	}
}

// Register adds a static template input to the registry.
func (r *Registry) Register(input RegisterTemplateInput) {
	r.RegisterFactory(input.ID, func() RegisterTemplateInput { return input })
}

// RegisterFactory adds a template definition factory to the registry.
func (r *Registry) RegisterFactory(key string, factory DefinitionFactory) {
	if factory == nil {
		return
	}
	id := CanonicalKey(key)
	if id == "" {
		id = CanonicalKey(factory().ID)
	}
	if id == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.templates == nil {
		r.templates = make(map[string]DefinitionFactory)
	}
	if _, exists := r.templates[id]; !exists {
		r.order = append(r.order, id)
	}
	r.templates[id] = factory
}

// RegisterSectionSchema attaches a props schema enforced against every
// template's default config for the given section type during catalog
// construction.
func (r *Registry) RegisterSectionSchema(sectionType landing.SectionType, schema map[string]any) {
	if len(schema) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.schemas == nil {
		r.schemas = make(map[landing.SectionType]map[string]any)
	}
	r.schemas[sectionType] = schema
}

// List returns all registered template inputs in registration order.
func (r *Registry) List() []RegisterTemplateInput {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]RegisterTemplateInput, 0, len(r.order))
	for _, id := range r.order {
		factory, ok := r.templates[id]
		if !ok || factory == nil {
			continue
		}
		out = append(out, factory())
	}
	return out
}

// SectionSchema returns the props schema registered for a section type, if any.
func (r *Registry) SectionSchema(sectionType landing.SectionType) map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.schemas[sectionType]
}

// CanonicalKey normalizes template and variant identifiers for lookups.
func CanonicalKey(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
