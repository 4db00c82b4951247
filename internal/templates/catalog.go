package templates

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/internal/validation"
	"github.com/goliatone/go-landing/landing"
	"github.com/goliatone/go-landing/pkg/interfaces"
	landingtemplates "github.com/goliatone/go-landing/templates"
)

// CatalogOption configures catalog construction.
type CatalogOption func(*Catalog)

// WithLogger attaches a logger used for unknown-template diagnostics.
func WithLogger(logger interfaces.Logger) CatalogOption {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFallbackTemplate overrides the fallback template id substituted when a
// tenant references a retired template. Defaults to the first registration.
func WithFallbackTemplate(templateID string) CatalogOption {
	return func(c *Catalog) {
		if trimmed := landingtemplates.CanonicalKey(templateID); trimmed != "" {
			c.fallbackID = trimmed
		}
	}
}

// Catalog is the immutable template registry the engine resolves against.
// All lookups are read-only after construction, so the catalog is safe to
// share across request handlers without locking.
type Catalog struct {
	fallbackID string
	order      []string
	byID       map[string]*landingtemplates.Definition
	variants   map[landing.SectionType]map[string]struct{}
	fallbacks  map[landing.SectionType]string
	logger     interfaces.Logger
}

var _ landingtemplates.Catalog = (*Catalog)(nil)

// NewCatalog snapshots the registry into an immutable catalog, running the
// startup integrity checks. Integrity failures indicate a packaging bug in
// the static template data and are the engine's only fatal error class.
func NewCatalog(registry *landingtemplates.Registry, opts ...CatalogOption) (*Catalog, error) {
	if registry == nil {
		registry = Builtin()
	}

	catalog := &Catalog{
		byID:      make(map[string]*landingtemplates.Definition),
		variants:  make(map[landing.SectionType]map[string]struct{}),
		fallbacks: make(map[landing.SectionType]string),
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		opt(catalog)
	}

	inputs := registry.List()
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: no templates registered", landing.ErrCatalogIntegrity)
	}

	for _, input := range inputs {
		definition := buildDefinition(input)
		if err := validateDefinition(definition, registry); err != nil {
			return nil, err
		}
		catalog.byID[definition.ID] = definition
		catalog.order = append(catalog.order, definition.ID)
		for sectionType, variants := range definition.Variants {
			set, ok := catalog.variants[sectionType]
			if !ok {
				set = make(map[string]struct{}, len(variants))
				catalog.variants[sectionType] = set
			}
			for _, variant := range variants {
				set[landingtemplates.CanonicalKey(variant)] = struct{}{}
			}
		}
	}

	if catalog.fallbackID == "" {
		catalog.fallbackID = catalog.order[0]
	}
	if _, ok := catalog.byID[catalog.fallbackID]; !ok {
		return nil, fmt.Errorf("%w: fallback template %q not registered", landing.ErrCatalogIntegrity, catalog.fallbackID)
	}

	for sectionType, set := range catalog.variants {
		catalog.fallbacks[sectionType] = lowestVariant(set)
	}

	return catalog, nil
}

// MustNewCatalog is NewCatalog for process bootstrap paths where an integrity
// failure should halt startup before traffic is served.
func MustNewCatalog(registry *landingtemplates.Registry, opts ...CatalogOption) *Catalog {
	catalog, err := NewCatalog(registry, opts...)
	if err != nil {
		panic(err)
	}
	return catalog
}

// Get returns the definition for templateID, substituting the fallback
// template when the id is unknown. The boolean reports an exact match so
// callers can surface the degradation to operators.
func (c *Catalog) Get(templateID string) (*landingtemplates.Definition, bool) {
	id := landingtemplates.CanonicalKey(templateID)
	if definition, ok := c.byID[id]; ok {
		return definition, true
	}
	c.logger.Warn("catalog.template.unknown",
		"template_id", templateID,
		"fallback_id", c.fallbackID,
	)
	return c.byID[c.fallbackID], false
}

// List returns every registered definition in registration order. It powers
// the template gallery and has no side effects.
func (c *Catalog) List() []*landingtemplates.Definition {
	out := make([]*landingtemplates.Definition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// IsValidVariant reports whether variant is registered for the section type.
func (c *Catalog) IsValidVariant(sectionType landing.SectionType, variant string) bool {
	set, ok := c.variants[sectionType]
	if !ok {
		return false
	}
	_, ok = set[landingtemplates.CanonicalKey(variant)]
	return ok
}

// FallbackVariant returns the canonical fallback implementation key for a
// section type: the lowest-numbered registered variant.
func (c *Catalog) FallbackVariant(sectionType landing.SectionType) string {
	return c.fallbacks[sectionType]
}

// FallbackTemplateID returns the template id substituted for unknown lookups.
func (c *Catalog) FallbackTemplateID() string {
	return c.fallbackID
}

func validateDefinition(definition *landingtemplates.Definition, registry *landingtemplates.Registry) error {
	if definition.ID == "" {
		return fmt.Errorf("%w: template id required", landing.ErrCatalogIntegrity)
	}
	if len(definition.Order) == 0 {
		return fmt.Errorf("%w: template %q declares no section order", landing.ErrCatalogIntegrity, definition.ID)
	}

	seen := make(map[landing.SectionType]struct{}, len(definition.Order))
	for _, sectionType := range definition.Order {
		if !landing.IsSectionType(string(sectionType)) {
			return fmt.Errorf("%w: template %q orders unknown section type %q", landing.ErrCatalogIntegrity, definition.ID, sectionType)
		}
		if _, dup := seen[sectionType]; dup {
			return fmt.Errorf("%w: template %q orders section type %q twice", landing.ErrCatalogIntegrity, definition.ID, sectionType)
		}
		seen[sectionType] = struct{}{}

		defaults, ok := definition.Defaults[sectionType]
		if !ok {
			return fmt.Errorf("%w: template %q section %q: %v", landing.ErrCatalogIntegrity, definition.ID, sectionType, landing.ErrSectionDefaultMissing)
		}
		variants := definition.Variants[sectionType]
		if len(variants) == 0 {
			return fmt.Errorf("%w: template %q section %q: %v", landing.ErrCatalogIntegrity, definition.ID, sectionType, landing.ErrSectionVariantsMissing)
		}
		if !containsVariant(variants, defaults.Variant) {
			return fmt.Errorf("%w: template %q section %q default variant %q: %v", landing.ErrCatalogIntegrity, definition.ID, sectionType, defaults.Variant, landing.ErrDefaultVariantUnknown)
		}
		if schema := registry.SectionSchema(sectionType); schema != nil {
			if err := validation.ValidateProps(schema, defaults.Props); err != nil {
				return fmt.Errorf("%w: template %q section %q: %v: %v", landing.ErrCatalogIntegrity, definition.ID, sectionType, landing.ErrDefaultPropsSchemaFailed, err)
			}
		}
	}
	return nil
}

func containsVariant(variants []string, variant string) bool {
	needle := landingtemplates.CanonicalKey(variant)
	for _, candidate := range variants {
		if landingtemplates.CanonicalKey(candidate) == needle {
			return true
		}
	}
	return false
}

// lowestVariant picks the lowest-numbered key, comparing the numeric suffix
// when present so "hero2" sorts before "hero10".
func lowestVariant(set map[string]struct{}) string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		baseI, numI := splitVariant(keys[i])
		baseJ, numJ := splitVariant(keys[j])
		if baseI != baseJ {
			return baseI < baseJ
		}
		return numI < numJ
	})
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

func splitVariant(key string) (string, int) {
	trimmed := strings.TrimRightFunc(key, func(r rune) bool { return r >= '0' && r <= '9' })
	if trimmed == key {
		return key, 0
	}
	number, err := strconv.Atoi(key[len(trimmed):])
	if err != nil {
		return key, 0
	}
	return trimmed, number
}
