package templates

import (
	"github.com/goliatone/go-landing/landing"
)

// Definition describes one visual template: gallery metadata, a full default
// SectionConfig per section type, and the registered variant set per type.
// Definitions are immutable after catalog construction.
type Definition struct {
	ID          string                                        `json:"id"`
	Name        string                                        `json:"name"`
	Description *string                                       `json:"description,omitempty"`
	Preview     *string                                       `json:"preview,omitempty"`
	Order       []landing.SectionType                         `json:"order"`
	Defaults    map[landing.SectionType]landing.SectionConfig `json:"defaults"`
	Variants    map[landing.SectionType][]string              `json:"variants"`
}

// KnownTypes returns the section types this template defines, in the
// template's canonical order.
func (d *Definition) KnownTypes() []landing.SectionType {
	return append([]landing.SectionType{}, d.Order...)
}

// Catalog is the static template registry consulted during resolution. It is
// read-only after construction and safe for concurrent use.
type Catalog interface {
	// Get returns the definition for templateID, falling back to the
	// catalog's designated fallback template when the id is unknown. The
	// second return reports whether the requested id was found as-is.
	Get(templateID string) (*Definition, bool)
	List() []*Definition
	IsValidVariant(sectionType landing.SectionType, variant string) bool
	// FallbackVariant returns the canonical fallback implementation key for
	// a section type (the lowest-numbered registered variant).
	FallbackVariant(sectionType landing.SectionType) string
	FallbackTemplateID() string
}
