package landing

import "encoding/json"

// SectionType identifies one named region of a storefront landing page.
type SectionType string

const (
	SectionHero         SectionType = "hero"
	SectionAbout        SectionType = "about"
	SectionProducts     SectionType = "products"
	SectionTestimonials SectionType = "testimonials"
	SectionCTA          SectionType = "cta"
	SectionContact      SectionType = "contact"
)

// SectionTypes returns the closed set of section types in canonical page order.
func SectionTypes() []SectionType {
	return []SectionType{
		SectionHero,
		SectionAbout,
		SectionProducts,
		SectionTestimonials,
		SectionCTA,
		SectionContact,
	}
}

// IsSectionType reports whether value names a known section type.
func IsSectionType(value string) bool {
	switch SectionType(value) {
	case SectionHero, SectionAbout, SectionProducts, SectionTestimonials, SectionCTA, SectionContact:
		return true
	}
	return false
}

// SectionConfig is the per-section persisted unit. Props stays opaque to the
// engine beyond the narrow keys gate rules inspect.
type SectionConfig struct {
	Enabled bool           `json:"enabled"`
	Variant string         `json:"variant"`
	Props   map[string]any `json:"props,omitempty"`
}

// Config is the complete tenant-level landing aggregate produced by merging
// template defaults with a tenant override. Every known section type has an
// entry once merged.
type Config struct {
	TemplateID   string                        `json:"template_id"`
	SectionOrder []SectionType                 `json:"section_order"`
	Sections     map[SectionType]SectionConfig `json:"sections"`
}

// SectionOverride carries the tenant-authored fields for one section. Nil
// pointers mean "not specified, keep the template default"; Props replaces the
// default wholesale when present.
type SectionOverride struct {
	Enabled *bool          `json:"enabled,omitempty"`
	Variant *string        `json:"variant,omitempty"`
	Props   map[string]any `json:"props,omitempty"`
}

// Override is the partial, untrusted landing configuration persisted on a
// tenant record. It accumulates incrementally as the builder UI edits one
// section at a time, so any field may be absent and section keys or order
// entries may reference types this build no longer knows about.
type Override struct {
	TemplateID   string                     `json:"templateId,omitempty"`
	SectionOrder []string                   `json:"sectionOrder,omitempty"`
	Sections     map[string]SectionOverride `json:"sections,omitempty"`
}

// ParseOverride decodes a persisted landing blob. Malformed JSON degrades to
// an empty override so a corrupt tenant record never fails the page render;
// the error is returned for diagnostics only.
func ParseOverride(blob []byte) (Override, error) {
	var override Override
	if len(blob) == 0 {
		return Override{}, nil
	}
	if err := json.Unmarshal(blob, &override); err != nil {
		return Override{}, err
	}
	return override, nil
}

// Testimonial is the canonical testimonial shape downstream consumers trust.
// Rating is nil when the persisted value was missing, unparsable, or out of
// the 0-5 range.
type Testimonial struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Role    *string `json:"role,omitempty"`
	Avatar  *string `json:"avatar,omitempty"`
	Content string  `json:"content"`
	Rating  *int    `json:"rating,omitempty"`
}
