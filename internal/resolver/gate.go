package resolver

import "github.com/goliatone/go-landing/landing"

// GateContext carries the externally fetched content availability signals the
// gate rules inspect.
type GateContext struct {
	Testimonials []landing.Testimonial
	ProductCount int
}

// isRenderable applies the two-tier gating rule: declared intent (enabled)
// plus per-type content availability. Hero is exempt from the content tier
// since it can render with store branding alone.
func isRenderable(sectionType landing.SectionType, config landing.SectionConfig, gate GateContext) bool {
	if !config.Enabled {
		return false
	}
	switch sectionType {
	case landing.SectionTestimonials:
		return len(gate.Testimonials) > 0
	case landing.SectionProducts:
		return gate.ProductCount > 0
	default:
		return true
	}
}
