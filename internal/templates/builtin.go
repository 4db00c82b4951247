package templates

import (
	"fmt"

	"github.com/goliatone/go-landing/landing"
	landingtemplates "github.com/goliatone/go-landing/templates"
)

// Variant families shipped with the storefront renderer. Retired entries are
// kept out of the registered sets so tenants configured against them degrade
// to the canonical fallback.
var (
	heroVariants         = variantFamily("hero", 24, 13)
	aboutVariants        = variantFamily("about", 49, 3, 17, 28)
	productsVariants     = variantFamily("products", 9)
	testimonialsVariants = variantFamily("testimonials", 7)
	ctaVariants          = variantFamily("cta", 5)
	contactVariants      = variantFamily("contact", 4, 2)
)

// Builtin returns a registry preloaded with the stock storefront templates
// and the props schemas enforced on their defaults.
func Builtin() *landingtemplates.Registry {
	registry := landingtemplates.NewRegistry()

	registry.RegisterSectionSchema(landing.SectionProducts, map[string]any{
		"type": "object",
		"properties": map[string]any{
			"heading": map[string]any{"type": "string"},
			"config": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"limit": map[string]any{"type": "integer", "minimum": 1},
				},
			},
		},
	})
	registry.RegisterSectionSchema(landing.SectionHero, map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline":    map[string]any{"type": "string"},
			"subheadline": map[string]any{"type": "string"},
			"ctaLabel":    map[string]any{"type": "string"},
		},
	})

	registry.Register(classicTemplate())
	registry.Register(modernTemplate())
	registry.Register(minimalTemplate())

	return registry
}

func classicTemplate() landingtemplates.RegisterTemplateInput {
	description := "Balanced storefront layout with every section enabled"
	preview := "/previews/classic.png"
	return landingtemplates.RegisterTemplateInput{
		ID:          "classic",
		Name:        "Classic",
		Description: &description,
		Preview:     &preview,
		Order:       landing.SectionTypes(),
		Defaults: map[landing.SectionType]landing.SectionConfig{
			landing.SectionHero: {
				Enabled: true,
				Variant: "hero1",
				Props: map[string]any{
					"headline":    "Welcome to our store",
					"subheadline": "Quality products, delivered fast",
					"ctaLabel":    "Shop now",
				},
			},
			landing.SectionAbout: {
				Enabled: true,
				Variant: "about1",
				Props: map[string]any{
					"heading": "About us",
				},
			},
			landing.SectionProducts: {
				Enabled: true,
				Variant: "products1",
				Props: map[string]any{
					"heading": "Featured products",
					"config":  map[string]any{"limit": 8},
				},
			},
			landing.SectionTestimonials: {
				Enabled: true,
				Variant: "testimonials1",
				Props: map[string]any{
					"heading": "What customers say",
				},
			},
			landing.SectionCTA: {
				Enabled: true,
				Variant: "cta1",
				Props: map[string]any{
					"heading": "Ready to order?",
					"label":   "Get started",
				},
			},
			landing.SectionContact: {
				Enabled: true,
				Variant: "contact1",
				Props: map[string]any{
					"heading": "Get in touch",
				},
			},
		},
		Variants: builtinVariants(),
	}
}

func modernTemplate() landingtemplates.RegisterTemplateInput {
	description := "Product-first layout leading with the catalog"
	preview := "/previews/modern.png"
	return landingtemplates.RegisterTemplateInput{
		ID:          "modern",
		Name:        "Modern",
		Description: &description,
		Preview:     &preview,
		Order: []landing.SectionType{
			landing.SectionHero,
			landing.SectionProducts,
			landing.SectionAbout,
			landing.SectionCTA,
			landing.SectionTestimonials,
			landing.SectionContact,
		},
		Defaults: map[landing.SectionType]landing.SectionConfig{
			landing.SectionHero: {
				Enabled: true,
				Variant: "hero7",
				Props: map[string]any{
					"headline": "New drops every week",
					"ctaLabel": "Browse collection",
				},
			},
			landing.SectionAbout: {
				Enabled: true,
				Variant: "about12",
				Props: map[string]any{
					"heading": "Our story",
				},
			},
			landing.SectionProducts: {
				Enabled: true,
				Variant: "products4",
				Props: map[string]any{
					"heading": "Best sellers",
					"config":  map[string]any{"limit": 12},
				},
			},
			landing.SectionTestimonials: {
				Enabled: true,
				Variant: "testimonials3",
				Props: map[string]any{
					"heading": "Loved by customers",
				},
			},
			landing.SectionCTA: {
				Enabled: true,
				Variant: "cta2",
				Props: map[string]any{
					"heading": "Join thousands of happy shoppers",
					"label":   "Start shopping",
				},
			},
			landing.SectionContact: {
				Enabled: false,
				Variant: "contact1",
				Props: map[string]any{
					"heading": "Questions?",
				},
			},
		},
		Variants: builtinVariants(),
	}
}

func minimalTemplate() landingtemplates.RegisterTemplateInput {
	description := "Lean single-message layout for new storefronts"
	preview := "/previews/minimal.png"
	return landingtemplates.RegisterTemplateInput{
		ID:          "minimal",
		Name:        "Minimal",
		Description: &description,
		Preview:     &preview,
		Order: []landing.SectionType{
			landing.SectionHero,
			landing.SectionProducts,
			landing.SectionContact,
			landing.SectionAbout,
			landing.SectionTestimonials,
			landing.SectionCTA,
		},
		Defaults: map[landing.SectionType]landing.SectionConfig{
			landing.SectionHero: {
				Enabled: true,
				Variant: "hero3",
				Props: map[string]any{
					"headline": "Simple. Fast. Yours.",
					"ctaLabel": "See products",
				},
			},
			landing.SectionAbout: {
				Enabled: false,
				Variant: "about1",
				Props:   map[string]any{},
			},
			landing.SectionProducts: {
				Enabled: true,
				Variant: "products2",
				Props: map[string]any{
					"config": map[string]any{"limit": 4},
				},
			},
			landing.SectionTestimonials: {
				Enabled: false,
				Variant: "testimonials1",
				Props:   map[string]any{},
			},
			landing.SectionCTA: {
				Enabled: false,
				Variant: "cta1",
				Props:   map[string]any{},
			},
			landing.SectionContact: {
				Enabled: true,
				Variant: "contact1",
				Props: map[string]any{
					"heading": "Talk to us",
				},
			},
		},
		Variants: builtinVariants(),
	}
}

func builtinVariants() map[landing.SectionType][]string {
	return map[landing.SectionType][]string{
		landing.SectionHero:         append([]string{}, heroVariants...),
		landing.SectionAbout:        append([]string{}, aboutVariants...),
		landing.SectionProducts:     append([]string{}, productsVariants...),
		landing.SectionTestimonials: append([]string{}, testimonialsVariants...),
		landing.SectionCTA:          append([]string{}, ctaVariants...),
		landing.SectionContact:      append([]string{}, contactVariants...),
	}
}

// variantFamily enumerates prefix1..prefixMax, skipping retired numbers.
func variantFamily(prefix string, max int, retired ...int) []string {
	skip := make(map[int]struct{}, len(retired))
	for _, number := range retired {
		skip[number] = struct{}{}
	}
	out := make([]string, 0, max)
	for number := 1; number <= max; number++ {
		if _, gone := skip[number]; gone {
			continue
		}
		out = append(out, fmt.Sprintf("%s%d", prefix, number))
	}
	return out
}
