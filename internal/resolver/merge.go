package resolver

import (
	"github.com/goliatone/go-landing/landing"
	landingtemplates "github.com/goliatone/go-landing/templates"
)

// Merge layers a tenant's partial override onto a template's defaults,
// producing a complete landing config. Merge never rejects data: unknown
// section keys are ignored, unknown variants are accepted here and corrected
// by variant selection later.
//
// Per section: enabled and variant win when explicitly set, absence keeps the
// default. Props replaces the default wholesale when the override carries a
// props object at all, so stale default fields never mix with a fresh edit.
func Merge(template *landingtemplates.Definition, override landing.Override) landing.Config {
	config := landing.Config{
		TemplateID: template.ID,
		Sections:   make(map[landing.SectionType]landing.SectionConfig, len(template.Order)),
	}
	if override.TemplateID != "" {
		config.TemplateID = override.TemplateID
	}

	for _, sectionType := range template.Order {
		merged := cloneSectionConfig(template.Defaults[sectionType])
		if section, ok := override.Sections[string(sectionType)]; ok {
			if section.Enabled != nil {
				merged.Enabled = *section.Enabled
			}
			if section.Variant != nil && *section.Variant != "" {
				merged.Variant = *section.Variant
			}
			if section.Props != nil {
				merged.Props = cloneProps(section.Props)
			}
		}
		config.Sections[sectionType] = merged
	}

	if len(override.SectionOrder) > 0 {
		config.SectionOrder = make([]landing.SectionType, 0, len(override.SectionOrder))
		for _, entry := range override.SectionOrder {
			config.SectionOrder = append(config.SectionOrder, landing.SectionType(entry))
		}
	} else {
		config.SectionOrder = template.KnownTypes()
	}

	return config
}

func cloneSectionConfig(config landing.SectionConfig) landing.SectionConfig {
	cloned := landing.SectionConfig{
		Enabled: config.Enabled,
		Variant: config.Variant,
	}
	if config.Props != nil {
		cloned.Props = cloneProps(config.Props)
	}
	return cloned
}

func cloneProps(props map[string]any) map[string]any {
	if props == nil {
		return nil
	}
	out := make(map[string]any, len(props))
	for key, value := range props {
		switch typed := value.(type) {
		case map[string]any:
			out[key] = cloneProps(typed)
		case []any:
			cloned := make([]any, len(typed))
			for i, entry := range typed {
				if nested, ok := entry.(map[string]any); ok {
					cloned[i] = cloneProps(nested)
					continue
				}
				cloned[i] = entry
			}
			out[key] = cloned
		default:
			out[key] = value
		}
	}
	return out
}
