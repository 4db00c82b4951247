package templates

import (
	"strings"

	"github.com/goliatone/go-landing/landing"
	landingtemplates "github.com/goliatone/go-landing/templates"
)

func buildDefinition(input landingtemplates.RegisterTemplateInput) *landingtemplates.Definition {
	def := &landingtemplates.Definition{
		ID:          landingtemplates.CanonicalKey(input.ID),
		Name:        strings.TrimSpace(input.Name),
		Description: cloneString(input.Description),
		Preview:     cloneString(input.Preview),
		Order:       append([]landing.SectionType{}, input.Order...),
		Defaults:    make(map[landing.SectionType]landing.SectionConfig, len(input.Defaults)),
		Variants:    make(map[landing.SectionType][]string, len(input.Variants)),
	}
	for sectionType, config := range input.Defaults {
		def.Defaults[sectionType] = cloneSectionConfig(config)
	}
	for sectionType, variants := range input.Variants {
		def.Variants[sectionType] = append([]string{}, variants...)
	}
	return def
}

func cloneString(value *string) *string {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
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
