package tenants

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-landing/landing"
)

// Tenant is one storefront account. The landing configuration is persisted as
// a single partial blob that accumulates as the builder UI edits one section
// at a time; the resolver merges it against template defaults on every read.
type Tenant struct {
	bun.BaseModel `bun:"table:tenants,alias:tn"`

	ID        uuid.UUID        `bun:",pk,type:uuid" json:"id"`
	Name      string           `bun:"name,notnull" json:"name"`
	Slug      string           `bun:"slug,notnull,unique" json:"slug"`
	Domain    *string          `bun:"domain" json:"domain,omitempty"`
	Landing   landing.Override `bun:"landing,type:jsonb" json:"landing"`
	CreatedAt time.Time        `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time        `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// TestimonialRecord is a raw persisted testimonial payload. Payload shape is
// deliberately untyped: records written by older builds use different field
// names and the normalizer owns reconciling them.
type TestimonialRecord struct {
	bun.BaseModel `bun:"table:testimonials,alias:tm"`

	ID        uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	TenantID  uuid.UUID      `bun:"tenant_id,notnull,type:uuid" json:"tenant_id"`
	Position  int            `bun:"position,notnull,default:0" json:"position"`
	Payload   map[string]any `bun:"payload,type:jsonb,notnull" json:"payload"`
	CreatedAt time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

func cloneTenant(tenant *Tenant) *Tenant {
	if tenant == nil {
		return nil
	}
	cloned := *tenant
	cloned.Domain = cloneString(tenant.Domain)
	cloned.Landing = cloneOverride(tenant.Landing)
	return &cloned
}

func cloneTenantSlice(records []*Tenant) []*Tenant {
	out := make([]*Tenant, 0, len(records))
	for _, record := range records {
		out = append(out, cloneTenant(record))
	}
	return out
}

func cloneTestimonialRecord(record *TestimonialRecord) *TestimonialRecord {
	if record == nil {
		return nil
	}
	cloned := *record
	cloned.Payload = cloneMap(record.Payload)
	return &cloned
}

func cloneOverride(override landing.Override) landing.Override {
	cloned := landing.Override{
		TemplateID: override.TemplateID,
	}
	if override.SectionOrder != nil {
		cloned.SectionOrder = append([]string{}, override.SectionOrder...)
	}
	if override.Sections != nil {
		cloned.Sections = make(map[string]landing.SectionOverride, len(override.Sections))
		for key, section := range override.Sections {
			cloned.Sections[key] = cloneSectionOverride(section)
		}
	}
	return cloned
}

func cloneSectionOverride(section landing.SectionOverride) landing.SectionOverride {
	cloned := landing.SectionOverride{}
	if section.Enabled != nil {
		value := *section.Enabled
		cloned.Enabled = &value
	}
	if section.Variant != nil {
		value := *section.Variant
		cloned.Variant = &value
	}
	if section.Props != nil {
		cloned.Props = cloneMap(section.Props)
	}
	return cloned
}

func cloneString(value *string) *string {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return nil
	}
	out := make(map[string]any, len(input))
	for key, value := range input {
		switch typed := value.(type) {
		case map[string]any:
			out[key] = cloneMap(typed)
		case []any:
			cloned := make([]any, len(typed))
			for i, entry := range typed {
				if nested, ok := entry.(map[string]any); ok {
					cloned[i] = cloneMap(nested)
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
