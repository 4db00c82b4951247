package tenants

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewTenantRecordRepository creates a generic repository for tenants.
func NewTenantRecordRepository(db *bun.DB) repository.Repository[*Tenant] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Tenant]{
		NewRecord:          func() *Tenant { return &Tenant{} },
		GetID:              func(tenant *Tenant) uuid.UUID { return tenant.ID },
		SetID:              func(tenant *Tenant, id uuid.UUID) { tenant.ID = id },
		GetIdentifier:      func() string { return "slug" },
		GetIdentifierValue: func(tenant *Tenant) string { return tenant.Slug },
	})
}

// NewTestimonialRecordRepository creates a generic repository for raw testimonial records.
func NewTestimonialRecordRepository(db *bun.DB) repository.Repository[*TestimonialRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*TestimonialRecord]{
		NewRecord:          func() *TestimonialRecord { return &TestimonialRecord{} },
		GetID:              func(record *TestimonialRecord) uuid.UUID { return record.ID },
		SetID:              func(record *TestimonialRecord, id uuid.UUID) { record.ID = id },
		GetIdentifier:      func() string { return "id" },
		GetIdentifierValue: func(record *TestimonialRecord) string { return record.ID.String() },
	})
}
