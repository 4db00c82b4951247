package tenants

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// TenantRepository exposes persistence operations for tenants.
type TenantRepository interface {
	Create(ctx context.Context, tenant *Tenant) (*Tenant, error)
	Update(ctx context.Context, tenant *Tenant) (*Tenant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*Tenant, error)
	List(ctx context.Context) ([]*Tenant, error)
}

// TestimonialRepository exposes persistence operations for raw testimonial records.
type TestimonialRepository interface {
	Create(ctx context.Context, record *TestimonialRecord) (*TestimonialRecord, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*TestimonialRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NotFoundError is returned when a tenant resource cannot be located.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}
