package tenants

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryTenantRepository provides an in-memory implementation of TenantRepository.
type MemoryTenantRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*Tenant
	bySlug map[string]uuid.UUID
}

// NewMemoryTenantRepository constructs an empty memory-backed tenant repository.
func NewMemoryTenantRepository() *MemoryTenantRepository {
	return &MemoryTenantRepository{
		byID:   make(map[uuid.UUID]*Tenant),
		bySlug: make(map[string]uuid.UUID),
	}
}

func (r *MemoryTenantRepository) Create(_ context.Context, tenant *Tenant) (*Tenant, error) {
	if tenant == nil {
		return nil, nil
	}
	cloned := cloneTenant(tenant)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[cloned.ID] = cloned
	r.bySlug[cloned.Slug] = cloned.ID

	return cloneTenant(cloned), nil
}

func (r *MemoryTenantRepository) Update(_ context.Context, tenant *Tenant) (*Tenant, error) {
	if tenant == nil {
		return nil, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[tenant.ID]; !ok {
		return nil, &NotFoundError{Resource: "tenant", Key: tenant.ID.String()}
	}

	cloned := cloneTenant(tenant)
	r.byID[cloned.ID] = cloned
	r.bySlug[cloned.Slug] = cloned.ID

	return cloneTenant(cloned), nil
}

func (r *MemoryTenantRepository) GetByID(_ context.Context, id uuid.UUID) (*Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "tenant", Key: id.String()}
	}
	return cloneTenant(record), nil
}

func (r *MemoryTenantRepository) GetBySlug(_ context.Context, slug string) (*Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.bySlug[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "tenant", Key: slug}
	}
	return cloneTenant(r.byID[id]), nil
}

func (r *MemoryTenantRepository) List(_ context.Context) ([]*Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Tenant, 0, len(r.byID))
	for _, record := range r.byID {
		out = append(out, cloneTenant(record))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out, nil
}

// MemoryTestimonialRepository provides an in-memory implementation of TestimonialRepository.
type MemoryTestimonialRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*TestimonialRecord
}

// NewMemoryTestimonialRepository constructs an empty memory-backed testimonial repository.
func NewMemoryTestimonialRepository() *MemoryTestimonialRepository {
	return &MemoryTestimonialRepository{
		byID: make(map[uuid.UUID]*TestimonialRecord),
	}
}

func (r *MemoryTestimonialRepository) Create(_ context.Context, record *TestimonialRecord) (*TestimonialRecord, error) {
	if record == nil {
		return nil, nil
	}
	cloned := cloneTestimonialRecord(record)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[cloned.ID] = cloned
	return cloneTestimonialRecord(cloned), nil
}

func (r *MemoryTestimonialRepository) ListByTenant(_ context.Context, tenantID uuid.UUID) ([]*TestimonialRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*TestimonialRecord, 0)
	for _, record := range r.byID {
		if record.TenantID == tenantID {
			out = append(out, cloneTestimonialRecord(record))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryTestimonialRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return &NotFoundError{Resource: "testimonial", Key: id.String()}
	}
	delete(r.byID, id)
	return nil
}
