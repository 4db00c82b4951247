package tenants

import (
	"context"
	"fmt"

	"github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunTenantRepository implements TenantRepository with optional caching.
type BunTenantRepository struct {
	repo repository.Repository[*Tenant]
}

// NewBunTenantRepository creates a tenant repository without caching.
func NewBunTenantRepository(db *bun.DB) *BunTenantRepository {
	return NewBunTenantRepositoryWithCache(db, nil, nil)
}

// NewBunTenantRepositoryWithCache creates a tenant repository with caching
// support. The landing blob is read once per storefront page render, so hosts
// under real traffic should supply a cache service.
func NewBunTenantRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunTenantRepository {
	base := NewTenantRecordRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunTenantRepository{repo: base}
}

func (r *BunTenantRepository) Create(ctx context.Context, tenant *Tenant) (*Tenant, error) {
	record, err := r.repo.Create(ctx, tenant)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunTenantRepository) Update(ctx context.Context, tenant *Tenant) (*Tenant, error) {
	record, err := r.repo.Update(ctx, tenant)
	if err != nil {
		return nil, mapRepositoryError(err, "tenant", tenant.ID.String())
	}
	return record, nil
}

func (r *BunTenantRepository) GetByID(ctx context.Context, id uuid.UUID) (*Tenant, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "tenant", id.String())
	}
	return record, nil
}

func (r *BunTenantRepository) GetBySlug(ctx context.Context, slug string) (*Tenant, error) {
	record, err := r.repo.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err, "tenant", slug)
	}
	return record, nil
}

func (r *BunTenantRepository) List(ctx context.Context) ([]*Tenant, error) {
	records, _, err := r.repo.List(ctx)
	return records, err
}

// BunTestimonialRepository implements TestimonialRepository with optional caching.
type BunTestimonialRepository struct {
	repo repository.Repository[*TestimonialRecord]
}

// NewBunTestimonialRepository creates a testimonial repository without caching.
func NewBunTestimonialRepository(db *bun.DB) *BunTestimonialRepository {
	return NewBunTestimonialRepositoryWithCache(db, nil, nil)
}

// NewBunTestimonialRepositoryWithCache creates a testimonial repository with caching.
func NewBunTestimonialRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunTestimonialRepository {
	base := NewTestimonialRecordRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunTestimonialRepository{repo: base}
}

func (r *BunTestimonialRepository) Create(ctx context.Context, record *TestimonialRecord) (*TestimonialRecord, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunTestimonialRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*TestimonialRecord, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("?TableAlias.tenant_id = ?", tenantID).Order("position ASC")
	}))
	return records, err
}

func (r *BunTestimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &TestimonialRecord{ID: id})
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if errors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
