package tenants_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	internaltemplates "github.com/goliatone/go-landing/internal/templates"
	"github.com/goliatone/go-landing/internal/tenants"
	"github.com/goliatone/go-landing/pkg/testsupport"
)

func newBunDB(t *testing.T) *bun.DB {
	t.Helper()

	sqlDB, err := testsupport.NewSQLiteMemoryDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	bunDB := bun.NewDB(sqlDB, sqlitedialect.New())
	bunDB.SetMaxOpenConns(1)

	registerTenantModels(t, bunDB)
	return bunDB
}

func registerTenantModels(t *testing.T, db *bun.DB) {
	t.Helper()

	ctx := context.Background()
	models := []any{
		(*tenants.Tenant)(nil),
		(*tenants.TestimonialRecord)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			t.Fatalf("create table %T: %v", model, err)
		}
	}
}

func TestTenantRepositories_WithBunAndCache(t *testing.T) {
	ctx := context.Background()
	bunDB := newBunDB(t)

	cacheCfg := repocache.DefaultConfig()
	cacheCfg.TTL = time.Minute
	cacheSvc, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		t.Fatalf("cache service: %v", err)
	}
	keySerializer := repocache.NewDefaultKeySerializer()

	catalog, err := internaltemplates.NewCatalog(internaltemplates.Builtin())
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	now := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	var counter int
	svc := tenants.NewService(
		tenants.NewBunTenantRepositoryWithCache(bunDB, cacheSvc, keySerializer),
		tenants.NewBunTestimonialRepositoryWithCache(bunDB, cacheSvc, keySerializer),
		catalog,
		tenants.WithIDGenerator(func() uuid.UUID {
			counter++
			return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", counter))
		}),
		tenants.WithClock(func() time.Time { return now }),
	)

	tenant, err := svc.CreateTenant(ctx, tenants.CreateTenantInput{
		Name:       "Acme Outfitters",
		Slug:       "acme",
		TemplateID: "modern",
	})
	if err != nil {
		t.Fatalf("create tenant: %v", err)
	}

	variant := "hero9"
	if _, err := svc.UpdateSection(ctx, tenants.UpdateSectionInput{
		TenantID: tenant.ID,
		Section:  "hero",
		Variant:  &variant,
		Props:    map[string]any{"headline": "Gear up"},
	}); err != nil {
		t.Fatalf("update section: %v", err)
	}

	// First read populates the cache, second read hits it.
	if _, err := svc.GetTenant(ctx, tenant.ID); err != nil {
		t.Fatalf("first get tenant: %v", err)
	}
	stored, err := svc.GetTenant(ctx, tenant.ID)
	if err != nil {
		t.Fatalf("cached get tenant: %v", err)
	}
	section := stored.Landing.Sections["hero"]
	if section.Variant == nil || *section.Variant != "hero9" {
		t.Fatalf("landing blob not round-tripped: %+v", stored.Landing)
	}

	bySlug, err := svc.GetTenantBySlug(ctx, "acme")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if bySlug.ID != tenant.ID {
		t.Fatalf("slug lookup mismatch: %s vs %s", bySlug.ID, tenant.ID)
	}

	if _, err := svc.AddTestimonial(ctx, tenants.AddTestimonialInput{
		TenantID: tenant.ID,
		Position: 1,
		Payload:  map[string]any{"author": "Lee", "text": "Quick delivery"},
	}); err != nil {
		t.Fatalf("add testimonial: %v", err)
	}
	record, err := svc.AddTestimonial(ctx, tenants.AddTestimonialInput{
		TenantID: tenant.ID,
		Position: 0,
		Payload:  map[string]any{"name": "Dana", "content": "Great store"},
	})
	if err != nil {
		t.Fatalf("add testimonial: %v", err)
	}

	payloads, err := svc.ListTestimonialPayloads(ctx, tenant.ID)
	if err != nil {
		t.Fatalf("list testimonials: %v", err)
	}
	if len(payloads) != 2 {
		t.Fatalf("expected 2 payloads, got %d", len(payloads))
	}
	first, ok := payloads[0].(map[string]any)
	if !ok || first["name"] != "Dana" {
		t.Fatalf("expected position ordering, got %v", payloads)
	}

	if err := svc.DeleteTestimonial(ctx, record.ID); err != nil {
		t.Fatalf("delete testimonial: %v", err)
	}

	if _, err := svc.GetTenant(ctx, uuid.New()); !errors.Is(err, tenants.ErrTenantNotFound) {
		t.Fatalf("expected not found mapping, got %v", err)
	}
}
