package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	landing "github.com/goliatone/go-landing"
	"github.com/goliatone/go-landing/internal/tenants"
	corelanding "github.com/goliatone/go-landing/landing"
)

func main() {
	ctx := context.Background()

	cfg := landing.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "console"

	module, err := landing.New(cfg)
	if err != nil {
		log.Fatalf("configure landing module: %v", err)
	}

	builder := module.Tenants()

	domain := "acme.example.com"
	tenant, err := builder.CreateTenant(ctx, tenants.CreateTenantInput{
		Name:       "Acme Outfitters",
		Slug:       "acme",
		Domain:     &domain,
		TemplateID: "modern",
	})
	if err != nil {
		log.Fatalf("create tenant: %v", err)
	}
	fmt.Printf("tenant %s created with template %s\n", tenant.Slug, tenant.Landing.TemplateID)

	// Tweak the hero copy and hide the about section.
	disabled := false
	variant := "hero9"
	if _, err := builder.UpdateSection(ctx, tenants.UpdateSectionInput{
		TenantID: tenant.ID,
		Section:  "hero",
		Variant:  &variant,
		Props: map[string]any{
			"headline": "Gear for every season",
			"ctaLabel": "Shop the drop",
		},
	}); err != nil {
		log.Fatalf("update hero: %v", err)
	}
	if _, err := builder.UpdateSection(ctx, tenants.UpdateSectionInput{
		TenantID: tenant.ID,
		Section:  "about",
		Enabled:  &disabled,
	}); err != nil {
		log.Fatalf("disable about: %v", err)
	}

	if _, err := builder.AddTestimonial(ctx, tenants.AddTestimonialInput{
		TenantID: tenant.ID,
		Payload: map[string]any{
			"author": "Jamie R.",
			"text":   "Ordered on Monday, wore it on Friday. Flawless.",
			"stars":  "5",
		},
	}); err != nil {
		log.Fatalf("add testimonial: %v", err)
	}

	stored, err := builder.GetTenant(ctx, tenant.ID)
	if err != nil {
		log.Fatalf("load tenant: %v", err)
	}
	raw, err := builder.ListTestimonialPayloads(ctx, tenant.ID)
	if err != nil {
		log.Fatalf("load testimonials: %v", err)
	}

	sections, err := module.Resolver().Resolve(ctx, corelanding.ResolveInput{
		TemplateID:      stored.Landing.TemplateID,
		Override:        stored.Landing,
		RawTestimonials: raw,
		ProductCount:    12,
	})
	if err != nil {
		log.Fatalf("resolve landing page: %v", err)
	}

	plan, err := json.MarshalIndent(sections, "", "  ")
	if err != nil {
		log.Fatalf("encode render plan: %v", err)
	}
	fmt.Println(string(plan))
}
