package resolver_test

import (
	"reflect"
	"testing"

	"github.com/goliatone/go-landing/internal/resolver"
	internaltemplates "github.com/goliatone/go-landing/internal/templates"
	"github.com/goliatone/go-landing/landing"
	landingtemplates "github.com/goliatone/go-landing/templates"
)

func newCatalog(t *testing.T) *internaltemplates.Catalog {
	t.Helper()
	catalog, err := internaltemplates.NewCatalog(internaltemplates.Builtin())
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return catalog
}

func classicDefinition(t *testing.T, catalog *internaltemplates.Catalog) *landingtemplates.Definition {
	t.Helper()
	definition, found := catalog.Get("classic")
	if !found {
		t.Fatalf("classic template not registered")
	}
	return definition
}

func TestMerge_EmptyOverrideKeepsDefaults(t *testing.T) {
	catalog := newCatalog(t)
	definition := classicDefinition(t, catalog)

	config := resolver.Merge(definition, landing.Override{})

	if config.TemplateID != "classic" {
		t.Fatalf("expected template id classic, got %q", config.TemplateID)
	}
	if len(config.Sections) != len(definition.Order) {
		t.Fatalf("expected %d sections, got %d", len(definition.Order), len(config.Sections))
	}
	if !reflect.DeepEqual(config.SectionOrder, definition.KnownTypes()) {
		t.Fatalf("expected canonical order, got %v", config.SectionOrder)
	}

	hero := config.Sections[landing.SectionHero]
	if !hero.Enabled || hero.Variant != "hero1" {
		t.Fatalf("unexpected hero defaults: %+v", hero)
	}
	if hero.Props["headline"] != "Welcome to our store" {
		t.Fatalf("unexpected hero props: %v", hero.Props)
	}
}

func TestMerge_OverrideFieldsWin(t *testing.T) {
	catalog := newCatalog(t)
	definition := classicDefinition(t, catalog)

	disabled := false
	variant := "hero7"
	config := resolver.Merge(definition, landing.Override{
		TemplateID: "modern",
		Sections: map[string]landing.SectionOverride{
			"hero": {
				Enabled: &disabled,
				Variant: &variant,
				Props:   map[string]any{"headline": "Fresh drop"},
			},
		},
	})

	if config.TemplateID != "modern" {
		t.Fatalf("expected override template id, got %q", config.TemplateID)
	}

	hero := config.Sections[landing.SectionHero]
	if hero.Enabled {
		t.Fatal("expected hero disabled")
	}
	if hero.Variant != "hero7" {
		t.Fatalf("expected hero7, got %q", hero.Variant)
	}
	// Props replace wholesale: default keys must not leak through.
	if _, leaked := hero.Props["subheadline"]; leaked {
		t.Fatalf("default props leaked into override: %v", hero.Props)
	}
	if hero.Props["headline"] != "Fresh drop" {
		t.Fatalf("unexpected hero props: %v", hero.Props)
	}
}

func TestMerge_NilPointersKeepDefaults(t *testing.T) {
	catalog := newCatalog(t)
	definition := classicDefinition(t, catalog)

	config := resolver.Merge(definition, landing.Override{
		Sections: map[string]landing.SectionOverride{
			"about": {},
		},
	})

	about := config.Sections[landing.SectionAbout]
	if !about.Enabled || about.Variant != "about1" {
		t.Fatalf("expected about defaults preserved, got %+v", about)
	}
	if about.Props["heading"] != "About us" {
		t.Fatalf("expected default about props, got %v", about.Props)
	}
}

func TestMerge_UnknownSectionKeysIgnored(t *testing.T) {
	catalog := newCatalog(t)
	definition := classicDefinition(t, catalog)

	enabled := true
	config := resolver.Merge(definition, landing.Override{
		Sections: map[string]landing.SectionOverride{
			"sidebar": {Enabled: &enabled},
		},
	})

	if len(config.Sections) != len(definition.Order) {
		t.Fatalf("unknown section leaked into merged config: %v", config.Sections)
	}
	if _, ok := config.Sections[landing.SectionType("sidebar")]; ok {
		t.Fatal("sidebar should not appear in merged sections")
	}
}

func TestMerge_DoesNotMutateTemplateDefaults(t *testing.T) {
	catalog := newCatalog(t)
	definition := classicDefinition(t, catalog)

	config := resolver.Merge(definition, landing.Override{})
	config.Sections[landing.SectionHero].Props["headline"] = "mutated"

	fresh := resolver.Merge(definition, landing.Override{})
	if fresh.Sections[landing.SectionHero].Props["headline"] != "Welcome to our store" {
		t.Fatal("template defaults were mutated through a merged config")
	}
}
