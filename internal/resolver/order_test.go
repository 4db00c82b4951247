package resolver_test

import (
	"reflect"
	"testing"

	"github.com/goliatone/go-landing/internal/resolver"
	"github.com/goliatone/go-landing/landing"
)

func TestResolveOrder_AppendsMissingTypes(t *testing.T) {
	known := landing.SectionTypes()

	got := resolver.ResolveOrder([]landing.SectionType{
		landing.SectionContact,
		landing.SectionHero,
	}, known)

	want := []landing.SectionType{
		landing.SectionContact,
		landing.SectionHero,
		landing.SectionAbout,
		landing.SectionProducts,
		landing.SectionTestimonials,
		landing.SectionCTA,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestResolveOrder_FiltersUnknownAndDuplicates(t *testing.T) {
	known := landing.SectionTypes()

	got := resolver.ResolveOrder([]landing.SectionType{
		"banner",
		landing.SectionHero,
		landing.SectionHero,
		landing.SectionCTA,
	}, known)

	if got[0] != landing.SectionHero || got[1] != landing.SectionCTA {
		t.Fatalf("unexpected prefix: %v", got)
	}
	if len(got) != len(known) {
		t.Fatalf("expected permutation of %d types, got %v", len(known), got)
	}
	seen := map[landing.SectionType]int{}
	for _, sectionType := range got {
		seen[sectionType]++
	}
	for sectionType, count := range seen {
		if count != 1 {
			t.Fatalf("section %q appears %d times", sectionType, count)
		}
	}
}

func TestResolveOrder_EmptyInputYieldsCanonical(t *testing.T) {
	known := landing.SectionTypes()
	got := resolver.ResolveOrder(nil, known)
	if !reflect.DeepEqual(got, known) {
		t.Fatalf("expected canonical order, got %v", got)
	}
}

func TestResolveOrder_Idempotent(t *testing.T) {
	known := landing.SectionTypes()
	input := []landing.SectionType{landing.SectionCTA, "legacy", landing.SectionAbout}

	once := resolver.ResolveOrder(input, known)
	twice := resolver.ResolveOrder(once, known)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("resolution is not idempotent: %v vs %v", once, twice)
	}
}
