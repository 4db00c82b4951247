package resolver

import "github.com/goliatone/go-landing/landing"

// ResolveOrder turns a possibly stale or incomplete stored order into a
// canonical one: filter to known types, deduplicate keeping the first
// occurrence, then append missing known types in template-canonical order.
// The result is always a permutation of exactly knownTypes.
func ResolveOrder(order []landing.SectionType, knownTypes []landing.SectionType) []landing.SectionType {
	known := make(map[landing.SectionType]struct{}, len(knownTypes))
	for _, sectionType := range knownTypes {
		known[sectionType] = struct{}{}
	}

	resolved := make([]landing.SectionType, 0, len(knownTypes))
	seen := make(map[landing.SectionType]struct{}, len(knownTypes))
	for _, sectionType := range order {
		if _, ok := known[sectionType]; !ok {
			continue
		}
		if _, dup := seen[sectionType]; dup {
			continue
		}
		seen[sectionType] = struct{}{}
		resolved = append(resolved, sectionType)
	}

	for _, sectionType := range knownTypes {
		if _, ok := seen[sectionType]; ok {
			continue
		}
		resolved = append(resolved, sectionType)
	}

	return resolved
}
