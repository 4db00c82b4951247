package resolver

import (
	"strings"

	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/landing"
	"github.com/goliatone/go-landing/pkg/interfaces"
)

// selectVariant returns the requested variant when it is registered for the
// section type and the canonical fallback otherwise. A fallback substitution
// is an operator-facing diagnostic, never a shopper-facing failure: variants
// get retired over the product's lifetime and tenants configured against one
// must still see a working page.
func selectVariant(sectionType landing.SectionType, requested string, registered []string, fallback string, logger interfaces.Logger) string {
	needle := strings.ToLower(strings.TrimSpace(requested))
	for _, candidate := range registered {
		// Return the registered key, not the canonicalized request, so the
		// renderer always receives a variant it knows about.
		if strings.ToLower(strings.TrimSpace(candidate)) == needle && needle != "" {
			return candidate
		}
	}

	logging.WithFields(logger, map[string]any{
		"section_type":      string(sectionType),
		"requested_variant": requested,
		"fallback_variant":  fallback,
	}).Warn("resolver.variant.fallback")

	return fallback
}
