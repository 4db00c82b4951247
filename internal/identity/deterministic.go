package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// TenantUUID derives the identifier for a tenant keyed by storefront slug.
func TenantUUID(slug string) uuid.UUID {
	return UUID("go-landing:tenant:" + strings.ToLower(strings.TrimSpace(slug)))
}

// TestimonialUUID derives a stable identifier for a testimonial that was
// persisted without one. Keying on author and content keeps ordering
// deterministic across resolutions.
func TestimonialUUID(name, content string) uuid.UUID {
	return UUID("go-landing:testimonial:" + strings.TrimSpace(name) + ":" + strings.TrimSpace(content))
}

// TemplateUUID derives the identifier for a registered template.
func TemplateUUID(templateID string) uuid.UUID {
	return UUID("go-landing:template:" + strings.ToLower(strings.TrimSpace(templateID)))
}
