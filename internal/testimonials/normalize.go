package testimonials

import (
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-landing/internal/identity"
	"github.com/goliatone/go-landing/landing"
)

// Testimonial payloads have accumulated several shapes over the product's
// lifetime. Normalize is the single authority that reconciles them; everything
// downstream trusts its output and performs no further coercion.
//
// Field aliases recognised, first match wins:
//
//	name:    name, author, customer, customerName
//	content: content, text, message, comment, body
//	role:    role, title, position
//	avatar:  avatar, avatarUrl, avatar_url, photo, image
//	rating:  rating, stars, score
func Normalize(raw []any) []landing.Testimonial {
	out := make([]landing.Testimonial, 0, len(raw))
	for _, entry := range raw {
		record, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		testimonial, ok := normalizeRecord(record)
		if !ok {
			continue
		}
		out = append(out, testimonial)
	}
	return out
}

func normalizeRecord(record map[string]any) (landing.Testimonial, bool) {
	name := strings.TrimSpace(firstString(record, "name", "author", "customer", "customerName"))
	content := strings.TrimSpace(firstString(record, "content", "text", "message", "comment", "body"))
	if name == "" || content == "" {
		return landing.Testimonial{}, false
	}

	testimonial := landing.Testimonial{
		ID:      recordID(record, name, content),
		Name:    name,
		Content: content,
	}
	if role := strings.TrimSpace(firstString(record, "role", "title", "position")); role != "" {
		testimonial.Role = &role
	}
	if avatar := strings.TrimSpace(firstString(record, "avatar", "avatarUrl", "avatar_url", "photo", "image")); avatar != "" {
		testimonial.Avatar = &avatar
	}
	if rating, ok := coerceRating(firstValue(record, "rating", "stars", "score")); ok {
		testimonial.Rating = &rating
	}
	return testimonial, true
}

// recordID keeps an existing id when present and derives a stable one from
// author and content otherwise, so ordering stays deterministic across calls.
func recordID(record map[string]any, name, content string) string {
	if id := strings.TrimSpace(firstString(record, "id", "_id", "uuid")); id != "" {
		return id
	}
	return identity.TestimonialUUID(name, content).String()
}

// coerceRating accepts ints, floats, and numeric strings, rejecting anything
// outside 0-5 or not a whole number.
func coerceRating(value any) (int, bool) {
	switch typed := value.(type) {
	case nil:
		return 0, false
	case int:
		return clampRating(typed)
	case int64:
		return clampRating(int(typed))
	case float64:
		if typed != math.Trunc(typed) {
			return 0, false
		}
		return clampRating(int(typed))
	case string:
		trimmed := strings.TrimSpace(typed)
		if trimmed == "" {
			return 0, false
		}
		parsed, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, false
		}
		return clampRating(parsed)
	default:
		return 0, false
	}
}

func clampRating(rating int) (int, bool) {
	if rating < 0 || rating > 5 {
		return 0, false
	}
	return rating, true
}

func firstString(record map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := record[key].(string); ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func firstValue(record map[string]any, keys ...string) any {
	for _, key := range keys {
		if value, ok := record[key]; ok && value != nil {
			return value
		}
	}
	return nil
}
