package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-landing/internal/validation"
)

func productsSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"heading": map[string]any{"type": "string"},
			"config": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"limit": map[string]any{"type": "integer", "minimum": 1},
				},
			},
		},
	}
}

func TestValidateProps_Accepts(t *testing.T) {
	props := map[string]any{
		"heading": "Featured",
		"config":  map[string]any{"limit": 8},
	}
	if err := validation.ValidateProps(productsSchema(), props); err != nil {
		t.Fatalf("expected valid props, got %v", err)
	}
}

func TestValidateProps_EmptySchemaAcceptsEverything(t *testing.T) {
	if err := validation.ValidateProps(nil, map[string]any{"anything": true}); err != nil {
		t.Fatalf("nil schema should accept props: %v", err)
	}
}

func TestValidateProps_Rejects(t *testing.T) {
	props := map[string]any{
		"heading": 42,
		"config":  map[string]any{"limit": 0},
	}
	err := validation.ValidateProps(productsSchema(), props)
	if !errors.Is(err, validation.ErrSchemaValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	issues := validation.Issues(err)
	if len(issues) < 2 {
		t.Fatalf("expected issues for both violations, got %v", issues)
	}
	if !strings.Contains(err.Error(), "#") {
		t.Fatalf("expected location-prefixed message, got %q", err.Error())
	}
}

func TestValidateSchema(t *testing.T) {
	if err := validation.ValidateSchema(productsSchema()); err != nil {
		t.Fatalf("expected compilable schema: %v", err)
	}
	if err := validation.ValidateSchema(nil); err != nil {
		t.Fatalf("empty schema should be accepted: %v", err)
	}

	broken := map[string]any{"type": "no-such-type"}
	if err := validation.ValidateSchema(broken); !errors.Is(err, validation.ErrSchemaInvalid) {
		t.Fatalf("expected schema invalid error, got %v", err)
	}
}

func TestIssues_PlainError(t *testing.T) {
	issues := validation.Issues(errors.New("boom"))
	if len(issues) != 1 || issues[0].Message != "boom" {
		t.Fatalf("unexpected issues: %v", issues)
	}
	if validation.Issues(nil) != nil {
		t.Fatal("nil error should yield nil issues")
	}
}
