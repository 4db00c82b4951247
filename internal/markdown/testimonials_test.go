package markdown_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-landing/internal/markdown"
)

func TestParseTestimonial(t *testing.T) {
	source := []byte(`---
name: Dana
role: Founder
avatar: https://cdn.example.com/dana.png
rating: "5"
---
The **best** storefront builder around.
`)

	payload, err := markdown.ParseTestimonial(source)
	if err != nil {
		t.Fatalf("ParseTestimonial: %v", err)
	}

	if payload["name"] != "Dana" || payload["role"] != "Founder" {
		t.Fatalf("frontmatter not extracted: %v", payload)
	}
	if payload["rating"] != "5" {
		t.Fatalf("rating should pass through as string: %v", payload["rating"])
	}
	content, _ := payload["content"].(string)
	if !strings.Contains(content, "<strong>best</strong>") {
		t.Fatalf("markdown emphasis not rendered: %q", content)
	}
}

func TestParseTestimonial_OmitsEmptyOptionalFields(t *testing.T) {
	payload, err := markdown.ParseTestimonial([]byte(`---
name: Lee
---
Plain praise.
`))
	if err != nil {
		t.Fatalf("ParseTestimonial: %v", err)
	}
	for _, key := range []string{"role", "avatar", "rating"} {
		if _, ok := payload[key]; ok {
			t.Fatalf("expected %s omitted, got %v", key, payload)
		}
	}
}

func TestLoadDirectory_SortsAndFilters(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"02-second.md": "---\nname: Second\n---\nLater entry.\n",
		"01-first.md":  "---\nname: First\n---\nEarlier entry.\n",
		"readme.txt":   "not a testimonial",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	payloads, err := markdown.LoadDirectory(dir)
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(payloads) != 2 {
		t.Fatalf("expected 2 payloads, got %d", len(payloads))
	}
	if payloads[0]["name"] != "First" || payloads[1]["name"] != "Second" {
		t.Fatalf("expected filename ordering, got %v", payloads)
	}
}

func TestLoadDirectory_MissingDir(t *testing.T) {
	if _, err := markdown.LoadDirectory(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
