package markdown

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// testimonialFrontMatter is the YAML envelope accepted on authored
// testimonial documents. Rating stays a string so historical files that quote
// the number still parse; the normalizer owns the coercion.
type testimonialFrontMatter struct {
	Name   string `yaml:"name"`
	Role   string `yaml:"role"`
	Avatar string `yaml:"avatar"`
	Rating string `yaml:"rating"`
}

// ParseTestimonial extracts a raw testimonial payload from a markdown
// document: frontmatter supplies the author fields, the rendered body becomes
// the content. The payload shape matches what the engine's normalizer accepts.
func ParseTestimonial(source []byte) (map[string]any, error) {
	var meta testimonialFrontMatter

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	content, err := renderBody(body)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"name":    strings.TrimSpace(meta.Name),
		"content": strings.TrimSpace(content),
	}
	if role := strings.TrimSpace(meta.Role); role != "" {
		payload["role"] = role
	}
	if avatar := strings.TrimSpace(meta.Avatar); avatar != "" {
		payload["avatar"] = avatar
	}
	if rating := strings.TrimSpace(meta.Rating); rating != "" {
		payload["rating"] = rating
	}
	return payload, nil
}

// LoadDirectory parses every .md file under dir into raw testimonial
// payloads, ordered by filename for deterministic positions.
func LoadDirectory(dir string) ([]map[string]any, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read testimonial directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".md") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	out := make([]map[string]any, 0, len(names))
	for _, name := range names {
		source, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read testimonial %s: %w", name, err)
		}
		payload, err := ParseTestimonial(source)
		if err != nil {
			return nil, fmt.Errorf("parse testimonial %s: %w", name, err)
		}
		out = append(out, payload)
	}
	return out, nil
}

// renderBody converts the markdown body to HTML with GFM extensions. Raw HTML
// is stripped since testimonial content is tenant-authored.
func renderBody(body []byte) (string, error) {
	engine := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithXHTML()),
	)
	var buf bytes.Buffer
	if err := engine.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("render testimonial body: %w", err)
	}
	return buf.String(), nil
}
