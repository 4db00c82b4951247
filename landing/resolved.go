package landing

// ResolvedSection is the final, validated instruction handed to the rendering
// layer: the variant is always a registered implementation key and Props is
// passed through untouched. Sections with Renderable=false are retained for
// editor round-tripping; renderers must skip them.
type ResolvedSection struct {
	Type       SectionType    `json:"type"`
	Variant    string         `json:"variant"`
	Props      map[string]any `json:"props,omitempty"`
	Renderable bool           `json:"renderable"`
}

// Renderable filters a resolved list down to the sections a storefront page
// should actually draw, preserving order.
func Renderable(sections []ResolvedSection) []ResolvedSection {
	out := make([]ResolvedSection, 0, len(sections))
	for _, section := range sections {
		if section.Renderable {
			out = append(out, section)
		}
	}
	return out
}
