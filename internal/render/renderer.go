// Package render produces the public profile pages. Each tier has its own
// template family; a theme may pick a named variant within the family and
// unknown variants fall back to the tier default.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"iconsherald/internal/content"
	"iconsherald/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// DefaultVariant is used when the theme names no variant or an unknown one.
const DefaultVariant = "classic"

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("profiles").Funcs(template.FuncMap{
		"hasText": func(s string) bool { return s != "" },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Render produces the full page for a published profile. A non-empty
// variant overrides the one saved in the profile's theme.
func (r *Renderer) Render(profile *models.Profile, doc *content.Document, variant string) ([]byte, error) {
	view := BuildView(profile, doc)
	if variant == "" {
		variant = view.Theme.Variant
	}
	name := r.templateName(profile.Tier, variant)

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, view); err != nil {
		return nil, fmt.Errorf("template %q: %w", name, err)
	}
	return buf.Bytes(), nil
}

// templateName resolves tier+variant to an embedded template, falling
// back to the tier's classic variant.
func (r *Renderer) templateName(tier models.Tier, variant string) string {
	if variant != "" {
		name := fmt.Sprintf("%s_%s.html", tier, variant)
		if r.templates.Lookup(name) != nil {
			return name
		}
	}
	return fmt.Sprintf("%s_%s.html", tier, DefaultVariant)
}
