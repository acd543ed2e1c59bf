package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

type InvitationData struct {
	Name         string
	Tier         string
	TempPassword string
	LoginURL     string
	SupportEmail string
}

type NotificationData struct {
	Subject string
	Message string
}

// TemplateManager holds the parsed HTML bodies. Templates are embedded so
// the binary has no runtime file dependency.
type TemplateManager struct {
	templates *template.Template
}

func NewTemplateManager() (*TemplateManager, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &TemplateManager{templates: tmpl}, nil
}

// Render executes the named template ("invitation" renders
// templates/invitation.html).
func (tm *TemplateManager) Render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tm.templates.ExecuteTemplate(&buf, name+".html", data); err != nil {
		return "", fmt.Errorf("template %q: %w", name, err)
	}
	return buf.String(), nil
}
