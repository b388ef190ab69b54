package mailer

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

//go:embed templates/*.html templates/*.txt
var templateFS embed.FS

var funcs = map[string]any{
	"join": strings.Join,
}

// RenderHTML renders templates/<name> inside the shared HTML layout.
func RenderHTML(name string, data any) (string, error) {
	tmpl, err := htmltemplate.New("base.html").Funcs(funcs).ParseFS(templateFS, "templates/base.html", "templates/"+name)
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return "", fmt.Errorf("render email template %s: %w", name, err)
	}
	return buf.String(), nil
}

// RenderText renders the plain-text template templates/<name>.
func RenderText(name string, data any) (string, error) {
	tmpl, err := texttemplate.New(name).Funcs(funcs).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render email template %s: %w", name, err)
	}
	return buf.String(), nil
}
