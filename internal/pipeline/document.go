package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrDocumentRender indicates the page template could not be rendered.
var ErrDocumentRender = errors.New("document template rendering failed")

// DefaultLang is the <html lang> value used when none is configured.
const DefaultLang = "en"

// DocumentData holds the values substituted into the page template.
type DocumentData struct {
	Title string
	Lang  string
	CSS   string // raw stylesheet, placed in a <style> element
	Body  string // converted HTML body, inserted verbatim
}

// DocumentRenderer defines the contract for wrapping a body in a full page.
type DocumentRenderer interface {
	RenderDocument(ctx context.Context, data *DocumentData) (string, error)
}

// TemplateDocument renders a complete HTML document from an html/template.
//
// The template receives .Title and .Lang as plain strings (escaped by
// html/template), .CSS as template.CSS and .Body as template.HTML.
type TemplateDocument struct {
	tmpl *template.Template
}

// NewTemplateDocument creates a TemplateDocument from template content.
// Returns error if the template cannot be parsed.
func NewTemplateDocument(tmplContent string) (*TemplateDocument, error) {
	tmpl, err := template.New("document").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing document template: %w", err)
	}
	return &TemplateDocument{tmpl: tmpl}, nil
}

// documentView is what the template actually sees.
type documentView struct {
	Title string
	Lang  string
	CSS   template.CSS
	Body  template.HTML
}

// RenderDocument executes the template with data.
func (d *TemplateDocument) RenderDocument(ctx context.Context, data *DocumentData) (string, error) {
	if data == nil {
		return "", fmt.Errorf("%w: nil document data", ErrDocumentRender)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	lang := data.Lang
	if lang == "" {
		lang = DefaultLang
	}

	view := documentView{
		Title: data.Title,
		Lang:  lang,
		CSS:   template.CSS(sanitizeCSS(data.CSS)), // #nosec G203 -- stylesheet comes from trusted assets or the caller
		Body:  template.HTML(data.Body),            // #nosec G203 -- body is converter output
	}

	var buf bytes.Buffer
	if err := d.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}
	return buf.String(), nil
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
