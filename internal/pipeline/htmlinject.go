package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrTemplateRender indicates the page template failed to render.
var ErrTemplateRender = errors.New("page template rendering failed")

// defaultPageTemplate wraps the woven fragment in a minimal HTML5
// document when no template asset is configured.
const defaultPageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{if .Title}}{{.Title}}{{else}}Report{{end}}</title>
</head>
<body>
{{if .Title}}<h1 class="report-title">{{.Title}}</h1>{{end}}
{{if .Author}}<p class="report-author">{{.Author}}{{if .Date}} &middot; {{.Date}}{{end}}</p>{{end}}
{{.Body}}
</body>
</html>
`

// PageData is the data passed to the page template.
type PageData struct {
	Title  string
	Author string
	Date   string
	Body   template.HTML
}

// PageTemplater defines the contract for wrapping an HTML fragment in
// a complete page.
type PageTemplater interface {
	ApplyTemplate(ctx context.Context, fragment string, data PageData) (string, error)
}

// PageTemplate renders the report page from an html/template source.
type PageTemplate struct {
	tmpl *template.Template
}

// NewPageTemplate parses the template source. An empty source selects
// the built-in default page.
func NewPageTemplate(source string) (*PageTemplate, error) {
	if source == "" {
		source = defaultPageTemplate
	}
	tmpl, err := template.New("page").Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return &PageTemplate{tmpl: tmpl}, nil
}

// ApplyTemplate wraps the fragment in the page template.
// The fragment is trusted: it is goldmark output, never raw user HTML.
func (p *PageTemplate) ApplyTemplate(ctx context.Context, fragment string, data PageData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data.Body = template.HTML(fragment) // #nosec G203 -- goldmark output, WithUnsafe disabled
	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized to prevent injection attacks.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	// Check for cancellation
	if ctx.Err() != nil {
		return htmlContent
	}

	sanitizedCSS := sanitizeCSS(cssContent)
	styleBlock := "<style>" + sanitizedCSS + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	// Try inserting before </head>
	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	// Try inserting after <body>
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		// Find the closing > of <body...>
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	// Fallback: prepend
	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
// Prevents CSS injection by escaping </style> and similar closing sequences.
func sanitizeCSS(css string) string {
	// Escape </ sequences to prevent closing the style tag prematurely
	return strings.ReplaceAll(css, "</", `<\/`)
}
