package litweave

import "github.com/averel/go-litweave/internal/assets"

// Built-in asset names.
const (
	// DefaultStyle is the CSS style applied when Input.Style is empty.
	DefaultStyle = assets.DefaultStyleName

	// DefaultTemplate is the page template applied when Input.Template is empty.
	DefaultTemplate = assets.DefaultTemplateName
)

// LoadStyle loads a built-in CSS style by name (without .css extension).
// Useful for callers that want to inspect or extend a built-in style
// before passing it as raw CSS via Input.Style.
func LoadStyle(name string) (string, error) {
	return assets.NewEmbeddedLoader().LoadStyle(name)
}

// LoadTemplate loads a built-in page template by name (without .html extension).
func LoadTemplate(name string) (string, error) {
	return assets.NewEmbeddedLoader().LoadTemplate(name)
}
