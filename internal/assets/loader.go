// Package assets provides CSS styles and HTML page templates for the
// woven report. Assets load from embedded files or custom filesystem paths.
package assets

// DefaultStyleName is the style applied when none is configured.
const DefaultStyleName = "tutorial"

// DefaultTemplateName is the page template applied when none is configured.
const DefaultTemplateName = "report"

// AssetLoader defines the contract for loading CSS styles and HTML templates.
// Implementations may load from embedded assets, the filesystem, etc.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
