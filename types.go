package litweave

import "time"

// Input contains weaving parameters.
type Input struct {
	Markdown string // Markdown content (required)
	Style    string // Embedded style name, CSS file path, or raw CSS (optional)
	CSS      string // Extra raw CSS appended after the style (optional)
	Template string // Embedded template name or HTML file path (optional)
	PDF      bool   // Also render the report to PDF via headless Chrome
}

// Result contains the woven document in its output representations.
type Result struct {
	Markdown []byte // Markdown with captured output inlined
	HTML     []byte // Final styled HTML report
	PDF      []byte // Only set when Input.PDF was requested
}

// Option configures a Weaver.
type Option func(*Weaver)

// weaverConfig holds internal configuration for Weaver.
type weaverConfig struct {
	timeout   time.Duration
	assetPath string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("litweave: WithTimeout duration must be positive")
	}
	return func(w *Weaver) {
		w.cfg.timeout = d
	}
}

// WithAssetPath overrides the embedded styles and templates with a
// custom asset directory. Assets missing from the directory fall back
// to the embedded ones.
func WithAssetPath(path string) Option {
	return func(w *Weaver) {
		w.cfg.assetPath = path
	}
}
