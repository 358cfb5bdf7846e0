package litweave

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/averel/go-litweave/internal/assets"
	"github.com/averel/go-litweave/internal/execute"
	"github.com/averel/go-litweave/internal/fileutil"
	"github.com/averel/go-litweave/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ pipeline.PageTemplater        = (*pipeline.PageTemplate)(nil)
	_ pipeline.CodeRunner           = (*execute.GoRunner)(nil)
	_ pdfConverter                  = (*rodConverter)(nil)
	_ pdfRenderer                   = (*rodRenderer)(nil)
)

// blockWeaver abstracts code block execution over a document.
type blockWeaver interface {
	WeaveBlocks(ctx context.Context, content string, startLine int) (string, error)
}

// Weaver orchestrates the markdown-to-report pipeline: it executes
// embedded Go code blocks in one persistent interpreter session,
// inlines their captured output, and renders the result as a styled
// HTML document.
//
// A Weaver holds interpreter state between Weave calls, so weaving
// two unrelated documents with one Weaver leaks bindings from the
// first into the second. Create one Weaver per document.
type Weaver struct {
	cfg           weaverConfig
	assetLoader   assets.AssetLoader
	preprocessor  pipeline.MarkdownPreprocessor
	blockWeaver   blockWeaver
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	pdfConverter  pdfConverter
}

// NewWeaver creates a Weaver with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithAssetPath).
// Returns error if asset loading or interpreter setup fails.
func NewWeaver(opts ...Option) (*Weaver, error) {
	w := &Weaver{
		cfg:           weaverConfig{timeout: defaultTimeout},
		assetLoader:   assets.NewEmbeddedLoader(),
		preprocessor:  &pipeline.CommonMarkPreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		cssInjector:   &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(w)
	}

	// Handle WithAssetPath: custom assets with embedded fallback
	if w.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(w.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		w.assetLoader = resolver
	}

	// Create the interpreter-backed block weaver if not injected (e.g., by tests)
	if w.blockWeaver == nil {
		runner, err := execute.NewGoRunner()
		if err != nil {
			return nil, fmt.Errorf("initializing interpreter: %w", err)
		}
		w.blockWeaver = pipeline.NewBlockWeaver(runner)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if w.pdfConverter == nil {
		w.pdfConverter = newRodConverter(w.cfg.timeout)
	}

	return w, nil
}

// Weave runs the full pipeline and returns the result containing the
// woven Markdown, the HTML report, and optionally a PDF.
// The context is used for cancellation and timeout.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (w *Weaver) Weave(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	// Preprocess markdown
	mdContent := w.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Split off front matter; the header must not reach the interpreter
	fm, body, err := pipeline.ParseFrontMatter(mdContent)
	if err != nil {
		return nil, fmt.Errorf("parsing front matter: %w", err)
	}

	// Execute code blocks in document order, inlining captured output.
	// Block error lines are reported against the full document, front
	// matter header included.
	bodyLine := 1 + strings.Count(mdContent[:len(mdContent)-len(body)], "\n")
	woven, err := w.blockWeaver.WeaveBlocks(ctx, body, bodyLine)
	if err != nil {
		return nil, fmt.Errorf("weaving blocks: %w", err)
	}

	// Convert to an HTML fragment
	fragment, err := w.htmlConverter.ToHTML(ctx, woven)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	// Wrap the fragment in the page template
	tmplSource, err := w.resolveTemplate(input.Template)
	if err != nil {
		return nil, err
	}
	templater, err := pipeline.NewPageTemplate(tmplSource)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	page, err := templater.ApplyTemplate(ctx, fragment, pipeline.PageData{
		Title:  fm.Title,
		Author: fm.Author,
		Date:   fm.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("applying page template: %w", err)
	}

	// Build combined CSS (resolved style first, extra CSS last so it can override)
	cssContent, err := w.resolveStyle(input.Style)
	if err != nil {
		return nil, err
	}
	if input.CSS != "" {
		cssContent += "\n" + input.CSS
	}

	// Inject CSS
	htmlContent := w.cssInjector.InjectCSS(ctx, page, cssContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Reattach front matter so Result.Markdown round-trips
	wovenDoc, err := pipeline.PrependFrontMatter(woven, fm)
	if err != nil {
		return nil, fmt.Errorf("serializing front matter: %w", err)
	}

	res := &Result{
		Markdown: []byte(wovenDoc),
		HTML:     []byte(htmlContent),
	}

	if !input.PDF {
		return res, nil
	}

	pdfBytes, err := w.pdfConverter.ToPDF(ctx, htmlContent)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	res.PDF = pdfBytes
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (w *Weaver) Close() error {
	if w.pdfConverter != nil {
		return w.pdfConverter.Close()
	}
	return nil
}

// resolveStyle resolves a style input (embedded name, file path, or
// raw CSS content) to CSS content. An empty input selects the default
// embedded style.
func (w *Weaver) resolveStyle(input string) (string, error) {
	if input == "" {
		input = assets.DefaultStyleName
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("loading style file %q: %w", input, err)
		}
		return string(content), nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		return input, nil
	}

	// Style name -> use asset loader
	css, err := w.assetLoader.LoadStyle(input)
	if err != nil {
		return "", fmt.Errorf("loading style %q: %w", input, err)
	}
	return css, nil
}

// resolveTemplate resolves a template input (embedded name or file
// path) to template source. An empty input selects the default
// embedded page template.
func (w *Weaver) resolveTemplate(input string) (string, error) {
	if input == "" {
		input = assets.DefaultTemplateName
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("loading template file %q: %w", input, err)
		}
		return string(content), nil
	}

	source, err := w.assetLoader.LoadTemplate(input)
	if err != nil {
		return "", fmt.Errorf("loading template %q: %w", input, err)
	}
	return source, nil
}
