package litweave

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/averel/go-litweave/internal/literate"
)

// Extractor converts annotated source documents to Markdown.
// The zero value is ready to use; extraction is a pure function of
// its input, so identical input yields byte-identical output.
type Extractor struct{}

// NewExtractor creates an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract converts annotated source content to Markdown.
// Lines starting with "// " become literal Markdown text; all other
// lines are grouped into fenced ```go blocks. Documentation-site
// cross-references ([text](@ref)) are collapsed to their link text.
func (e *Extractor) Extract(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", ErrEmptySource
	}
	return literate.Extract(src), nil
}

// ExtractFile reads the annotated source at srcPath and writes the
// Markdown to outDir under the same base name with a .md extension.
// Returns the path of the written file.
func (e *Extractor) ExtractFile(srcPath, outDir string) (string, error) {
	data, err := os.ReadFile(srcPath) // #nosec G304 -- user-provided path
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrSourceNotFound, srcPath)
		}
		return "", fmt.Errorf("reading source: %w", err)
	}

	md, err := e.Extract(string(data))
	if err != nil {
		return "", fmt.Errorf("extracting %s: %w", srcPath, err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil { // #nosec G301 -- shared output dir
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	outPath := filepath.Join(outDir, base+".md")
	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil { // #nosec G306 -- generated docs
		return "", fmt.Errorf("writing markdown: %w", err)
	}
	return outPath, nil
}
