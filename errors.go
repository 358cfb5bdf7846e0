package litweave

import (
	"errors"

	"github.com/averel/go-litweave/internal/assets"
	"github.com/averel/go-litweave/internal/pipeline"
)

// Sentinel errors for library operations. Pipeline and asset errors
// are re-exported so callers can match them without importing
// internal packages.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrEmptySource    = errors.New("source content cannot be empty")
	ErrSourceNotFound = errors.New("source file not found")
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrBlockFailed    = pipeline.ErrBlockFailed
	ErrTemplateRender = pipeline.ErrTemplateRender

	// PDF export errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Asset loading errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
