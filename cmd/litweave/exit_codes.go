package main

import (
	"errors"
	"os"

	litweave "github.com/averel/go-litweave"
	"github.com/averel/go-litweave/internal/config"
	"github.com/averel/go-litweave/internal/pipeline"
)

// Exit codes for the litweave CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
	ExitEval    = 5 // Code block failed during weaving
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Block execution errors (exit 5)
	if errors.Is(err, pipeline.ErrBlockFailed) {
		return ExitEval
	}

	// Browser errors (exit 4)
	if errors.Is(err, litweave.ErrBrowserConnect) ||
		errors.Is(err, litweave.ErrPageCreate) ||
		errors.Is(err, litweave.ErrPageLoad) ||
		errors.Is(err, litweave.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, litweave.ErrSourceNotFound) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, litweave.ErrEmptyMarkdown) ||
		errors.Is(err, litweave.ErrEmptySource) ||
		errors.Is(err, litweave.ErrStyleNotFound) ||
		errors.Is(err, litweave.ErrTemplateNotFound) ||
		errors.Is(err, litweave.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
