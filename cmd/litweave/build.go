package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	litweave "github.com/averel/go-litweave"
	"github.com/averel/go-litweave/internal/config"
	"github.com/averel/go-litweave/internal/fileutil"
	"github.com/averel/go-litweave/internal/pipeline"
)

// Sentinel errors for CLI operations.
var ErrWriteOutput = errors.New("failed to write output file")

// Default pipeline paths, relative to the working directory. The tool
// is usually run from the repository root with no arguments at all.
const (
	defaultInput  = "lessons/gotchas.golit"
	defaultOutDir = "build"
)

// Fixed front matter header for the shipped tutorial. Overridable via
// config or flags.
const (
	defaultTitle  = "Go Gotchas"
	defaultAuthor = "The litweave authors"
)

// File permission constants.
const filePermissions = 0o644 // rw-r--r--: owner read+write, others read

// runBuild executes the full pipeline: extract, copy with front
// matter, weave, write outputs. Each step blocks until complete; any
// failure propagates unmodified and ends the run.
func runBuild(ctx context.Context, flags *buildFlags, stderr io.Writer) error {
	// Load configuration
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		loaded, err := config.LoadConfig(flags.common.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	input := firstNonEmpty(flags.input, cfg.Input.Path, defaultInput)
	outDir := firstNonEmpty(flags.outDir, cfg.Output.Dir, defaultOutDir)

	// Step 1: extract annotated source to Markdown
	extractor := litweave.NewExtractor()
	mdPath, err := extractor.ExtractFile(input, outDir)
	if err != nil {
		return err
	}
	logf(flags, stderr, "Extracted %s -> %s\n", input, mdPath)

	// Step 2: rename-by-copy so the plain Markdown remains alongside
	// the weavable report source
	reportPath := strings.TrimSuffix(mdPath, ".md") + "_report.md"
	if err := fileutil.CopyFile(mdPath, reportPath); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	// Step 3: prepend front matter to the copy
	content, err := os.ReadFile(reportPath) // #nosec G304 -- path derived from user input
	if err != nil {
		return fmt.Errorf("reading %q: %w", reportPath, err)
	}
	document := string(content)
	if fm := resolveFrontMatter(cfg, flags); !fm.IsZero() {
		document, err = pipeline.PrependFrontMatter(document, fm)
		if err != nil {
			return err
		}
		if err := os.WriteFile(reportPath, []byte(document), filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}
	logf(flags, stderr, "Prepared %s\n", reportPath)

	// Step 4: weave
	var opts []litweave.Option
	if assetPath := firstNonEmpty(flags.assets.assetPath, cfg.Assets.BasePath); assetPath != "" {
		opts = append(opts, litweave.WithAssetPath(assetPath))
	}
	weaver, err := litweave.NewWeaver(opts...)
	if err != nil {
		return err
	}
	defer func() { _ = weaver.Close() }()

	result, err := weaver.Weave(ctx, litweave.Input{
		Markdown: document,
		Style:    firstNonEmpty(flags.assets.style, cfg.Style.Name),
		Template: firstNonEmpty(flags.assets.template, cfg.Template.Name),
		PDF:      flags.pdf || cfg.PDF.Enabled,
	})
	if err != nil {
		return err
	}

	// Step 5: write the report(s)
	htmlPath := strings.TrimSuffix(mdPath, ".md") + ".html"
	if err := os.WriteFile(htmlPath, result.HTML, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if !flags.common.quiet {
		fmt.Fprintf(os.Stdout, "Created %s\n", htmlPath)
	}

	if result.PDF != nil {
		pdfPath := strings.TrimSuffix(mdPath, ".md") + ".pdf"
		if err := os.WriteFile(pdfPath, result.PDF, filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		if !flags.common.quiet {
			fmt.Fprintf(os.Stdout, "Created %s\n", pdfPath)
		}
	}

	return nil
}

// resolveFrontMatter merges the built-in header, config, and flags.
// Flags win over config, config over the built-in defaults.
func resolveFrontMatter(cfg *config.Config, flags *buildFlags) pipeline.FrontMatter {
	if flags.frontMatter.disabled || !cfg.FrontMatter.Enabled {
		return pipeline.FrontMatter{}
	}

	fm := pipeline.FrontMatter{
		Title:  firstNonEmpty(flags.frontMatter.title, cfg.FrontMatter.Title, defaultTitle),
		Author: firstNonEmpty(flags.frontMatter.author, cfg.FrontMatter.Author, defaultAuthor),
		Date:   firstNonEmpty(flags.frontMatter.date, cfg.FrontMatter.Date),
	}
	if fm.Date == "auto" {
		fm.Date = time.Now().Format("2006-01-02")
	}
	return fm
}

// logf writes progress output when verbose is enabled.
func logf(flags *buildFlags, w io.Writer, format string, args ...any) {
	if flags.common.verbose && !flags.common.quiet {
		fmt.Fprintf(w, format, args...)
	}
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
