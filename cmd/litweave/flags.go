package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across runs.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// frontMatterFlags holds front matter override flags.
type frontMatterFlags struct {
	title    string
	author   string
	date     string // "auto" = today
	disabled bool
}

// assetFlags holds asset-related flags (CSS, template, custom asset path).
type assetFlags struct {
	style     string // Embedded name, CSS file path, or raw CSS
	template  string // Embedded name or HTML file path
	assetPath string // Override asset directory
}

// buildFlags holds all flags for the build run.
type buildFlags struct {
	common      commonFlags
	input       string
	outDir      string
	frontMatter frontMatterFlags
	assets      assetFlags
	pdf         bool
	version     bool
}

// newFlagSet creates the litweave flag set bound to f.
func newFlagSet(f *buildFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("litweave", flag.ContinueOnError)

	fs.StringVarP(&f.common.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.common.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.common.verbose, "verbose", "v", false, "show detailed progress")

	fs.StringVarP(&f.input, "input", "i", "", "annotated source document (default "+defaultInput+")")
	fs.StringVarP(&f.outDir, "out-dir", "o", "", "output directory (default "+defaultOutDir+")")

	fs.StringVar(&f.frontMatter.title, "title", "", "report title (\"\" = built-in default)")
	fs.StringVar(&f.frontMatter.author, "author", "", "report author (\"\" = built-in default)")
	fs.StringVar(&f.frontMatter.date, "date", "", "report date (\"auto\" = today)")
	fs.BoolVar(&f.frontMatter.disabled, "no-front-matter", false, "skip the front matter header")

	fs.StringVar(&f.assets.style, "style", "", "style name, CSS file path, or raw CSS")
	fs.StringVar(&f.assets.template, "template", "", "template name or HTML file path")
	fs.StringVar(&f.assets.assetPath, "asset-path", "", "custom asset directory (fallback to embedded)")

	fs.BoolVar(&f.pdf, "pdf", false, "also render the report to PDF (headless Chrome)")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	return fs
}

// parseFlags parses CLI arguments into buildFlags.
func parseFlags(args []string) (*buildFlags, error) {
	var f buildFlags
	fs := newFlagSet(&f)
	if err := fs.Parse(args[1:]); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q (use --input)", fs.Arg(0))
	}
	return &f, nil
}
