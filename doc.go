// Package litweave builds literate-programming reports from annotated
// Go source documents.
//
// A document flows through two components, in sequence:
//
//  1. Extractor: reads an annotated source file ("// " lines are
//     prose, everything else is code) and emits Markdown with fenced
//     ```go blocks.
//  2. Weaver: executes every ```go block in document order inside one
//     persistent interpreter session, captures the output, inlines it
//     after each block, and renders the result as a styled HTML page.
//
// # Quick Start
//
//	ext := litweave.NewExtractor()
//	md, err := ext.Extract(source)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	w, err := litweave.NewWeaver()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	result, err := w.Weave(ctx, litweave.Input{Markdown: md})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("report.html", result.HTML, 0644)
//
// Because blocks share one evaluation context, later blocks see
// bindings and imports introduced by earlier ones; a tutorial reads
// top to bottom exactly like a REPL session. A block whose fence is
// tagged "go nofail" may fail: the error text is rendered as the
// block's output instead of aborting the run. Any other failing block
// aborts with the source line of the offending block.
//
// # Styling
//
// Input.Style accepts an embedded style name ("tutorial", "plain"),
// a path to a CSS file, or raw CSS. Input.Template accepts an
// embedded template name ("report") or a path to an html/template
// file receiving Title, Author, Date and Body. Use WithAssetPath to
// overlay a custom asset directory over the embedded defaults.
//
// # PDF Export
//
// Set Input.PDF to also render the report to PDF with headless
// Chrome (go-rod). The browser is launched lazily on first use and
// released by Close.
package litweave
