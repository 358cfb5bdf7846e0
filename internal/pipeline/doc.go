// Package pipeline contains the document transformation stages:
// Markdown preprocessing, front matter handling, code block weaving,
// Markdown to HTML conversion, and CSS/template injection.
//
// Each stage is a small interface so the root package can assemble
// the pipeline and tests can substitute fakes.
package pipeline
