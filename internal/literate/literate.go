// Package literate converts annotated Go source documents to Markdown.
//
// An annotated source document mixes prose and code using a line-level
// convention: lines starting with the comment marker "// " (or a bare
// "//") are prose, every other non-blank line is code. Prose lines are
// emitted as literal Markdown text; runs of code lines become fenced
// ```go blocks. Block boundaries fall at transitions between the two
// line kinds.
package literate

import (
	"regexp"
	"strings"
)

// Comment marker for prose lines. Indented comments stay inside code
// chunks so snippets can carry their own comments.
const (
	proseMarker = "// "
	proseBare   = "//"
)

// Directive lines are consumed by the classifier and never emitted.
const (
	// directiveBreak forces a chunk boundary without emitting content.
	directiveBreak = "//-"
	// directiveNoFail marks the next code chunk as allowed to fail:
	// its fence is tagged "go nofail" and the weaver renders the
	// execution error instead of aborting.
	directiveNoFail = "//!nofail"
)

// crossRefPattern matches documentation-site cross-reference links,
// e.g. [SomeType](@ref) or [text](@ref anchor). They have no meaning
// outside the original doc site and collapse to their link text.
var crossRefPattern = regexp.MustCompile(`\[([^\]]*)\]\(@ref[^)]*\)`)

// ChunkKind classifies a chunk as prose or code.
type ChunkKind int

// Chunk kinds.
const (
	Prose ChunkKind = iota
	Code
)

// Chunk is a run of consecutive lines of one kind.
type Chunk struct {
	Kind   ChunkKind
	Line   int // 1-based line of the first line in the source
	Lines  []string
	NoFail bool // only meaningful for Code chunks
}

// Split classifies the source line by line and groups it into chunks.
// Blank lines extend the current chunk; leading and trailing blank
// lines of every chunk are trimmed afterwards so fences stay tight.
func Split(src string) []Chunk {
	lines := strings.Split(normalize(src), "\n")

	var (
		chunks  []Chunk
		current *Chunk
		nofail  bool
	)

	open := func(kind ChunkKind, line int) {
		chunks = append(chunks, Chunk{Kind: kind, Line: line})
		current = &chunks[len(chunks)-1]
		if kind == Code {
			current.NoFail = nofail
		}
		nofail = false
	}

	for i, line := range lines {
		switch {
		case strings.TrimRight(line, " \t") == directiveBreak:
			current = nil
		case strings.TrimRight(line, " \t") == directiveNoFail:
			current = nil
			nofail = true
		case isProse(line):
			if current == nil || current.Kind != Prose {
				open(Prose, i+1)
			}
			current.Lines = append(current.Lines, proseText(line))
		case strings.TrimSpace(line) == "":
			// Blank lines belong to the current chunk; a blank line
			// before any content is dropped.
			if current != nil {
				current.Lines = append(current.Lines, "")
			}
		default:
			if current == nil || current.Kind != Code {
				open(Code, i+1)
			}
			current.Lines = append(current.Lines, line)
		}
	}

	return trimChunks(chunks)
}

// ToMarkdown renders chunks as a Markdown document. Prose chunks are
// emitted verbatim (cross-references stripped), code chunks become
// fenced ```go blocks, ```go nofail when flagged.
func ToMarkdown(chunks []Chunk) string {
	var b strings.Builder
	for i, c := range chunks {
		if i > 0 {
			b.WriteString("\n")
		}
		switch c.Kind {
		case Prose:
			for _, line := range c.Lines {
				b.WriteString(stripCrossRefs(line))
				b.WriteString("\n")
			}
		case Code:
			info := "go"
			if c.NoFail {
				info = "go nofail"
			}
			b.WriteString("```" + info + "\n")
			for _, line := range c.Lines {
				b.WriteString(line)
				b.WriteString("\n")
			}
			b.WriteString("```\n")
		}
	}
	return b.String()
}

// Extract converts an annotated source document to Markdown.
// It is a pure function of its input: identical input produces
// byte-identical output.
func Extract(src string) string {
	return ToMarkdown(Split(src))
}

// isProse reports whether the line is a prose line: an unindented
// comment marker at the very start of the line.
func isProse(line string) bool {
	return strings.HasPrefix(line, proseMarker) ||
		strings.TrimRight(line, " \t") == proseBare
}

// proseText strips the comment marker from a prose line.
func proseText(line string) string {
	if strings.HasPrefix(line, proseMarker) {
		return line[len(proseMarker):]
	}
	return ""
}

// stripCrossRefs collapses [text](@ref ...) links to plain text.
func stripCrossRefs(line string) string {
	return crossRefPattern.ReplaceAllString(line, "$1")
}

// normalize converts \r\n and \r line endings to \n.
func normalize(src string) string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	return strings.ReplaceAll(src, "\r", "\n")
}

// trimChunks removes leading/trailing blank lines from each chunk and
// drops chunks left empty.
func trimChunks(chunks []Chunk) []Chunk {
	out := chunks[:0]
	for _, c := range chunks {
		start, end := 0, len(c.Lines)
		for start < end && c.Lines[start] == "" {
			start++
		}
		for end > start && c.Lines[end-1] == "" {
			end--
		}
		if start == end {
			continue
		}
		c.Line += start
		c.Lines = c.Lines[start:end]
		out = append(out, c)
	}
	return out
}
