package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrBlockFailed indicates a code block raised an error during weaving.
var ErrBlockFailed = errors.New("code block execution failed")

// Fence info strings recognized by the weaver.
const (
	fenceMarker = "```"
	langGo      = "go"
	flagNoFail  = "nofail"
)

// CodeRunner evaluates one code block and returns its captured output.
type CodeRunner interface {
	Run(ctx context.Context, code string) (string, error)
}

// BlockWeaver executes evaluable fenced code blocks in document order
// and inserts each block's captured output after the block.
type BlockWeaver struct {
	runner CodeRunner
}

// NewBlockWeaver creates a BlockWeaver using the given runner.
func NewBlockWeaver(r CodeRunner) *BlockWeaver {
	return &BlockWeaver{runner: r}
}

// WeaveBlocks scans content for fenced ```go blocks, evaluates them in
// order through the shared runner, and emits the document with an
// unlabeled output fence after every block that produced output.
//
// A block tagged "go nofail" may fail: its error text becomes the
// output. Any other failing block aborts weaving; the error carries
// the 1-based line of the block's opening fence. startLine is the line
// number of content's first line in the document the caller reads, so
// errors stay accurate when a front matter header was stripped first.
func (w *BlockWeaver) WeaveBlocks(ctx context.Context, content string, startLine int) (string, error) {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))

	var (
		code      strings.Builder
		inBlock   bool
		evaluable bool
		nofail    bool
		openLine  int
	)

	flush := func() error {
		if !evaluable {
			return nil
		}
		output, err := w.runner.Run(ctx, code.String())
		if err != nil {
			if !nofail {
				return fmt.Errorf("%w: block at line %d: %v", ErrBlockFailed, openLine, err)
			}
			output = err.Error()
		}
		if output != "" {
			out = append(out, "", fenceMarker)
			out = append(out, strings.Split(strings.TrimRight(output, "\n"), "\n")...)
			out = append(out, fenceMarker)
		}
		return nil
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case !inBlock && strings.HasPrefix(trimmed, fenceMarker):
			inBlock = true
			evaluable, nofail = parseFenceInfo(trimmed[len(fenceMarker):])
			openLine = startLine + i
			code.Reset()
			// The nofail flag is an execution directive, not a
			// language name; strip it before rendering.
			if nofail {
				out = append(out, fenceMarker+langGo)
			} else {
				out = append(out, line)
			}

		case inBlock && trimmed == fenceMarker:
			inBlock = false
			out = append(out, line)
			if err := flush(); err != nil {
				return "", err
			}

		case inBlock:
			code.WriteString(line + "\n")
			out = append(out, line)

		default:
			out = append(out, line)
		}
	}

	// An unterminated fence still evaluates; goldmark treats it as a
	// block reaching the end of the document.
	if inBlock {
		if err := flush(); err != nil {
			return "", err
		}
	}

	return strings.Join(out, "\n"), nil
}

// parseFenceInfo interprets a fence info string. Only "go" blocks are
// evaluable; "go nofail" additionally tolerates failure.
func parseFenceInfo(info string) (evaluable, nofail bool) {
	fields := strings.Fields(info)
	if len(fields) == 0 || fields[0] != langGo {
		return false, false
	}
	for _, f := range fields[1:] {
		if f == flagNoFail {
			nofail = true
		}
	}
	return true, nofail
}
