package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/averel/go-litweave/internal/yamlutil"
)

// ErrFrontMatter indicates a malformed front matter header.
var ErrFrontMatter = errors.New("invalid front matter")

// frontMatterDelim separates the YAML header from the document body.
const frontMatterDelim = "---"

// FrontMatter is the metadata header prepended to a document before
// weaving. All fields are optional.
type FrontMatter struct {
	Title  string `yaml:"title,omitempty"`
	Author string `yaml:"author,omitempty"`
	Date   string `yaml:"date,omitempty"`
}

// IsZero reports whether no field is set.
func (f FrontMatter) IsZero() bool {
	return f == FrontMatter{}
}

// PrependFrontMatter serializes fm as a YAML header and prepends it
// to content. A zero front matter returns content unchanged.
func PrependFrontMatter(content string, fm FrontMatter) (string, error) {
	if fm.IsZero() {
		return content, nil
	}
	data, err := yamlutil.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	return frontMatterDelim + "\n" + string(data) + frontMatterDelim + "\n\n" + content, nil
}

// ParseFrontMatter splits a document into its front matter and body.
// Documents without a leading "---" line are returned whole with a
// zero FrontMatter.
func ParseFrontMatter(content string) (FrontMatter, string, error) {
	var fm FrontMatter

	if !strings.HasPrefix(content, frontMatterDelim+"\n") {
		return fm, content, nil
	}

	rest := content[len(frontMatterDelim)+1:]
	end := strings.Index(rest, "\n"+frontMatterDelim)
	if end == -1 {
		return fm, "", fmt.Errorf("%w: missing closing delimiter", ErrFrontMatter)
	}

	header := rest[:end]
	body := rest[end+len("\n"+frontMatterDelim):]
	body = strings.TrimPrefix(body, "\n")
	body = strings.TrimPrefix(body, "\n")

	if strings.TrimSpace(header) == "" {
		return fm, body, nil
	}
	if err := yamlutil.Unmarshal([]byte(header), &fm); err != nil {
		return fm, "", fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	return fm, body, nil
}
