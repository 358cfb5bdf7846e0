package pipeline

import (
	"errors"
	"strings"
	"testing"
)

func TestPrependFrontMatter(t *testing.T) {
	t.Parallel()

	fm := FrontMatter{Title: "Go Gotchas", Author: "jane"}
	got, err := PrependFrontMatter("# body\n", fm)
	if err != nil {
		t.Fatalf("PrependFrontMatter() error: %v", err)
	}

	if !strings.HasPrefix(got, "---\n") {
		t.Errorf("missing opening delimiter: %q", got)
	}
	if !strings.Contains(got, "title: Go Gotchas\n") {
		t.Errorf("missing title: %q", got)
	}
	if !strings.HasSuffix(got, "# body\n") {
		t.Errorf("body not preserved verbatim: %q", got)
	}
}

func TestPrependFrontMatterZero(t *testing.T) {
	t.Parallel()

	got, err := PrependFrontMatter("body\n", FrontMatter{})
	if err != nil {
		t.Fatalf("PrependFrontMatter() error: %v", err)
	}
	if got != "body\n" {
		t.Errorf("zero front matter altered content: %q", got)
	}
}

func TestParseFrontMatterRoundTrip(t *testing.T) {
	t.Parallel()

	fm := FrontMatter{Title: "Report", Author: "sam", Date: "2026-01-15"}
	doc, err := PrependFrontMatter("# hello\n\ncontent\n", fm)
	if err != nil {
		t.Fatalf("PrependFrontMatter() error: %v", err)
	}

	gotFM, body, err := ParseFrontMatter(doc)
	if err != nil {
		t.Fatalf("ParseFrontMatter() error: %v", err)
	}
	if gotFM != fm {
		t.Errorf("ParseFrontMatter() = %+v, want %+v", gotFM, fm)
	}
	if body != "# hello\n\ncontent\n" {
		t.Errorf("body = %q, want original content", body)
	}
}

func TestParseFrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantFM   FrontMatter
		wantBody string
		wantErr  error
	}{
		{
			name:     "no front matter",
			input:    "# plain document\n",
			wantBody: "# plain document\n",
		},
		{
			name:     "title only",
			input:    "---\ntitle: T\n---\n\nbody\n",
			wantFM:   FrontMatter{Title: "T"},
			wantBody: "body\n",
		},
		{
			name:    "unclosed header",
			input:   "---\ntitle: T\nbody\n",
			wantErr: ErrFrontMatter,
		},
		{
			name:     "dashes mid-document are not front matter",
			input:    "body\n---\nmore\n",
			wantBody: "body\n---\nmore\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fm, body, err := ParseFrontMatter(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFrontMatter() error: %v", err)
			}
			if fm != tt.wantFM {
				t.Errorf("front matter = %+v, want %+v", fm, tt.wantFM)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}
