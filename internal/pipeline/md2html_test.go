package pipeline

import (
	"context"
	"strings"
	"testing"
)

func TestGoldmarkToHTML(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter()

	tests := []struct {
		name     string
		markdown string
		contains []string
	}{
		{
			name:     "heading and prose",
			markdown: "# hello\n\nsome text\n",
			contains: []string{"<h1", "hello</h1>", "<p>some text</p>"},
		},
		{
			name:     "fenced go block gets chroma classes",
			markdown: "```go\nx := 1\n```\n",
			contains: []string{"chroma"},
		},
		{
			name:     "unlabeled output fence stays plain",
			markdown: "```\n2\n```\n",
			contains: []string{"<pre>", "2"},
		},
		{
			name:     "gfm table",
			markdown: "| a | b |\n|---|---|\n| 1 | 2 |\n",
			contains: []string{"<table>", "<td>1</td>"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.markdown)
			if err != nil {
				t.Fatalf("ToHTML() error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML(%q) missing %q:\n%s", tt.markdown, want, got)
				}
			}
		})
	}
}

func TestGoldmarkToHTMLFragment(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter()
	got, err := conv.ToHTML(context.Background(), "text\n")
	if err != nil {
		t.Fatalf("ToHTML() error: %v", err)
	}
	if strings.Contains(got, "<html") || strings.Contains(got, "<body") {
		t.Errorf("ToHTML() returned a full document, want fragment: %q", got)
	}
}

func TestGoldmarkToHTMLCancelled(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := conv.ToHTML(ctx, "# x\n"); err == nil {
		t.Error("expected context error, got nil")
	}
}
