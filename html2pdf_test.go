package litweave

import (
	"context"
	"errors"
	"os"
	"testing"
)

type fakeRenderer struct {
	content string
	err     error
}

func (f *fakeRenderer) RenderFromFile(_ context.Context, filePath string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	f.content = string(data)
	return []byte("%PDF-fake"), nil
}

func TestRodConverterToPDF(t *testing.T) {
	t.Parallel()

	renderer := &fakeRenderer{}
	c := &rodConverter{renderer: renderer}

	pdf, err := c.ToPDF(context.Background(), "<html><body>report</body></html>")
	if err != nil {
		t.Fatalf("ToPDF() error: %v", err)
	}
	if string(pdf) != "%PDF-fake" {
		t.Errorf("ToPDF() = %q", pdf)
	}
	if renderer.content != "<html><body>report</body></html>" {
		t.Errorf("renderer received %q", renderer.content)
	}
}

func TestRodConverterToPDFRendererError(t *testing.T) {
	t.Parallel()

	c := &rodConverter{renderer: &fakeRenderer{err: ErrPageLoad}}
	if _, err := c.ToPDF(context.Background(), "<html></html>"); !errors.Is(err, ErrPageLoad) {
		t.Errorf("ToPDF() error = %v, want ErrPageLoad", err)
	}
}

func TestRodConverterCloseWithoutBrowser(t *testing.T) {
	t.Parallel()

	c := newRodConverter(defaultTimeout)
	if err := c.Close(); err != nil {
		t.Errorf("Close() without a launched browser: %v", err)
	}
}

func TestRodRendererCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newRodRenderer(defaultTimeout)
	if _, err := r.RenderFromFile(ctx, "/tmp/never-read.html"); !errors.Is(err, context.Canceled) {
		t.Errorf("RenderFromFile() error = %v, want context.Canceled", err)
	}
}
