package httptransport

import (
	"bytes"
	"fmt"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// RenderDocs reads the API documentation Markdown and renders it to HTML.
// Called once at startup; the result is served verbatim by handleDocs.
func RenderDocs(path string) ([]byte, error) {
	md, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read docs: %w", err)
	}

	var buf bytes.Buffer
	renderer := goldmark.New(goldmark.WithExtensions(extension.Table))
	if err := renderer.Convert(md, &buf); err != nil {
		return nil, fmt.Errorf("render docs: %w", err)
	}
	return buf.Bytes(), nil
}
