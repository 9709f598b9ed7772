// Package markdown renders generated card text to the HTML that Anki
// displays in note fields.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts markdown to HTML. The zero value is not usable; call
// NewRenderer.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer returns a renderer that keeps single newlines as <br> so that
// multi-line answers survive inside an Anki field.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

// Render converts text to HTML. Empty input renders to "".
func (r *Renderer) Render(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}
