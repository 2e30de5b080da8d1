// Package render converts a validated (and usually munged) document into the
// final fragment text. The backend is inherited from the primary document's
// configuration so spliced fragments match the surrounding output.
package render

import (
	"fmt"

	"github.com/riverfjs/altsplice-go/internal/document"
)

// Backend identifiers accepted by Render.
const (
	BackendHTML5    = "html5"
	BackendMarkdown = "markdown"
)

// Render converts every block of doc to output text. An empty backend means
// BackendHTML5; anything else unknown is an error.
func Render(doc *document.Document, backend string) (string, error) {
	switch backend {
	case "", BackendHTML5:
		return renderHTML(doc), nil
	case BackendMarkdown:
		return renderMarkdown(doc), nil
	default:
		return "", fmt.Errorf("unknown render backend %q", backend)
	}
}

// calloutsByLine groups the registry by content line, preserving order
// within a line.
func calloutsByLine(cb *document.CodeBlock) map[int][]string {
	byLine := make(map[int][]string, len(cb.Callouts))
	for _, c := range cb.Callouts {
		byLine[c.Line] = append(byLine[c.Line], c.ID)
	}
	return byLine
}
