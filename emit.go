package altsplice

import "github.com/riverfjs/altsplice-go/internal/render"

// Emit converts the whole munged document to final output text using the
// backend inherited from the primary document's config.
func Emit(doc *Document, cfg *InheritedConfig) (string, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return render.Render(doc, cfg.Backend)
}
