// Package altsplice splices alternative-language code examples into a
// parsed markdown document.
//
// Given the path of an external file holding the same code sample in
// another language, the package loads and parses that file as a standalone
// document under the primary document's inherited configuration, validates
// that it contains exactly one code block (optionally followed by one
// callout list), rewrites its callout ids so they cannot collide with the
// primary document's, and renders the result as an opaque fragment the
// caller inserts into the primary tree.
//
// Core behaviors:
//   - Structural validation with stable, log-scrapable diagnostics
//   - Collision-free callout id munging keyed by a per-document sequence
//     counter
//   - Fragment rendering with the primary document's backend (html5 or
//     markdown)
//   - Malformed alternatives degrade to a warning; the primary document
//     still renders
//
// Main API:
//   - Build(): full pipeline, returns the example with or without a fragment
//   - Splice(): Build plus fragment-node wrapping
//   - Load() / Validate() / Munge() / Emit(): the individual stages
//
// Example:
//
//	counter := altsplice.NewSequenceCounter()
//	cfg := altsplice.DefaultConfig()
//	cfg.BaseDir = "docs/examples"
//
//	node, err := altsplice.Splice("ruby", "sample.rb.md", cfg, counter)
//	if err != nil {
//	    // unreadable file or safe-mode violation
//	}
//	if node != nil {
//	    // insert node.Text verbatim into the primary tree
//	}
package altsplice

import "github.com/riverfjs/altsplice-go/internal/document"

// Exported aliases for the block model used across the public API.
type (
	Document    = document.Document
	Block       = document.Block
	CodeBlock   = document.CodeBlock
	CalloutList = document.CalloutList
	CalloutItem = document.CalloutItem
	Callout     = document.Callout
	Fragment    = document.Fragment
	Location    = document.Location
	Kind        = document.Kind
)

// Block kinds, re-exported for callers matching on Block.Kind().
const (
	KindCodeBlock   = document.KindCodeBlock
	KindCalloutList = document.KindCalloutList
	KindOther       = document.KindOther
)
