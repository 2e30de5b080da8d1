package altsplice

// SequenceCounter hands out the per-primary-document sequence numbers that
// keep munged callout ids unique across alternatives. It is owned by
// whatever orchestrates the primary document and threaded explicitly into
// every Build call; processing is single-threaded per document, so there is
// no locking here.
type SequenceCounter struct {
	n int
}

// NewSequenceCounter returns a counter whose first Next is 1.
func NewSequenceCounter() *SequenceCounter {
	return &SequenceCounter{}
}

// Next consumes and returns the next sequence number. Build calls Next once
// per alternative, before validation, so numbering stays stable whether or
// not the alternative turns out to be well-formed.
func (c *SequenceCounter) Next() int {
	c.n++
	return c.n
}

// AlternativeExample is one attempt to splice an alternative-language
// rendition of a code sample into the primary document. Immutable once
// Build returns it.
type AlternativeExample struct {
	Language       string
	SourcePath     string
	SequenceNumber int

	fragment string
	ok       bool
}

// Fragment returns the rendered fragment text. ok is false when validation
// failed; a failed example never carries a partial fragment.
func (e *AlternativeExample) Fragment() (string, bool) {
	return e.fragment, e.ok
}

// Node wraps the fragment as a pass-through leaf for the primary document's
// tree, or nil if validation failed and there is nothing to insert.
func (e *AlternativeExample) Node() *Fragment {
	if !e.ok {
		return nil
	}
	return &Fragment{Text: e.fragment, SourcePath: e.SourcePath}
}
