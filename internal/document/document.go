// Package document defines the block model shared by the parser, the
// validator and the renderers: a loaded external document, its top-level
// blocks, and the opaque fragment produced for the primary tree.
package document

// Kind is the structural kind of a top-level block. Only the kinds the
// splicing rules care about get their own value; everything else is Other.
type Kind int

const (
	// KindCodeBlock is a fenced or indented listing block.
	KindCodeBlock Kind = iota
	// KindCalloutList is an ordered list explaining callout markers.
	KindCalloutList
	// KindOther is any other top-level node.
	KindOther
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindCodeBlock:
		return "code block"
	case KindCalloutList:
		return "callout list"
	default:
		return "other"
	}
}

// Location points into a loaded source file. Line is 1-based and zero when
// the document was loaded with the sourcemap disabled.
type Location struct {
	Path string
	Line int
}

// Block is a top-level node of a loaded document.
type Block interface {
	Kind() Kind
	// KindName is the human-readable kind used in diagnostics. For Other
	// blocks it names the underlying markup node (paragraph, heading, ...).
	KindName() string
	Location() Location
}

// Callout binds a marker id embedded in a code block's displayed text to the
// content line it appears on. Line is a 0-based index into CodeBlock.Lines.
type Callout struct {
	ID   string
	Line int
}

// CodeBlock is a listing block. Callouts is the registry of marker bindings
// produced at parse time, in order of appearance; marker tokens themselves
// are stripped from Lines.
type CodeBlock struct {
	Language string
	Lines    []string
	Callouts []Callout
	Role     string
	Loc      Location
}

func (b *CodeBlock) Kind() Kind         { return KindCodeBlock }
func (b *CodeBlock) KindName() string   { return "code block" }
func (b *CodeBlock) Location() Location { return b.Loc }

// CalloutItem is one explanation entry. RefIDs lists the callout ids the
// entry explains, in the order they were written.
type CalloutItem struct {
	RefIDs []string
	Text   string
}

// CalloutList is the ordered list of explanations for a code block's
// callout markers.
type CalloutList struct {
	Items []CalloutItem
	Role  string
	Loc   Location
}

func (l *CalloutList) Kind() Kind         { return KindCalloutList }
func (l *CalloutList) KindName() string   { return "callout list" }
func (l *CalloutList) Location() Location { return l.Loc }

// OtherBlock is a top-level node the splicing rules reject. Name carries the
// underlying markup kind for diagnostics.
type OtherBlock struct {
	Name string
	Loc  Location
}

func (b *OtherBlock) Kind() Kind         { return KindOther }
func (b *OtherBlock) KindName() string   { return b.Name }
func (b *OtherBlock) Location() Location { return b.Loc }

// Document is a parsed external file: its top-level blocks in source order.
type Document struct {
	Path   string
	Blocks []Block
	Loc    Location
}

// Fragment is a pre-rendered, pass-through leaf for the primary document's
// tree. The primary converter inserts Text verbatim without interpreting it.
type Fragment struct {
	Text       string
	SourcePath string
}
