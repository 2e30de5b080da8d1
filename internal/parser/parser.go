// Package parser wraps goldmark and maps the markdown AST onto the block
// model in internal/document. Only top-level blocks are mapped; everything
// the splicing rules do not recognize becomes an OtherBlock carrying the
// markup kind name for diagnostics.
package parser

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	gparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/altsplice-go/internal/document"
)

// StandardOptions is the goldmark configuration shared with the primary
// pipeline, so external files parse under the same markdown dialect.
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,
		extension.DefinitionList,
		extension.Footnote,
	),
	goldmark.WithParserOptions(
		gparser.WithAutoHeadingID(),
	),
}

// trailing callout markers on a code line: `puts x  <1>` or `puts x <1> <2>`
var trailingMarker = regexp.MustCompile(`\s*<([A-Za-z0-9]+)>\s*$`)

// leading reference markers on a callout list item: `<1> <2> explanation`
var leadingMarker = regexp.MustCompile(`^<([A-Za-z0-9]+)>\s*`)

// Parse parses markdown source into a Document. path is recorded on every
// location; when sourcemap is false, locations carry the path only.
func Parse(source []byte, path string, sourcemap bool) *document.Document {
	md := goldmark.New(StandardOptions...)
	root := md.Parser().Parse(text.NewReader(source))

	doc := &document.Document{
		Path: path,
		Loc:  document.Location{Path: path, Line: documentLine(sourcemap)},
	}
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		doc.Blocks = append(doc.Blocks, mapBlock(n, source, path, sourcemap))
	}
	return doc
}

func mapBlock(n ast.Node, source []byte, path string, sourcemap bool) document.Block {
	switch b := n.(type) {
	case *ast.FencedCodeBlock:
		cb := &document.CodeBlock{
			Language: string(b.Language(source)),
			Loc:      document.Location{Path: path, Line: fenceLine(b, source, sourcemap)},
		}
		fillCodeLines(cb, b, source)
		return cb

	case *ast.CodeBlock:
		// Indented code block: no info string, so no declared language.
		cb := &document.CodeBlock{
			Loc: document.Location{Path: path, Line: nodeLine(b, source, sourcemap)},
		}
		fillCodeLines(cb, b, source)
		return cb

	case *ast.List:
		if b.IsOrdered() {
			return mapCalloutList(b, source, path, sourcemap)
		}
		return &document.OtherBlock{
			Name: "unordered list",
			Loc:  document.Location{Path: path, Line: nodeLine(b, source, sourcemap)},
		}

	default:
		return &document.OtherBlock{
			Name: kindName(n),
			Loc:  document.Location{Path: path, Line: nodeLine(n, source, sourcemap)},
		}
	}
}

// fillCodeLines copies the block's content lines, stripping trailing callout
// markers into the registry. Markers on one line keep their written order.
func fillCodeLines(cb *document.CodeBlock, n ast.Node, source []byte) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimRight(string(seg.Value(source)), "\n")
		var ids []string
		for {
			m := trailingMarker.FindStringSubmatchIndex(line)
			if m == nil {
				break
			}
			ids = append(ids, line[m[2]:m[3]])
			line = line[:m[0]]
		}
		// markers were peeled right-to-left
		for j := len(ids) - 1; j >= 0; j-- {
			cb.Callouts = append(cb.Callouts, document.Callout{ID: ids[j], Line: i})
		}
		cb.Lines = append(cb.Lines, line)
	}
}

func mapCalloutList(list *ast.List, source []byte, path string, sourcemap bool) *document.CalloutList {
	cl := &document.CalloutList{
		Loc: document.Location{Path: path, Line: nodeLine(list, source, sourcemap)},
	}
	ordinal := 0
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		ordinal++
		txt := nodeText(item, source)
		var refs []string
		for {
			m := leadingMarker.FindStringSubmatchIndex(txt)
			if m == nil {
				break
			}
			refs = append(refs, txt[m[2]:m[3]])
			txt = txt[m[1]:]
		}
		if len(refs) == 0 {
			// implicit reference by position
			refs = []string{strconv.Itoa(ordinal)}
		}
		cl.Items = append(cl.Items, document.CalloutItem{RefIDs: refs, Text: txt})
	}
	return cl
}

// nodeText flattens the inline text of a node, joining soft line breaks
// with spaces. Raw HTML spans are kept as written: an alphabetic reference
// token like <note> parses as inline HTML, and dropping it would detach the
// item from its marker.
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		case *ast.RawHTML:
			for i := 0; i < t.Segments.Len(); i++ {
				seg := t.Segments.At(i)
				sb.Write(seg.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

func kindName(n ast.Node) string {
	switch n.(type) {
	case *ast.Paragraph:
		return "paragraph"
	case *ast.Heading:
		return "heading"
	case *ast.Blockquote:
		return "block quote"
	case *ast.ThematicBreak:
		return "thematic break"
	case *ast.HTMLBlock:
		return "html block"
	case *east.Table:
		return "table"
	case *east.DefinitionList:
		return "definition list"
	default:
		return strings.ToLower(n.Kind().String())
	}
}

func documentLine(sourcemap bool) int {
	if !sourcemap {
		return 0
	}
	return 1
}

// fenceLine locates the opening fence itself rather than the first content
// line, so diagnostics point at the ```lang line.
func fenceLine(b *ast.FencedCodeBlock, source []byte, sourcemap bool) int {
	if !sourcemap {
		return 0
	}
	if b.Info != nil {
		return lineAt(source, b.Info.Segment.Start)
	}
	return nodeLine(b, source, true)
}

func nodeLine(n ast.Node, source []byte, sourcemap bool) int {
	if !sourcemap {
		return 0
	}
	if seg, ok := firstSegment(n); ok {
		return lineAt(source, seg.Start)
	}
	return 0
}

func firstSegment(n ast.Node) (text.Segment, bool) {
	if n.Type() != ast.TypeBlock {
		return text.Segment{}, false
	}
	if lines := n.Lines(); lines != nil && lines.Len() > 0 {
		return lines.At(0), true
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if seg, ok := firstSegment(c); ok {
			return seg, true
		}
	}
	return text.Segment{}, false
}

func lineAt(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	return 1 + bytes.Count(source[:offset], []byte("\n"))
}
