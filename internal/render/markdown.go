package render

import (
	"strconv"
	"strings"

	"github.com/riverfjs/altsplice-go/internal/document"
)

// renderMarkdown re-emits the document as markdown with the munged callout
// ids written back as explicit markers, for backends that post-process
// markdown instead of HTML.
func renderMarkdown(doc *document.Document) string {
	var sb strings.Builder
	for _, b := range doc.Blocks {
		switch blk := b.(type) {
		case *document.CodeBlock:
			mdCodeBlock(&sb, blk)
		case *document.CalloutList:
			mdCalloutList(&sb, blk)
		}
	}
	return sb.String()
}

func mdCodeBlock(sb *strings.Builder, cb *document.CodeBlock) {
	sb.WriteString("```" + cb.Language + "\n")
	byLine := calloutsByLine(cb)
	for i, line := range cb.Lines {
		sb.WriteString(line)
		for _, id := range byLine[i] {
			sb.WriteString("  <" + id + ">")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("```\n")
}

func mdCalloutList(sb *strings.Builder, cl *document.CalloutList) {
	sb.WriteByte('\n')
	for i, item := range cl.Items {
		sb.WriteString(strconv.Itoa(i+1) + ". ")
		for _, id := range item.RefIDs {
			sb.WriteString("<" + id + "> ")
		}
		sb.WriteString(item.Text)
		sb.WriteByte('\n')
	}
}
