package render

import (
	"html"
	"strings"

	"github.com/riverfjs/altsplice-go/internal/document"
)

func renderHTML(doc *document.Document) string {
	var sb strings.Builder
	for _, b := range doc.Blocks {
		switch blk := b.(type) {
		case *document.CodeBlock:
			htmlCodeBlock(&sb, blk)
		case *document.CalloutList:
			htmlCalloutList(&sb, blk)
		}
	}
	return sb.String()
}

func htmlCodeBlock(sb *strings.Builder, cb *document.CodeBlock) {
	classes := "listingblock"
	if cb.Role != "" {
		classes += " " + cb.Role
	}
	sb.WriteString(`<div class="` + classes + "\">\n")
	if cb.Language != "" {
		lang := html.EscapeString(cb.Language)
		sb.WriteString(`<pre class="highlight"><code class="language-` + lang + `" data-lang="` + lang + `">`)
	} else {
		sb.WriteString(`<pre class="highlight"><code>`)
	}
	byLine := calloutsByLine(cb)
	for i, line := range cb.Lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(html.EscapeString(line))
		for _, id := range byLine[i] {
			sb.WriteString(`<i class="conum" data-value="` + html.EscapeString(id) + `"></i>`)
		}
	}
	sb.WriteString("</code></pre>\n</div>\n")
}

func htmlCalloutList(sb *strings.Builder, cl *document.CalloutList) {
	classes := "colist arabic"
	if cl.Role != "" {
		classes += " " + cl.Role
	}
	sb.WriteString(`<div class="` + classes + "\">\n<ol>\n")
	for _, item := range cl.Items {
		sb.WriteString(`<li data-coids="` + html.EscapeString(strings.Join(item.RefIDs, " ")) + `">`)
		sb.WriteString(html.EscapeString(item.Text))
		sb.WriteString("</li>\n")
	}
	sb.WriteString("</ol>\n</div>\n")
}
