package render

import (
	"strings"
	"testing"

	"github.com/riverfjs/altsplice-go/internal/document"
)

func mungedDoc() *document.Document {
	return &document.Document{
		Path: "ex.md",
		Blocks: []document.Block{
			&document.CodeBlock{
				Language: "ruby",
				Role:     "alternative",
				Lines:    []string{`require "json"`, "puts 1 < 2"},
				Callouts: []document.Callout{
					{ID: "A3-1", Line: 0},
					{ID: "A3-2", Line: 1},
				},
			},
			&document.CalloutList{
				Role: "alternative-ruby",
				Items: []document.CalloutItem{
					{RefIDs: []string{"A3-1", "A3-2"}, Text: "Both lines matter"},
				},
			},
		},
	}
}

func TestRenderHTML(t *testing.T) {
	out, err := Render(mungedDoc(), BackendHTML5)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for _, want := range []string{
		`<div class="listingblock alternative">`,
		`<code class="language-ruby" data-lang="ruby">`,
		`require &#34;json&#34;<i class="conum" data-value="A3-1"></i>`,
		`puts 1 &lt; 2<i class="conum" data-value="A3-2"></i>`,
		`<div class="colist arabic alternative-ruby">`,
		`<li data-coids="A3-1 A3-2">Both lines matter</li>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\noutput:\n%s", want, out)
		}
	}
}

func TestRenderHTML_DefaultBackend(t *testing.T) {
	a, err := Render(mungedDoc(), "")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	b, err := Render(mungedDoc(), BackendHTML5)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if a != b {
		t.Error("empty backend should render as html5")
	}
}

func TestRenderHTML_NoLanguageNoRole(t *testing.T) {
	doc := &document.Document{
		Blocks: []document.Block{
			&document.CodeBlock{Lines: []string{"plain"}},
		},
	}
	out, err := Render(doc, BackendHTML5)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, `<div class="listingblock">`) {
		t.Errorf("unexpected classes:\n%s", out)
	}
	if !strings.Contains(out, "<pre class=\"highlight\"><code>plain</code></pre>") {
		t.Errorf("unexpected code markup:\n%s", out)
	}
}

func TestRenderMarkdown(t *testing.T) {
	out, err := Render(mungedDoc(), BackendMarkdown)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := "```ruby\n" +
		`require "json"  <A3-1>` + "\n" +
		"puts 1 < 2  <A3-2>\n" +
		"```\n\n" +
		"1. <A3-1> <A3-2> Both lines matter\n"
	if out != want {
		t.Errorf("markdown output:\n%q\nwant:\n%q", out, want)
	}
}

func TestRender_UnknownBackend(t *testing.T) {
	_, err := Render(mungedDoc(), "docbook")
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
	if !strings.Contains(err.Error(), "docbook") {
		t.Errorf("error should name the backend: %v", err)
	}
}
