package altsplice

import "fmt"

// ValidationResult is the outcome of the structural checks. CodeBlock and
// CalloutList are populated only when OK; on failure Diagnostic names the
// first rule that broke.
type ValidationResult struct {
	OK          bool
	CodeBlock   *CodeBlock
	CalloutList *CalloutList
	Diagnostic  *Diagnostic
}

// Diagnostic message templates. These are log-scraped downstream; keep the
// wording stable.
const (
	layoutMsg     = "alternative example file must contain one code block followed by an optional callout list, found: %v"
	firstKindMsg  = "expected code block as first block of alternative example, found %s"
	languageMsg   = "expected code block language %s, found %s"
	secondKindMsg = "expected callout list as second block of alternative example, found %s"
)

// Validate checks the loaded document against the required shape: one code
// block in the expected language, optionally followed by one callout list.
// Rules run in order and stop at the first failure; the document is never
// mutated here.
func Validate(doc *Document, language string) ValidationResult {
	if n := len(doc.Blocks); n < 1 || n > 2 {
		kinds := make([]string, 0, n)
		for _, b := range doc.Blocks {
			kinds = append(kinds, b.KindName())
		}
		// no single node to blame; point at the document itself
		return failure(fmt.Sprintf(layoutMsg, kinds), doc.Loc)
	}

	first := doc.Blocks[0]
	code, ok := first.(*CodeBlock)
	if !ok {
		return failure(fmt.Sprintf(firstKindMsg, first.KindName()), first.Location())
	}
	if code.Language != language {
		return failure(fmt.Sprintf(languageMsg, language, code.Language), code.Loc)
	}

	var list *CalloutList
	if len(doc.Blocks) == 2 {
		second := doc.Blocks[1]
		list, ok = second.(*CalloutList)
		if !ok {
			return failure(fmt.Sprintf(secondKindMsg, second.KindName()), second.Location())
		}
	}

	return ValidationResult{OK: true, CodeBlock: code, CalloutList: list}
}

func failure(message string, loc Location) ValidationResult {
	return ValidationResult{Diagnostic: &Diagnostic{Message: message, Location: loc}}
}
