package altsplice

import "strconv"

// AlternativeRole marks spliced blocks for downstream styling. The callout
// list additionally embeds the language: "alternative-ruby".
const AlternativeRole = "alternative"

// Munge rewrites the validated subtree in place so its callout ids cannot
// collide with the primary document's, or with any other alternative spliced
// alongside it. Every id in the code block's registry and every reference id
// in the callout list gets the same seq-derived prefix, so the
// marker-to-explanation link survives the rename. list may be nil. Total;
// never fails.
func Munge(code *CodeBlock, list *CalloutList, seq int, language string) {
	code.Role = AlternativeRole
	for i := range code.Callouts {
		code.Callouts[i].ID = MungedID(seq, code.Callouts[i].ID)
	}
	if list == nil {
		return
	}
	list.Role = AlternativeRole + "-" + language
	for i := range list.Items {
		for j := range list.Items[i].RefIDs {
			list.Items[i].RefIDs[j] = MungedID(seq, list.Items[i].RefIDs[j])
		}
	}
}

// MungedID derives the collision-free form of a raw callout id for the
// example with the given sequence number: "A<seq>-<id>".
func MungedID(seq int, id string) string {
	return "A" + strconv.Itoa(seq) + "-" + id
}
