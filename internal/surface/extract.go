package surface

import (
	"strings"

	"panefind/internal/search"
)

// FallbackID is the reserved block id for content extracted from a panel's
// rendered surface rather than supplied by the panel itself.
const FallbackID = "__fallback__"

// Text returns the concatenation of all text nodes under root in document
// order, skipping overlay subtrees so the find bar's own text never becomes
// searchable content. Marker nodes are read transparently, so the result is
// the same whether or not highlights are currently applied. The tree is not
// mutated.
func Text(root *Node) string {
	var b strings.Builder
	root.Walk(func(n *Node) bool {
		if n.Kind == KindElement && n.Tag == TagOverlay {
			return false
		}
		if n.Kind == KindText {
			b.WriteString(n.Text)
		}
		return true
	})
	return b.String()
}

// ExtractBlock synthesizes the single searchable block for a panel that
// exposes no structured content.
func ExtractBlock(root *Node) search.Content {
	return search.Content{ID: FallbackID, Text: Text(root)}
}
