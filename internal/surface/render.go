package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles maps node style classes to terminal styles at render time.
type Styles map[string]lipgloss.Style

// Render flattens the tree into terminal text in document order. Hidden
// subtrees are skipped. A text node is styled with the innermost class on
// its ancestor path, which is how marker nodes color the substrings they
// wrap without owning any styling themselves.
func Render(root *Node, styles Styles) string {
	var b strings.Builder
	renderNode(root, "", styles, &b)
	return b.String()
}

func renderNode(n *Node, class string, styles Styles, b *strings.Builder) {
	if n.Hidden {
		return
	}
	if n.Class != "" {
		class = n.Class
	}
	if n.Kind == KindText {
		if style, ok := styles[class]; ok {
			b.WriteString(style.Render(n.Text))
		} else {
			b.WriteString(n.Text)
		}
		return
	}
	for _, c := range n.Children {
		renderNode(c, class, styles, b)
	}
}
