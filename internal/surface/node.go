package surface

// Kind distinguishes element nodes from text nodes
type Kind int

const (
	KindElement Kind = iota
	KindText
)

// Element tags used by the workbench
const (
	TagPanel   = "panel"
	TagSection = "section"
	TagLine    = "line"
	TagOverlay = "overlay" // search UI subtree, never scanned or highlighted
	TagMark    = "mark"    // highlight marker inserted by Apply
)

// Node is one node of a panel's retained render tree. Panels build their
// content as a tree of elements and text nodes and render it to styled
// terminal lines; the search facility walks the same tree to extract text
// and to splice highlight markers in and out without losing content.
type Node struct {
	Kind     Kind
	Tag      string // element tag, empty for text nodes
	Class    string // style class resolved at render time
	Hidden   bool   // render skips the subtree; text extraction does not
	Text     string // text node payload
	Parent   *Node
	Children []*Node
}

// NewElement creates an element node with the given tag
func NewElement(tag string) *Node {
	return &Node{Kind: KindElement, Tag: tag}
}

// NewText creates a text node
func NewText(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

// Append adds child as the last child of n and returns child
func (n *Node) Append(child *Node) *Node {
	child.Detach()
	child.Parent = n
	n.Children = append(n.Children, child)
	return child
}

// Prepend adds child as the first child of n and returns child
func (n *Node) Prepend(child *Node) *Node {
	child.Detach()
	child.Parent = n
	n.Children = append([]*Node{child}, n.Children...)
	return child
}

// Detach removes n from its parent. Safe on a node with no parent.
func (n *Node) Detach() {
	p := n.Parent
	if p == nil {
		return
	}
	for i, c := range p.Children {
		if c == n {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			break
		}
	}
	n.Parent = nil
}

// ReplaceWith swaps n for the given nodes at its position in the parent.
// A no-op on a detached node.
func (n *Node) ReplaceWith(nodes ...*Node) {
	p := n.Parent
	if p == nil {
		return
	}
	for i, c := range p.Children {
		if c != n {
			continue
		}
		for _, r := range nodes {
			if r.Parent != nil && r.Parent != p {
				r.Detach()
			}
			r.Parent = p
		}
		rest := append([]*Node{}, p.Children[i+1:]...)
		p.Children = append(append(p.Children[:i], nodes...), rest...)
		n.Parent = nil
		return
	}
}

// Walk visits n and its descendants depth first, in document order. When
// visit returns false for an element its subtree is skipped; the return
// value is ignored for text nodes.
func (n *Node) Walk(visit func(*Node) bool) {
	if !visit(n) && n.Kind == KindElement {
		return
	}
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

// Normalize merges adjacent text node children of n, the way clearing a
// highlight coalesces the pieces a marker split a text node into.
func (n *Node) Normalize() {
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == KindText && len(out) > 0 && out[len(out)-1].Kind == KindText {
			out[len(out)-1].Text += c.Text
			c.Parent = nil
			continue
		}
		out = append(out, c)
	}
	n.Children = out
}
