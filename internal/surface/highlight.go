package surface

import (
	"panefind/internal/search"
)

// Style classes carried by marker nodes
const (
	ClassMark       = "search-match"
	ClassActiveMark = "search-match-active"
)

// Apply highlights matches inside root by wrapping each matched substring in
// a marker element, with a distinct class for the match whose Index equals
// active. Any highlighting from a previous call is fully reversed first, so
// Apply is safe to call repeatedly. Matches are applied in descending offset
// order; splicing a marker shifts every later node position, and working
// backwards keeps the not-yet-applied offsets valid. Offsets that no longer
// fall inside the tree's text, because the panel re-rendered since the
// matches were computed, are skipped. Returns the active marker node, or nil
// when there is none, so the caller can scroll it into view.
func Apply(root *Node, matches []search.Match, active int) *Node {
	Clear(root)

	var activeMark *Node
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		if m.EndOffset <= m.StartOffset {
			continue
		}
		mark := wrapSpan(root, m.StartOffset, m.EndOffset)
		if mark == nil {
			continue
		}
		if m.Index == active {
			mark.Class = ClassActiveMark
			activeMark = mark
		}
	}
	return activeMark
}

// Clear removes every marker under root and restores the original text node
// structure, coalescing the pieces each marker's splice left behind. Safe to
// call with no markers present; a marker already detached by a panel
// re-render is skipped.
func Clear(root *Node) {
	var marks []*Node
	root.Walk(func(n *Node) bool {
		if n.Kind == KindElement && n.Tag == TagMark {
			marks = append(marks, n)
			return false
		}
		return true
	})

	for _, mark := range marks {
		parent := mark.Parent
		if parent == nil {
			continue
		}
		mark.ReplaceWith(NewText(Text(mark)))
		parent.Normalize()
	}
}

// wrapSpan locates the text node covering the start offset of [start, end)
// in root's extracted text and wraps the covered substring in a marker
// element. A span reaching past the covering node is truncated to it rather
// than chased across node boundaries. Returns nil when start lies outside
// the tree's current text.
func wrapSpan(root *Node, start, end int) *Node {
	node, nodeStart := coveringTextNode(root, start)
	if node == nil {
		return nil
	}

	s := start - nodeStart
	e := end - nodeStart
	if e > len(node.Text) {
		e = len(node.Text)
	}

	mark := NewElement(TagMark)
	mark.Class = ClassMark
	mark.Append(NewText(node.Text[s:e]))

	var parts []*Node
	if s > 0 {
		parts = append(parts, NewText(node.Text[:s]))
	}
	parts = append(parts, mark)
	if e < len(node.Text) {
		parts = append(parts, NewText(node.Text[e:]))
	}
	node.ReplaceWith(parts...)

	return mark
}

// coveringTextNode walks the tree's text in document order, skipping overlay
// subtrees and reading marker interiors transparently, and returns the text
// node containing the given offset together with that node's starting
// position in the extracted text. The walk runs fresh on every call because
// prior splices have changed the node structure since the map was last true.
func coveringTextNode(root *Node, offset int) (*Node, int) {
	var found *Node
	var foundStart int
	pos := 0

	root.Walk(func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.Kind == KindElement && n.Tag == TagOverlay {
			return false
		}
		if n.Kind == KindText {
			if offset >= pos && offset < pos+len(n.Text) {
				found = n
				foundStart = pos
				return true
			}
			pos += len(n.Text)
		}
		return true
	})

	return found, foundStart
}
