package surface

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendAndDetach(t *testing.T) {
	root := NewElement(TagPanel)
	a := root.Append(NewText("a"))
	b := root.Append(NewText("b"))

	require.Equal(t, []*Node{a, b}, root.Children)
	require.Equal(t, root, a.Parent)

	a.Detach()
	require.Equal(t, []*Node{b}, root.Children)
	require.Nil(t, a.Parent)

	// detaching again is safe
	a.Detach()
	require.Equal(t, []*Node{b}, root.Children)
}

func TestPrependPutsChildFirst(t *testing.T) {
	root := NewElement(TagPanel)
	root.Append(NewText("content"))
	overlay := root.Prepend(NewElement(TagOverlay))

	require.Equal(t, overlay, root.Children[0])
	require.Equal(t, root, overlay.Parent)
}

func TestReplaceWithSplicesInPlace(t *testing.T) {
	root := NewElement(TagPanel)
	root.Append(NewText("before"))
	mid := root.Append(NewText("abc"))
	root.Append(NewText("after"))

	mid.ReplaceWith(NewText("a"), NewText("b"), NewText("c"))

	require.Len(t, root.Children, 5)
	require.Equal(t, "before", root.Children[0].Text)
	require.Equal(t, "a", root.Children[1].Text)
	require.Equal(t, "c", root.Children[3].Text)
	require.Equal(t, "after", root.Children[4].Text)
	require.Nil(t, mid.Parent)
}

func TestNormalizeCoalescesAdjacentTextNodes(t *testing.T) {
	root := NewElement(TagPanel)
	root.Append(NewText("a"))
	root.Append(NewText("b"))
	el := root.Append(NewElement(TagSection))
	root.Append(NewText("c"))
	root.Append(NewText("d"))

	root.Normalize()

	require.Len(t, root.Children, 3)
	require.Equal(t, "ab", root.Children[0].Text)
	require.Equal(t, el, root.Children[1])
	require.Equal(t, "cd", root.Children[2].Text)
}

func TestWalkSkipsSubtreeOnFalse(t *testing.T) {
	root := NewElement(TagPanel)
	keep := root.Append(NewElement(TagSection))
	keep.Append(NewText("kept"))
	skip := root.Append(NewElement(TagOverlay))
	skip.Append(NewText("skipped"))

	var visited []string
	root.Walk(func(n *Node) bool {
		if n.Kind == KindElement {
			return n.Tag != TagOverlay
		}
		visited = append(visited, n.Text)
		return true
	})

	require.Equal(t, []string{"kept"}, visited)
}
