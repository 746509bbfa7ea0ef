package surface

import (
	"testing"

	"github.com/stretchr/testify/require"

	"panefind/internal/search"
)

func buildPanel(lines ...string) *Node {
	root := NewElement(TagPanel)
	for _, line := range lines {
		root.Append(NewText(line))
	}
	return root
}

func TestTextConcatenatesInDocumentOrder(t *testing.T) {
	root := NewElement(TagPanel)
	sec := root.Append(NewElement(TagSection))
	sec.Append(NewText("first "))
	sec.Append(NewText("second "))
	root.Append(NewText("third"))

	require.Equal(t, "first second third", Text(root))
}

func TestTextExcludesOverlaySubtree(t *testing.T) {
	root := buildPanel("the document body\n")
	overlay := root.Prepend(NewElement(TagOverlay))
	overlay.Append(NewText("find: document"))

	got := Text(root)
	require.Equal(t, "the document body\n", got, "the find bar's own text must never be extracted")
}

func TestTextReadsMarkerInteriorsTransparently(t *testing.T) {
	root := buildPanel("one two three\n")
	original := Text(root)

	matches, err := search.Find([]search.Content{ExtractBlock(root)}, "two", search.Options{})
	require.NoError(t, err)
	Apply(root, matches, 0)

	require.Equal(t, original, Text(root), "extraction must be stable while highlights are applied")
}

func TestTextDoesNotMutate(t *testing.T) {
	root := buildPanel("alpha\n", "beta\n")
	Text(root)

	require.Len(t, root.Children, 2)
	require.Equal(t, "alpha\n", root.Children[0].Text)
}

func TestExtractBlockUsesReservedID(t *testing.T) {
	block := ExtractBlock(buildPanel("body\n"))
	require.Equal(t, FallbackID, block.ID)
	require.Equal(t, "body\n", block.Text)
}
