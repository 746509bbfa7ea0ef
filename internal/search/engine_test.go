package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindLiteralNonOverlapping(t *testing.T) {
	matches, err := Find([]Content{{ID: "block", Text: "ababab"}}, "ab", Options{})
	require.NoError(t, err)
	require.Len(t, matches, 3)

	wantSpans := [][2]int{{0, 2}, {2, 4}, {4, 6}}
	for i, m := range matches {
		require.Equal(t, i, m.Index)
		require.Equal(t, "block", m.ContentID)
		require.Equal(t, wantSpans[i][0], m.StartOffset)
		require.Equal(t, wantSpans[i][1], m.EndOffset)
		require.Equal(t, "ab", m.MatchText)
	}
}

func TestFindEmptyQuery(t *testing.T) {
	for _, opts := range []Options{{}, {UseRegex: true}, {UseWildcard: true}} {
		matches, err := Find([]Content{{ID: "a", Text: "anything"}}, "", opts)
		require.NoError(t, err)
		require.Empty(t, matches)
	}
}

func TestFindInvalidRegexReturnsError(t *testing.T) {
	matches, err := Find([]Content{{ID: "a", Text: "text"}}, "(", Options{UseRegex: true})
	require.Error(t, err)
	require.Empty(t, matches)
}

func TestFindGlobalIndexAcrossBlocks(t *testing.T) {
	blocks := []Content{
		{ID: "a", Text: "foo"},
		{ID: "b", Text: "foo"},
	}

	matches, err := Find(blocks, "foo", Options{})
	require.NoError(t, err)
	require.Len(t, matches, 2)

	require.Equal(t, 0, matches[0].Index)
	require.Equal(t, "a", matches[0].ContentID)
	require.Equal(t, 1, matches[1].Index)
	require.Equal(t, "b", matches[1].ContentID)
}

func TestFindZeroLengthRegexTerminates(t *testing.T) {
	matches, err := Find([]Content{{ID: "a", Text: "bbb"}}, "a*", Options{UseRegex: true})
	require.NoError(t, err)

	// one empty match per scan position, finitely many
	require.Len(t, matches, 4)
	for _, m := range matches {
		require.Equal(t, m.StartOffset, m.EndOffset)
		require.Empty(t, m.MatchText)
	}
}

func TestFindZeroLengthMixedWithRealMatches(t *testing.T) {
	matches, err := Find([]Content{{ID: "a", Text: "aab"}}, "a*", Options{UseRegex: true})
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	require.Equal(t, "aa", matches[0].MatchText)
	require.Equal(t, 0, matches[0].StartOffset)
	require.Equal(t, 2, matches[0].EndOffset)
}

func TestFindAccentInsensitive(t *testing.T) {
	matches, err := Find([]Content{{ID: "menu", Text: "un café noir"}}, "cafe", Options{})
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	require.Equal(t, "café", m.MatchText, "match text must be the original spelling")
	require.Equal(t, "café", "un café noir"[m.StartOffset:m.EndOffset])
}

func TestFindAccentInsensitiveDecomposedText(t *testing.T) {
	text := "un café noir"
	matches, err := Find([]Content{{ID: "menu", Text: text}}, "cafe", Options{})
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	require.Equal(t, "café", m.MatchText)
	require.Equal(t, m.MatchText, text[m.StartOffset:m.EndOffset])
}

func TestFindAccentFoldingSkippedWhenCaseSensitive(t *testing.T) {
	matches, err := Find([]Content{{ID: "a", Text: "café"}}, "cafe", Options{CaseSensitive: true})
	require.NoError(t, err)
	require.Empty(t, matches, "case-sensitive search takes text verbatim")
}

func TestFindAccentFoldingSkippedInRegexMode(t *testing.T) {
	matches, err := Find([]Content{{ID: "a", Text: "café"}}, "cafe", Options{UseRegex: true})
	require.NoError(t, err)
	require.Empty(t, matches, "regex mode takes text verbatim")
}

func TestFindWildcardAcrossBlocks(t *testing.T) {
	blocks := []Content{
		{ID: "first", Text: "start aXXXb end"},
		{ID: "second", Text: "no hit here"},
		{ID: "third", Text: "ab"},
	}

	matches, err := Find(blocks, "a*b", Options{UseWildcard: true})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	require.Equal(t, "first", matches[0].ContentID)
	require.Equal(t, "third", matches[1].ContentID)
}

func TestFindMultilineBlock(t *testing.T) {
	text := "first line\nsecond line\nthird line"
	matches, err := Find([]Content{{ID: "doc", Text: text}}, "line", Options{})
	require.NoError(t, err)
	require.Len(t, matches, 3)
	for _, m := range matches {
		require.Equal(t, "line", m.MatchText)
		require.Equal(t, m.MatchText, text[m.StartOffset:m.EndOffset])
	}
}
