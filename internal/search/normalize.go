package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold strips combining diacritical marks from text so that "cafe" can match
// "café". It returns the folded text together with an offset map translating
// folded byte positions back to original byte offsets: offsets[i] is the
// offset of the original rune that produced folded byte i, and the final
// entry offsets[len(folded)] is len(text). Folding runs rune by rune so a
// folded byte can never straddle two original runes, which keeps the map
// exact even when folding changes byte length (precomposed "é" shrinks,
// decomposed "é" drops its mark).
func Fold(text string) (string, []int) {
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	var b strings.Builder
	b.Grow(len(text))
	offsets := make([]int, 0, len(text)+1)

	for i, r := range text {
		folded, _, err := transform.String(folder, string(r))
		if err != nil {
			folded = string(r)
		}
		b.WriteString(folded)
		for j := 0; j < len(folded); j++ {
			offsets = append(offsets, i)
		}
	}
	offsets = append(offsets, len(text))

	return b.String(), offsets
}
