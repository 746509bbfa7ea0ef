package search

// Find scans blocks in their given order for all non-overlapping occurrences
// of query and returns them globally indexed: the Index of each match is a
// running counter across the whole call, block order first, position within
// the block second. An empty query yields no matches and no error; a
// malformed regex yields the compile error so callers can distinguish it
// from a zero-result search.
func Find(blocks []Content, query string, opts Options) ([]Match, error) {
	pat, err := Compile(query, opts)
	if err != nil {
		return nil, err
	}
	if pat == nil {
		return nil, nil
	}

	var matches []Match
	for _, block := range blocks {
		text := block.Text
		var offsets []int
		if pat.Folded() {
			text, offsets = Fold(block.Text)
		}

		for _, span := range pat.FindAll(text) {
			start, end := span[0], span[1]
			if offsets != nil {
				start, end = offsets[start], offsets[end]
			}
			matches = append(matches, Match{
				Index:       len(matches),
				ContentID:   block.ID,
				StartOffset: start,
				EndOffset:   end,
				MatchText:   block.Text[start:end],
			})
		}
	}

	return matches, nil
}
