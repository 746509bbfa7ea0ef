package search

// Options control how a query is interpreted.
type Options struct {
	CaseSensitive bool
	UseRegex      bool
	UseWildcard   bool
}

// SetUseRegex toggles regex mode. Regex and wildcard modes are mutually
// exclusive, so enabling one switches the other off.
func (o *Options) SetUseRegex(on bool) {
	o.UseRegex = on
	if on {
		o.UseWildcard = false
	}
}

// SetUseWildcard toggles wildcard mode, switching regex mode off when enabled.
func (o *Options) SetUseWildcard(on bool) {
	o.UseWildcard = on
	if on {
		o.UseRegex = false
	}
}

// Content is one named, ordered block of searchable text. IDs are unique
// within the block list handed to a single Find call.
type Content struct {
	ID   string
	Text string
}

// Match is one occurrence of the query inside a block. Index is global across
// all blocks of the producing call; offsets are byte positions into the
// block's original text, and MatchText is the original substring they cover.
type Match struct {
	Index       int
	ContentID   string
	StartOffset int
	EndOffset   int
	MatchText   string
}
