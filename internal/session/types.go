package session

import (
	"time"

	"panefind/internal/search"
	"panefind/internal/surface"
)

// Panel is the minimal contract the session needs from a workbench panel.
type Panel interface {
	ID() string
	Surface() *surface.Node
	RevealLine(line int)
}

// Searchable is implemented by panels that supply their own content blocks
// instead of having text extracted from their rendered surface.
type Searchable interface {
	SearchableContent() []search.Content
}

// Highlighter is implemented by panels that own their match presentation,
// for example because their content is virtualized and not every match is in
// the rendered tree at once. Both methods belong to one interface on
// purpose: revealing without being able to clear, or the reverse, is not a
// supported mode.
type Highlighter interface {
	RevealMatch(m search.Match)
	ClearSearchHighlights()
}

// State is a read-only snapshot of the search session.
type State struct {
	Query       string
	Options     search.Options
	Matches     []search.Match
	ActiveMatch int // -1 when there are no matches
	Open        bool
	Pending     bool // an edit is waiting out its debounce interval
	BadPattern  bool // the query was a malformed regular expression
	PanelID     string
}

// Listener receives state snapshots after every externally visible change.
type Listener func(State)

// Settings holds the session timing knobs.
type Settings struct {
	QueryDebounce    time.Duration
	MutationDebounce time.Duration
}

// DefaultSettings returns the reference timing values.
func DefaultSettings() Settings {
	return Settings{
		QueryDebounce:    250 * time.Millisecond,
		MutationDebounce: 100 * time.Millisecond,
	}
}
