package ui

import (
	"panefind/internal/eventbus"
	"panefind/internal/session"
)

// EventMsg wraps a bus event forwarded into the UI loop
type EventMsg struct {
	Event eventbus.DomainEvent
}

// SearchStateMsg carries a search session snapshot into the UI loop
type SearchStateMsg struct {
	State session.State
}

// SessionWorkMsg carries a deferred session action into the UI loop. Debounce
// timers fire on their own goroutines but their completions rewrite panel
// surface trees, so the entry point dispatches them here and Update runs them
// on the goroutine that also renders those trees.
type SessionWorkMsg struct {
	Run func()
}

// pagerDoneMsg contains the result of a pager command
type pagerDoneMsg struct {
	err error
}
