package session

import (
	"log"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"panefind/internal/eventbus"
	"panefind/internal/search"
	"panefind/internal/surface"
)

type listenerEntry struct {
	id int
	fn Listener
}

// Service orchestrates one search session at a time: it owns the query,
// options, match list and active index, targets whichever panel was focused
// when search opened, and mediates between the match engine, the highlight
// engine and the rest of the workbench. UI events arrive on the program
// goroutine while debounce timers and bus dispatch arrive on others, so all
// state lives behind a mutex and listeners are notified outside it. The
// panel's surface tree is not covered by that mutex; debounced work that
// touches it is handed to the dispatcher, which the entry point points at the
// program loop.
type Service struct {
	mu       sync.Mutex
	bus      eventbus.EventBus
	settings Settings
	focused  func() Panel
	dispatch func(func())

	listeners  []listenerEntry
	nextListID int

	// last query/options survive close and reopen for the process lifetime
	lastQuery   string
	lastOptions search.Options

	// current session
	target        Panel
	blocks        []search.Content
	state         State
	queryTimer    *time.Timer
	queryGen      int
	mutationTimer *time.Timer
	stopObserving func()
}

// NewService creates the session service and wires its focus and teardown
// policies to the bus: focus moving to another panel closes the session, and
// so does the target panel being removed.
func NewService(bus eventbus.EventBus, settings Settings) *Service {
	s := &Service{
		bus:      bus,
		settings: settings,
		state:    State{ActiveMatch: -1},
	}

	bus.Subscribe(eventbus.EventFocusChanged, func(e eventbus.DomainEvent) {
		if evt, ok := e.(eventbus.FocusChangedEvent); ok {
			s.handleFocusChanged(evt.PanelID)
		}
	})
	bus.Subscribe(eventbus.EventPanelClosed, func(e eventbus.DomainEvent) {
		if evt, ok := e.(eventbus.PanelClosedEvent); ok {
			s.handlePanelClosed(evt.PanelID)
		}
	})

	return s
}

// SetFocusResolver injects the query for the currently focused panel.
func (s *Service) SetFocusResolver(fn func() Panel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focused = fn
}

// SetDispatcher routes debounce completions through fn instead of running
// them on the timer goroutine. Timer callbacks read and rewrite the target
// panel's surface tree, which the render loop also reads, so the entry point
// marshals them onto the program goroutine this way. Without a dispatcher the
// work runs where the timer fires.
func (s *Service) SetDispatcher(fn func(func())) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatch = fn
}

// SeedOptions sets the options the next opened session starts from,
// typically the configured defaults at startup.
func (s *Service) SeedOptions(opts search.Options) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastOptions = opts
}

// LastOptions returns the options the next session will open with, which is
// what the entry point persists as config defaults on exit.
func (s *Service) LastOptions() search.Options {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOptions
}

// State returns a read-only snapshot of the current session.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers a listener for state changes and returns its
// unsubscribe function.
func (s *Service) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextListID++
	id := s.nextListID
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				break
			}
		}
	}
}

// Open starts a session on the currently focused panel. With nothing focused
// it is a no-op. If a session is already open on another panel that session
// is closed first; reopening on the same panel only re-notifies. The last
// persisted query and options seed the new session, and a non-empty seeded
// query is searched immediately, without debounce.
func (s *Service) Open() {
	s.mu.Lock()

	var p Panel
	if s.focused != nil {
		p = s.focused()
	}
	if p == nil {
		s.mu.Unlock()
		return
	}

	if s.state.Open && s.target != nil && s.target.ID() == p.ID() {
		st := s.snapshotLocked()
		s.mu.Unlock()
		s.notify(st)
		return
	}

	if s.state.Open {
		s.closeLocked()
	}

	s.target = p
	s.state = State{
		Query:       s.lastQuery,
		Options:     s.lastOptions,
		ActiveMatch: -1,
		Open:        true,
		PanelID:     p.ID(),
	}
	s.startObservingLocked(p)

	if s.state.Query != "" {
		s.runSearchLocked()
	}

	st := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(st)
}

// SetQuery records a query edit. The value is persisted immediately so that
// closing and reopening resumes with it, but the search itself waits out the
// debounce interval. No-op while closed.
func (s *Service) SetQuery(q string) {
	s.mu.Lock()
	if !s.state.Open {
		s.mu.Unlock()
		return
	}
	s.state.Query = q
	s.lastQuery = q
	s.state.Pending = true
	s.restartQueryTimerLocked()
	st := s.snapshotLocked()
	s.mu.Unlock()
	// listeners see the new query and the pending flag right away; only the
	// search itself waits
	s.notify(st)
}

// SetCaseSensitive toggles case sensitivity, debounced like a query edit.
func (s *Service) SetCaseSensitive(on bool) {
	s.setOptions(func(o *search.Options) { o.CaseSensitive = on })
}

// SetUseRegex toggles regex mode, switching wildcard mode off when enabled.
func (s *Service) SetUseRegex(on bool) {
	s.setOptions(func(o *search.Options) { o.SetUseRegex(on) })
}

// SetUseWildcard toggles wildcard mode, switching regex mode off when enabled.
func (s *Service) SetUseWildcard(on bool) {
	s.setOptions(func(o *search.Options) { o.SetUseWildcard(on) })
}

func (s *Service) setOptions(mutate func(*search.Options)) {
	s.mu.Lock()
	if !s.state.Open {
		s.mu.Unlock()
		return
	}
	mutate(&s.state.Options)
	s.lastOptions = s.state.Options
	s.state.Pending = true
	s.restartQueryTimerLocked()
	st := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(st)
}

// Flush runs a pending debounced search immediately.
func (s *Service) Flush() {
	s.mu.Lock()
	if !s.state.Open || s.queryTimer == nil {
		s.mu.Unlock()
		return
	}
	s.queryTimer.Stop()
	s.queryTimer = nil
	s.runSearchLocked()
	st := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(st)
}

// Next advances the active match, wrapping past the last one. No-op without
// matches.
func (s *Service) Next() {
	s.step(1)
}

// Previous moves the active match backwards, wrapping before the first one.
// No-op without matches.
func (s *Service) Previous() {
	s.step(-1)
}

func (s *Service) step(delta int) {
	s.mu.Lock()
	if !s.state.Open || len(s.state.Matches) == 0 {
		s.mu.Unlock()
		return
	}
	n := len(s.state.Matches)
	s.state.ActiveMatch = ((s.state.ActiveMatch+delta)%n + n) % n
	s.presentLocked()
	st := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(st)
}

// Close ends the session: highlights are reversed, mutation observation torn
// down, the query and options persisted, and the state reset to its closed
// shape. No-op while closed.
func (s *Service) Close() {
	s.mu.Lock()
	if !s.state.Open {
		s.mu.Unlock()
		return
	}
	s.closeLocked()
	st := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(st)
}

func (s *Service) handleFocusChanged(panelID string) {
	s.mu.Lock()
	if !s.state.Open || s.target == nil || s.target.ID() == panelID {
		s.mu.Unlock()
		return
	}
	// search is panel-scoped: moving focus elsewhere ends the session
	// instead of retargeting it
	s.closeLocked()
	st := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(st)
}

func (s *Service) handlePanelClosed(panelID string) {
	s.mu.Lock()
	if !s.state.Open || s.target == nil || s.target.ID() != panelID {
		s.mu.Unlock()
		return
	}
	s.closeLocked()
	st := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(st)
}

func (s *Service) closeLocked() {
	if s.queryTimer != nil {
		s.queryTimer.Stop()
		s.queryTimer = nil
	}
	if s.mutationTimer != nil {
		s.mutationTimer.Stop()
		s.mutationTimer = nil
	}
	if s.stopObserving != nil {
		s.stopObserving()
		s.stopObserving = nil
	}

	if s.target != nil {
		if h, ok := s.target.(Highlighter); ok {
			h.ClearSearchHighlights()
		} else if root := s.target.Surface(); root != nil {
			surface.Clear(root)
		}
	}

	s.lastQuery = s.state.Query
	s.lastOptions = s.state.Options
	s.target = nil
	s.blocks = nil
	s.state = State{ActiveMatch: -1}
}

func (s *Service) restartQueryTimerLocked() {
	if s.queryTimer != nil {
		s.queryTimer.Stop()
	}
	// a superseded timer may already be waiting on the lock; the generation
	// check makes it a no-op when it gets through
	s.queryGen++
	gen := s.queryGen
	s.queryTimer = time.AfterFunc(s.settings.QueryDebounce, func() {
		s.runOn(func() { s.flushQueryTimer(gen) })
	})
}

// runOn hands fn to the dispatcher, or runs it inline when none is set.
func (s *Service) runOn(fn func()) {
	s.mu.Lock()
	d := s.dispatch
	s.mu.Unlock()
	if d == nil {
		fn()
		return
	}
	d(fn)
}

func (s *Service) flushQueryTimer(gen int) {
	s.mu.Lock()
	if !s.state.Open || gen != s.queryGen || s.queryTimer == nil {
		s.mu.Unlock()
		return
	}
	s.queryTimer = nil
	s.runSearchLocked()
	st := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(st)
}

// runSearchLocked executes the search against the target's current content
// and refreshes highlighting and scroll position.
func (s *Service) runSearchLocked() {
	s.state.Pending = false
	s.state.BadPattern = false

	if s.target == nil {
		return
	}
	s.blocks = s.collectBlocksLocked()

	matches, err := search.Find(s.blocks, s.state.Query, s.state.Options)
	if err != nil {
		log.Printf("Search: %v", err)
		s.state.BadPattern = true
		s.state.Matches = nil
		s.state.ActiveMatch = -1
		s.presentLocked()
		return
	}

	s.state.Matches = matches
	if len(matches) == 0 {
		s.state.ActiveMatch = -1
	} else {
		s.state.ActiveMatch = 0
	}
	s.presentLocked()
}

func (s *Service) collectBlocksLocked() []search.Content {
	if sc, ok := s.target.(Searchable); ok {
		return sc.SearchableContent()
	}
	root := s.target.Surface()
	if root == nil {
		return nil
	}
	return []search.Content{surface.ExtractBlock(root)}
}

// presentLocked pushes the current match list into the target panel: panels
// owning their highlighting get RevealMatch/ClearSearchHighlights, everything
// else gets markers spliced into its surface tree plus a scroll to the
// active match's line.
func (s *Service) presentLocked() {
	if s.target == nil {
		return
	}

	if h, ok := s.target.(Highlighter); ok {
		if s.state.ActiveMatch >= 0 {
			h.RevealMatch(s.state.Matches[s.state.ActiveMatch])
		} else {
			h.ClearSearchHighlights()
		}
		return
	}

	root := s.target.Surface()
	if root == nil {
		return
	}
	surface.Apply(root, s.globalMatchesLocked(), s.state.ActiveMatch)

	if s.state.ActiveMatch >= 0 {
		s.target.RevealLine(s.lineOfMatchLocked(s.state.Matches[s.state.ActiveMatch]))
	}
}

// globalMatchesLocked translates block-relative offsets into positions in
// the concatenation of all blocks, which is the coordinate space of the
// panel's extracted surface text. With the single fallback block this is the
// identity.
func (s *Service) globalMatchesLocked() []search.Match {
	starts := make(map[string]int, len(s.blocks))
	pos := 0
	for _, b := range s.blocks {
		starts[b.ID] = pos
		pos += len(b.Text)
	}

	out := make([]search.Match, 0, len(s.state.Matches))
	for _, m := range s.state.Matches {
		start, ok := starts[m.ContentID]
		if !ok {
			continue
		}
		g := m
		g.StartOffset += start
		g.EndOffset += start
		out = append(out, g)
	}
	return out
}

func (s *Service) lineOfMatchLocked(m search.Match) int {
	line := 0
	for _, b := range s.blocks {
		if b.ID != m.ContentID {
			line += strings.Count(b.Text, "\n")
			continue
		}
		end := m.StartOffset
		if end > len(b.Text) {
			end = len(b.Text)
		}
		return line + strings.Count(b.Text[:end], "\n")
	}
	return 0
}

// startObservingLocked watches the target for content changes so that a
// panel re-render, which silently destroys spliced markers, gets its
// highlights reapplied. Panels with custom highlighting manage their own
// presentation and are not observed.
func (s *Service) startObservingLocked(p Panel) {
	if _, ok := p.(Highlighter); ok {
		return
	}
	id := p.ID()
	s.stopObserving = s.bus.Subscribe(eventbus.EventPanelContentChanged, func(e eventbus.DomainEvent) {
		evt, ok := e.(eventbus.PanelContentChangedEvent)
		if !ok || evt.PanelID != id {
			return
		}
		s.scheduleReapply()
	})
}

func (s *Service) scheduleReapply() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.Open {
		return
	}
	if s.mutationTimer != nil {
		s.mutationTimer.Stop()
	}
	s.mutationTimer = time.AfterFunc(s.settings.MutationDebounce, func() {
		s.runOn(s.reapplyHighlights)
	})
}

// reapplyHighlights restores markers after a panel re-render using the
// already-computed match list; matches are not recomputed, and offsets the
// new content no longer covers are skipped by the highlight engine.
// Listeners are notified so the rendering layer redraws the restored
// markers.
func (s *Service) reapplyHighlights() {
	s.mu.Lock()
	if !s.state.Open || s.target == nil {
		s.mu.Unlock()
		return
	}
	s.mutationTimer = nil
	root := s.target.Surface()
	if root == nil {
		s.mu.Unlock()
		return
	}
	surface.Apply(root, s.globalMatchesLocked(), s.state.ActiveMatch)
	st := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(st)
}

func (s *Service) snapshotLocked() State {
	st := s.state
	st.Matches = append([]search.Match(nil), s.state.Matches...)
	return st
}

func (s *Service) notify(st State) {
	s.mu.Lock()
	ls := make([]listenerEntry, len(s.listeners))
	copy(ls, s.listeners)
	s.mu.Unlock()

	for _, l := range ls {
		callListener(l.fn, st)
	}
}

func callListener(fn Listener, st State) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Search listener panic: %v\nStack: %s", r, debug.Stack())
		}
	}()
	fn(st)
}
