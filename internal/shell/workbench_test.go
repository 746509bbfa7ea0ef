package shell

import (
	"testing"

	"github.com/stretchr/testify/require"

	"panefind/internal/eventbus"
	"panefind/internal/surface"
)

type stubPanel struct {
	id   string
	root *surface.Node
}

func newStubPanel(id string) *stubPanel {
	return &stubPanel{id: id, root: surface.NewElement(surface.TagPanel)}
}

func (p *stubPanel) ID() string             { return p.id }
func (p *stubPanel) Title() string          { return p.id }
func (p *stubPanel) Surface() *surface.Node { return p.root }
func (p *stubPanel) RevealLine(int)         {}
func (p *stubPanel) SetSize(int, int)       {}
func (p *stubPanel) Scroll(int)             {}
func (p *stubPanel) View(bool) string       { return "" }

func recordEvents(bus eventbus.EventBus, types ...eventbus.EventType) *[]eventbus.DomainEvent {
	var events []eventbus.DomainEvent
	for _, t := range types {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			events = append(events, e)
		})
	}
	return &events
}

func TestFirstPanelTakesFocus(t *testing.T) {
	bus := eventbus.New()
	w := New(bus)
	require.Nil(t, w.Focused())

	a := newStubPanel("a")
	w.Add(a)
	w.Add(newStubPanel("b"))
	require.Equal(t, a, w.Focused())
}

func TestFocusCyclingWrapsAndPublishes(t *testing.T) {
	bus := eventbus.New()
	events := recordEvents(bus, eventbus.EventFocusChanged)
	w := New(bus)
	w.Add(newStubPanel("a"))
	w.Add(newStubPanel("b"))
	w.Add(newStubPanel("c"))

	w.FocusNext()
	require.Equal(t, "b", w.Focused().ID())
	w.FocusNext()
	w.FocusNext()
	require.Equal(t, "a", w.Focused().ID())

	w.FocusPrev()
	require.Equal(t, "c", w.Focused().ID())

	require.Len(t, *events, 4)
	last, ok := (*events)[3].(eventbus.FocusChangedEvent)
	require.True(t, ok)
	require.Equal(t, "c", last.PanelID)
}

func TestFocusNextWithSinglePanelIsNoop(t *testing.T) {
	bus := eventbus.New()
	events := recordEvents(bus, eventbus.EventFocusChanged)
	w := New(bus)
	w.Add(newStubPanel("only"))

	w.FocusNext()
	require.Equal(t, "only", w.Focused().ID())
	require.Empty(t, *events)
}

func TestFocusByID(t *testing.T) {
	bus := eventbus.New()
	events := recordEvents(bus, eventbus.EventFocusChanged)
	w := New(bus)
	w.Add(newStubPanel("a"))
	w.Add(newStubPanel("b"))

	require.True(t, w.FocusByID("b"))
	require.Equal(t, "b", w.Focused().ID())
	require.Len(t, *events, 1)

	// focusing the already focused panel publishes nothing
	require.True(t, w.FocusByID("b"))
	require.Len(t, *events, 1)

	require.False(t, w.FocusByID("missing"))
}

func TestRemovePublishesClosureAndRefocuses(t *testing.T) {
	bus := eventbus.New()
	var closed []string
	bus.Subscribe(eventbus.EventPanelClosed, func(e eventbus.DomainEvent) {
		if evt, ok := e.(eventbus.PanelClosedEvent); ok {
			closed = append(closed, evt.PanelID)
		}
	})
	w := New(bus)
	w.Add(newStubPanel("a"))
	w.Add(newStubPanel("b"))
	w.Add(newStubPanel("c"))
	w.FocusNext() // b

	w.Remove("b")
	require.Equal(t, []string{"b"}, closed)
	require.Equal(t, "a", w.Focused().ID())
	require.Len(t, w.Panels(), 2)

	w.Remove("a")
	w.Remove("c")
	require.Nil(t, w.Focused())
}
