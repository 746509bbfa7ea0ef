package shell

import (
	"panefind/internal/eventbus"
	"panefind/internal/surface"
)

// Panel is a focusable workbench panel. Search only needs ID, Surface and
// RevealLine; the rest is what the workbench needs to lay panels out and
// render them.
type Panel interface {
	ID() string
	Title() string
	Surface() *surface.Node
	RevealLine(line int)
	SetSize(width, height int)
	Scroll(delta int)
	View(focused bool) string
}

// Workbench holds the ordered panels and tracks which one is focused. Focus
// and removal are published on the bus so the search session can enforce its
// panel-scoped lifetime.
type Workbench struct {
	bus     eventbus.EventBus
	panels  []Panel
	focused int
}

// New creates an empty workbench.
func New(bus eventbus.EventBus) *Workbench {
	return &Workbench{bus: bus, focused: -1}
}

// Add appends a panel. The first panel added takes focus without an event;
// there was nothing focused before it.
func (w *Workbench) Add(p Panel) {
	w.panels = append(w.panels, p)
	if w.focused < 0 {
		w.focused = 0
	}
}

// Panels returns the panels in display order.
func (w *Workbench) Panels() []Panel {
	return w.panels
}

// Focused returns the focused panel, or nil with an empty workbench.
func (w *Workbench) Focused() Panel {
	if w.focused < 0 || w.focused >= len(w.panels) {
		return nil
	}
	return w.panels[w.focused]
}

// FocusNext moves focus to the next panel, wrapping past the last one.
func (w *Workbench) FocusNext() {
	w.shiftFocus(1)
}

// FocusPrev moves focus to the previous panel, wrapping before the first one.
func (w *Workbench) FocusPrev() {
	w.shiftFocus(-1)
}

func (w *Workbench) shiftFocus(delta int) {
	n := len(w.panels)
	if n < 2 {
		return
	}
	w.focused = ((w.focused+delta)%n + n) % n
	w.bus.Publish(eventbus.FocusChangedEvent{PanelID: w.panels[w.focused].ID()})
}

// FocusByID focuses the named panel and reports whether it exists.
func (w *Workbench) FocusByID(id string) bool {
	for i, p := range w.panels {
		if p.ID() != id {
			continue
		}
		if i != w.focused {
			w.focused = i
			w.bus.Publish(eventbus.FocusChangedEvent{PanelID: id})
		}
		return true
	}
	return false
}

// Remove takes the named panel out of the workbench and publishes its
// closure. When the removed panel was focused, focus falls back to the panel
// before it.
func (w *Workbench) Remove(id string) {
	for i, p := range w.panels {
		if p.ID() != id {
			continue
		}
		w.panels = append(w.panels[:i], w.panels[i+1:]...)
		if len(w.panels) == 0 {
			w.focused = -1
		} else if w.focused >= i && w.focused > 0 {
			w.focused--
		}
		w.bus.Publish(eventbus.PanelClosedEvent{PanelID: id})
		if next := w.Focused(); next != nil {
			w.bus.Publish(eventbus.FocusChangedEvent{PanelID: next.ID()})
		}
		return
	}
}
