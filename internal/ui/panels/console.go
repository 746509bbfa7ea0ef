package panels

import (
	"fmt"
	"time"

	"panefind/internal/eventbus"
	"panefind/internal/surface"
	"panefind/internal/ui/views"
)

// Console is a bus-fed log panel on the fallback search path. It appends one
// line per workbench event, so its content keeps growing while a search
// session is open; every append publishes PanelContentChanged, driving the
// session's highlight re-apply the same way a document reload does. It does
// not subscribe to PanelContentChanged itself, which would feed back into its
// own appends.
type Console struct {
	base
	bus   eventbus.EventBus
	limit int
}

// NewConsole creates the console panel and subscribes it to the workbench
// events worth showing. limit caps the retained lines; the oldest fall off.
func NewConsole(id string, bus eventbus.EventBus, styles *views.Styles, limit int) *Console {
	c := &Console{base: newBase(id, "console", styles), bus: bus, limit: limit}

	bus.Subscribe(eventbus.EventFocusChanged, func(e eventbus.DomainEvent) {
		if evt, ok := e.(eventbus.FocusChangedEvent); ok {
			c.append(fmt.Sprintf("focus -> %s", evt.PanelID))
		}
	})
	bus.Subscribe(eventbus.EventPanelClosed, func(e eventbus.DomainEvent) {
		if evt, ok := e.(eventbus.PanelClosedEvent); ok {
			c.append(fmt.Sprintf("panel closed: %s", evt.PanelID))
		}
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if evt, ok := e.(eventbus.ConfigLoadedEvent); ok {
			c.append(fmt.Sprintf("config loaded from %s", evt.Path))
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if evt, ok := e.(eventbus.ErrorEvent); ok {
			c.append(fmt.Sprintf("error: %s: %v", evt.Message, evt.Err))
		}
	})

	return c
}

// Append adds a console line directly, outside any bus event.
func (c *Console) Append(text string) {
	c.append(text)
}

func (c *Console) append(text string) {
	line := surface.NewElement(surface.TagLine)
	line.Append(surface.NewText(time.Now().Format("15:04:05") + " " + text + "\n"))
	c.root.Append(line)
	c.trim()
	c.bus.Publish(eventbus.PanelContentChangedEvent{PanelID: c.id})
}

// trim drops the oldest line elements beyond the retention limit. Overlay
// children are not lines and never counted.
func (c *Console) trim() {
	lines := 0
	for _, n := range c.root.Children {
		if n.Kind == surface.KindElement && n.Tag == surface.TagLine {
			lines++
		}
	}
	oldest := append([]*surface.Node(nil), c.root.Children...)
	for _, n := range oldest {
		if lines <= c.limit {
			break
		}
		if n.Kind == surface.KindElement && n.Tag == surface.TagLine {
			n.Detach()
			lines--
		}
	}
}
