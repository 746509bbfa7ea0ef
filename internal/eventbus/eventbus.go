package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"panefind/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventFocusChanged        = domain.EventFocusChanged
	EventDocumentChanged     = domain.EventDocumentChanged
	EventPanelContentChanged = domain.EventPanelContentChanged
	EventPanelClosed         = domain.EventPanelClosed
	EventConfigLoaded        = domain.EventConfigLoaded
	EventConfigSaved         = domain.EventConfigSaved
	EventError               = domain.EventError
)

// Re-export domain event types
type FocusChangedEvent = domain.FocusChangedEvent
type DocumentChangedEvent = domain.DocumentChangedEvent
type PanelContentChangedEvent = domain.PanelContentChangedEvent
type PanelClosedEvent = domain.PanelClosedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[EventType][]subscription
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish delivers an event to all subscribers of its type, in subscription
// order, on the caller's goroutine. Handlers that panic are recovered and
// logged so the remaining handlers still run.
func (b *bus) Publish(event DomainEvent) {
	switch event.Type() {
	case EventPanelContentChanged:
		// Don't log content changes as they're too frequent
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	b.mu.RLock()
	subs := b.handlers[event.Type()]
	// Make a copy to avoid holding lock during handler execution
	subsCopy := make([]subscription, len(subs))
	copy(subsCopy, subs)
	b.mu.RUnlock()

	for _, sub := range subsCopy {
		callHandler(sub.handler, event)
	}
}

func callHandler(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}
