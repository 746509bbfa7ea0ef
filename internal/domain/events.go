package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventFocusChanged        EventType = "FocusChanged"
	EventDocumentChanged     EventType = "DocumentChanged"
	EventPanelContentChanged EventType = "PanelContentChanged"
	EventPanelClosed         EventType = "PanelClosed"
	EventConfigLoaded        EventType = "ConfigLoaded"
	EventConfigSaved         EventType = "ConfigSaved"
	EventError               EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// FocusChangedEvent is emitted when a different panel takes focus
type FocusChangedEvent struct {
	PanelID string
}

func (e FocusChangedEvent) Type() EventType { return EventFocusChanged }

// DocumentChangedEvent is emitted when a document's backing file changes on
// disk. The reload itself happens wherever the surface tree is owned, not on
// the watcher goroutine reporting the change.
type DocumentChangedEvent struct {
	PanelID string
}

func (e DocumentChangedEvent) Type() EventType { return EventDocumentChanged }

// PanelContentChangedEvent is emitted when a panel re-renders its content
type PanelContentChangedEvent struct {
	PanelID string
}

func (e PanelContentChangedEvent) Type() EventType { return EventPanelContentChanged }

// PanelClosedEvent is emitted when a panel is removed from the workbench
type PanelClosedEvent struct {
	PanelID string
}

func (e PanelClosedEvent) Type() EventType { return EventPanelClosed }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
