package input

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeFind
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Workbench actions

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }

type FocusNextAction struct{}

func (a FocusNextAction) Type() string { return "focus_next" }

type FocusPrevAction struct{}

func (a FocusPrevAction) Type() string { return "focus_prev" }

type ScrollAction struct {
	Delta int
}

func (a ScrollAction) Type() string { return "scroll" }

type ToggleSectionAction struct{}

func (a ToggleSectionAction) Type() string { return "toggle_section" }

type ClosePanelAction struct{}

func (a ClosePanelAction) Type() string { return "close_panel" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type ExportPanelAction struct{}

func (a ExportPanelAction) Type() string { return "export_panel" }

// Search actions

type OpenFindAction struct{}

func (a OpenFindAction) Type() string { return "open_find" }

type CloseFindAction struct{}

func (a CloseFindAction) Type() string { return "close_find" }

type QueryChangedAction struct {
	Query string
}

func (a QueryChangedAction) Type() string { return "query_changed" }

type NextMatchAction struct{}

func (a NextMatchAction) Type() string { return "next_match" }

type PrevMatchAction struct{}

func (a PrevMatchAction) Type() string { return "prev_match" }

type ToggleCaseAction struct{}

func (a ToggleCaseAction) Type() string { return "toggle_case" }

type ToggleWildcardAction struct{}

func (a ToggleWildcardAction) Type() string { return "toggle_wildcard" }

type ToggleRegexAction struct{}

func (a ToggleRegexAction) Type() string { return "toggle_regex" }

// ChangeModeAction switches the input mode; the handler consumes it itself
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }
