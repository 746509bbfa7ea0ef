package input

import (
	"github.com/charmbracelet/bubbles/key"
)

// NormalKeyMap holds the bindings of normal mode.
type NormalKeyMap struct {
	Quit       key.Binding
	FocusNext  key.Binding
	FocusPrev  key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Toggle     key.Binding
	Find       key.Binding
	Export     key.Binding
	ClosePanel key.Binding
	Help       key.Binding
}

// DefaultNormalKeyMap returns the normal mode bindings.
func DefaultNormalKeyMap() NormalKeyMap {
	return NormalKeyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		FocusNext:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		FocusPrev:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "focus back")),
		ScrollUp:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		ScrollDown: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Toggle:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle")),
		Find:       key.NewBinding(key.WithKeys("/", "ctrl+f"), key.WithHelp("/", "find")),
		Export:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "pager")),
		ClosePanel: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close panel")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

// ShortHelp implements help.KeyMap.
func (k NormalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusNext, k.ScrollUp, k.ScrollDown, k.Toggle, k.Find, k.Export, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k NormalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusNext, k.FocusPrev, k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown},
		{k.Toggle, k.Find, k.Export, k.ClosePanel, k.Help, k.Quit},
	}
}

// FindKeyMap holds the bindings of find mode.
type FindKeyMap struct {
	Quit           key.Binding
	Close          key.Binding
	Next           key.Binding
	Prev           key.Binding
	ToggleCase     key.Binding
	ToggleWildcard key.Binding
	ToggleRegex    key.Binding
}

// DefaultFindKeyMap returns the find mode bindings.
func DefaultFindKeyMap() FindKeyMap {
	return FindKeyMap{
		Quit:           key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Close:          key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Next:           key.NewBinding(key.WithKeys("enter", "down", "ctrl+n"), key.WithHelp("enter/↓", "next")),
		Prev:           key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "prev")),
		ToggleCase:     key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "case")),
		ToggleWildcard: key.NewBinding(key.WithKeys("alt+w"), key.WithHelp("alt+w", "wildcard")),
		ToggleRegex:    key.NewBinding(key.WithKeys("alt+r"), key.WithHelp("alt+r", "regex")),
	}
}

// ShortHelp implements help.KeyMap.
func (k FindKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.ToggleCase, k.ToggleWildcard, k.ToggleRegex, k.Close}
}

// FullHelp implements help.KeyMap.
func (k FindKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Close},
		{k.ToggleCase, k.ToggleWildcard, k.ToggleRegex, k.Quit},
	}
}
