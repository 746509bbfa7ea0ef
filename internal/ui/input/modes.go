package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type normalMode struct {
	keys NormalKeyMap
}

func (m *normalMode) Name() string { return "normal" }

func (m *normalMode) HandleKey(msg tea.KeyMsg) ([]Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []Action{QuitAction{}}, true
	case key.Matches(msg, m.keys.FocusNext):
		return []Action{FocusNextAction{}}, true
	case key.Matches(msg, m.keys.FocusPrev):
		return []Action{FocusPrevAction{}}, true
	case key.Matches(msg, m.keys.ScrollUp):
		return []Action{ScrollAction{Delta: -1}}, true
	case key.Matches(msg, m.keys.ScrollDown):
		return []Action{ScrollAction{Delta: 1}}, true
	case key.Matches(msg, m.keys.PageUp):
		return []Action{ScrollAction{Delta: -10}}, true
	case key.Matches(msg, m.keys.PageDown):
		return []Action{ScrollAction{Delta: 10}}, true
	case key.Matches(msg, m.keys.Toggle):
		return []Action{ToggleSectionAction{}}, true
	case key.Matches(msg, m.keys.Find):
		return []Action{OpenFindAction{}, ChangeModeAction{Mode: ModeFind}}, true
	case key.Matches(msg, m.keys.Export):
		return []Action{ExportPanelAction{}}, true
	case key.Matches(msg, m.keys.ClosePanel):
		return []Action{ClosePanelAction{}}, true
	case key.Matches(msg, m.keys.Help):
		return []Action{ShowHelpAction{}}, true
	}
	return nil, false
}

// findMode drives the open search session: enter and the arrows navigate
// matches, alt-modified letters toggle the options, esc closes. Anything else
// falls through to the query text input.
type findMode struct {
	keys FindKeyMap
}

func (m *findMode) Name() string { return "find" }

func (m *findMode) HandleKey(msg tea.KeyMsg) ([]Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []Action{QuitAction{}}, true
	case key.Matches(msg, m.keys.Close):
		return []Action{CloseFindAction{}, ChangeModeAction{Mode: ModeNormal}}, true
	case key.Matches(msg, m.keys.Next):
		return []Action{NextMatchAction{}}, true
	case key.Matches(msg, m.keys.Prev):
		return []Action{PrevMatchAction{}}, true
	case key.Matches(msg, m.keys.ToggleCase):
		return []Action{ToggleCaseAction{}}, true
	case key.Matches(msg, m.keys.ToggleWildcard):
		return []Action{ToggleWildcardAction{}}, true
	case key.Matches(msg, m.keys.ToggleRegex):
		return []Action{ToggleRegexAction{}}, true
	}
	return nil, false
}
