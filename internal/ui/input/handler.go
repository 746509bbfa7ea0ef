package input

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler routes key messages through the current input mode and turns them
// into Actions for the model to execute. Mode changes are consumed here; the
// query text input lives here too so find mode can feed it.
type Handler struct {
	currentMode Mode
	modes       map[Mode]modeHandler
	textInput   *textinput.Model
	normalKeys  NormalKeyMap
	findKeys    FindKeyMap
}

// modeHandler handles input for a specific mode
type modeHandler interface {
	// HandleKey processes a key message and reports whether it consumed it
	HandleKey(msg tea.KeyMsg) ([]Action, bool)
	Name() string
}

func New() *Handler {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "find"

	h := &Handler{
		currentMode: ModeNormal,
		textInput:   &ti,
		normalKeys:  DefaultNormalKeyMap(),
		findKeys:    DefaultFindKeyMap(),
	}
	h.modes = map[Mode]modeHandler{
		ModeNormal: &normalMode{keys: h.normalKeys},
		ModeFind:   &findMode{keys: h.findKeys},
	}
	return h
}

// HelpKeys returns the active mode's bindings for the help footer.
func (h *Handler) HelpKeys() help.KeyMap {
	if h.currentMode == ModeFind {
		return h.findKeys
	}
	return h.normalKeys
}

// HandleKey processes one key press. In find mode, keys no mode binding
// claims fall through to the text input and surface as QueryChangedAction.
func (h *Handler) HandleKey(msg tea.KeyMsg) ([]Action, tea.Cmd) {
	actions, consumed := h.modes[h.currentMode].HandleKey(msg)

	var out []Action
	var cmd tea.Cmd
	for _, a := range actions {
		if change, ok := a.(ChangeModeAction); ok {
			cmd = h.changeMode(change.Mode)
			continue
		}
		out = append(out, a)
	}

	if !consumed && h.currentMode == ModeFind {
		before := h.textInput.Value()
		var tiCmd tea.Cmd
		*h.textInput, tiCmd = h.textInput.Update(msg)
		cmd = tiCmd
		// cursor movement leaves the value alone and must not restart the
		// search debounce
		if v := h.textInput.Value(); v != before {
			out = append(out, QueryChangedAction{Query: v})
		}
	}

	return out, cmd
}

func (h *Handler) changeMode(mode Mode) tea.Cmd {
	h.currentMode = mode
	if mode == ModeFind {
		h.textInput.Focus()
		return textinput.Blink
	}
	h.textInput.Blur()
	return nil
}

// EnterFind switches to find mode with the given initial query, placing the
// cursor at its end. Used when the session opens with a persisted query.
func (h *Handler) EnterFind(query string) tea.Cmd {
	h.textInput.SetValue(query)
	h.textInput.CursorEnd()
	return h.changeMode(ModeFind)
}

// LeaveFind drops back to normal mode, keeping the typed query in the input
// for the next EnterFind to overwrite.
func (h *Handler) LeaveFind() {
	if h.currentMode == ModeFind {
		h.changeMode(ModeNormal)
	}
}

// CurrentMode returns the active input mode.
func (h *Handler) CurrentMode() Mode {
	return h.currentMode
}

// TextInput exposes the query input for the find bar view.
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}
