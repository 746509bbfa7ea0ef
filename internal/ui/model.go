package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"panefind/internal/config"
	"panefind/internal/eventbus"
	"panefind/internal/session"
	"panefind/internal/shell"
	"panefind/internal/surface"
	"panefind/internal/ui/input"
	"panefind/internal/ui/views"
)

// Model is the Bubble Tea model for the workbench: it lays the panels out,
// routes keys through the input handler, executes the resulting actions
// against the workbench and the search session, and keeps the find bar
// overlay mounted on the session's target panel.
type Model struct {
	bus    eventbus.EventBus
	cfg    *config.Config
	styles *views.Styles
	bench  *shell.Workbench
	sess   *session.Service
	input  *input.Handler
	pager  *Pager
	help   help.Model

	width  int
	height int

	searchState session.State
	overlay     *surface.Node
	mountedOn   string // panel id the overlay is currently mounted on
}

// NewModel creates the UI model.
func NewModel(cfg *config.Config, bus eventbus.EventBus, bench *shell.Workbench, sess *session.Service, styles *views.Styles) *Model {
	overlay := surface.NewElement(surface.TagOverlay)
	// the overlay's text takes part in extraction-exclusion, not in rendering;
	// the styled bar is drawn above the panel instead
	overlay.Hidden = true

	return &Model{
		bus:         bus,
		cfg:         cfg,
		styles:      styles,
		bench:       bench,
		sess:        sess,
		input:       input.New(),
		pager:       NewPager(),
		help:        help.New(),
		searchState: sess.State(),
		overlay:     overlay,
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.input.HandleKey(msg)
		actionCmd := m.apply(actions)
		if actionCmd != nil {
			cmd = actionCmd
		}
		return m, cmd

	case SearchStateMsg:
		m.searchState = msg.State
		m.syncOverlay()
		if !msg.State.Open {
			m.input.LeaveFind()
		}
		return m, nil

	case SessionWorkMsg:
		if msg.Run != nil {
			msg.Run()
		}
		return m, nil

	case EventMsg:
		// most panels update themselves off the bus and only need the redraw
		// this message triggers; document reloads are deferred to here because
		// they rewrite the surface tree View reads
		if evt, ok := msg.Event.(eventbus.DocumentChangedEvent); ok {
			m.reloadPanel(evt.PanelID)
		}
		return m, nil

	case pagerDoneMsg:
		if msg.err != nil {
			log.Printf("Pager: %v", msg.err)
		}
		return m, nil
	}

	return m, nil
}

// apply executes input actions against the workbench and the session.
func (m *Model) apply(actions []input.Action) tea.Cmd {
	var cmd tea.Cmd
	for _, a := range actions {
		switch a := a.(type) {
		case input.QuitAction:
			m.sess.Close()
			cmd = tea.Quit

		case input.FocusNextAction:
			m.bench.FocusNext()
		case input.FocusPrevAction:
			m.bench.FocusPrev()

		case input.ScrollAction:
			if p := m.bench.Focused(); p != nil {
				p.Scroll(a.Delta)
			}

		case input.ClosePanelAction:
			if p := m.bench.Focused(); p != nil {
				m.bench.Remove(p.ID())
				if c, ok := p.(interface{ Close() error }); ok {
					if err := c.Close(); err != nil {
						log.Printf("Panel %s: close: %v", p.ID(), err)
					}
				}
				m.layout()
			}

		case input.ToggleSectionAction:
			if t, ok := m.bench.Focused().(interface{ ToggleCurrent() }); ok {
				t.ToggleCurrent()
			}

		case input.OpenFindAction:
			m.sess.Open()
			st := m.sess.State()
			if st.Open {
				cmd = m.input.EnterFind(st.Query)
			} else {
				m.input.LeaveFind()
			}

		case input.CloseFindAction:
			m.sess.Close()

		case input.QueryChangedAction:
			m.sess.SetQuery(a.Query)

		case input.NextMatchAction:
			if m.sess.State().Pending {
				m.sess.Flush()
			} else {
				m.sess.Next()
			}
		case input.PrevMatchAction:
			if m.sess.State().Pending {
				m.sess.Flush()
			} else {
				m.sess.Previous()
			}

		case input.ToggleCaseAction:
			m.sess.SetCaseSensitive(!m.sess.State().Options.CaseSensitive)
		case input.ToggleWildcardAction:
			m.sess.SetUseWildcard(!m.sess.State().Options.UseWildcard)
		case input.ToggleRegexAction:
			m.sess.SetUseRegex(!m.sess.State().Options.UseRegex)

		case input.ShowHelpAction:
			cmd = m.pagerCmd(helpText())
		case input.ExportPanelAction:
			if p := m.bench.Focused(); p != nil {
				cmd = m.pagerCmd(surface.Text(p.Surface()))
			}
		}
	}
	return cmd
}

// reloadPanel re-reads a document whose backing file changed on disk.
func (m *Model) reloadPanel(id string) {
	for _, p := range m.bench.Panels() {
		if p.ID() != id {
			continue
		}
		if r, ok := p.(interface{ Reload() error }); ok {
			if err := r.Reload(); err != nil {
				log.Printf("Panel %s: reload: %v", id, err)
			}
		}
		return
	}
}

func (m *Model) pagerCmd(content string) tea.Cmd {
	return func() tea.Msg {
		return pagerDoneMsg{err: m.pager.Show(content)}
	}
}

// syncOverlay keeps the find bar's plain text mounted in the target panel's
// surface tree while the session is open, and takes it out on close. The
// mounted text is what the extractor must skip so the bar never matches
// itself.
func (m *Model) syncOverlay() {
	if !m.searchState.Open {
		m.overlay.Detach()
		m.mountedOn = ""
		return
	}

	if m.mountedOn != m.searchState.PanelID {
		m.overlay.Detach()
		m.mountedOn = ""
		for _, p := range m.bench.Panels() {
			if p.ID() == m.searchState.PanelID {
				p.Surface().Append(m.overlay)
				m.mountedOn = p.ID()
				break
			}
		}
	}

	m.overlay.Children = nil
	m.overlay.Append(surface.NewText(m.overlayText()))
}

// layout divides the width between the panels, leaving the footer row.
func (m *Model) layout() {
	ps := m.bench.Panels()
	if len(ps) == 0 || m.width == 0 {
		return
	}
	w := m.width / len(ps)
	h := m.height
	if m.cfg.UISettings.ShowHelpBar {
		h--
	}
	for _, p := range ps {
		p.SetSize(w, h)
	}
}

// View renders the panel columns, the find bar above the targeted panel, and
// the footer.
func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	focused := m.bench.Focused()
	columns := make([]string, 0, len(m.bench.Panels()))
	for _, p := range m.bench.Panels() {
		col := p.View(p == focused)
		if m.searchState.Open && p.ID() == m.searchState.PanelID {
			col = lipgloss.JoinVertical(lipgloss.Left, m.renderFindBar(), col)
		}
		columns = append(columns, col)
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	if !m.cfg.UISettings.ShowHelpBar {
		return main
	}
	return lipgloss.JoinVertical(lipgloss.Left, main, m.footer())
}

func (m *Model) footer() string {
	return m.help.View(m.input.HelpKeys())
}
