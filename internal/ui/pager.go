package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// Pager shows long-form content in ov, handing the terminal over and taking
// it back around the run.
type Pager struct {
	program *tea.Program
}

// NewPager creates a pager with no program attached yet.
func NewPager() *Pager {
	return &Pager{}
}

// SetProgram sets the program reference for terminal management
func (pg *Pager) SetProgram(p *tea.Program) {
	pg.program = p
}

// Show pages the given content. Blocks until the pager exits.
func (pg *Pager) Show(content string) error {
	if pg.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := pg.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// give ov a moment to fully exit before taking the terminal back
		time.Sleep(100 * time.Millisecond)
		_ = pg.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// helpText is the keybinding reference shown by the help pager.
func helpText() string {
	return `panefind

Workbench
  tab / shift+tab   focus next / previous panel
  up/down, j/k      scroll the focused panel (moves the cursor in the outline)
  pgup / pgdn       scroll by ten lines
  enter             collapse/expand the outline section under the cursor
  o                 open the focused panel's text in the pager
  x                 close the focused panel
  ?                 this help
  q, ctrl+c         quit

Find (/, ctrl+f — searches the focused panel)
  type              edit the query; the search runs after a short pause
  enter, down       next match (wraps past the last one)
  up                previous match (wraps before the first one)
  alt+c             toggle case sensitivity
  alt+w             toggle wildcard mode (* any run, ? one character)
  alt+r             toggle regular expression mode
  esc               close find

Wildcard and regex modes are mutually exclusive; turning one on turns the
other off. With case-insensitive literal or wildcard search, accents are
ignored: "cafe" finds "café".

Switching focus to another panel closes the find session. Reopening resumes
with the last query and options.
`
}
