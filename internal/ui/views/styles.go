package views

import (
	"github.com/charmbracelet/lipgloss"

	"panefind/internal/surface"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	TitleFocused lipgloss.Style
	Border       lipgloss.Style
	BorderFocus  lipgloss.Style
	Dim          lipgloss.Style
	Help         lipgloss.Style

	FindPrompt lipgloss.Style
	FindCount  lipgloss.Style
	FindError  lipgloss.Style
	OptionOn   lipgloss.Style
	OptionOff  lipgloss.Style

	Match       lipgloss.Style
	ActiveMatch lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		TitleFocused: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Border: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")),
		BorderFocus: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("99")),
		Dim:  lipgloss.NewStyle().Faint(true),
		Help: lipgloss.NewStyle().Faint(true),

		FindPrompt: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		FindCount:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		FindError:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		OptionOn:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		OptionOff:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Match:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		ActiveMatch: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Background(lipgloss.Color("238")).Bold(true),
	}
}

// Surface maps the highlight marker classes to their terminal styles for
// rendering panel content.
func (s *Styles) Surface() surface.Styles {
	return surface.Styles{
		surface.ClassMark:       s.Match,
		surface.ClassActiveMark: s.ActiveMatch,
	}
}
