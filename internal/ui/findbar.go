package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"panefind/internal/session"
)

// matchCounter renders the "current/total" indicator of the find bar. A bad
// regular expression gets its own indicator, distinct from a search with no
// results.
func matchCounter(st session.State) string {
	if st.BadPattern {
		return "bad pattern"
	}
	if st.Pending {
		return "..."
	}
	if st.ActiveMatch < 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", st.ActiveMatch+1, len(st.Matches))
}

// optionChips renders the three mode toggles, lit when enabled.
func (m *Model) optionChips(st session.State) string {
	chip := func(label string, on bool) string {
		if on {
			return m.styles.OptionOn.Render(label)
		}
		return m.styles.OptionOff.Render(label)
	}
	return strings.Join([]string{
		chip("Aa", st.Options.CaseSensitive),
		chip("*?", st.Options.UseWildcard),
		chip(".*", st.Options.UseRegex),
	}, " ")
}

// renderFindBar draws the bar shown above the targeted panel while a session
// is open.
func (m *Model) renderFindBar() string {
	st := m.searchState

	counter := m.styles.FindCount.Render(matchCounter(st))
	if st.BadPattern {
		counter = m.styles.FindError.Render(matchCounter(st))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.FindPrompt.Render("find "),
		m.input.TextInput().View(),
		"  ",
		counter,
		"  ",
		m.optionChips(st),
	)
}

// overlayText is the plain form of the find bar that gets mounted into the
// target panel's surface tree. It repeats the query, which is exactly why the
// extractor must skip overlay subtrees: the bar would otherwise match its own
// echo of every query.
func (m *Model) overlayText() string {
	return "find " + m.searchState.Query + " " + matchCounter(m.searchState)
}
