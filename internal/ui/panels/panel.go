package panels

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"panefind/internal/surface"
	"panefind/internal/ui/views"
)

// base carries what every panel shares: the retained surface tree that search
// walks for text and highlight markers, the viewport showing its rendered
// form, and the chrome around it.
type base struct {
	id     string
	title  string
	styles *views.Styles
	root   *surface.Node
	vp     viewport.Model
}

func newBase(id, title string, styles *views.Styles) base {
	return base{
		id:     id,
		title:  title,
		styles: styles,
		root:   surface.NewElement(surface.TagPanel),
		vp:     viewport.New(0, 0),
	}
}

func (b *base) ID() string    { return b.id }
func (b *base) Title() string { return b.title }

// Surface returns the panel's retained render tree.
func (b *base) Surface() *surface.Node { return b.root }

// SetSize sets the panel's outer size; the viewport gets what remains after
// the border and title row.
func (b *base) SetSize(width, height int) {
	w := width - 2
	h := height - 3
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	b.vp.Width = w
	b.vp.Height = h
}

// Scroll moves the viewport by delta lines.
func (b *base) Scroll(delta int) {
	b.vp.SetYOffset(b.vp.YOffset + delta)
}

// RevealLine scrolls so the given content line sits near the middle of the
// viewport.
func (b *base) RevealLine(line int) {
	b.refresh()
	target := line - b.vp.Height/2
	if max := b.vp.TotalLineCount() - b.vp.Height; target > max {
		target = max
	}
	if target < 0 {
		target = 0
	}
	b.vp.SetYOffset(target)
}

func (b *base) refresh() {
	b.vp.SetContent(surface.Render(b.root, b.styles.Surface()))
}

// View renders the panel chrome with the current surface content.
func (b *base) View(focused bool) string {
	b.refresh()

	title := b.styles.Title.Render(b.title)
	border := b.styles.Border
	if focused {
		title = b.styles.TitleFocused.Render(b.title)
		border = b.styles.BorderFocus
	}

	body := lipgloss.JoinVertical(lipgloss.Left, title, b.vp.View())
	return border.Width(b.vp.Width).Render(body)
}

// retainOverlays detaches and returns the overlay children of root so a
// content rebuild can put the mounted find bar back afterwards.
func retainOverlays(root *surface.Node) []*surface.Node {
	var overlays []*surface.Node
	for _, c := range root.Children {
		if c.Kind == surface.KindElement && c.Tag == surface.TagOverlay {
			overlays = append(overlays, c)
		}
	}
	root.Children = nil
	for _, o := range overlays {
		o.Parent = nil
	}
	return overlays
}
