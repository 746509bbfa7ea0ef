package panels

import (
	"fmt"
	"strings"

	"panefind/internal/search"
	"panefind/internal/surface"
	"panefind/internal/ui/views"
)

// Section is one collapsible unit of an outline: a heading line plus the body
// below it, kept as raw text so search offsets stay stable whether or not the
// section is currently rendered.
type Section struct {
	ID        string
	Title     string
	Raw       string // heading line plus body, exactly as parsed
	Collapsed bool
}

type activeSpan struct {
	sectionID  string
	start, end int
}

// Outline is a structured panel: it hands search one content block per
// section, collapsed ones included, and owns its match presentation. Matches
// in collapsed sections can exist without being in the rendered tree, which
// is why it implements the reveal/clear contract instead of letting markers
// be spliced into its surface.
type Outline struct {
	base
	sections []*Section
	cursor   int
	active   *activeSpan
}

// NewOutline parses text into '#'-headed sections and builds the panel.
func NewOutline(id, title, text string, styles *views.Styles) *Outline {
	o := &Outline{base: newBase(id, title, styles)}
	o.sections = parseSections(text)
	o.rebuild()
	return o
}

// Sections returns the parsed sections in order.
func (o *Outline) Sections() []*Section { return o.sections }

// SearchableContent provides one block per section so matches are found in
// collapsed sections too.
func (o *Outline) SearchableContent() []search.Content {
	blocks := make([]search.Content, 0, len(o.sections))
	for _, sec := range o.sections {
		blocks = append(blocks, search.Content{ID: sec.ID, Text: sec.Raw})
	}
	return blocks
}

// RevealMatch expands the section owning the match, marks its span and
// scrolls it into view.
func (o *Outline) RevealMatch(m search.Match) {
	sec := o.sectionByID(m.ContentID)
	if sec == nil {
		return
	}
	sec.Collapsed = false
	o.active = &activeSpan{sectionID: sec.ID, start: m.StartOffset, end: m.EndOffset}
	o.rebuild()
	o.RevealLine(o.lineOfSpan(sec, m.StartOffset))
}

// ClearSearchHighlights removes the active span marking; section expansion is
// left as the reveal put it.
func (o *Outline) ClearSearchHighlights() {
	if o.active == nil {
		return
	}
	o.active = nil
	o.rebuild()
}

// Scroll moves the section cursor instead of the raw viewport.
func (o *Outline) Scroll(delta int) {
	if len(o.sections) == 0 {
		return
	}
	next := o.cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= len(o.sections) {
		next = len(o.sections) - 1
	}
	if next == o.cursor {
		return
	}
	o.cursor = next
	o.rebuild()
	o.RevealLine(o.lineOfSpan(o.sections[o.cursor], 0))
}

// ToggleCurrent collapses or expands the section under the cursor.
func (o *Outline) ToggleCurrent() {
	if len(o.sections) == 0 {
		return
	}
	sec := o.sections[o.cursor]
	sec.Collapsed = !sec.Collapsed
	o.rebuild()
}

func (o *Outline) sectionByID(id string) *Section {
	for _, sec := range o.sections {
		if sec.ID == id {
			return sec
		}
	}
	return nil
}

// rebuild regenerates the surface tree from the section list: a heading line
// per section, the body below it when expanded, and the active span wrapped
// in a marker node.
func (o *Outline) rebuild() {
	overlays := retainOverlays(o.root)

	for i, sec := range o.sections {
		el := surface.NewElement(surface.TagSection)

		prefix := "  "
		if i == o.cursor {
			prefix = "> "
		}
		arrow := "v "
		if sec.Collapsed {
			arrow = "> "
		}

		visible := sec.Raw
		if sec.Collapsed {
			visible = headingOf(sec.Raw)
		}

		el.Append(surface.NewText(prefix + arrow))
		if o.active != nil && o.active.sectionID == sec.ID && o.active.end <= len(visible) {
			el.Append(surface.NewText(visible[:o.active.start]))
			mark := surface.NewElement(surface.TagMark)
			mark.Class = surface.ClassActiveMark
			mark.Append(surface.NewText(visible[o.active.start:o.active.end]))
			el.Append(mark)
			el.Append(surface.NewText(visible[o.active.end:]))
		} else {
			el.Append(surface.NewText(visible))
		}

		o.root.Append(el)
	}

	for _, ov := range overlays {
		o.root.Append(ov)
	}
}

// lineOfSpan returns the rendered line index of the given raw offset within
// sec, counting the visible lines of the sections above it.
func (o *Outline) lineOfSpan(sec *Section, offset int) int {
	line := 0
	for _, s := range o.sections {
		if s == sec {
			if offset > len(s.Raw) {
				offset = len(s.Raw)
			}
			return line + strings.Count(s.Raw[:offset], "\n")
		}
		if s.Collapsed {
			line++
		} else {
			line += strings.Count(s.Raw, "\n") + 1
		}
	}
	return line
}

// headingOf returns the first line of a section's raw text, newline included
// so collapsed sections still terminate their rendered line.
func headingOf(raw string) string {
	if i := strings.IndexByte(raw, '\n'); i >= 0 {
		return raw[:i+1]
	}
	return raw
}

// parseSections splits text at '#' heading lines. Text before the first
// heading becomes an untitled leading section.
func parseSections(text string) []*Section {
	var sections []*Section
	var cur *Section
	var buf strings.Builder

	flush := func() {
		if cur != nil {
			cur.Raw = buf.String()
			sections = append(sections, cur)
		}
		buf.Reset()
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			flush()
			cur = &Section{
				ID:    fmt.Sprintf("section-%d", len(sections)),
				Title: strings.TrimSpace(strings.TrimLeft(line, "#")),
			}
		} else if cur == nil {
			cur = &Section{ID: "section-0"}
		}
		buf.WriteString(line)
	}
	flush()

	return sections
}
