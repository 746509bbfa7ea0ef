package panels

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"panefind/internal/eventbus"
	"panefind/internal/surface"
	"panefind/internal/ui/views"
)

func TestDocumentSurfaceTextMatchesContent(t *testing.T) {
	bus := eventbus.New()
	d := NewDocument("doc", "t", "one\ntwo\nthree\n", bus, views.NewStyles())
	require.Equal(t, "one\ntwo\nthree\n", surface.Text(d.Surface()))
}

func TestDocumentReloadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("before\n"), 0644))

	bus := eventbus.New()
	d, err := OpenDocument("doc", path, bus, views.NewStyles())
	require.NoError(t, err)
	defer d.Close()
	require.Equal(t, "before\n", surface.Text(d.Surface()))

	var changed int
	bus.Subscribe(eventbus.EventPanelContentChanged, func(e eventbus.DomainEvent) {
		if evt, ok := e.(eventbus.PanelContentChangedEvent); ok && evt.PanelID == "doc" {
			changed++
		}
	})

	require.NoError(t, os.WriteFile(path, []byte("after\nlonger\n"), 0644))
	require.NoError(t, d.Reload())
	require.Equal(t, "after\nlonger\n", surface.Text(d.Surface()))
	require.Equal(t, 1, changed, "a reload announces the rebuilt content")
}

func TestDocumentWatcherReportsWithoutReloading(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("before\n"), 0644))

	bus := eventbus.New()
	d, err := OpenDocument("doc", path, bus, views.NewStyles())
	require.NoError(t, err)
	defer d.Close()

	changed := make(chan string, 1)
	bus.Subscribe(eventbus.EventDocumentChanged, func(e eventbus.DomainEvent) {
		if evt, ok := e.(eventbus.DocumentChangedEvent); ok {
			select {
			case changed <- evt.PanelID:
			default:
			}
		}
	})

	require.NoError(t, os.WriteFile(path, []byte("after\n"), 0644))

	select {
	case id := <-changed:
		require.Equal(t, "doc", id)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher reported no change")
	}

	// the tree is left alone until whoever owns it reloads
	require.Equal(t, "before\n", surface.Text(d.Surface()))
	require.NoError(t, d.Reload())
	require.Equal(t, "after\n", surface.Text(d.Surface()))
}

func TestOpenDocumentMissingFile(t *testing.T) {
	bus := eventbus.New()
	_, err := OpenDocument("doc", filepath.Join(t.TempDir(), "absent.txt"), bus, views.NewStyles())
	require.Error(t, err)
}

func TestDocumentContentRebuildKeepsOverlay(t *testing.T) {
	bus := eventbus.New()
	d := NewDocument("doc", "t", "body\n", bus, views.NewStyles())

	overlay := surface.NewElement(surface.TagOverlay)
	overlay.Append(surface.NewText("find body 1/1"))
	d.Surface().Append(overlay)

	d.setContent("rebuilt\n")
	require.Equal(t, d.Surface(), overlay.Parent)
	require.Equal(t, "rebuilt\n", surface.Text(d.Surface()))
}

func TestConsoleAppendsAndTrims(t *testing.T) {
	bus := eventbus.New()
	c := NewConsole("console", bus, views.NewStyles(), 3)

	var changed int
	bus.Subscribe(eventbus.EventPanelContentChanged, func(e eventbus.DomainEvent) {
		if evt, ok := e.(eventbus.PanelContentChangedEvent); ok && evt.PanelID == "console" {
			changed++
		}
	})

	for i := 0; i < 5; i++ {
		c.Append("entry")
	}
	require.Equal(t, 5, changed)

	lines := 0
	c.Surface().Walk(func(n *surface.Node) bool {
		if n.Kind == surface.KindElement && n.Tag == surface.TagLine {
			lines++
			return false
		}
		return true
	})
	require.Equal(t, 3, lines)
}

func TestConsoleLogsFocusChanges(t *testing.T) {
	bus := eventbus.New()
	c := NewConsole("console", bus, views.NewStyles(), 10)

	bus.Publish(eventbus.FocusChangedEvent{PanelID: "doc-0"})
	require.Contains(t, surface.Text(c.Surface()), "focus -> doc-0")
}
