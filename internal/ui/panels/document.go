package panels

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"

	"panefind/internal/eventbus"
	"panefind/internal/surface"
	"panefind/internal/ui/views"
)

// Document is a file-backed panel on the fallback search path: it exposes no
// structured content, so search extracts text from its surface tree and
// splices highlight markers into it. The backing file is watched; an external
// edit publishes DocumentChanged, the program loop reloads the content in
// response, and the resulting PanelContentChanged is what lets an open
// session re-apply the markers the rebuild destroyed. The watcher goroutine
// never touches the surface tree itself.
type Document struct {
	base
	bus     eventbus.EventBus
	path    string
	watcher *fsnotify.Watcher
}

// NewDocument creates a document panel holding the given text, with no file
// backing.
func NewDocument(id, title, text string, bus eventbus.EventBus, styles *views.Styles) *Document {
	d := &Document{base: newBase(id, title, styles), bus: bus}
	d.setContent(text)
	return d
}

// OpenDocument creates a document panel backed by the file at path and starts
// watching it for external changes.
func OpenDocument(id, path string, bus eventbus.EventBus, styles *views.Styles) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	d := &Document{base: newBase(id, path, styles), bus: bus, path: path}
	d.setContent(string(data))

	if err := d.watch(); err != nil {
		log.Printf("Document %s: watch failed: %v", id, err)
	}
	return d, nil
}

// Reload re-reads the backing file into the surface tree and publishes
// PanelContentChanged. A no-op for documents without a file. Must be called
// from the goroutine that owns the tree.
func (d *Document) Reload() error {
	if d.path == "" {
		return nil
	}
	data, err := os.ReadFile(d.path)
	if err != nil {
		return fmt.Errorf("failed to reload document: %w", err)
	}
	d.setContent(string(data))
	d.bus.Publish(eventbus.PanelContentChangedEvent{PanelID: d.id})
	return nil
}

// Close stops the file watcher.
func (d *Document) Close() error {
	if d.watcher == nil {
		return nil
	}
	return d.watcher.Close()
}

// setContent rebuilds the tree as one line element per content line. The
// mounted find bar overlay, if any, survives the rebuild.
func (d *Document) setContent(text string) {
	overlays := retainOverlays(d.root)

	for _, chunk := range strings.SplitAfter(text, "\n") {
		if chunk == "" {
			continue
		}
		line := surface.NewElement(surface.TagLine)
		line.Append(surface.NewText(chunk))
		d.root.Append(line)
	}

	for _, o := range overlays {
		d.root.Append(o)
	}
}

func (d *Document) watch() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(d.path); err != nil {
		w.Close()
		return fmt.Errorf("failed to watch %s: %w", d.path, err)
	}
	d.watcher = w

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				// report only; the reload rewrites the surface tree and has
				// to happen where the tree is read
				d.bus.Publish(eventbus.DocumentChangedEvent{PanelID: d.id})
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("Document %s: watcher error: %v", d.id, err)
			}
		}
	}()
	return nil
}
