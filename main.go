package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"panefind/internal/config"
	"panefind/internal/eventbus"
	"panefind/internal/search"
	"panefind/internal/session"
	"panefind/internal/shell"
	"panefind/internal/ui"
	"panefind/internal/ui/panels"
	"panefind/internal/ui/views"
)

func main() {
	var configPath, logPath string
	flag.StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/panefind/config.toml)")
	flag.StringVar(&logPath, "log", "panefind.log", "Path to log file")
	flag.Parse()

	// Set up logging; the TUI owns stdout, so logs go to a file
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg := loadConfig(configSvc, configPath)

	styles := views.NewStyles()

	// Build the workbench: the named documents (or a welcome document), the
	// structured guide outline, and the event console
	bench := shell.New(bus)

	if flag.NArg() > 0 {
		for i, path := range flag.Args() {
			doc, err := panels.OpenDocument(fmt.Sprintf("doc-%d", i), path, bus, styles)
			if err != nil {
				fmt.Printf("Error opening %s: %v\n", path, err)
				os.Exit(1)
			}
			defer doc.Close()
			bench.Add(doc)
		}
	} else {
		bench.Add(panels.NewDocument("doc-0", "welcome", welcomeText, bus, styles))
	}
	bench.Add(panels.NewOutline("outline", "guide", guideText, styles))
	bench.Add(panels.NewConsole("console", bus, styles, cfg.UISettings.ConsoleLimit))

	// Wire the search session to the workbench
	sess := session.NewService(bus, session.Settings{
		QueryDebounce:    time.Duration(cfg.Debounce.QueryMillis) * time.Millisecond,
		MutationDebounce: time.Duration(cfg.Debounce.MutationMillis) * time.Millisecond,
	})
	sess.SeedOptions(search.Options{
		CaseSensitive: cfg.Search.CaseSensitive,
		UseRegex:      cfg.Search.UseRegex,
		UseWildcard:   cfg.Search.UseWildcard,
	})
	sess.SetFocusResolver(func() session.Panel {
		if p := bench.Focused(); p != nil {
			return p
		}
		return nil
	})

	// Create the UI model and program
	uiModel := ui.NewModel(cfg, bus, bench, sess, styles)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward bus events and session snapshots into the program loop
	msgChan := make(chan tea.Msg, 100)
	forward := func(msg tea.Msg) {
		select {
		case msgChan <- msg:
		default:
			log.Println("Message channel full, dropping message")
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventFocusChanged,
		eventbus.EventDocumentChanged,
		eventbus.EventPanelContentChanged,
		eventbus.EventPanelClosed,
	} {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			forward(ui.EventMsg{Event: e})
		})
	}
	unsubscribe := sess.Subscribe(func(st session.State) {
		forward(ui.SearchStateMsg{State: st})
	})
	defer unsubscribe()

	// debounced search work mutates panel surfaces, so it runs inside the
	// program loop rather than on the timer goroutines
	sess.SetDispatcher(func(fn func()) {
		forward(ui.SessionWorkMsg{Run: fn})
	})

	go func() {
		for msg := range msgChan {
			p.Send(msg)
		}
	}()

	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Persist the session's last options as the next run's defaults
	opts := sess.LastOptions()
	cfg.Search = config.SearchSettings{
		CaseSensitive: opts.CaseSensitive,
		UseRegex:      opts.UseRegex,
		UseWildcard:   opts.UseWildcard,
	}
	saveConfig(configSvc, cfg, configPath)
}

func loadConfig(svc config.ConfigService, path string) *config.Config {
	if path == "" {
		cfg, err := svc.Load()
		if err != nil {
			log.Printf("Failed to load config: %v", err)
			return config.DefaultConfig()
		}
		return cfg
	}
	cfg, err := svc.LoadFromPath(path)
	if err != nil {
		log.Printf("Failed to load config from %s: %v", path, err)
		return config.DefaultConfig()
	}
	return cfg
}

func saveConfig(svc config.ConfigService, cfg *config.Config, path string) {
	var err error
	if path == "" {
		err = svc.Save(cfg)
	} else {
		err = svc.SaveToPath(cfg, path)
	}
	if err != nil {
		log.Printf("Failed to save config: %v", err)
	}
}

const welcomeText = `panefind

This panel is an ordinary document: search extracts its rendered text and
splices highlight markers straight into it. Press / to try it.

Some text to find things in: the quick brown fox jumps over the lazy dog.
The café on the corner serves crêpes; search for "cafe" or "crepes" with
case sensitivity off and the accented words still match.

Wildcards: try "q*k" or "l?zy". Regular expressions: try "[aeiou]{2}".

Pass file paths on the command line to open them here instead. Files are
watched; editing one outside panefind reloads the panel, and an open search
restores its highlights afterwards.
`

const guideText = `# Panels
The workbench shows its panels side by side; tab moves focus. The find
command always targets the focused panel, and switching focus away closes
the session.

# Documents
Document panels hold plain text, from a file or built in. They expose no
structured content, so search scans their rendered surface and highlights by
splicing marker nodes into it.

# This outline
The outline is a structured panel. Each of these sections is one searchable
block, collapsed or not, and the panel owns its own match presentation:
revealing a match expands the section that holds it. Up and down move the
cursor; enter collapses or expands.

# Console
The console logs workbench events as they happen. Its content grows while a
search is open, which exercises the highlight self-healing path: markers
destroyed by the re-render come back on their own.
`
