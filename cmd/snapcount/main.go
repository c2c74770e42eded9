package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/snapcount/snapcount/internal/config"
	"github.com/snapcount/snapcount/internal/history"
	"github.com/snapcount/snapcount/internal/log"
	"github.com/snapcount/snapcount/internal/source"
	"github.com/snapcount/snapcount/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	var demo bool
	var watchDir string
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&demo, "demo", false, "use the interval demo source instead of watching a directory")
	flag.StringVar(&watchDir, "dir", "", "directory to watch for screenshots (overrides config)")
	flag.Parse()

	if showVersion {
		fmt.Printf("snapcount %s\n", Version)
		return
	}

	if err := run(demo, watchDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(demo bool, watchDir string) error {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting snapcount", "version", Version)

	// The TUI owns the terminal; refuse to start without one.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("snapcount must be run in a terminal")
	}

	// Flag overrides
	if watchDir != "" {
		cfg.Watch.Dir = watchDir
	}
	sourceKind := cfg.Watch.Source
	if demo {
		sourceKind = source.KindInterval
	}

	// Create the event source
	src, err := source.New(source.Options{
		Kind:       sourceKind,
		Dir:        cfg.Watch.Dir,
		Extensions: cfg.Watch.Extensions,
		Period:     time.Duration(cfg.Watch.IntervalMS) * time.Millisecond,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create event source: %w", err)
	}

	// Open session history; a broken store degrades to no persistence
	store, err := history.Open(cfg.History.File)
	if err != nil {
		logger.Warn("history store unavailable", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	// Create TUI model
	model := tui.New(cfg, src, store, logger)
	if store != nil {
		if total, err := store.LifetimeTotal(); err == nil {
			model.SetLifetime(total)
		}
	}

	started := time.Now()

	// Run the TUI
	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI", "source", sourceKind, "dir", cfg.Watch.Dir)

	final, err := p.Run()
	if err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	// Record the finished session
	if store != nil {
		if m, ok := final.(tui.Model); ok && m.Count() > 0 {
			sess := history.Session{
				Started: started,
				Ended:   time.Now(),
				Source:  sourceKind,
				Count:   m.Count(),
			}
			if err := store.Record(sess); err != nil {
				logger.Warn("failed to record session", "error", err)
			}
		}
	}

	logger.Info("shutting down")
	return nil
}
