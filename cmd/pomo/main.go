package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/pomo/internal/adapter"
	"github.com/mmcdole/pomo/internal/service"
	"github.com/mmcdole/pomo/internal/store"
	"github.com/mmcdole/pomo/internal/tui"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	flags := adapter.Flags()
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if showVersion, _ := flags.GetBool("version"); showVersion {
		fmt.Printf("pomo %s\n", Version)
		return
	}

	if err := run(flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(flags *pflag.FlagSet) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("pomo needs an interactive terminal")
	}

	// Load configuration
	cfg, err := adapter.LoadConfig(flags)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting pomo", "version", Version, "variant", cfg.UI.Variant)

	journal, err := store.NewJournalStore(cfg.Journal.Path)
	if err != nil {
		// The timer works without history; fall back to memory
		logger.Warn("journal unavailable, keeping history in memory", "error", err, "path", cfg.Journal.Path)
		journal, _ = store.NewJournalStore("")
	}
	defer journal.Close()

	session := service.NewSessionService(journal, logger)

	model := tui.NewModel(tui.Options{
		Variant:  cfg.UI.Variant,
		Start:    cfg.StartSettings(),
		Session:  session,
		ShowHelp: cfg.UI.ShowHelp,
		Logger:   logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI", "session", session.ID())

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
