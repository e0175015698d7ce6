package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/dominoscore/internal/config"
	"github.com/lox/dominoscore/internal/location"
	"github.com/lox/dominoscore/internal/tui"
)

type PlayCmd struct {
	LogLevel         string `short:"l" help:"Log level (overrides config)"`
	LogFile          string `help:"Log file path (overrides config)"`
	NoColor          bool   `help:"Disable colors"`
	LocationProvider string `help:"Where fetch gets coordinates: http, static or none (overrides config)"`
}

func (c *PlayCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if c.LogLevel != "" {
		cfg.UI.LogLevel = c.LogLevel
	}
	if c.LogFile != "" {
		cfg.UI.LogFile = c.LogFile
	}
	if c.NoColor {
		cfg.UI.Color = "never"
	}
	if c.LocationProvider != "" {
		cfg.Location.Provider = c.LocationProvider
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file
	logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	logger := newLogger(logFile, cfg.UI.LogLevel)
	applyColorMode(cfg.UI.Color)

	logger.Info("Starting dominoscore",
		"version", version,
		"config", cli.Config,
		"location", cfg.Location.Provider)

	helper := location.NewHelper(cfg.Locator(), quartz.NewReal(), cfg.LocationTimeout(), logger)
	model := tui.NewModel(logger, tui.Options{
		Locator: helper,
		Names:   cfg.Game.Names,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	logger.Info("Scorekeeper exited", "finished_games", len(model.History()))
	return nil
}

func newLogger(out *os.File, level string) *log.Logger {
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
	})

	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	logger.SetLevel(parsed)
	return logger
}

// applyColorMode forces the lipgloss color profile for always/never,
// leaving terminal detection in place for auto
func applyColorMode(mode string) {
	switch mode {
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}
