// Package main is the entry point for the dirmonitor application.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/joe/dirmonitor/internal/app"
	"github.com/joe/dirmonitor/internal/config"
	"github.com/joe/dirmonitor/internal/logging"
	"github.com/joe/dirmonitor/internal/tui/shared"
)

func main() {
	// Parse configuration
	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stderr, cfg.Verbose)

	runner := app.New(cfg, os.Stdout, logger, app.WithBrowser(browse))
	if err := runner.Run(); err != nil {
		logger.Debug().Err(err).Str("path", cfg.Path).Msg("command failed")
		fmt.Fprint(os.Stderr, shared.RenderEnrichedError(err, cfg.Path, 0))
		os.Exit(1)
	}
}

// browse runs the browser, using the alt screen only if stdout is a TTY
func browse(model tea.Model) error {
	var opts []tea.ProgramOption
	if term.IsTerminal(int(os.Stdout.Fd())) {
		opts = append(opts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}

	return nil
}
