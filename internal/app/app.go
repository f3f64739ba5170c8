// Package app runs the dirmonitor subcommands against a configured directory.
package app

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/joe/dirmonitor/internal/config"
	"github.com/joe/dirmonitor/internal/dirscan"
	"github.com/joe/dirmonitor/internal/tui"
	"github.com/joe/dirmonitor/internal/tui/shared"
	"github.com/joe/dirmonitor/pkg/filesystem"
)

// Opener resolves a path argument to a filesystem, the path to use on it and an
// optional closer. filesystem.CreateFileSystem is the default.
type Opener func(path string) (filesystem.FileSystem, string, func(), error)

// BrowseFunc runs the interactive browser until the user quits.
type BrowseFunc func(model tea.Model) error

// Option configures a Runner.
type Option func(*Runner)

// WithOpener replaces the filesystem opener.
func WithOpener(open Opener) Option {
	return func(r *Runner) { r.open = open }
}

// WithBrowser replaces the function that runs the browser.
func WithBrowser(browse BrowseFunc) Option {
	return func(r *Runner) { r.browse = browse }
}

// Runner executes one configured command.
type Runner struct {
	cfg    *config.Config
	out    io.Writer
	logger *zerolog.Logger
	open   Opener
	browse BrowseFunc
}

// New creates a Runner writing its results to out.
func New(cfg *config.Config, out io.Writer, logger *zerolog.Logger, opts ...Option) *Runner {
	r := &Runner{
		cfg:    cfg,
		out:    out,
		logger: logger,
		open:   filesystem.CreateFileSystem,
		browse: runProgram,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run opens the directory and executes the command.
func (r *Runner) Run() error {
	start := time.Now()

	fsys, path, closer, err := r.open(r.cfg.Path)
	if err != nil {
		return err
	}

	if closer != nil {
		defer closer()
	}

	scanner, err := dirscan.New(fsys, path)
	if err != nil {
		return err
	}

	r.logger.Debug().
		Str("command", r.cfg.Command.String()).
		Str("path", r.cfg.Path).
		Str("filters", r.cfg.Filters.Describe()).
		Msg("scan started")

	switch r.cfg.Command {
	case config.CommandList:
		err = r.list(scanner)
	case config.CommandSize:
		err = r.size(scanner)
	case config.CommandRecent:
		err = r.recent(scanner)
	case config.CommandBrowse:
		err = r.browse(tui.NewBrowser(scanner, r.cfg.Path))
	default:
		err = fmt.Errorf("unknown command: %s", r.cfg.Command)
	}

	if err != nil {
		return err
	}

	r.logger.Debug().
		Str("command", r.cfg.Command.String()).
		Dur("elapsed", time.Since(start)).
		Msg("scan finished")

	return nil
}

func (r *Runner) list(scanner *dirscan.Scanner) error {
	format := shared.EntryName
	if r.cfg.Long {
		format = shared.RenderEntryLine
	}

	var counter dirscan.Counter

	err := scanner.ForEachMatching(r.cfg.Filters.Filter(), dirscan.Chain(dirscan.NewPrinter(r.out, format), &counter))
	if err != nil {
		return err
	}

	r.logger.Debug().Int("entries", counter.Count).Msg("listed")

	return nil
}

func (r *Runner) size(scanner *dirscan.Scanner) error {
	total, err := scanner.TotalSizeFiltered(r.cfg.Filters.Filter())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(r.out, "%s %s (%d bytes)\n", shared.RenderLabel("Total:"), shared.FormatBytes(total), total)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func (r *Runner) recent(scanner *dirscan.Scanner) error {
	entry, found, err := scanner.MostRecentModifiedFiltered(r.cfg.Filters.Filter())
	if err != nil {
		return err
	}

	line := shared.RenderWarning("no entries")
	if desc := r.cfg.Filters.Describe(); desc != "" {
		line = shared.RenderWarning("no entries matching " + desc)
	}

	if found {
		line = shared.RenderEntryLine(entry)
	}

	if _, err := fmt.Fprintln(r.out, line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func runProgram(model tea.Model) error {
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}

	return nil
}
