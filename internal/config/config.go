// Package config handles application configuration and command-line argument parsing.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexflint/go-arg"

	"github.com/joe/dirmonitor/internal/dirscan"
	"github.com/joe/dirmonitor/pkg/filesystem"
)

// Command identifies the subcommand to run
type Command int

const (
	// CommandList - print the entries of the directory
	CommandList Command = iota
	// CommandSize - print the total size of the non-directory entries
	CommandSize
	// CommandRecent - print the most recently modified entry
	CommandRecent
	// CommandBrowse - open the interactive browser
	CommandBrowse
)

// String returns the string representation of Command
func (c Command) String() string {
	switch c {
	case CommandList:
		return "list"
	case CommandSize:
		return "size"
	case CommandRecent:
		return "recent"
	case CommandBrowse:
		return "browse"
	default:
		return "unknown"
	}
}

// FilterArgs are the entry filter flags shared by the scanning subcommands
type FilterArgs struct {
	MinSize int64  `arg:"--min-size" help:"Only entries of at least this many bytes"`
	Prefix  string `arg:"--prefix" help:"Only entries whose name starts with this prefix"`
	Suffix  string `arg:"--suffix" help:"Only entries whose name ends with this suffix"`
	Glob    string `arg:"--glob" help:"Only entries whose name matches this glob (case-insensitive, e.g. '*.{log,txt}')"`
}

// ScanArgs are the arguments of the size and recent subcommands
type ScanArgs struct {
	Path string `arg:"positional" help:"Directory path or sftp://user@host/path (default: .)"`
	FilterArgs
}

// ListArgs are the arguments of the list subcommand
type ListArgs struct {
	ScanArgs
	Long bool `arg:"-l,--long" help:"Show size and modification time"`
}

// BrowseArgs are the arguments of the browse subcommand
type BrowseArgs struct {
	Path string `arg:"positional" help:"Directory path or sftp://user@host/path (default: .)"`
}

// Config holds the application configuration
type Config struct {
	List    *ListArgs   `arg:"subcommand:list" help:"List directory entries"`
	Size    *ScanArgs   `arg:"subcommand:size" help:"Print the total size of the files in a directory"`
	Recent  *ScanArgs   `arg:"subcommand:recent" help:"Print the most recently modified entry"`
	Browse  *BrowseArgs `arg:"subcommand:browse" help:"Browse a directory interactively"`
	Verbose bool        `arg:"-v,--verbose" help:"Enable debug logging"`

	// Resolved by PostProcessConfig
	Command Command    `arg:"-"`
	Path    string     `arg:"-"`
	Filters FilterArgs `arg:"-"`
	Long    bool       `arg:"-"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "Inspect a single directory: list, filter, total size and most recent change"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "dirmonitor 1.0.0"
}

// ParseFlags parses command-line flags and returns configuration
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	arg.MustParse(cfg)

	return PostProcessConfig(cfg)
}

// ParseArgs parses the given arguments (without the program name) and returns configuration
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{}

	parser, err := arg.NewParser(arg.Config{Program: "dirmonitor"}, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build argument parser: %w", err)
	}

	if err := parser.Parse(args); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	return PostProcessConfig(cfg)
}

// PostProcessConfig resolves the chosen subcommand into Command, Path and Filters
// and validates them
func PostProcessConfig(cfg *Config) (*Config, error) {
	switch {
	case cfg.List != nil:
		cfg.Command = CommandList
		cfg.Path = cfg.List.Path
		cfg.Filters = cfg.List.FilterArgs
		cfg.Long = cfg.List.Long
	case cfg.Size != nil:
		cfg.Command = CommandSize
		cfg.Path = cfg.Size.Path
		cfg.Filters = cfg.Size.FilterArgs
	case cfg.Recent != nil:
		cfg.Command = CommandRecent
		cfg.Path = cfg.Recent.Path
		cfg.Filters = cfg.Recent.FilterArgs
	case cfg.Browse != nil:
		cfg.Command = CommandBrowse
		cfg.Path = cfg.Browse.Path
	default:
		// No subcommand: list the current directory
		cfg.Command = CommandList
	}

	if cfg.Path == "" {
		cfg.Path = "."
	}

	if err := ValidatePath(cfg.Path); err != nil {
		return nil, err
	}

	if err := cfg.Filters.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ValidatePath checks the syntax of a path argument. Existence is checked when
// the directory is opened.
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("path is required")
	}

	if _, err := filesystem.ParsePath(path); err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	return nil
}

// ValidateFilePattern validates that a glob pattern is well-formed
func ValidateFilePattern(pattern string) error {
	if pattern == "" {
		return nil
	}

	if !dirscan.ValidGlob(pattern) {
		return fmt.Errorf("invalid glob pattern: %s", pattern)
	}

	return nil
}

// Validate checks the filter flags
func (f FilterArgs) Validate() error {
	if f.MinSize < 0 {
		return fmt.Errorf("--min-size must not be negative, got %d", f.MinSize)
	}

	return ValidateFilePattern(f.Glob)
}

// IsSet reports whether any filter flag was given
func (f FilterArgs) IsSet() bool {
	return f.MinSize > 0 || f.Prefix != "" || f.Suffix != "" || f.Glob != ""
}

// Filter builds the entry filter for the flags, combined with dirscan.All.
// It returns nil when no flag was given.
func (f FilterArgs) Filter() dirscan.Filter {
	if !f.IsSet() {
		return nil
	}

	var filters []dirscan.Filter

	if f.MinSize > 0 {
		filters = append(filters, dirscan.NewSizeFilter(f.MinSize))
	}

	if f.Prefix != "" {
		filters = append(filters, dirscan.NewPrefixFilter(f.Prefix))
	}

	if f.Suffix != "" {
		filters = append(filters, dirscan.NewSuffixFilter(f.Suffix))
	}

	if f.Glob != "" {
		filters = append(filters, dirscan.NewGlobFilter(f.Glob))
	}

	return dirscan.All(filters...)
}

// Describe summarizes the active filters for display, or "" when none are set
func (f FilterArgs) Describe() string {
	var parts []string

	if f.MinSize > 0 {
		parts = append(parts, fmt.Sprintf("size >= %d", f.MinSize))
	}

	if f.Prefix != "" {
		parts = append(parts, fmt.Sprintf("prefix %q", f.Prefix))
	}

	if f.Suffix != "" {
		parts = append(parts, fmt.Sprintf("suffix %q", f.Suffix))
	}

	if f.Glob != "" {
		parts = append(parts, fmt.Sprintf("glob %q", f.Glob))
	}

	return strings.Join(parts, ", ")
}
