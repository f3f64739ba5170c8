package dirscan

import (
	"errors"
	"fmt"
)

// ErrNotADirectory matches every *NotADirectoryError via errors.Is.
var ErrNotADirectory = errors.New("not a readable directory")

// NotADirectoryError is returned by New when the path cannot be scanned.
type NotADirectoryError struct {
	Path string
	Err  error // underlying cause, nil when the path exists but is not a directory
}

func (e *NotADirectoryError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s is not a readable directory", e.Path)
	}

	return fmt.Sprintf("%s is not a readable directory: %v", e.Path, e.Err)
}

// Is reports ErrNotADirectory as a match.
func (e *NotADirectoryError) Is(target error) bool {
	return target == ErrNotADirectory //nolint:errorlint // Sentinel identity comparison
}

func (e *NotADirectoryError) Unwrap() error {
	return e.Err
}

// IOError is returned when a filesystem call fails during a scan.
type IOError struct {
	Op   string // operation that failed: "list" or "read"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
