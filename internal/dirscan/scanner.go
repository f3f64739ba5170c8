// Package dirscan inspects the direct children of a single directory: listing,
// filtering, total size and most recent modification.
//
// A Scanner is validated once, when it is created. Every operation opens its
// own listing, closes it on all exit paths and keeps no state between calls,
// so a Scanner may be shared by goroutines. Any filesystem failure during an
// operation aborts it with an *IOError and no partial result.
package dirscan

import (
	"iter"

	"github.com/joe/dirmonitor/pkg/filesystem"
)

// Entry is one direct child of the scanned directory.
type Entry = filesystem.FileInfo

// Scanner inspects one directory.
type Scanner struct {
	fs   filesystem.FileSystem
	path string
}

// New validates that path is a readable directory on fsys and returns a Scanner for it.
// It fails with a *NotADirectoryError otherwise.
func New(fsys filesystem.FileSystem, path string) (*Scanner, error) {
	if path == "" {
		return nil, &NotADirectoryError{Path: path}
	}

	info, err := fsys.Stat(path)
	if err != nil {
		return nil, &NotADirectoryError{Path: path, Err: err}
	}

	if !info.IsDir() {
		return nil, &NotADirectoryError{Path: path}
	}

	// Opening the listing is the readability check.
	listing, err := fsys.List(path)
	if err != nil {
		return nil, &NotADirectoryError{Path: path, Err: err}
	}

	_ = listing.Close()

	return &Scanner{fs: fsys, path: path}, nil
}

// NewLocal returns a Scanner over a directory on the local filesystem.
func NewLocal(path string) (*Scanner, error) {
	return New(filesystem.NewRealFileSystem(), path)
}

// Path returns the directory this Scanner inspects.
func (s *Scanner) Path() string {
	return s.path
}

// List returns every direct child of the directory, in the filesystem's order.
// Each iteration re-opens the listing. On failure the sequence yields a single
// (Entry{}, *IOError) pair and stops.
func (s *Scanner) List() iter.Seq2[Entry, error] {
	return s.ListFiltered(nil)
}

// ListFiltered is List restricted to entries matching f. The filter is called
// once for every entry. A nil filter matches everything.
func (s *Scanner) ListFiltered(f Filter) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		listing, err := s.fs.List(s.path)
		if err != nil {
			yield(Entry{}, &IOError{Op: "list", Path: s.path, Err: err})
			return
		}
		defer func() { _ = listing.Close() }()

		for entry, ok := listing.Next(); ok; entry, ok = listing.Next() {
			if !matches(f, entry) {
				continue
			}

			if !yield(entry, nil) {
				return
			}
		}

		if err := listing.Err(); err != nil {
			yield(Entry{}, &IOError{Op: "read", Path: s.path, Err: err})
		}
	}
}

// ForEachMatching calls action once for each entry matching f, in enumeration order.
// A nil filter matches everything.
func (s *Scanner) ForEachMatching(f Filter, action Action) error {
	for entry, err := range s.ListFiltered(f) {
		if err != nil {
			return err
		}

		if err := action.Perform(entry); err != nil {
			return err
		}
	}

	return nil
}

// TotalSize returns the summed size of all entries that are not directories.
func (s *Scanner) TotalSize() (int64, error) {
	return s.TotalSizeFiltered(nil)
}

// TotalSizeFiltered returns the summed size of the non-directory entries matching f.
func (s *Scanner) TotalSizeFiltered(f Filter) (int64, error) {
	var sum SizeAccumulator

	if err := s.ForEachMatching(All(Files(), f), &sum); err != nil {
		return 0, err
	}

	return sum.Total, nil
}

// MostRecentModified returns the entry with the latest modification time.
// Ties go to the entry enumerated first. The bool is false for an empty directory.
func (s *Scanner) MostRecentModified() (Entry, bool, error) {
	return s.MostRecentModifiedFiltered(nil)
}

// MostRecentModifiedFiltered is MostRecentModified over the entries matching f.
func (s *Scanner) MostRecentModifiedFiltered(f Filter) (Entry, bool, error) {
	var tracker RecentTracker

	if err := s.ForEachMatching(f, &tracker); err != nil {
		return Entry{}, false, err
	}

	entry, found := tracker.Result()

	return entry, found, nil
}
