package filesystem

import (
	"os"
	"time"
)

// FileScanner is an iterator over the direct children of one directory.
// It provides a simple Next pattern for traversing directory contents.
type FileScanner interface {
	// Next advances to the next entry and returns its info.
	// Returns (FileInfo{}, false) when done or on error.
	// Check Err() after Next() returns false to distinguish between end-of-scan and error.
	Next() (FileInfo, bool)

	// Err returns any error that occurred during scanning.
	// Should be checked after Next() returns false.
	Err() error

	// Close releases the listing. Scanners must be closed on every path.
	Close() error
}

// FileInfo contains metadata about one directory entry.
// This is our own type (not os.FileInfo) so that entries are plain immutable values.
type FileInfo struct {
	// Name is the base name of the entry
	Name string

	// Path is the directory path joined with Name
	Path string

	// Size is the entry size in bytes
	Size int64

	// ModTime is the modification time
	ModTime time.Time

	// IsDir indicates if this is a directory
	IsDir bool
}

func newFileInfo(fullPath string, info os.FileInfo) FileInfo {
	return FileInfo{
		Name:    info.Name(),
		Path:    fullPath,
		Size:    info.Size(),
		ModTime: info.ModTime(),
		IsDir:   info.IsDir(),
	}
}

// sliceScanner iterates over a listing that was read in one call.
type sliceScanner struct {
	files  []FileInfo
	index  int
	closed bool
}

func newSliceScanner(files []FileInfo) *sliceScanner {
	return &sliceScanner{
		files: files,
		index: -1,
	}
}

// Next advances to the next entry and returns its info.
func (s *sliceScanner) Next() (FileInfo, bool) {
	if s.closed {
		return FileInfo{}, false
	}

	s.index++
	if s.index >= len(s.files) {
		return FileInfo{}, false
	}

	return s.files[s.index], true
}

// Err always returns nil; the listing was read before the scanner was created.
func (s *sliceScanner) Err() error {
	return nil
}

// Close releases the listing.
func (s *sliceScanner) Close() error {
	s.closed = true
	return nil
}
