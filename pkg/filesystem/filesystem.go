// Package filesystem provides the directory-listing collaborator used by the scanner,
// with local, SFTP, go-billy and in-memory implementations.
package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileSystem is an interface that abstracts the filesystem operations a directory scan needs.
// This allows for dependency injection and testing with mock implementations.
type FileSystem interface {
	// List opens a single-level listing of the directory at path.
	// The returned scanner must be closed by the caller.
	List(path string) (FileScanner, error)

	// Stat returns file information for path.
	Stat(path string) (os.FileInfo, error)
}

// RealFileSystem implements FileSystem using the os package.
type RealFileSystem struct {
	batchSize int
}

// NewRealFileSystem creates a new RealFileSystem instance.
func NewRealFileSystem() *RealFileSystem {
	return &RealFileSystem{batchSize: defaultBatchSize}
}

// List opens the directory and returns a scanner that reads it lazily in batches.
func (fs *RealFileSystem) List(path string) (FileScanner, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", path, err)
	}

	batch := fs.batchSize
	if batch <= 0 {
		batch = defaultBatchSize
	}

	return &realFileScanner{dir: dir, root: path, batchSize: batch}, nil
}

// Stat returns file information.
func (fs *RealFileSystem) Stat(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return info, nil
}

const defaultBatchSize = 128

// realFileScanner streams directory entries from an open *os.File.
type realFileScanner struct {
	dir       *os.File
	root      string
	batchSize int
	pending   []os.DirEntry
	err       error
	done      bool
	closed    bool
}

// Next advances to the next entry and returns its info.
func (s *realFileScanner) Next() (FileInfo, bool) {
	if s.err != nil || s.closed {
		return FileInfo{}, false
	}

	for len(s.pending) == 0 {
		if s.done {
			return FileInfo{}, false
		}

		s.fill()

		if s.err != nil {
			return FileInfo{}, false
		}
	}

	entry := s.pending[0]
	s.pending = s.pending[1:]

	// Info is an lstat; an entry removed since the directory was read fails here.
	info, err := entry.Info()
	if err != nil {
		s.err = fmt.Errorf("failed to stat %s: %w", filepath.Join(s.root, entry.Name()), err)
		return FileInfo{}, false
	}

	return newFileInfo(filepath.Join(s.root, info.Name()), info), true
}

// Err returns any error that occurred during scanning.
func (s *realFileScanner) Err() error {
	return s.err
}

// Close releases the directory handle. It is safe to call more than once.
func (s *realFileScanner) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	err := s.dir.Close()
	if err != nil {
		return fmt.Errorf("failed to close directory %s: %w", s.root, err)
	}

	return nil
}

// fill reads the next batch of entries from the directory.
func (s *realFileScanner) fill() {
	entries, err := s.dir.ReadDir(s.batchSize)
	s.pending = entries

	if errors.Is(err, io.EOF) {
		s.done = true
		return
	}

	if err != nil {
		s.err = fmt.Errorf("failed to read directory %s: %w", s.root, err)
	}
}
