package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"syscall"
	"time"
)

// MockDirSize is the size reported for mock directories, the block size a local
// filesystem typically reports.
const MockDirSize = 4096

// MockFileSystem is an in-memory filesystem implementation for testing.
// Directory listings enumerate children in the order they were added.
type MockFileSystem struct {
	mu          sync.RWMutex
	files       map[string]*mockFile
	order       []string
	listErrors  map[string]error
	entryErrors map[string]error
}

// mockFile represents a file in the mock filesystem.
type mockFile struct {
	size    int64
	modTime time.Time
	isDir   bool
	perm    os.FileMode
}

// mockFileInfo implements os.FileInfo for mock files.
type mockFileInfo struct {
	name    string
	size    int64
	modTime time.Time
	isDir   bool
	perm    os.FileMode
}

func (fi *mockFileInfo) Name() string       { return fi.name }
func (fi *mockFileInfo) Size() int64        { return fi.size }
func (fi *mockFileInfo) Mode() os.FileMode  { return fi.perm }
func (fi *mockFileInfo) ModTime() time.Time { return fi.modTime }
func (fi *mockFileInfo) IsDir() bool        { return fi.isDir }
func (fi *mockFileInfo) Sys() interface{}   { return nil }

// NewMockFileSystem creates a new in-memory filesystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:       make(map[string]*mockFile),
		listErrors:  make(map[string]error),
		entryErrors: make(map[string]error),
	}
}

// List returns a scanner over the direct children of path.
// Children are snapshotted by name when the listing opens and looked up again as
// the scan reaches them, so entries removed mid-scan fail like a real lstat would.
func (fs *MockFileSystem) List(path string) (FileScanner, error) {
	path = filepath.Clean(path)

	fs.mu.RLock()
	defer fs.mu.RUnlock()

	if err, failed := fs.listErrors[path]; failed {
		return nil, fmt.Errorf("failed to open directory %s: %w", path, err)
	}

	dir, exists := fs.files[path]
	if !exists {
		return nil, fmt.Errorf("failed to open directory %s: %w", path,
			&os.PathError{Op: "open", Path: path, Err: os.ErrNotExist})
	}

	if !dir.isDir {
		return nil, fmt.Errorf("failed to open directory %s: %w", path,
			&os.PathError{Op: "readdirent", Path: path, Err: syscall.ENOTDIR})
	}

	children := make([]string, 0)
	for _, p := range fs.order {
		if p != path && filepath.Dir(p) == path {
			children = append(children, p)
		}
	}

	return &mockFileScanner{fs: fs, root: path, children: children, index: -1}, nil
}

// Stat returns file information.
func (fs *MockFileSystem) Stat(path string) (os.FileInfo, error) {
	path = filepath.Clean(path)

	fs.mu.RLock()
	defer fs.mu.RUnlock()

	return fs.statLocked(path)
}

func (fs *MockFileSystem) statLocked(path string) (os.FileInfo, error) {
	if err, failed := fs.entryErrors[path]; failed {
		return nil, &os.PathError{Op: "lstat", Path: path, Err: err}
	}

	file, exists := fs.files[path]
	if !exists {
		return nil, &os.PathError{Op: "lstat", Path: path, Err: os.ErrNotExist}
	}

	return &mockFileInfo{
		name:    filepath.Base(path),
		size:    file.size,
		modTime: file.modTime,
		isDir:   file.isDir,
		perm:    file.perm,
	}, nil
}

// Remove removes a file or empty directory.
func (fs *MockFileSystem) Remove(path string) error {
	path = filepath.Clean(path)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	file, exists := fs.files[path]
	if !exists {
		return &os.PathError{Op: "remove", Path: path, Err: os.ErrNotExist}
	}

	if file.isDir {
		for p := range fs.files {
			if p != path && filepath.Dir(p) == path {
				return &os.PathError{Op: "remove", Path: path, Err: syscall.ENOTEMPTY}
			}
		}
	}

	delete(fs.files, path)

	for i, p := range fs.order {
		if p == path {
			fs.order = append(fs.order[:i], fs.order[i+1:]...)
			break
		}
	}

	return nil
}

// Chtimes changes the modification time of an entry.
func (fs *MockFileSystem) Chtimes(path string, _, mtime time.Time) error {
	path = filepath.Clean(path)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	file, exists := fs.files[path]
	if !exists {
		return &os.PathError{Op: "chtimes", Path: path, Err: os.ErrNotExist}
	}

	file.modTime = mtime

	return nil
}

// Helper methods for testing

// AddFile adds a file of the given size. Missing parent directories are created.
func (fs *MockFileSystem) AddFile(path string, size int64, modTime time.Time) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	path = filepath.Clean(path)
	fs.addParentsLocked(filepath.Dir(path), modTime)
	fs.putLocked(path, &mockFile{size: size, modTime: modTime, perm: 0o644})
}

// AddDir adds a directory of MockDirSize bytes. Missing parent directories are created.
func (fs *MockFileSystem) AddDir(path string, modTime time.Time) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	path = filepath.Clean(path)
	fs.addParentsLocked(filepath.Dir(path), modTime)
	fs.putLocked(path, &mockFile{size: MockDirSize, modTime: modTime, isDir: true, perm: 0o755})
}

// FailList makes List(path) fail with err.
func (fs *MockFileSystem) FailList(path string, err error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.listErrors[filepath.Clean(path)] = err
}

// FailEntry makes every lookup of path fail with err, including when a listing reaches it.
func (fs *MockFileSystem) FailEntry(path string, err error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.entryErrors[filepath.Clean(path)] = err
}

// Exists checks if a path exists in the mock filesystem.
func (fs *MockFileSystem) Exists(path string) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	_, exists := fs.files[filepath.Clean(path)]

	return exists
}

// ListFiles returns all paths in the mock filesystem, sorted.
func (fs *MockFileSystem) ListFiles() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	paths := make([]string, 0, len(fs.files))
	for p := range fs.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	return paths
}

// addParentsLocked creates missing ancestors of dir. Assumes the lock is held.
func (fs *MockFileSystem) addParentsLocked(dir string, modTime time.Time) {
	if _, exists := fs.files[dir]; exists {
		return
	}

	parent := filepath.Dir(dir)
	if parent != dir {
		fs.addParentsLocked(parent, modTime)
	}

	fs.putLocked(dir, &mockFile{size: MockDirSize, modTime: modTime, isDir: true, perm: 0o755})
}

// putLocked stores an entry, keeping its original position when it is replaced.
func (fs *MockFileSystem) putLocked(path string, file *mockFile) {
	if _, exists := fs.files[path]; !exists {
		fs.order = append(fs.order, path)
	}

	fs.files[path] = file
}

// mockFileScanner implements FileScanner for MockFileSystem.
type mockFileScanner struct {
	fs       *MockFileSystem
	root     string
	children []string
	index    int
	err      error
	closed   bool
}

// Next advances to the next entry and returns its info.
func (s *mockFileScanner) Next() (FileInfo, bool) {
	if s.err != nil || s.closed {
		return FileInfo{}, false
	}

	s.index++
	if s.index >= len(s.children) {
		return FileInfo{}, false
	}

	path := s.children[s.index]

	s.fs.mu.RLock()
	info, err := s.fs.statLocked(path)
	s.fs.mu.RUnlock()

	if err != nil {
		s.err = fmt.Errorf("failed to stat %s: %w", path, err)
		return FileInfo{}, false
	}

	return newFileInfo(path, info), true
}

// Err returns any error that occurred during scanning.
func (s *mockFileScanner) Err() error {
	return s.err
}

// Close releases the listing.
func (s *mockFileScanner) Close() error {
	s.closed = true
	return nil
}
