package filesystem

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
)

// BillyFileSystem implements FileSystem on top of a go-billy filesystem.
type BillyFileSystem struct {
	fs billy.Filesystem
}

// NewBillyFileSystem wraps an existing billy filesystem.
func NewBillyFileSystem(bfs billy.Filesystem) *BillyFileSystem {
	return &BillyFileSystem{fs: bfs}
}

// NewMemFileSystem returns a BillyFileSystem backed by memfs, and the billy
// filesystem itself so callers can populate it.
func NewMemFileSystem() (*BillyFileSystem, billy.Filesystem) {
	bfs := memfs.New()
	return NewBillyFileSystem(bfs), bfs
}

// NewChrootFileSystem returns a BillyFileSystem rooted at dir on the OS filesystem.
// Paths passed to List and Stat are then relative to dir.
func NewChrootFileSystem(dir string) *BillyFileSystem {
	return NewBillyFileSystem(osfs.New(dir))
}

// List reads the directory through billy.
func (b *BillyFileSystem) List(dir string) (FileScanner, error) {
	infos, err := b.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("billy: readdir %q: %w", dir, err)
	}

	files := make([]FileInfo, 0, len(infos))
	for _, info := range infos {
		files = append(files, newFileInfo(b.fs.Join(dir, info.Name()), info))
	}

	return newSliceScanner(files), nil
}

// Stat returns file information.
func (b *BillyFileSystem) Stat(name string) (os.FileInfo, error) {
	info, err := b.fs.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("billy: stat %q: %w", name, err)
	}

	return info, nil
}
