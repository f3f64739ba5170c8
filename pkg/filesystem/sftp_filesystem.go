package filesystem

import (
	"fmt"
	"os"
	"path"
)

// DefaultPoolSize is the number of SFTP sessions opened per connection.
const DefaultPoolSize = 2

// SFTPFileSystem implements FileSystem for SFTP connections.
type SFTPFileSystem struct {
	pool *SFTPClientPool
}

// NewSFTPFileSystem creates a new SFTP filesystem using an established connection.
// A poolSize of 0 selects DefaultPoolSize.
func NewSFTPFileSystem(conn *SFTPConnection, poolSize int) (*SFTPFileSystem, error) {
	if poolSize == 0 {
		poolSize = DefaultPoolSize
	}

	pool, err := NewSFTPClientPool(conn.SSHClient(), poolSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create SFTP client pool: %w", err)
	}

	return &SFTPFileSystem{pool: pool}, nil
}

// Close closes the SFTP client pool and releases all resources.
func (fs *SFTPFileSystem) Close() error {
	if fs.pool != nil {
		return fs.pool.Close()
	}

	return nil
}

// List reads the remote directory on a pooled client. Entries carry lstat metadata.
func (fs *SFTPFileSystem) List(dir string) (FileScanner, error) {
	client, err := fs.pool.Acquire()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire SFTP client: %w", err)
	}
	defer fs.pool.Release(client)

	infos, err := client.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read remote directory %s: %w", dir, err)
	}

	files := make([]FileInfo, 0, len(infos))
	for _, info := range infos {
		// SFTP always uses forward slashes, so path rather than filepath.
		files = append(files, newFileInfo(path.Join(dir, info.Name()), info))
	}

	return newSliceScanner(files), nil
}

// Stat returns file information for a remote file.
func (fs *SFTPFileSystem) Stat(name string) (os.FileInfo, error) {
	client, err := fs.pool.Acquire()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire SFTP client: %w", err)
	}
	defer fs.pool.Release(client)

	info, err := client.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("failed to stat remote file %s: %w", name, err)
	}

	return info, nil
}
