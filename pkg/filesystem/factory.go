package filesystem

import (
	"fmt"
)

// Dialer opens the SSH connection for a remote path. Connect is the default.
type Dialer func(host string, port int, user string) (*SFTPConnection, error)

// CreateFileSystem creates a FileSystem for the given path.
// Returns (filesystem, basePath, closer, error).
// - filesystem: The FileSystem to use for operations
// - basePath: The actual path to use with the filesystem (stripped of URL prefix)
// - closer: A function to call when done (closes SFTP connections), or nil for local
func CreateFileSystem(pathStr string) (FileSystem, string, func(), error) {
	return createFileSystem(pathStr, Connect)
}

func createFileSystem(pathStr string, dial Dialer) (FileSystem, string, func(), error) {
	parsed, err := ParsePath(pathStr)
	if err != nil {
		return nil, "", nil, err
	}

	if !parsed.IsRemote {
		return NewRealFileSystem(), parsed.LocalPath, nil, nil
	}

	conn, err := dial(parsed.Host, parsed.Port, parsed.User)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to connect to %s: %w", parsed.Target(), err)
	}

	sftpFS, err := NewSFTPFileSystem(conn, DefaultPoolSize)
	if err != nil {
		_ = conn.Close()
		return nil, "", nil, err
	}

	closer := func() {
		_ = sftpFS.Close()
		_ = conn.Close()
	}

	return sftpFS, parsed.Path, closer, nil
}
