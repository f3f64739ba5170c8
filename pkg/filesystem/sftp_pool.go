package filesystem

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// ErrPoolClosed is returned by Acquire after Close.
var ErrPoolClosed = errors.New("pool is closed")

// SFTPClientPool manages a fixed set of SFTP clients over a single SSH connection.
// It uses a channel-based semaphore pattern so independent listings can run at the
// same time, each on its own client.
type SFTPClientPool struct {
	clients chan *sftp.Client
	size    int
	mu      sync.Mutex // protects closed
	closed  bool
}

// NewSFTPClientPool opens size SFTP sessions on sshClient.
func NewSFTPClientPool(sshClient *ssh.Client, size int) (*SFTPClientPool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("pool size must be greater than 0, got %d", size) //nolint:err113 // Validation error with actual value
	}

	return newClientPool(size, func() (*sftp.Client, error) {
		return sftp.NewClient(sshClient) //nolint:wrapcheck // Wrapped by newClientPool
	})
}

func newClientPool(size int, create func() (*sftp.Client, error)) (*SFTPClientPool, error) {
	pool := &SFTPClientPool{
		clients: make(chan *sftp.Client, size),
		size:    size,
	}

	for i := range size {
		client, err := create()
		if err != nil {
			_ = pool.Close()
			return nil, fmt.Errorf("failed to create client %d/%d: %w", i+1, size, err)
		}
		pool.clients <- client
	}

	return pool, nil
}

// Acquire retrieves an SFTP client from the pool.
// Blocks until a client is available if all clients are currently in use.
func (p *SFTPClientPool) Acquire() (*sftp.Client, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrPoolClosed
	}
	p.mu.Unlock()

	client, ok := <-p.clients
	if !ok {
		return nil, ErrPoolClosed
	}

	return client, nil
}

// Release returns an SFTP client to the pool.
// If the pool is closed, the client is closed instead. Nil clients are ignored.
func (p *SFTPClientPool) Release(client *sftp.Client) {
	if client == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		_ = client.Close()
		return
	}

	select {
	case p.clients <- client:
	default:
		// More releases than acquires; drop the extra client.
		_ = client.Close()
	}
}

// Close closes the pool and every idle client in it. Clients still held are
// closed when they are released. Close is idempotent and does not close the
// SSH connection.
func (p *SFTPClientPool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.clients)
	p.mu.Unlock()

	var firstErr error
	for client := range p.clients {
		if err := client.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// Size returns the number of clients the pool was created with.
func (p *SFTPClientPool) Size() int {
	return p.size
}
