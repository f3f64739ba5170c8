package filesystem

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

// SFTPConnection holds an authenticated SSH connection that SFTP sessions are opened on.
type SFTPConnection struct {
	sshClient *ssh.Client
	closer    io.Closer
	host      string
	port      int
	user      string
}

// Connect establishes an SSH connection to host:port as user.
// It authenticates with the SSH agent and the default SSH keys, and verifies the
// server against ~/.ssh/known_hosts.
func Connect(host string, port int, user string) (*SFTPConnection, error) {
	authMethods := getSSHAuthMethods()
	if len(authMethods) == 0 {
		return nil, errors.New("no SSH authentication methods available (tried SSH agent and default keys)")
	}

	hostKeyCallback, err := knownHostsCallback()
	if err != nil {
		return nil, fmt.Errorf("failed to load known hosts: %w", err)
	}

	config := &ssh.ClientConfig{
		User:            user,
		Auth:            authMethods,
		HostKeyCallback: hostKeyCallback,
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))

	sshClient, err := ssh.Dial("tcp", addr, config)
	if err != nil {
		return nil, fmt.Errorf("SSH connection failed: %w", err)
	}

	return &SFTPConnection{
		sshClient: sshClient,
		closer:    sshClient,
		host:      host,
		port:      port,
		user:      user,
	}, nil
}

// Close closes the SSH connection. It is safe to call on a zero connection.
func (c *SFTPConnection) Close() error {
	if c.closer == nil {
		return nil
	}

	err := c.closer.Close()
	c.closer = nil

	return err //nolint:wrapcheck // Close error surfaced as-is to the closer func
}

// SSHClient returns the underlying SSH client.
func (c *SFTPConnection) SSHClient() *ssh.Client {
	return c.sshClient
}

// String returns user@host:port.
func (c *SFTPConnection) String() string {
	return fmt.Sprintf("%s@%s:%d", c.user, c.host, c.port)
}

// getSSHAuthMethods returns SSH authentication methods in priority order:
// 1. SSH agent
// 2. Default SSH keys
func getSSHAuthMethods() []ssh.AuthMethod {
	var authMethods []ssh.AuthMethod

	if agentAuth := trySSHAgent(); agentAuth != nil {
		authMethods = append(authMethods, agentAuth)
	}

	authMethods = append(authMethods, tryDefaultSSHKeys(sshDir())...)

	return authMethods
}

// knownHostsCallback verifies host keys against ~/.ssh/known_hosts.
func knownHostsCallback() (ssh.HostKeyCallback, error) {
	dir := sshDir()
	if dir == "" {
		return nil, errors.New("cannot locate home directory for known_hosts")
	}

	callback, err := knownhosts.New(filepath.Join(dir, "known_hosts"))
	if err != nil {
		return nil, err //nolint:wrapcheck // Wrapped by Connect
	}

	return callback, nil
}

func sshDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(homeDir, ".ssh")
}

// trySSHAgent attempts to connect to the SSH agent.
func trySSHAgent() ssh.AuthMethod {
	socket := os.Getenv("SSH_AUTH_SOCK")
	if socket == "" {
		return nil
	}

	conn, err := net.Dial("unix", socket)
	if err != nil {
		return nil
	}

	agentClient := agent.NewClient(conn)

	return ssh.PublicKeysCallback(agentClient.Signers)
}

// tryDefaultSSHKeys loads unencrypted keys from the default locations in dir.
func tryDefaultSSHKeys(dir string) []ssh.AuthMethod {
	if dir == "" {
		return nil
	}

	keyFiles := []string{
		filepath.Join(dir, "id_ed25519"),
		filepath.Join(dir, "id_rsa"),
		filepath.Join(dir, "id_ecdsa"),
	}

	var authMethods []ssh.AuthMethod

	for _, keyPath := range keyFiles {
		keyData, err := os.ReadFile(keyPath)
		if err != nil {
			continue
		}

		// Password-protected keys are skipped; use the agent for those.
		signer, err := ssh.ParsePrivateKey(keyData)
		if err != nil {
			continue
		}

		authMethods = append(authMethods, ssh.PublicKeys(signer))
	}

	return authMethods
}
