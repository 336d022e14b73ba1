package gitsync

import (
	"github.com/arthur-debert/savesync/pkg/errors"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"
)

// CredentialResolver supplies the auth method used to talk to a remote
type CredentialResolver interface {
	Resolve(endpoint *transport.Endpoint) (transport.AuthMethod, error)
}

// CredentialResolverFunc adapts a function to CredentialResolver
type CredentialResolverFunc func(endpoint *transport.Endpoint) (transport.AuthMethod, error)

func (f CredentialResolverFunc) Resolve(endpoint *transport.Endpoint) (transport.AuthMethod, error) {
	return f(endpoint)
}

// AgentCredentials authenticates SSH remotes through the running SSH agent
// (SSH_AUTH_SOCK). Local remotes need no credentials. Every other
// transport is rejected.
type AgentCredentials struct {
	// User overrides the SSH user when the remote URL carries none
	User string
}

// Resolve implements CredentialResolver
func (a AgentCredentials) Resolve(endpoint *transport.Endpoint) (transport.AuthMethod, error) {
	switch endpoint.Protocol {
	case "file":
		return nil, nil
	case "ssh":
		user := endpoint.User
		if user == "" {
			user = a.User
		}
		if user == "" {
			user = "git"
		}
		auth, err := ssh.NewSSHAgentAuth(user)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFetchFailed, "cannot reach the SSH agent")
		}
		return auth, nil
	default:
		return nil, errors.Newf(errors.ErrUnsupportedTransport,
			"%s remotes are not supported, only ssh (via agent) and local paths", endpoint.Protocol).
			WithDetail("protocol", endpoint.Protocol)
	}
}
