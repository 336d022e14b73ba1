package gitsync

import (
	"time"

	"github.com/arthur-debert/savesync/pkg/errors"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// committerIdentity reads the identity replayed commits are committed with.
// committer.* wins over user.*; local config wins over global.
func committerIdentity(repo *git.Repository) (*object.Signature, error) {
	cfg, err := repo.ConfigScoped(config.GlobalScope)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRebaseStart, "failed to read git config")
	}

	name, email := cfg.User.Name, cfg.User.Email
	if cfg.Committer.Name != "" {
		name = cfg.Committer.Name
	}
	if cfg.Committer.Email != "" {
		email = cfg.Committer.Email
	}

	if name == "" || email == "" {
		return nil, errors.New(errors.ErrRebaseStart,
			"no committer identity configured (set user.name and user.email)")
	}

	return &object.Signature{Name: name, Email: email, When: time.Now()}, nil
}
