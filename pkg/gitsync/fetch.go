package gitsync

import (
	stderrors "errors"
	"fmt"

	"github.com/arthur-debert/savesync/pkg/errors"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/rs/zerolog"
)

// fetchHeadRef mirrors what git records after a fetch
const fetchHeadRef plumbing.ReferenceName = "FETCH_HEAD"

// fetch updates refs/remotes/<remote>/<branch> and returns the commit it
// now points at
func (e *Engine) fetch(repo *git.Repository, opts PullOptions, logger zerolog.Logger) (plumbing.Hash, error) {
	remote, err := repo.Remote(opts.Remote)
	if err != nil {
		return plumbing.ZeroHash, errors.Wrapf(err, errors.ErrRemoteNotFound, "remote %q not found", opts.Remote).
			WithDetail("remote", opts.Remote)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return plumbing.ZeroHash, errors.Newf(errors.ErrRemoteNotFound, "remote %q has no URL", opts.Remote).
			WithDetail("remote", opts.Remote)
	}

	endpoint, err := transport.NewEndpoint(urls[0])
	if err != nil {
		return plumbing.ZeroHash, errors.Wrapf(err, errors.ErrFetchFailed, "invalid URL for remote %q", opts.Remote).
			WithDetail("url", urls[0])
	}

	auth, err := e.credentials.Resolve(endpoint)
	if err != nil {
		return plumbing.ZeroHash, err
	}

	refSpec := config.RefSpec(fmt.Sprintf("+refs/heads/%s:refs/remotes/%s/%s", opts.Branch, opts.Remote, opts.Branch))
	logger.Debug().Str("url", urls[0]).Str("refspec", refSpec.String()).Msg("Fetching")

	err = remote.Fetch(&git.FetchOptions{
		RemoteName: opts.Remote,
		RefSpecs:   []config.RefSpec{refSpec},
		Auth:       auth,
		Tags:       git.AllTags,
	})
	if err != nil && !stderrors.Is(err, git.NoErrAlreadyUpToDate) {
		return plumbing.ZeroHash, errors.Wrapf(err, errors.ErrFetchFailed, "fetch %s/%s failed", opts.Remote, opts.Branch).
			WithDetail("remote", opts.Remote).
			WithDetail("branch", opts.Branch)
	}

	tracking := plumbing.NewRemoteReferenceName(opts.Remote, opts.Branch)
	ref, err := repo.Reference(tracking, true)
	if err != nil {
		return plumbing.ZeroHash, errors.Wrapf(err, errors.ErrReferenceNotFound, "cannot resolve %s", tracking).
			WithDetail("ref", tracking.String())
	}

	if err := repo.Storer.SetReference(plumbing.NewHashReference(fetchHeadRef, ref.Hash())); err != nil {
		logger.Warn().Err(err).Msg("Failed to record FETCH_HEAD")
	}

	return ref.Hash(), nil
}
