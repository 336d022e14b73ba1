package gitsync

import (
	stderrors "errors"
	"strings"

	"github.com/arthur-debert/savesync/pkg/errors"
	"github.com/arthur-debert/savesync/pkg/types"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/rs/zerolog"
)

// rebase replays the planned local commits on top of the fetched commit
type rebase struct {
	repo   *git.Repository
	gitDir string
	git    *gitCLI
	state  *rebaseState
	logger zerolog.Logger
}

// start checks the working tree, records the rebase state and detaches
// HEAD at the fetched commit
func (r *rebase) start() error {
	unstaged, err := r.git.quiet("diff", "--quiet")
	if err != nil {
		return errors.Wrap(err, errors.ErrRebaseStart, "cannot inspect working tree")
	}
	staged, err := r.git.quiet("diff", "--cached", "--quiet")
	if err != nil {
		return errors.Wrap(err, errors.ErrRebaseStart, "cannot inspect index")
	}
	if !unstaged || !staged {
		return errors.New(errors.ErrRebaseStart, "working tree has uncommitted changes, commit or stash them first").
			WithDetail("dir", r.git.dir)
	}

	if err := saveState(r.gitDir, r.state); err != nil {
		return errors.Wrap(err, errors.ErrRebaseStart, "cannot record pull state")
	}

	if _, err := r.git.run("checkout", "-q", "--detach", r.state.Onto); err != nil {
		if rmErr := removeState(r.gitDir); rmErr != nil {
			r.logger.Warn().Err(rmErr).Msg("Failed to remove pull state")
		}
		return errors.Wrapf(err, errors.ErrRebaseStart, "cannot check out %s", short(r.state.Onto)).
			WithDetail("onto", r.state.Onto)
	}

	r.logger.Debug().
		Str("onto", short(r.state.Onto)).
		Int("steps", len(r.state.Steps)).
		Msg("Rebase started")
	return nil
}

// drain applies every remaining step. A step whose changes are already
// upstream is dropped.
func (r *rebase) drain(result *types.PullResult) error {
	for r.state.Done < len(r.state.Steps) {
		step := r.state.Done
		hash := r.state.Steps[step]

		if _, err := r.git.run("cherry-pick", "--no-commit", hash); err != nil {
			return errors.Wrapf(err, errors.ErrRebaseConflict,
				"commit %s does not apply on top of %s, resolve it by hand (branch %s is still at %s)",
				short(hash), short(r.state.Onto), plumbing.ReferenceName(r.state.HeadName).Short(), short(r.state.OrigHead)).
				WithDetail("commit", hash).
				WithDetail("step", step+1).
				WithDetail("orig_head", r.state.OrigHead).
				WithDetail("branch", r.state.HeadName).
				WithDetail("state", statePath(r.gitDir))
		}

		summary, err := r.summary(hash)
		if err != nil {
			return err
		}

		empty, err := r.git.quiet("diff", "--cached", "--quiet")
		if err != nil {
			return errors.Wrapf(err, errors.ErrRebaseCommit, "cannot inspect index after applying %s", short(hash))
		}

		if empty {
			r.logger.Info().Str("commit", short(hash)).Str("summary", summary).Msg("Dropping commit already upstream")
			result.Dropped = append(result.Dropped, hash)
		} else {
			if _, err := r.git.run("commit", "-q", "--no-verify", "-C", hash); err != nil {
				return errors.Wrapf(err, errors.ErrRebaseCommit, "cannot commit replayed %s", short(hash)).
					WithDetail("commit", hash)
			}
			newHash, err := r.git.run("rev-parse", "HEAD")
			if err != nil {
				return errors.Wrap(err, errors.ErrRebaseCommit, "cannot resolve replayed commit")
			}
			r.logger.Debug().Str("from", short(hash)).Str("to", short(newHash)).Msg("Replayed commit")
			result.Replayed = append(result.Replayed, types.ReplayedCommit{
				Original: hash,
				New:      newHash,
				Summary:  summary,
			})
		}

		r.state.Done++
		if err := saveState(r.gitDir, r.state); err != nil {
			return errors.Wrap(err, errors.ErrRebaseCommit, "cannot record pull progress")
		}
	}
	return nil
}

// finish moves the branch to the rebased HEAD, provided nothing else moved
// it meanwhile, and attaches HEAD to it again
func (r *rebase) finish() (plumbing.Hash, error) {
	branch := plumbing.ReferenceName(r.state.HeadName)

	head, err := r.repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return plumbing.ZeroHash, errors.Wrap(err, errors.ErrRebaseFinish, "cannot resolve rebased HEAD")
	}
	if head.Type() != plumbing.HashReference {
		return plumbing.ZeroHash, errors.New(errors.ErrRebaseFinish, "HEAD was reattached during the pull")
	}

	current, err := r.repo.Reference(branch, false)
	if err != nil {
		return plumbing.ZeroHash, errors.Wrapf(err, errors.ErrRebaseFinish, "cannot resolve %s", branch)
	}
	if current.Hash().String() != r.state.OrigHead {
		return plumbing.ZeroHash, errors.Newf(errors.ErrRebaseFinish, "%s moved during the pull", branch.Short()).
			WithDetail("expected", r.state.OrigHead).
			WithDetail("actual", current.Hash().String())
	}

	updated := plumbing.NewHashReference(branch, head.Hash())
	err = r.repo.Storer.CheckAndSetReference(updated, current)
	if stderrors.Is(err, plumbing.ErrReferenceNotFound) {
		// the branch only lives in packed-refs
		err = r.repo.Storer.SetReference(updated)
	}
	if err != nil {
		return plumbing.ZeroHash, errors.Wrapf(err, errors.ErrRebaseFinish, "cannot update %s", branch)
	}

	if err := r.repo.Storer.SetReference(plumbing.NewSymbolicReference(plumbing.HEAD, branch)); err != nil {
		return plumbing.ZeroHash, errors.Wrap(err, errors.ErrRebaseFinish, "cannot reattach HEAD")
	}

	if err := removeState(r.gitDir); err != nil {
		return plumbing.ZeroHash, errors.Wrap(err, errors.ErrRebaseFinish, "cannot remove pull state")
	}

	return head.Hash(), nil
}

func (r *rebase) summary(hash string) (string, error) {
	commit, err := r.repo.CommitObject(plumbing.NewHash(hash))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrRebaseCommit, "cannot load commit %s", short(hash))
	}
	line, _, _ := strings.Cut(strings.TrimSpace(commit.Message), "\n")
	return line, nil
}
