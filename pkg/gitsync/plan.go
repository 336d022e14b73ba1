package gitsync

import (
	"github.com/arthur-debert/savesync/pkg/errors"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

type rebasePlan struct {
	upToDate    bool
	fastForward bool
	// steps are the local commits to replay, oldest first
	steps []*object.Commit
}

func planRebase(repo *git.Repository, head, upstream plumbing.Hash) (*rebasePlan, error) {
	if head == upstream {
		return &rebasePlan{upToDate: true}, nil
	}

	headCommit, err := repo.CommitObject(head)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrReferenceNotFound, "cannot load HEAD commit %s", head)
	}
	upstreamCommit, err := repo.CommitObject(upstream)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrReferenceNotFound, "cannot load fetched commit %s", upstream)
	}

	bases, err := headCommit.MergeBase(upstreamCommit)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRebaseStart, "cannot compute merge base")
	}
	for _, base := range bases {
		if base.Hash == upstream {
			return &rebasePlan{upToDate: true}, nil
		}
		if base.Hash == head {
			return &rebasePlan{fastForward: true}, nil
		}
	}

	steps, err := localCommits(headCommit, upstreamCommit)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRebaseStart, "cannot list local commits")
	}
	return &rebasePlan{steps: steps}, nil
}

// localCommits returns the non-merge commits reachable from head but not
// from upstream, parents before children
func localCommits(head, upstream *object.Commit) ([]*object.Commit, error) {
	known := make(map[plumbing.Hash]bool)
	err := object.NewCommitPreorderIter(upstream, nil, nil).ForEach(func(c *object.Commit) error {
		known[c.Hash] = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	pending := make(map[plumbing.Hash]*object.Commit)
	err = object.NewCommitPreorderIter(head, known, nil).ForEach(func(c *object.Commit) error {
		pending[c.Hash] = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	ordered := make([]*object.Commit, 0, len(pending))
	visited := make(map[plumbing.Hash]bool, len(pending))

	var visit func(c *object.Commit)
	visit = func(c *object.Commit) {
		if visited[c.Hash] {
			return
		}
		visited[c.Hash] = true
		for _, parent := range c.ParentHashes {
			if p, ok := pending[parent]; ok {
				visit(p)
			}
		}
		if c.NumParents() <= 1 {
			ordered = append(ordered, c)
		}
	}
	visit(head)

	return ordered, nil
}
