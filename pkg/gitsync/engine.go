package gitsync

import (
	"path/filepath"

	"github.com/arthur-debert/savesync/pkg/errors"
	"github.com/arthur-debert/savesync/pkg/logging"
	"github.com/arthur-debert/savesync/pkg/types"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"
	"github.com/rs/zerolog"
)

// Defaults used when PullOptions leaves Remote or Branch empty
const (
	DefaultRemote = "origin"
	DefaultBranch = "main"
)

// Engine synchronizes the save repository with its remote
type Engine struct {
	credentials CredentialResolver
	gitBinary   string
	logger      zerolog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithCredentials replaces the default SSH agent credential resolver
func WithCredentials(resolver CredentialResolver) Option {
	return func(e *Engine) {
		e.credentials = resolver
	}
}

// WithGitBinary sets the git executable used to replay commits
func WithGitBinary(path string) Option {
	return func(e *Engine) {
		e.gitBinary = path
	}
}

// NewEngine creates a sync engine
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		credentials: AgentCredentials{},
		gitBinary:   "git",
		logger:      logging.GetLogger("gitsync"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// PullOptions selects the repository, remote and branch to pull
type PullOptions struct {
	RepoPath string
	Remote   string
	Branch   string
}

func (o PullOptions) withDefaults() PullOptions {
	if o.Remote == "" {
		o.Remote = DefaultRemote
	}
	if o.Branch == "" {
		o.Branch = DefaultBranch
	}
	return o
}

// Pull fetches the configured branch and rebases the checked-out branch
// onto it. The returned error carries the code of the phase that failed.
// A conflict leaves the repository mid-rebase for manual resolution.
func (e *Engine) Pull(opts PullOptions) (*types.PullResult, error) {
	opts = opts.withDefaults()
	logger := e.logger.With().
		Str("repo", opts.RepoPath).
		Str("remote", opts.Remote).
		Str("branch", opts.Branch).
		Logger()
	defer logging.LogOperationStart(logger, "pull")()

	repo, workdir, gitDir, err := openRepository(opts.RepoPath)
	if err != nil {
		return nil, err
	}

	upstream, err := e.fetch(repo, opts, logger)
	if err != nil {
		return nil, err
	}

	if kind := inProgress(gitDir); kind != "" {
		return nil, errors.Newf(errors.ErrRebaseInProgress,
			"an unfinished %s rebase exists in %s, resolve or abort it first", kind, workdir).
			WithDetail("kind", kind).
			WithDetail("git_dir", gitDir)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrReferenceNotFound, "cannot resolve HEAD")
	}
	if !head.Name().IsBranch() {
		return nil, errors.New(errors.ErrReferenceNotFound, "HEAD is detached, check out a branch before pulling").
			WithDetail("head", head.Hash().String())
	}

	result := &types.PullResult{
		Remote:   opts.Remote,
		Branch:   opts.Branch,
		HeadName: head.Name().String(),
		OrigHead: head.Hash().String(),
		Upstream: upstream.String(),
	}

	plan, err := planRebase(repo, head.Hash(), upstream)
	if err != nil {
		return nil, err
	}
	if plan.upToDate {
		result.UpToDate = true
		result.NewHead = result.OrigHead
		logger.Info().Str("head", short(result.OrigHead)).Msg("Already up to date")
		return result, nil
	}
	result.FastForward = plan.fastForward

	identity, err := committerIdentity(repo)
	if err != nil {
		return nil, err
	}

	rb := &rebase{
		repo:   repo,
		gitDir: gitDir,
		git: &gitCLI{
			bin:    e.gitBinary,
			dir:    workdir,
			logger: logger,
			env: []string{
				"GIT_COMMITTER_NAME=" + identity.Name,
				"GIT_COMMITTER_EMAIL=" + identity.Email,
			},
		},
		state:  newRebaseState(head, upstream, plan.steps),
		logger: logger,
	}

	if err := rb.start(); err != nil {
		return nil, err
	}
	if err := rb.drain(result); err != nil {
		return nil, err
	}
	newHead, err := rb.finish()
	if err != nil {
		return nil, err
	}
	result.NewHead = newHead.String()

	logger.Info().
		Str("from", short(result.OrigHead)).
		Str("to", short(result.NewHead)).
		Int("replayed", len(result.Replayed)).
		Int("dropped", len(result.Dropped)).
		Bool("fast_forward", result.FastForward).
		Msg("Pull complete")

	return result, nil
}

// Push is not implemented yet. It contacts no remote and always succeeds.
func (e *Engine) Push() error {
	e.logger.Warn().Msg("Push is not implemented, nothing was sent")
	return nil
}

// openRepository opens a non-bare repository exactly at path
func openRepository(path string) (*git.Repository, string, string, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: false})
	if err != nil {
		return nil, "", "", errors.Wrapf(err, errors.ErrRepositoryNotFound, "cannot open repository at %s", path).
			WithDetail("path", path)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, "", "", errors.Wrapf(err, errors.ErrRepositoryNotFound, "repository at %s has no working tree", path).
			WithDetail("path", path)
	}
	workdir := wt.Filesystem.Root()

	gitDir := filepath.Join(workdir, git.GitDirName)
	if fs, ok := repo.Storer.(*filesystem.Storage); ok {
		gitDir = fs.Filesystem().Root()
	}

	return repo, workdir, gitDir, nil
}

func short(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
