package gitsync

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/savesync/pkg/errors"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/pelletier/go-toml/v2"
)

const (
	stateDirName  = "savesync"
	stateFileName = "rebase.toml"
)

// rebaseState is persisted while a pull is replaying commits. Its presence
// blocks later pulls; OrigHead is where the branch was before the pull.
type rebaseState struct {
	HeadName string    `toml:"head_name"`
	OrigHead string    `toml:"orig_head"`
	Onto     string    `toml:"onto"`
	Steps    []string  `toml:"steps"`
	Done     int       `toml:"done"`
	Started  time.Time `toml:"started"`
}

func newRebaseState(head *plumbing.Reference, onto plumbing.Hash, steps []*object.Commit) *rebaseState {
	s := &rebaseState{
		HeadName: head.Name().String(),
		OrigHead: head.Hash().String(),
		Onto:     onto.String(),
		Steps:    make([]string, 0, len(steps)),
		Started:  time.Now().UTC().Truncate(time.Second),
	}
	for _, c := range steps {
		s.Steps = append(s.Steps, c.Hash.String())
	}
	return s
}

func statePath(gitDir string) string {
	return filepath.Join(gitDir, stateDirName, stateFileName)
}

func saveState(gitDir string, s *rebaseState) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return err
	}

	path := statePath(gitDir)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func loadState(gitDir string) (*rebaseState, error) {
	data, err := os.ReadFile(statePath(gitDir))
	if err != nil {
		return nil, err
	}
	var s rebaseState
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func removeState(gitDir string) error {
	err := os.Remove(statePath(gitDir))
	if err != nil && !stderrors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// inProgress names the unfinished rebase found in gitDir, or "" if none
func inProgress(gitDir string) string {
	for _, dir := range []string{"rebase-merge", "rebase-apply"} {
		if _, err := os.Stat(filepath.Join(gitDir, dir)); err == nil {
			return "git"
		}
	}
	if _, err := os.Stat(statePath(gitDir)); err == nil {
		return "savesync"
	}
	return ""
}

// PendingPull describes a pull that stopped before finishing, usually on a
// conflict. The branch still points at OrigHead.
type PendingPull struct {
	Branch    string
	OrigHead  string
	Onto      string
	Done      int
	Total     int
	Started   time.Time
	StatePath string
}

// Pending reports the unfinished pull recorded in the repository at
// repoPath, or nil when there is none
func Pending(repoPath string) (*PendingPull, error) {
	_, _, gitDir, err := openRepository(repoPath)
	if err != nil {
		return nil, err
	}

	s, err := loadState(gitDir)
	if stderrors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRebaseInProgress, "unreadable pull state at %s", statePath(gitDir))
	}

	return &PendingPull{
		Branch:    plumbing.ReferenceName(s.HeadName).Short(),
		OrigHead:  s.OrigHead,
		Onto:      s.Onto,
		Done:      s.Done,
		Total:     len(s.Steps),
		Started:   s.Started,
		StatePath: statePath(gitDir),
	}, nil
}
