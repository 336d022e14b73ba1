package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// Identity used for every fixture repository
const (
	GitUserName  = "Save Tester"
	GitUserEmail = "saves@example.com"
)

// RequireGit skips the test when the git binary is unavailable
func RequireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

// IsolateGitEnv points HOME and the XDG config dir at an empty temp dir and
// disables the system config, so the developer's git setup cannot leak in.
func IsolateGitEnv(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	for _, v := range []string{"GIT_DIR", "GIT_WORK_TREE", "GIT_AUTHOR_NAME", "GIT_AUTHOR_EMAIL", "GIT_COMMITTER_NAME", "GIT_COMMITTER_EMAIL"} {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

// RunGit runs git in dir and fails the test on error
func RunGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %s", args, string(out))
	}
	return strings.TrimSpace(string(out))
}

// InitRepo creates a non-bare repository on branch main with the fixture identity
func InitRepo(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	RunGit(t, dir, "init", "-q")
	RunGit(t, dir, "symbolic-ref", "HEAD", "refs/heads/main")
	ConfigureIdentity(t, dir)
}

// ConfigureIdentity sets the fixture identity in the repository's local config
func ConfigureIdentity(t *testing.T, dir string) {
	t.Helper()
	RunGit(t, dir, "config", "user.name", GitUserName)
	RunGit(t, dir, "config", "user.email", GitUserEmail)
	RunGit(t, dir, "config", "commit.gpgsign", "false")
}

// CommitFile writes content to name inside dir, commits it and returns the commit hash
func CommitFile(t *testing.T, dir, name, content, message string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	RunGit(t, dir, "add", name)
	RunGit(t, dir, "commit", "-q", "-m", message)
	return Head(t, dir)
}

// Head returns the commit hash HEAD points at
func Head(t *testing.T, dir string) string {
	t.Helper()
	return RunGit(t, dir, "rev-parse", "HEAD")
}

// Subjects returns the commit subjects reachable from HEAD, newest first
func Subjects(t *testing.T, dir string) []string {
	t.Helper()
	out := RunGit(t, dir, "log", "--format=%s")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// GitFixture is a bare remote with two clones: Upstream plays the other
// machine pushing saves, Local is the repository under test.
type GitFixture struct {
	Remote   string
	Upstream string
	Local    string
}

// NewGitFixture builds the fixture with one initial commit on main
func NewGitFixture(t *testing.T) *GitFixture {
	t.Helper()
	RequireGit(t)
	IsolateGitEnv(t)

	root := t.TempDir()
	f := &GitFixture{
		Remote:   filepath.Join(root, "remote.git"),
		Upstream: filepath.Join(root, "upstream"),
		Local:    filepath.Join(root, "local"),
	}

	if err := os.MkdirAll(f.Remote, 0755); err != nil {
		t.Fatal(err)
	}
	RunGit(t, f.Remote, "init", "-q", "--bare")
	RunGit(t, f.Remote, "symbolic-ref", "HEAD", "refs/heads/main")

	InitRepo(t, f.Upstream)
	CommitFile(t, f.Upstream, "README", "saves\n", "initial")
	RunGit(t, f.Upstream, "remote", "add", "origin", f.Remote)
	RunGit(t, f.Upstream, "push", "-q", "origin", "main")

	RunGit(t, root, "clone", "-q", f.Remote, f.Local)
	ConfigureIdentity(t, f.Local)

	return f
}

// PushUpstream commits a file in the upstream clone and pushes it
func (f *GitFixture) PushUpstream(t *testing.T, name, content, message string) string {
	t.Helper()
	hash := CommitFile(t, f.Upstream, name, content, message)
	RunGit(t, f.Upstream, "push", "-q", "origin", "main")
	return hash
}
