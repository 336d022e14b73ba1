package testutil

import (
	"io/fs"
	"sync"

	"github.com/arthur-debert/savesync/pkg/types"
)

// Operation names recorded by RecordingFS
const (
	OpStat      = "Stat"
	OpLstat     = "Lstat"
	OpReadFile  = "ReadFile"
	OpReadlink  = "Readlink"
	OpWriteFile = "WriteFile"
	OpMkdirAll  = "MkdirAll"
	OpRename    = "Rename"
	OpSymlink   = "Symlink"
)

var readOps = map[string]bool{
	OpStat:     true,
	OpLstat:    true,
	OpReadFile: true,
	OpReadlink: true,
}

// Call is one recorded filesystem call
type Call struct {
	Op   string
	Args []string
}

// RecordingFS wraps a types.FS and records each call made through it.
// Errors maps an operation name to an error returned instead of calling
// the wrapped FS.
type RecordingFS struct {
	inner types.FS

	mu    sync.Mutex
	calls []Call

	Errors     map[string]error
	NoSymlinks bool
}

// NewRecordingFS wraps inner
func NewRecordingFS(inner types.FS) *RecordingFS {
	return &RecordingFS{
		inner:  inner,
		Errors: make(map[string]error),
	}
}

// Fail makes every subsequent call of op return err
func (r *RecordingFS) Fail(op string, err error) *RecordingFS {
	r.Errors[op] = err
	return r
}

// Calls returns a copy of the recorded calls
func (r *RecordingFS) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Ops returns the recorded operation names in order
func (r *RecordingFS) Ops() []string {
	var ops []string
	for _, c := range r.Calls() {
		ops = append(ops, c.Op)
	}
	return ops
}

// Mutations returns only the calls that may change the filesystem
func (r *RecordingFS) Mutations() []Call {
	var out []Call
	for _, c := range r.Calls() {
		if !readOps[c.Op] {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets recorded calls
func (r *RecordingFS) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

func (r *RecordingFS) record(op string, args ...string) error {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Op: op, Args: args})
	r.mu.Unlock()
	return r.Errors[op]
}

func (r *RecordingFS) SupportsSymlinks() bool {
	if r.NoSymlinks {
		return false
	}
	return r.inner.SupportsSymlinks()
}

func (r *RecordingFS) Symlink(oldname, newname string) error {
	if err := r.record(OpSymlink, oldname, newname); err != nil {
		return err
	}
	return r.inner.Symlink(oldname, newname)
}

func (r *RecordingFS) Stat(name string) (fs.FileInfo, error) {
	if err := r.record(OpStat, name); err != nil {
		return nil, err
	}
	return r.inner.Stat(name)
}

func (r *RecordingFS) Lstat(name string) (fs.FileInfo, error) {
	if err := r.record(OpLstat, name); err != nil {
		return nil, err
	}
	return r.inner.Lstat(name)
}

func (r *RecordingFS) ReadFile(name string) ([]byte, error) {
	if err := r.record(OpReadFile, name); err != nil {
		return nil, err
	}
	return r.inner.ReadFile(name)
}

func (r *RecordingFS) Readlink(name string) (string, error) {
	if err := r.record(OpReadlink, name); err != nil {
		return "", err
	}
	return r.inner.Readlink(name)
}

func (r *RecordingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := r.record(OpWriteFile, name); err != nil {
		return err
	}
	return r.inner.WriteFile(name, data, perm)
}

func (r *RecordingFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := r.record(OpMkdirAll, path); err != nil {
		return err
	}
	return r.inner.MkdirAll(path, perm)
}

func (r *RecordingFS) Rename(oldpath, newpath string) error {
	if err := r.record(OpRename, oldpath, newpath); err != nil {
		return err
	}
	return r.inner.Rename(oldpath, newpath)
}
