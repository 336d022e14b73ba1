//go:build unix

package filesystem

import "os"

type symlinker struct{}

func (symlinker) SupportsSymlinks() bool { return true }

func (symlinker) Symlink(oldname, newname string) error {
	return os.Symlink(oldname, newname)
}
