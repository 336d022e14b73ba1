//go:build !unix

package filesystem

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrSymlinkUnsupported is returned by Symlink on platforms without POSIX links
var ErrSymlinkUnsupported = errors.New("symlinks are not supported on this platform")

type symlinker struct{}

func (symlinker) SupportsSymlinks() bool { return false }

func (symlinker) Symlink(oldname, newname string) error {
	return fmt.Errorf("%w (%s)", ErrSymlinkUnsupported, runtime.GOOS)
}
