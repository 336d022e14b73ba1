package types

import (
	"io/fs"
)

// SymlinkProvider is the platform capability for creating symbolic links.
// Implementations that cannot create links report false from
// SupportsSymlinks and must not be asked to Symlink.
type SymlinkProvider interface {
	SupportsSymlinks() bool
	Symlink(oldname, newname string) error
}

// FS is the filesystem interface required for savesync operations
type FS interface {
	SymlinkProvider

	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Rename must be atomic; tracking relies on it never leaving zero copies
	Rename(oldpath, newpath string) error
	Readlink(name string) (string, error)

	// Lstat never follows a trailing symlink
	Lstat(name string) (fs.FileInfo, error)
}
