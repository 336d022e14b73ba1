// Package filesystem provides filesystem implementations for savesync.
//
// The OS implementation selects its symlink capability at build time:
// symlink_unix.go creates real links on POSIX systems, symlink_other.go
// reports the capability as unsupported everywhere else so callers can
// skip tracking explicitly instead of failing halfway.
package filesystem
