// Package types defines the core types and interfaces used throughout savesync.
// This includes the filesystem abstraction the tracking engine runs against,
// the GameEntry loaded from configuration, and the result types reported by
// the track and pull operations.
package types
