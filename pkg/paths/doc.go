// Package paths provides centralized path handling for savesync.
// It resolves the configuration and log locations following the XDG Base
// Directory specification and expands "~" in user-supplied paths.
package paths
