// Package testutil provides utilities for testing savesync components.
//
// Key components:
//   - RecordingFS: wraps a types.FS, records every call and injects
//     failures per operation, so tests can assert which filesystem
//     mutations did or did not happen
//   - GitFixture: a bare "remote", an upstream working clone and a local
//     clone built with the git CLI, for exercising pull end to end
//
// Git based helpers skip the test when no git binary is on PATH.
package testutil
