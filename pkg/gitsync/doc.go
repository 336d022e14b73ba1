// Package gitsync brings the managed repository up to date with its remote.
//
// Pull opens the repository, fetches one branch (and all tags) from the
// configured remote, and rebases the checked-out branch onto the fetched
// commit, replaying each local commit in order so history stays linear.
//
// Repository access, fetching and ref updates go through go-git. go-git has
// no patch application, so each replay step shells out to the git binary
// (cherry-pick --no-commit, then commit reusing the original message and
// author). While a pull is replaying, its progress is recorded in
// <gitdir>/savesync/rebase.toml; a failed pull leaves that file and the
// detached HEAD in place for manual resolution and later pulls refuse to
// start until it is cleared.
//
// Push is a placeholder: it contacts no remote and always succeeds.
package gitsync
