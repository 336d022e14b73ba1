// Package config loads the savesync configuration.
//
// Values are merged in order: embedded defaults, the user's TOML file, then
// SAVESYNC_GENERAL_* environment variables. The result is validated once and
// exposed as an immutable list of GameEntry values plus the repository
// settings; malformed input is rejected here so the tracking and sync
// engines never see it.
package config
