package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigFile overrides the location of the configuration file
	EnvConfigFile = "SAVESYNC_CONFIG"

	// EnvStateDir overrides the XDG state directory for savesync
	EnvStateDir = "SAVESYNC_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name used under each XDG base directory
	AppDirName = "savesync"

	// ConfigFileName is the name of the configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "savesync.log"
)

// ConfigFilePath returns the configuration file location.
// SAVESYNC_CONFIG wins over $XDG_CONFIG_HOME/savesync/config.toml.
func ConfigFilePath() string {
	if p := os.Getenv(EnvConfigFile); p != "" {
		return ExpandHome(p)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// StateDir returns the directory holding savesync's runtime state (logs)
func StateDir() string {
	if p := os.Getenv(EnvStateDir); p != "" {
		return ExpandHome(p)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the path of the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// Reload re-reads the XDG environment. Tests that change XDG_* variables
// call it so the cached base directories follow.
func Reload() {
	xdg.Reload()
}

// ExpandHome expands a leading "~" or "~/" to the user's home directory.
// "~user" forms are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}
