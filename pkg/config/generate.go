package config

import (
	"bytes"

	"github.com/arthur-debert/savesync/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

const templateHeader = `# savesync configuration
#
# [general]
#   repo    path of the git repository holding the save files
#   remote  remote to pull from (default "origin")
#   branch  remote branch to pull (default "main")
#
# [games.<key>]
#   name         label used in messages
#   source       where the save lives inside the repository
#   destination  where the game expects its save; becomes a symlink to source
#   enabled      whether "savesync track" touches this entry

`

// Sample returns an example configuration with a single disabled game
func Sample() *Config {
	enabled := false
	return &Config{
		General: General{
			Repo:   "~/saves",
			Remote: "origin",
			Branch: "main",
		},
		Games: map[string]GameConfig{
			"example": {
				Name:        "Example Game",
				Source:      "~/saves/example/save",
				Destination: "~/.local/share/example/save",
				Enabled:     &enabled,
			},
		},
	}
}

// Render encodes cfg as TOML
func Render(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.Bytes(), nil
}

// Template returns the commented sample configuration written on first run
func Template() ([]byte, error) {
	body, err := Render(Sample())
	if err != nil {
		return nil, err
	}
	return append([]byte(templateHeader), body...), nil
}
