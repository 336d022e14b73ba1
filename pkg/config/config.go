package config

import (
	"sort"

	"github.com/arthur-debert/savesync/pkg/types"
)

// Config is the parsed configuration file
type Config struct {
	General General               `koanf:"general" toml:"general"`
	Games   map[string]GameConfig `koanf:"games" toml:"games"`

	// Path is the file the configuration was loaded from
	Path string `koanf:"-" toml:"-"`
}

// General holds the repository settings
type General struct {
	Repo   string `koanf:"repo" toml:"repo"`
	Remote string `koanf:"remote" toml:"remote"`
	Branch string `koanf:"branch" toml:"branch"`
}

// GameConfig is one entry of the games table
type GameConfig struct {
	Name        string `koanf:"name" toml:"name"`
	Source      string `koanf:"source" toml:"source"`
	Destination string `koanf:"destination" toml:"destination"`
	Enabled     *bool  `koanf:"enabled" toml:"enabled"`
}

// Keys returns the game keys in sorted order
func (c *Config) Keys() []string {
	keys := make([]string, 0, len(c.Games))
	for k := range c.Games {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Entries returns every configured game, ordered by key
func (c *Config) Entries() []types.GameEntry {
	entries := make([]types.GameEntry, 0, len(c.Games))
	for _, key := range c.Keys() {
		g := c.Games[key]
		entries = append(entries, types.GameEntry{
			Key:         key,
			Name:        g.Name,
			Source:      g.Source,
			Destination: g.Destination,
			Enabled:     g.Enabled != nil && *g.Enabled,
		})
	}
	return entries
}
