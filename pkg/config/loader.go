package config

import (
	_ "embed"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/savesync/pkg/errors"
	"github.com/arthur-debert/savesync/pkg/logging"
	"github.com/arthur-debert/savesync/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides, e.g. SAVESYNC_GENERAL_REPO
const EnvPrefix = "SAVESYNC_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Load reads the configuration at path, creating it from the template first
// if it does not exist. An empty path resolves to paths.ConfigFilePath().
func Load(path string) (*Config, error) {
	return LoadWithOverrides(path, nil)
}

// LoadWithOverrides is Load with a final layer of dotted keys, such as
// "general.branch", that win over the file and the environment. Empty
// string values are ignored.
func LoadWithOverrides(path string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")

	if path == "" {
		path = paths.ConfigFilePath()
	}

	created, err := EnsureFile(path)
	if err != nil {
		return nil, err
	}
	if created {
		logger.Warn().Str("path", path).Msg("Created configuration file from template")
	}

	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}

	// 2. User file
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path).
			WithDetail("path", path)
	}

	// 3. Env overrides, limited to the general table
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if !strings.HasPrefix(key, "general_") {
			return ""
		}
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Command line overrides
	if set := nonEmpty(overrides); len(set) > 0 {
		if err := k.Load(confmap.Provider(set, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to decode %s", path).
			WithDetail("path", path)
	}
	cfg.Path = path

	expandPaths(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Str("repo", cfg.General.Repo).
		Int("games", len(cfg.Games)).
		Msg("Configuration loaded")

	return &cfg, nil
}

func nonEmpty(overrides map[string]interface{}) map[string]interface{} {
	set := make(map[string]interface{}, len(overrides))
	for key, value := range overrides {
		if str, ok := value.(string); ok && str == "" {
			continue
		}
		set[key] = value
	}
	return set
}

// EnsureFile writes the configuration template to path when nothing exists
// there yet. It reports whether the file was created.
func EnsureFile(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, errors.Wrapf(err, errors.ErrConfigLoad, "cannot access %s", path)
	}

	content, err := Template()
	if err != nil {
		return false, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrConfigLoad, "failed to create config directory for %s", path)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return false, errors.Wrapf(err, errors.ErrConfigLoad, "failed to write %s", path)
	}
	return true, nil
}

func expandPaths(cfg *Config) {
	cfg.General.Repo = paths.ExpandHome(cfg.General.Repo)
	for key, g := range cfg.Games {
		g.Source = paths.ExpandHome(g.Source)
		g.Destination = paths.ExpandHome(g.Destination)
		cfg.Games[key] = g
	}
}

// Validate rejects configurations the engines cannot act on
func Validate(cfg *Config) error {
	if cfg.General.Repo == "" {
		return errors.New(errors.ErrConfigValid, "general.repo is required").
			WithDetail("key", "general.repo")
	}
	if cfg.General.Remote == "" || cfg.General.Branch == "" {
		return errors.New(errors.ErrConfigValid, "general.remote and general.branch must not be empty")
	}

	for _, key := range cfg.Keys() {
		g := cfg.Games[key]
		field := func(name string) string { return fmt.Sprintf("games.%s.%s", key, name) }

		switch {
		case g.Source == "":
			return errors.Newf(errors.ErrConfigValid, "%s is required", field("source")).
				WithDetail("key", field("source"))
		case g.Destination == "":
			return errors.Newf(errors.ErrConfigValid, "%s is required", field("destination")).
				WithDetail("key", field("destination"))
		case g.Enabled == nil:
			return errors.Newf(errors.ErrConfigValid, "%s is required", field("enabled")).
				WithDetail("key", field("enabled"))
		case filepath.Clean(g.Source) == filepath.Clean(g.Destination):
			return errors.Newf(errors.ErrConfigValid, "games.%s: source and destination must differ", key).
				WithDetail("key", "games."+key)
		}
	}

	return nil
}
