package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file picked up from the working directory
// when no explicit path is given.
const FileName = "css-tokens.toml"

// Defaults reproduce the fixed paths of the original extraction script.
const (
	DefaultInput         = "src/app/globals.css"
	DefaultOutputDir     = "tokens"
	DefaultLightSelector = "light"
)

// Config is the optional css-tokens.toml file:
//
//	[input]
//	path = "src/app/globals.css"
//	light_selector = "light"
//
//	[output]
//	dir = "tokens"
type Config struct {
	Input  InputConfig  `toml:"input"`
	Output OutputConfig `toml:"output"`
}

// InputConfig locates the stylesheet and its light theme block.
type InputConfig struct {
	Path          string `toml:"path"`
	LightSelector string `toml:"light_selector"`
}

// OutputConfig locates the token output root.
type OutputConfig struct {
	Dir string `toml:"dir"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Input:  InputConfig{Path: DefaultInput, LightSelector: DefaultLightSelector},
		Output: OutputConfig{Dir: DefaultOutputDir},
	}
}

// Load decodes the TOML file at path on top of Default. Keys missing from
// the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.Input.Path == "" {
		return Config{}, fmt.Errorf("%s: [input].path must not be empty", path)
	}
	if cfg.Output.Dir == "" {
		return Config{}, fmt.Errorf("%s: [output].dir must not be empty", path)
	}
	if cfg.Input.LightSelector == "" {
		cfg.Input.LightSelector = DefaultLightSelector
	}
	return cfg, nil
}

// Resolve loads path when set. Otherwise it loads FileName from the working
// directory if that file exists, and falls back to Default.
func Resolve(path string) (cfg Config, source string, err error) {
	if path != "" {
		cfg, err = Load(path)
		return cfg, path, err
	}

	if _, err := os.Stat(FileName); err == nil {
		cfg, err = Load(FileName)
		return cfg, FileName, err
	} else if !errors.Is(err, os.ErrNotExist) {
		return Config{}, "", fmt.Errorf("failed to stat %q: %w", FileName, err)
	}

	return Default(), "", nil
}
