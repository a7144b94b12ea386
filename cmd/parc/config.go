package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// parcConfig mirrors an optional parc.toml discovered upward from the
// working directory. All fields are defaults; flags win.
type parcConfig struct {
	Output outputConfig `toml:"output"`
	Check  checkConfig  `toml:"check"`
}

type outputConfig struct {
	Color   string `toml:"color"`
	Context int    `toml:"context"`
}

type checkConfig struct {
	Jobs int `toml:"jobs"`
}

func findParcToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "parc.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig returns the parsed manifest, whether one was found, and any
// read or decode error.
func loadConfig(startDir string) (*parcConfig, bool, error) {
	path, ok, err := findParcToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg parcConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return &cfg, true, nil
}
