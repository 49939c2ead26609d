package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// projectConfig is the optional modnorm.toml discovered upward from
// the working directory. Every field has a sensible default, so a
// missing manifest is not an error.
type projectConfig struct {
	Normalize normalizeConfig `toml:"normalize"`
}

type normalizeConfig struct {
	Include []string `toml:"include"`
	Backup  bool     `toml:"backup"`
	Cache   bool     `toml:"cache"`
}

func defaultProjectConfig() projectConfig {
	return projectConfig{
		Normalize: normalizeConfig{
			Backup: false,
			Cache:  true,
		},
	}
}

func findModnormToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "modnorm.toml")
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

func loadProjectConfig(startDir string) (projectConfig, error) {
	cfg := defaultProjectConfig()
	path, ok, err := findModnormToml(startDir)
	if err != nil || !ok {
		return cfg, err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}
