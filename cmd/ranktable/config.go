package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"arithrank/internal/arith"
	"arithrank/internal/snapshot"
)

const configFileName = "ranktable.toml"

type fileConfig struct {
	Output outputConfig `toml:"output"`
	Matrix matrixConfig `toml:"matrix"`
	Export exportConfig `toml:"export"`
}

type outputConfig struct {
	Color  string `toml:"color"`
	Format string `toml:"format"`
}

type matrixConfig struct {
	Category string `toml:"category"`
}

type exportConfig struct {
	Format string `toml:"format"`
	Path   string `toml:"path"`
}

func findConfigFile(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
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

// resolveConfig loads an explicit path, or the nearest ranktable.toml above
// the working directory. No file at all yields the zero config.
func resolveConfig(explicit string) (fileConfig, error) {
	if explicit != "" {
		return loadConfig(explicit)
	}
	path, ok, err := findConfigFile(".")
	if err != nil || !ok {
		return fileConfig{}, err
	}
	return loadConfig(path)
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fileConfig{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return fileConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c fileConfig) validate() error {
	if c.Output.Color != "" {
		if _, err := readColorMode(c.Output.Color); err != nil {
			return fmt.Errorf("[output].color: %w", err)
		}
	}
	if c.Output.Format != "" {
		if _, err := readOutputFormat(c.Output.Format); err != nil {
			return fmt.Errorf("[output].format: %w", err)
		}
	}
	if c.Matrix.Category != "" {
		if _, err := arith.ParseCategory(c.Matrix.Category); err != nil {
			return fmt.Errorf("[matrix].category: %w", err)
		}
	}
	if c.Export.Format != "" {
		if _, err := snapshot.ParseFormat(c.Export.Format); err != nil {
			return fmt.Errorf("[export].format: %w", err)
		}
	}
	return nil
}

type outputFormat string

const (
	outputPretty outputFormat = "pretty"
	outputJSON   outputFormat = "json"
)

func readOutputFormat(value string) (outputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "pretty":
		return outputPretty, nil
	case "json":
		return outputJSON, nil
	default:
		return "", fmt.Errorf("unsupported format %q (must be pretty or json)", value)
	}
}
