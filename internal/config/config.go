// Package config loads the optional rules file for the guessing game.
//
// Both YAML and JSON are accepted. JSON files may contain comments and
// trailing commas (JSONC); github.com/tidwall/jsonc strips them before the
// standard encoding/json decoder runs. The format is chosen by file
// extension.
//
// Fields missing from the file keep their default values, so an empty file
// is equivalent to no file at all.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/beginner-cli/internal/guess"
	"github.com/shinji-kodama/beginner-cli/internal/model"
)

// Config is the root of the rules file.
//
// Example (YAML):
//
//	guess:
//	  min: 1
//	  max: 50
//	  maxGuesses: 6
type Config struct {
	Guess guess.Rules `yaml:"guess" json:"guess"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{Guess: guess.DefaultRules()}
}

// Validate checks all sections.
func (c *Config) Validate() error {
	if err := c.Guess.Validate(); err != nil {
		return fmt.Errorf("guess: %w", err)
	}
	return nil
}

// Load reads the rules file at path. An empty path returns Default().
//
// Returns a CLIError with ExitInvalidConfig if the file is missing,
// unparseable, or describes invalid rules.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, model.WrapCLIError(model.ExitInvalidConfig,
				fmt.Sprintf("config file not found: %s", path), err)
		}
		return nil, model.WrapCLIError(model.ExitInvalidConfig, "failed to read config file", err)
	}

	if err := decode(path, data, cfg); err != nil {
		return nil, model.WrapCLIError(model.ExitInvalidConfig,
			fmt.Sprintf("failed to parse %s", filepath.Base(path)), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, model.WrapCLIError(model.ExitInvalidConfig, "invalid config", err)
	}
	return cfg, nil
}

// decode unmarshals data into cfg, leaving fields that are absent from the
// document untouched.
func decode(path string, data []byte, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if len(bytes.TrimSpace(data)) == 0 {
			return nil
		}
		return yaml.Unmarshal(data, cfg)
	case ".json", ".jsonc":
		clean := jsonc.ToJSON(data)
		if len(bytes.TrimSpace(clean)) == 0 {
			return nil
		}
		return json.Unmarshal(clean, cfg)
	default:
		return fmt.Errorf("unsupported config format %q (use .yaml, .yml, .json or .jsonc)", ext)
	}
}
