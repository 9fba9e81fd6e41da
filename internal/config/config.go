package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/reoring/recipeld"
)

//go:embed sample_config.toml
var sampleConfig string

// Logging contains configuration for CLI log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // console or json
}

// Decode contains the limits and recovery applied to JSON-LD input.
type Decode struct {
	Repair        bool   `toml:"repair"`
	MaxBytes      int64  `toml:"max_bytes"`
	MaxDepth      int    `toml:"max_depth"`
	DuplicateKeys string `toml:"duplicate_keys"` // ignore, warn or error
}

// Output contains result rendering configuration.
type Output struct {
	// Format is table, json, yaml or markdown. Empty selects table on a
	// terminal and json otherwise.
	Format string `toml:"format"`
}

// Store contains configuration for the recipe database.
type Store struct {
	DBPath string `toml:"db_path"`
}

// Config encapsulates all configuration values for recipeld.
type Config struct {
	Logging Logging `toml:"logging"`
	Decode  Decode  `toml:"decode"`
	Output  Output  `toml:"output"`
	Store   Store   `toml:"store"`
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/recipeld/config.toml, falling
// back to ~/.config.
func DefaultConfigPath() (string, error) {
	if base, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "recipeld", "config.toml"), nil
	}
	return expandPath("~/.config/recipeld/config.toml")
}

// Load reads the file at path (or the default location when path is empty),
// applies normalization and validation, and reports the resolved path and
// whether it existed. A missing file is not an error.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		var err error
		if path, err = DefaultConfigPath(); err != nil {
			return "", false, err
		}
	}
	expanded, err := expandPath(path)
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("config path %q is a directory", expanded)
	}
	return expanded, true, nil
}

// ParseOpt converts the decode section into parser limits.
func (c *Config) ParseOpt() recipeld.ParseOpt {
	opt := recipeld.ParseOpt{MaxBytes: c.Decode.MaxBytes, MaxDepth: c.Decode.MaxDepth}
	switch c.Decode.DuplicateKeys {
	case "warn":
		opt.Strictness.OnDuplicateKey = recipeld.Warn
	case "error":
		opt.Strictness.OnDuplicateKey = recipeld.Error
	default:
		opt.Strictness.OnDuplicateKey = recipeld.Ignore
	}
	return opt
}

// CreateSample writes the commented sample configuration to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}
