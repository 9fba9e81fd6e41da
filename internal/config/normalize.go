package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeLogging()
	c.normalizeDecode()
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	return c.normalizeStore()
}

func (c *Config) normalizeLogging() {
	if v, ok := lookupEnv("RECIPELD_LOG_LEVEL", "LOG_LEVEL"); ok {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv("RECIPELD_LOG_FORMAT"); ok {
		c.Logging.Format = v
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}

func (c *Config) normalizeDecode() {
	c.Decode.DuplicateKeys = strings.ToLower(strings.TrimSpace(c.Decode.DuplicateKeys))
	if c.Decode.DuplicateKeys == "" {
		c.Decode.DuplicateKeys = defaultDuplicateKeys
	}
}

func (c *Config) normalizeStore() error {
	if v, ok := lookupEnv("RECIPELD_DB_PATH"); ok {
		c.Store.DBPath = v
	}
	if strings.TrimSpace(c.Store.DBPath) == "" {
		c.Store.DBPath = defaultDBPath
		if base, ok := lookupEnv("XDG_DATA_HOME"); ok {
			c.Store.DBPath = filepath.Join(base, "recipeld", "recipes.db")
		}
	}
	var err error
	if c.Store.DBPath, err = expandPath(c.Store.DBPath); err != nil {
		return fmt.Errorf("store.db_path: %w", err)
	}
	return nil
}

// lookupEnv returns the first non-blank value among keys.
func lookupEnv(keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}
