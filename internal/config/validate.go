package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateDecode(); err != nil {
		return err
	}
	return c.validateOutput()
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
}

func (c *Config) validateDecode() error {
	if c.Decode.MaxBytes < 0 {
		return errors.New("decode.max_bytes must be >= 0")
	}
	if c.Decode.MaxDepth < 0 {
		return errors.New("decode.max_depth must be >= 0")
	}
	switch c.Decode.DuplicateKeys {
	case "ignore", "warn", "error":
		return nil
	default:
		return fmt.Errorf("decode.duplicate_keys: unsupported value %q", c.Decode.DuplicateKeys)
	}
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "", "table", "json", "yaml", "markdown":
		return nil
	default:
		return fmt.Errorf("output.format: unsupported value %q", c.Output.Format)
	}
}
