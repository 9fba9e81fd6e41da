// Package config loads the recipeld TOML configuration.
//
// Loading runs in three steps: repository defaults, the optional TOML file
// decoded on top, then normalization (environment overrides, path expansion)
// and validation. Callers only see fully normalized values.
package config
