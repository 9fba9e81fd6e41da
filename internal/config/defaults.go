package config

const (
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultDuplicateKeys = "ignore"
	defaultDBPath        = "~/.local/share/recipeld/recipes.db"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Decode: Decode{
			DuplicateKeys: defaultDuplicateKeys,
		},
		Store: Store{
			DBPath: defaultDBPath,
		},
	}
}
