package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum severity to emit (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format selects the encoding: console (human-readable) or json.
	Format string `mapstructure:"format" default:"console"`
	// File is an optional path to also write log output to.
	File string `mapstructure:"file" default:""`
}
