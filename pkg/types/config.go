package types

import (
	"errors"
	"fmt"
)

// Config holds the session settings read from config.yaml, the environment
// and flags.
type Config struct {
	UserName     string       `json:"user_name" yaml:"user_name" mapstructure:"user_name"`
	StreakPolicy StreakPolicy `json:"streak_policy" yaml:"streak_policy" mapstructure:"streak_policy"`
	Format       string       `json:"format" yaml:"format" mapstructure:"format"`
	LogLevel     string       `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// knownFormats lists the formats that Validate accepts.
var knownFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatYAML: true,
	FormatTOML: true,
}

// Config validation errors.
var (
	ErrStreakPolicyUnknown = errors.New("unknown streak policy")
	ErrFormatUnknown       = errors.New("unknown output format")
)

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		StreakPolicy: StreakLastLogged,
		Format:       FormatText,
		LogLevel:     "warn",
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if !c.StreakPolicy.Valid() {
		return fmt.Errorf("%w: %q (valid: %s, %s)", ErrStreakPolicyUnknown, c.StreakPolicy, StreakLastLogged, StreakActive)
	}
	if !knownFormats[c.Format] {
		return fmt.Errorf("%w: %q (valid: text, json, yaml, toml)", ErrFormatUnknown, c.Format)
	}
	return nil
}
