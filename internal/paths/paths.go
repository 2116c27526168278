// Package paths resolves the configuration directory and the files in it.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppDirName is the per-user directory name under the platform config root.
const AppDirName = "habits"

// File names inside the config directory.
const (
	ConfigFileName = "config.yaml"
	EnvFileName    = ".env"
)

// EnvConfigDir overrides the platform default config directory.
const EnvConfigDir = "HABITS_CONFIG_DIR"

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/habits (fallback ~/.config/habits)
// macOS:   ~/Library/Application Support/habits
// Windows: %APPDATA%/habits
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppDirName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > HABITS_CONFIG_DIR env > DefaultConfigDir(). Explicit values
// are made absolute.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ConfigFile returns the path of config.yaml in dir.
func ConfigFile(dir string) string {
	return filepath.Join(dir, ConfigFileName)
}

// EnvFile returns the path of the .env file in dir.
func EnvFile(dir string) string {
	return filepath.Join(dir, EnvFileName)
}
