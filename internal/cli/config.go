package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/habits/internal/paths"
	"github.com/mesh-intelligence/habits/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "HABITS"

	cfgKeyUserName     = "user_name"
	cfgKeyStreakPolicy = "streak_policy"
	cfgKeyFormat       = "format"
	cfgKeyLogLevel     = "log_level"
)

// flagKeys maps persistent flag names to the config keys they override.
var flagKeys = map[string]string{
	"user":          cfgKeyUserName,
	"streak-policy": cfgKeyStreakPolicy,
	"format":        cfgKeyFormat,
	"log-level":     cfgKeyLogLevel,
}

// loadConfig reads config.yaml from configDir using Viper. Precedence is
// flag > HABITS_* environment (including a .env file in configDir) >
// config.yaml > defaults. A missing config.yaml or .env is not an error.
// Unreadable files are system errors; invalid values are user errors.
func loadConfig(configDir string, fl *pflag.FlagSet) (*viper.Viper, types.Config, error) {
	if err := loadEnvFile(paths.EnvFile(configDir)); err != nil {
		return nil, types.Config{}, err
	}

	def := types.DefaultConfig()
	v := viper.New()
	v.SetDefault(cfgKeyUserName, def.UserName)
	v.SetDefault(cfgKeyStreakPolicy, string(def.StreakPolicy))
	v.SetDefault(cfgKeyFormat, def.Format)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fl != nil {
		for name, key := range flagKeys {
			if f := fl.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, types.Config{}, sysErr(fmt.Errorf("bind flag %s: %w", name, err))
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, types.Config{}, sysErr(fmt.Errorf("read config: %w", err))
		}
	}

	cfg, err := decodeConfig(v)
	if err != nil {
		return nil, types.Config{}, err
	}
	return v, cfg, nil
}

// decodeConfig unmarshals and validates the settings held by v.
func decodeConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Format = strings.ToLower(cfg.Format)
	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// loadEnvFile exports the variables of a .env file without overriding
// variables already set in the environment.
func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return sysErr(fmt.Errorf("load %s: %w", path, err))
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}
