package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/habits/internal/paths"
	"github.com/mesh-intelligence/habits/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	UserName     string `yaml:"user_name"`
	StreakPolicy string `yaml:"streak_policy"`
	Format       string `yaml:"format"`
	LogLevel     string `yaml:"log_level"`
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml",
		Long:  "Create the configuration directory and a default config.yaml. An existing config.yaml is left untouched.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, a)
		},
	}
}

func runInit(cmd *cobra.Command, a *app) error {
	if err := ensureConfigDir(a.configDir); err != nil {
		return sysErr(fmt.Errorf("create config directory: %w", err))
	}

	path := paths.ConfigFile(a.configDir)
	written, err := writeConfigIfMissing(path, a.cfg)
	if err != nil {
		return sysErr(fmt.Errorf("write config: %w", err))
	}

	out := cmd.OutOrStdout()
	if written {
		fmt.Fprintf(out, "Wrote %s\n", path)
	} else {
		fmt.Fprintf(out, "Config already exists at %s\n", path)
	}
	return nil
}

// writeConfigIfMissing creates config.yaml from cfg if the file does not
// exist. It reports whether a file was written.
func writeConfigIfMissing(path string, cfg types.Config) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&configFile{
		UserName:     cfg.UserName,
		StreakPolicy: string(cfg.StreakPolicy),
		Format:       cfg.Format,
		LogLevel:     cfg.LogLevel,
	})
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	header := []byte("# habits configuration\n# streak_policy: last-logged | active\n# format: text | json | yaml | toml\n")
	return true, os.WriteFile(path, append(header, data...), 0o644)
}
