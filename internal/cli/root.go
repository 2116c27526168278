// Package cli implements the habits command-line interface: the cobra
// command tree, configuration loading, and the interactive menu session.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/habits/internal/logging"
	"github.com/mesh-intelligence/habits/internal/paths"
	"github.com/mesh-intelligence/habits/internal/registry"
	"github.com/mesh-intelligence/habits/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir    string
	userName     string
	format       string
	streakPolicy string
	logLevel     string
	verbose      bool
}

// app is the state shared by the commands of one invocation.
type app struct {
	flags rootFlags

	configDir string
	v         *viper.Viper
	cfg       types.Config
	log       *zap.Logger
	logOut    io.Writer

	now func() time.Time
}

// systemError marks failures of the environment (filesystem, config) as
// opposed to rejected user input.
type systemError struct{ err error }

func (e *systemError) Error() string { return e.err.Error() }
func (e *systemError) Unwrap() error { return e.err }

func sysErr(err error) error { return &systemError{err: err} }

// exitCode maps a command error to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *systemError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}

// NewRootCmd creates the top-level "habits" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{now: time.Now, logOut: os.Stderr})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "habits",
		Short: "Track daily habits, streaks and completion rates",
		Long: `habits is a session habit tracker. Register habits, log daily completions,
and review streaks, completion rates, category groupings and a weekly report.
Running habits without a subcommand starts the interactive menu.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, a)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/habits)")
	pf.StringVar(&a.flags.userName, "user", "", "display name of the user")
	pf.StringVar(&a.flags.format, "format", "", "output format: text, json, yaml or toml")
	pf.StringVar(&a.flags.streakPolicy, "streak-policy", "", "current streak policy: last-logged or active")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newSessionCmd(a))
	root.AddCommand(newDemoCmd(a))
	root.AddCommand(newCategoriesCmd(a))

	return root
}

// setup resolves the config directory, loads configuration and builds the
// logger.
func (a *app) setup(cmd *cobra.Command) error {
	dir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysErr(fmt.Errorf("resolve config dir: %w", err))
	}
	a.configDir = dir

	v, cfg, err := loadConfig(dir, cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	a.v, a.cfg = v, cfg

	level := cfg.LogLevel
	if a.flags.verbose {
		level = "debug"
	}
	if a.logOut == nil {
		a.logOut = os.Stderr
	}
	log, err := logging.NewWithWriter(level, a.logOut)
	if err != nil {
		return err
	}
	a.log = log
	a.log.Debug("config loaded",
		zap.String("config_dir", dir),
		zap.String("config_file", v.ConfigFileUsed()),
		zap.String("streak_policy", string(cfg.StreakPolicy)),
		zap.String("format", cfg.Format),
	)
	return nil
}

// newTracker builds the session registry from the loaded configuration.
func (a *app) newTracker() *registry.Registry {
	r := registry.New(
		registry.WithLogger(a.log),
		registry.WithClock(a.now),
		registry.WithStreakPolicy(a.cfg.StreakPolicy),
	)
	r.SetUserName(a.cfg.UserName)
	return r
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "habits:", err)
		os.Exit(exitCode(err))
	}
}
