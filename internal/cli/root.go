// Package cli implements the octofit command-line interface: one command per
// dashboard view plus overview, serve, export, config and version.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/octofit/internal/apiclient"
	"github.com/mesh-intelligence/octofit/internal/paths"
	"github.com/mesh-intelligence/octofit/internal/views"
	"github.com/mesh-intelligence/octofit/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	verbose   bool
}

// app is the state shared by subcommands once the root has loaded config.
type app struct {
	flags     rootFlags
	configDir string
	cfg       types.Config
	logger    *log.Logger
	client    *apiclient.Client
	env       views.Env
}

// exitError carries the process exit code for a failed command. Silent
// errors have already been reported on stdout.
type exitError struct {
	code   int
	err    error
	silent bool
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// NewRootCmd creates the top-level "octofit" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "octofit",
		Short: "OctoFit Tracker dashboard",
		Long: "octofit shows the activities, users, teams, leaderboard and workouts\n" +
			"served by an OctoFit API, in the terminal or as a web dashboard.",
		Version: Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir/octofit)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "export directory (default: $(CWD)/"+paths.DefaultExportDirName+")")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "log fetch traces to stderr")

	for _, v := range views.All() {
		root.AddCommand(newViewCmd(a, v))
	}
	root.AddCommand(newOverviewCmd(a))
	root.AddCommand(newServeCmd(a))
	root.AddCommand(newExportCmd(a))
	root.AddCommand(newConfigCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		var ee *exitError
		if !errors.As(err, &ee) || !ee.silent {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(ExitCode(err))
	}
}

// setup resolves directories, loads config.yaml and builds the API client.
func (a *app) setup(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return userError(fmt.Errorf("resolve config dir: %w", err))
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return userError(err)
	}
	cfg, err := configFromViper(v)
	if err != nil {
		return userError(err)
	}

	a.configDir = configDir
	a.cfg = cfg
	a.logger = log.New(io.Discard, "", 0)
	if a.flags.verbose {
		a.logger = log.New(cmd.ErrOrStderr(), "octofit: ", log.LstdFlags)
	}
	a.client = apiclient.New(cfg.BaseURL(), cfg.RequestTimeout, apiclient.WithLogger(a.logger))
	a.env = views.NewEnv(cfg.LocaleOrDefault(), cfg.RankBy)
	return nil
}

// resolveDataDir returns the export directory: --data-dir flag > config
// data_dir > OCTOFIT_DATA_DIR env > default.
func (a *app) resolveDataDir() (string, error) {
	return paths.ResolveDataDir(a.flags.dataDir, a.cfg.DataDir)
}
