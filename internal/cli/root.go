package cli

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/appbrowser/internal/config"
)

// annotationInteractive marks commands that take over the terminal.
const annotationInteractive = "interactive"

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// session holds what the root command resolves before any subcommand runs.
type session struct {
	lookupEnv func(string) (string, bool)
	cfg       *config.Config
	stdoutTTY func() bool
}

// NewRootCmd creates the root Cobra command for the appbrowser CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithArgs(ver, os.Args, os.LookupEnv)
}

// NewRootCmdWithArgs creates the root command with explicit args and env lookup for testability.
// args[0] is the program name; the rest are parsed as command-line arguments.
func NewRootCmdWithArgs(
	ver string,
	args []string,
	lookupEnv func(string) (string, bool),
) *cobra.Command {
	return newRootCmd(ver, args, lookupEnv, func() bool { return isTerminal(os.Stdout) })
}

func newRootCmd(
	ver string,
	args []string,
	lookupEnv func(string) (string, bool),
	stdoutTTY func() bool,
) *cobra.Command {
	s := &session{lookupEnv: lookupEnv, stdoutTTY: stdoutTTY}

	useName := "appbrowser"
	if len(args) > 0 && args[0] != "" {
		useName = filepath.Base(args[0])
	}

	cmd := &cobra.Command{
		Use:           useName,
		Short:         "Browse loan applications page by page",
		Long:          "appbrowser: fetch loan applications from a paged HTTP endpoint and browse them in the terminal",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := s.loadConfig(cmd); err != nil {
				return err
			}
			return setupLogging(cmd, s)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "path to config file (default $APPBROWSER_CONFIG or ~/.appbrowser/config.yaml)")
	cmd.AddCommand(newBrowseCmd(s), newListCmd(s), newVersionCmd(ver))

	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	}
	return cmd
}

// loadConfig resolves the config file path and loads it.
func (s *session) loadConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath(s.lookupEnv)
	}
	cfg, err := config.Load(path, s.lookupEnv)
	if err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}

const rootCmdExample = `  # Browse applications interactively
  appbrowser browse

  # Print the first two pages as a table
  appbrowser list --pages 2

  # Print everything from page 3 onwards as JSON, 20 per page
  appbrowser list --page 3 --page-size 20 --output json

  # Use a different endpoint
  APPBROWSER_API_URL=https://api.example.com/applications appbrowser browse`
