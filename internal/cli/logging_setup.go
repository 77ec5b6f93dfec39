package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/appbrowser/internal/config"
	"github.com/rshade/appbrowser/internal/logging"
)

// setupLogging configures logging based on config file, environment, and CLI flags.
//
// Interactive commands running on a terminal log to the configured file only,
// so log lines never land on top of the view.
func setupLogging(cmd *cobra.Command, s *session) error {
	level := s.cfg.Logging.Level
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = "debug"
	}

	console := !s.interactive(cmd)
	if err := config.InitLogger(level, s.cfg.Logging.File, console); err != nil {
		// A bad log file path should not stop the command.
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open log file: %v\n", err)
		if err := config.InitLogger(level, "", console); err != nil {
			return err
		}
	}
	logger = logging.ComponentLogger(config.GetLogger(), "cli")

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")
	return nil
}

// cleanupLogging flushes and closes the log file opened by setupLogging.
func cleanupLogging(cmd *cobra.Command) error {
	logger.Debug().Ctx(cmd.Context()).Str("command", cmd.Name()).Msg("command finished")
	config.CloseLogFile()
	return nil
}

// interactive reports whether cmd will take over the terminal.
func (s *session) interactive(cmd *cobra.Command) bool {
	return cmd.Annotations[annotationInteractive] == "true" && s.stdoutTTY()
}
