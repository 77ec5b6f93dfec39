package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/appbrowser/internal/cli/pagination"
	"github.com/rshade/appbrowser/internal/tui"
)

func newBrowseCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse applications interactively",
		Long: `Open the interactive applications list.

The first page loads on start. Press enter to load more, arrow keys to move
between records and q to quit. When stdout is not a terminal the command
prints every page as a table instead.`,
		Annotations: map[string]string{annotationInteractive: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !s.stdoutTTY() {
				logger.Debug().Ctx(cmd.Context()).Msg("stdout is not a terminal, printing instead")
				params := pagination.NewParams(s.cfg.API.PageSize)
				return runList(cmd.Context(), cmd.OutOrStdout(), s, *params)
			}
			return runInteractiveBrowse(cmd.Context(), s)
		},
	}
}

func runInteractiveBrowse(ctx context.Context, s *session) error {
	formatter, err := newFormatter(s.cfg)
	if err != nil {
		return err
	}
	model := tui.NewApplicationsModel(ctx, newLoader(s.cfg, s.cfg.API.PageSize), formatter)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}
