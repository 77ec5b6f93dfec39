package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/appbrowser/pkg/version"
)

func newVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Skips config loading so version works with a broken config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		PersistentPostRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			kind := "development build"
			if version.IsRelease() {
				kind = "release"
			}
			fmt.Fprintf(out, "appbrowser %s (%s)\n", ver, kind)
			fmt.Fprintf(out, "commit: %s\n", version.GetGitCommit())
			fmt.Fprintf(out, "built: %s\n", version.GetBuildDate())
			fmt.Fprintf(out, "user agent: %s\n", version.UserAgent())
			return nil
		},
	}
}
