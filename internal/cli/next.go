package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNextCmd(opts *rootOptions) *cobra.Command {
	var releaseFlag string

	cmd := &cobra.Command{
		Use:   "next <folder> <versionSourceFile>",
		Short: "Print the release category and next version",
		Long: `Print the release category (major, minor, patch) and the version that
condense would write, separated by a space. Useful for tagging in CI.`,
		Example: `  changelog next changes/ package.json
  # minor 1.3.0
  changelog next changes/ package.json --release major
  # major 2.0.0`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := parseReleaseFlag(releaseFlag)
			if err != nil {
				return err
			}
			release, err := computeRelease(cmd, opts, args[0], args[1], category)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", release.Category, release.Version)
			return nil
		},
	}

	addReleaseFlag(cmd, &releaseFlag)
	return cmd
}
