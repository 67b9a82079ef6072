package cli

import (
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/changelog/internal/output"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <folder>",
		Short: "Validate the YAML files in a changelog folder",
		Long: `Validate every change entry in a folder.

Each violation is printed as "[file] message" and the command exits 1.
An empty folder also fails. When every entry is valid the command prints
"No errors found." and exits 0.`,
		Example: `  changelog validate changes/
  changelog validate changes/ --exclude .gitkeep`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts, args[0])
		},
	}
}

func runValidate(cmd *cobra.Command, opts *rootOptions, dir string) error {
	if _, err := loadAndValidate(cmd, opts, dir); err != nil {
		return err
	}
	output.PrintSuccess(cmd.OutOrStdout(), "No errors found.")
	return nil
}
