package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/changelog/internal/config"
	clierrors "github.com/ariel-frischer/changelog/internal/errors"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented .changelog.yml",
		Long: `Write a project configuration file with every option and its default
value. The file goes to .changelog.yml, or to the --config path when given.`,
		Example: `  changelog init
  changelog init --config ci/changelog.yml --force`,
		Args: cobra.NoArgs,
		// The file being written may not exist or parse yet.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := opts.configPath
			if path == "" {
				path = config.ProjectConfigPath()
			}
			return writeConfigTemplate(cmd, path, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	return cmd
}

func writeConfigTemplate(cmd *cobra.Command, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return clierrors.NewConfigError(
			fmt.Sprintf("config file %s already exists", path),
			"Use --force to overwrite",
		)
	}

	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "writing config file")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}
