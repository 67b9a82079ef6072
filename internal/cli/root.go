// Package cli implements the changelog command line interface.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/changelog/internal/config"
	clierrors "github.com/ariel-frischer/changelog/internal/errors"
	"github.com/ariel-frischer/changelog/internal/logging"
	"github.com/ariel-frischer/changelog/internal/output"
)

// rootOptions holds the persistent flags and the state resolved from them
// before a subcommand runs.
type rootOptions struct {
	configPath string
	logLevel   string
	noColor    bool
	exclude    []string

	cfg    *config.Configuration
	logger *slog.Logger
}

// NewRootCmd builds the changelog command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "changelog",
		Short: "Validate and condense per-pull-request changelog entries",
		Long: `changelog manages a folder of small YAML change entries, one per pull request.

Each entry maps a change type (add, breaking, change, deprecate, fix, remove,
security) to a list of messages. The tool validates those files and condenses
them into a single markdown release section with the next semantic version.`,
		Example: `  # Check every entry in the folder
  changelog validate changes/

  # Produce the release notes, bumping the version in package.json
  changelog condense changes/ package.json --date 2024-01-15`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.resolve(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default: .changelog.yml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Diagnostic log level: debug, info, warn, error")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.StringArrayVar(&opts.exclude, "exclude", nil, "Filename pattern to skip in the entry folder (repeatable)")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return clierrors.NewArgumentErrorWithUsage(err.Error(), c.UseLine(),
			fmt.Sprintf("Run '%s --help' for usage", c.CommandPath()))
	})

	cmd.AddCommand(
		newValidateCmd(opts),
		newCondenseCmd(opts),
		newNextCmd(opts),
		newSummaryCmd(opts),
		newInitCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// resolve loads configuration, applies explicit flags on top, and builds
// the logger.
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return clierrors.InvalidConfig(err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("no-color") {
		cfg.NoColor = o.noColor
	}
	if flags.Changed("exclude") {
		cfg.Exclude = append(cfg.Exclude, o.exclude...)
	}
	if err := config.ValidateConfigValues(cfg, "flags"); err != nil {
		return clierrors.InvalidConfig(err)
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return clierrors.InvalidConfig(err)
	}

	output.SetNoColor(cfg.NoColor)
	o.cfg = cfg
	o.logger = logger
	logger.Debug("configuration loaded",
		"line_width", cfg.LineWidth,
		"exclude", cfg.Exclude,
		"log_level", cfg.LogLevel)
	return nil
}

// Execute runs the CLI with the process arguments.
// The returned error carries the exit code; see ExitCode.
func Execute() error {
	return execute(NewRootCmd(), os.Args[1:])
}

func execute(root *cobra.Command, args []string) error {
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return nil
	}
	return report(root, err)
}

// report prints err and returns it as an *ExitError. Domain failures get a
// one-line summary on stdout next to the command's other output; the full
// message with remediation goes to stderr.
func report(root *cobra.Command, err error) *ExitError {
	code := ExitCode(err)

	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return exitErr
	}

	cliErr := clierrors.FromError(err)
	switch cliErr.Category {
	case clierrors.Input, clierrors.Schema, clierrors.Version:
		fmt.Fprintln(root.OutOrStdout(), cliErr.Error())
	}
	clierrors.FprintError(root.ErrOrStderr(), cliErr)

	return NewExitError(code, err)
}
