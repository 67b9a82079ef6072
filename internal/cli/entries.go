package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/changelog/internal/changelog"
	clierrors "github.com/ariel-frischer/changelog/internal/errors"
	"github.com/ariel-frischer/changelog/internal/output"
)

// msgNoEntries is printed when the folder holds no change entries.
const msgNoEntries = "No change entries found."

// loadAndValidate reads every entry in dir and checks it against the schema.
// An empty folder and any violations are printed to stdout and reported as
// an *ExitError with nothing left for the caller to print.
func loadAndValidate(cmd *cobra.Command, opts *rootOptions, dir string) ([]changelog.Entry, error) {
	entries, err := changelog.LoadDir(dir, changelog.LoadOptions{
		Exclude: opts.cfg.Exclude,
		Logger:  opts.logger,
	})
	if err != nil {
		return nil, loadFailure(dir, err)
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, msgNoEntries)
		return nil, NewExitError(ExitValidationFailed, nil)
	}

	if violations := changelog.Validate(entries); len(violations) > 0 {
		opts.logger.Debug("validation failed", "entries", len(entries), "violations", len(violations))
		for _, v := range violations {
			output.PrintViolation(out, v.Filename, v.Message)
		}
		return nil, NewExitError(ExitValidationFailed, nil)
	}

	opts.logger.Debug("entries valid", "entries", len(entries))
	return entries, nil
}

// loadFailure maps a LoadDir error to a CLI error.
func loadFailure(dir string, err error) error {
	switch {
	case errors.Is(err, filepath.ErrBadPattern):
		return clierrors.Wrap(err, clierrors.Configuration,
			"Exclude patterns use shell glob syntax, e.g. \"*.md\"")
	case errors.Is(err, fs.ErrNotExist):
		return clierrors.DirectoryNotFound(dir, err)
	default:
		return err
	}
}

// exactArgs is cobra.ExactArgs with an argument error carrying usage.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == n {
			return nil
		}
		return clierrors.NewArgumentErrorWithUsage(
			fmt.Sprintf("accepts %d arg(s), received %d", n, len(args)),
			cmd.UseLine(),
			fmt.Sprintf("Run '%s --help' for usage", cmd.CommandPath()),
		)
	}
}
