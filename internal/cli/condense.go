package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/changelog/internal/changelog"
	clierrors "github.com/ariel-frischer/changelog/internal/errors"
	"github.com/ariel-frischer/changelog/internal/manifest"
	"github.com/ariel-frischer/changelog/internal/output"
)

type condenseOptions struct {
	lineWidth int
	date      string
	release   string
	now       func() time.Time
}

func newCondenseCmd(opts *rootOptions) *cobra.Command {
	co := &condenseOptions{now: time.Now}

	cmd := &cobra.Command{
		Use:   "condense <folder> <versionSourceFile>",
		Short: "Condense the change entries into a markdown release section",
		Long: `Condense every change entry in a folder into one markdown release section.

The next version is derived from the "version" field of the version source
file (package.json or any JSON/YAML manifest): a breaking change bumps the
major version, an addition bumps the minor version, anything else bumps the
patch version. --release overrides that choice. Messages are wrapped at
--lineWidth columns.`,
		Example: `  changelog condense changes/ package.json
  changelog condense changes/ package.json -l 100 -d 2024-01-15`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCondense(cmd, opts, co, args[0], args[1])
		},
	}

	cmd.Flags().IntVarP(&co.lineWidth, "lineWidth", "l", changelog.DefaultLineWidth,
		"Line width at which to wrap change entries (0 = terminal width)")
	cmd.Flags().StringVarP(&co.date, "date", "d", "",
		"Exact date string for the version header (default: today, UTC)")
	addReleaseFlag(cmd, &co.release)

	return cmd
}

func runCondense(cmd *cobra.Command, opts *rootOptions, co *condenseOptions, dir, versionFile string) error {
	width := opts.cfg.LineWidth
	if cmd.Flags().Changed("lineWidth") {
		width = co.lineWidth
	}
	if width < 0 {
		return clierrors.NewArgumentError(
			fmt.Sprintf("line width must be at least 0, got %d", width),
			"Use 0 to wrap at the terminal width",
		)
	}
	category, err := parseReleaseFlag(co.release)
	if err != nil {
		return err
	}

	entries, err := loadAndValidate(cmd, opts, dir)
	if err != nil {
		return err
	}
	previous, err := manifest.ReadVersion(versionFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	err = changelog.Render(out, entries, changelog.RenderOptions{
		PreviousVersion: previous,
		LineWidth:       output.ResolveLineWidth(width),
		Date:            co.date,
		Now:             co.now,
		Release:         category,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(out)

	opts.logger.Info("release rendered",
		"previous", previous,
		"entries", len(entries),
		"release", category)
	return nil
}

// computeRelease validates the entries in dir and bumps the version read
// from versionFile. An empty category classifies the entries.
func computeRelease(cmd *cobra.Command, opts *rootOptions, dir, versionFile string, category changelog.ReleaseCategory) (*changelog.Release, error) {
	entries, err := loadAndValidate(cmd, opts, dir)
	if err != nil {
		return nil, err
	}

	previous, err := manifest.ReadVersion(versionFile)
	if err != nil {
		return nil, err
	}

	release, err := changelog.NewReleaseWithCategory(entries, previous, category)
	if err != nil {
		return nil, err
	}

	opts.logger.Info("release computed",
		"previous", release.Previous,
		"version", release.Version,
		"category", release.Category,
		"messages", release.Changes.Count())
	return release, nil
}

// addReleaseFlag registers --release, which overrides the bump category.
func addReleaseFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "release", "r", "",
		"Force the release category: major, minor, or patch (default: derived from the entries)")
}

// parseReleaseFlag turns the --release value into a category. Empty means
// derive it from the entries.
func parseReleaseFlag(value string) (changelog.ReleaseCategory, error) {
	if value == "" {
		return "", nil
	}
	category, err := changelog.ParseReleaseCategory(value)
	if err != nil {
		return "", clierrors.NewArgumentError(err.Error(),
			"Pass --release major, --release minor, or --release patch")
	}
	return category, nil
}
