package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/changelog/internal/build"
)

func newVersionCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Display version information (v)",
		Long:    "Display version, commit, build date, and Go version information for changelog",
		Example: `  # Show version info
  changelog version

  # Plain output (for scripts)
  changelog version --plain`,
		Args: cobra.NoArgs,
		// Build metadata does not depend on configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			info := build.Current()
			if plain {
				printPlainVersion(cmd.OutOrStdout(), info)
				return
			}
			printPrettyVersion(cmd.OutOrStdout(), info)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Plain output without formatting")
	return cmd
}

// printPlainVersion prints a simple version output for scripting
func printPlainVersion(w io.Writer, info build.Info) {
	fmt.Fprintf(w, "changelog %s\n", info.Version)
	fmt.Fprintf(w, "commit: %s\n", info.Commit)
	fmt.Fprintf(w, "built: %s\n", info.BuildDate)
	fmt.Fprintf(w, "go: %s\n", info.GoVersion)
	fmt.Fprintf(w, "platform: %s\n", info.Platform)
}

func printPrettyVersion(w io.Writer, info build.Info) {
	yellow := color.New(color.FgYellow).SprintFunc()
	white := color.New(color.FgWhite, color.Bold).SprintFunc()

	rows := []struct {
		label string
		value string
	}{
		{"Version", info.Version},
		{"Commit", info.Commit},
		{"Built", info.BuildDate},
		{"Go", info.GoVersion},
		{"Platform", info.Platform},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s  %s\n", yellow(fmt.Sprintf("%10s", r.label)), white(r.value))
	}
}
