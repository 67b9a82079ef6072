package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/changelog/internal/changelog"
)

func newSummaryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <folder>",
		Short: "Show a table of pending changes by type",
		Long: `Show how many messages and files each change type has in the folder,
followed by the release category the entries imply.`,
		Example: `  changelog summary changes/`,
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := loadAndValidate(cmd, opts, args[0])
			if err != nil {
				return err
			}
			summary, err := changelog.Summarize(entries)
			if err != nil {
				return err
			}
			writeSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	}
}

func writeSummary(w io.Writer, s *changelog.Summary) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Type", "Messages", "Files"})
	for _, ts := range s.Types {
		tbl.AppendRow(table.Row{string(ts.Type), ts.Messages, ts.Files})
	}
	tbl.AppendFooter(table.Row{"Total", s.Messages(), s.Files})
	tbl.Render()

	fmt.Fprintf(w, "Release: %s\n", s.Category)
}
