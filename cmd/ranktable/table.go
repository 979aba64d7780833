package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"arithrank/internal/snapshot"
)

func newTableCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "List every arithmetic type with its category, rank and signedness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := stringSetting(cmd, "format", a.cfg.Output.Format)
			if err != nil {
				return err
			}
			format, err := readOutputFormat(value)
			if err != nil {
				return err
			}
			snap, err := snapshot.Build()
			if err != nil {
				return err
			}
			if format == outputJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(snap.Types)
			}
			renderTable(cmd.OutOrStdout(), snap.Types)
			return nil
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

var tableHeader = []string{"TYPE", "IDENT", "CATEGORY", "RANK", "UNSIGNED"}

func renderTable(out io.Writer, rows []snapshot.Row) {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			row.Name,
			row.Ident,
			row.Category,
			strconv.Itoa(int(row.Rank)),
			yesNo(row.Unsigned),
		})
	}
	widths := columnWidths(tableHeader, cells)

	headStyle := lipgloss.NewStyle().Bold(true)
	fmt.Fprintln(out, headStyle.Render(joinPadded(tableHeader, widths)))
	for _, line := range cells {
		fmt.Fprintln(out, joinPadded(line, widths))
	}
}

func columnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func joinPadded(cells []string, widths []int) string {
	line := ""
	for i, cell := range cells {
		if i == len(cells)-1 {
			line += cell
			break
		}
		line += runewidth.FillRight(cell, widths[i]) + "  "
	}
	return line
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
