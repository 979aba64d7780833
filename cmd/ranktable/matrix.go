package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"arithrank/internal/arith"
)

const (
	cellSafe   = "✓"
	cellUnsafe = "·"
)

func newMatrixCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Render which source types convert safely to which targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := stringSetting(cmd, "category", a.cfg.Matrix.Category)
			if err != nil {
				return err
			}
			types := arith.All()
			if value != "" && value != "all" {
				c, err := arith.ParseCategory(value)
				if err != nil {
					return err
				}
				types = typesIn(c)
			}
			renderMatrix(cmd.OutOrStdout(), types)
			if !a.quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "rows are sources, columns are targets; %s marks a safe conversion\n", cellSafe)
			}
			return nil
		},
	}
	cmd.Flags().String("category", "", "restrict to one category (integer|character|wide_character|boolean|floating)")
	return cmd
}

func typesIn(c arith.Category) []arith.Type {
	var out []arith.Type
	for _, t := range arith.All() {
		if t.MustCategory() == c {
			out = append(out, t)
		}
	}
	return out
}

func renderMatrix(out io.Writer, types []arith.Type) {
	safeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	unsafeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headStyle := lipgloss.NewStyle().Bold(true)

	labelWidth := 0
	for _, t := range types {
		if w := runewidth.StringWidth(t.String()); w > labelWidth {
			labelWidth = w
		}
	}
	colWidths := make([]int, len(types))
	for i, t := range types {
		colWidths[i] = max(runewidth.StringWidth(t.Ident()), runewidth.StringWidth(cellSafe))
	}

	var header strings.Builder
	header.WriteString(strings.Repeat(" ", labelWidth))
	for i, t := range types {
		header.WriteString(" ")
		header.WriteString(runewidth.FillRight(t.Ident(), colWidths[i]))
	}
	fmt.Fprintln(out, headStyle.Render(strings.TrimRight(header.String(), " ")))

	for _, from := range types {
		var line strings.Builder
		line.WriteString(runewidth.FillRight(from.String(), labelWidth))
		for i, to := range types {
			cell, style := cellUnsafe, unsafeStyle
			if arith.Convertible(from, to) {
				cell, style = cellSafe, safeStyle
			}
			line.WriteString(" ")
			line.WriteString(style.Render(cell))
			line.WriteString(strings.Repeat(" ", colWidths[i]-runewidth.StringWidth(cell)))
		}
		fmt.Fprintln(out, strings.TrimRight(line.String(), " "))
	}
}
