package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"arithrank/internal/snapshot"
)

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the rank table and safety matrix as msgpack or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := stringSetting(cmd, "format", a.cfg.Export.Format)
			if err != nil {
				return err
			}
			format, err := snapshot.ParseFormat(value)
			if err != nil {
				return err
			}
			path, err := stringSetting(cmd, "output", a.cfg.Export.Path)
			if err != nil {
				return err
			}
			snap, err := snapshot.Build()
			if err != nil {
				return err
			}
			if path == "" || path == "-" {
				return snapshot.Encode(cmd.OutOrStdout(), snap, format)
			}
			if err := snapshot.WriteFile(path, snap, format); err != nil {
				return fmt.Errorf("export %s: %w", path, err)
			}
			if !a.quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d types as %s to %s\n", len(snap.Types), format, path)
			}
			return nil
		},
	}
	cmd.Flags().String("format", "msgpack", "snapshot encoding (msgpack|json)")
	cmd.Flags().StringP("output", "o", "", "destination file (default stdout)")
	return cmd
}
