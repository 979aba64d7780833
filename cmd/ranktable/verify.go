package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"arithrank/internal/arith"
	"arithrank/internal/testkit"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the rank table for missing or inconsistent entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := testkit.CheckTableInvariants(); err != nil {
				return fmt.Errorf("rank table is inconsistent: %w", err)
			}
			if !a.quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "ok: %d types in %d tiers\n", len(arith.All()), len(arith.Tiers()))
			}
			return nil
		},
	}
}
