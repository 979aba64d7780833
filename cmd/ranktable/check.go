package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"arithrank/internal/arith"
)

type checkPayload struct {
	A             string `json:"a"`
	B             string `json:"b"`
	SameCategory  bool   `json:"same_category"`
	SignViolation bool   `json:"sign_violation"`
	RankA         int    `json:"rank_a"`
	RankB         int    `json:"rank_b"`
	Safe          bool   `json:"safe"`
	Reason        string `json:"reason"`
}

var (
	safeColor   = color.New(color.FgGreen, color.Bold)
	unsafeColor = color.New(color.FgRed, color.Bold)
)

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FROM TO",
		Short: "Explain whether a FROM value may implicitly become a TO",
		Long: `check evaluates the rank rule for one pair of types.

By default the pair is read in conversion order: the target must cover the
source. With --raw the rule is applied literally, FROM as the covering side.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseTypeArg("FROM", args[0])
			if err != nil {
				return err
			}
			to, err := parseTypeArg("TO", args[1])
			if err != nil {
				return err
			}
			raw, err := cmd.Flags().GetBool("raw")
			if err != nil {
				return err
			}
			value, err := stringSetting(cmd, "format", a.cfg.Output.Format)
			if err != nil {
				return err
			}
			format, err := readOutputFormat(value)
			if err != nil {
				return err
			}

			v := arith.Explain(to, from)
			if raw {
				v = arith.Explain(from, to)
			}
			if format == outputJSON {
				return renderCheckJSON(cmd.OutOrStdout(), v)
			}
			renderCheckPretty(cmd.OutOrStdout(), from, to, v)
			return nil
		},
	}
	cmd.Flags().Bool("raw", false, "apply the rank rule with FROM as the covering side")
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func renderCheckPretty(out io.Writer, from, to arith.Type, v arith.Verdict) {
	status := unsafeColor.Sprint("unsafe")
	if v.Safe {
		status = safeColor.Sprint("safe")
	}
	fmt.Fprintf(out, "%s -> %s: %s\n", from, to, status)
	fmt.Fprintf(out, "  %s\n", v.Reason())
}

func renderCheckJSON(out io.Writer, v arith.Verdict) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(checkPayload{
		A:             v.A.String(),
		B:             v.B.String(),
		SameCategory:  v.SameCategory,
		SignViolation: v.SignViolation,
		RankA:         v.RankA,
		RankB:         v.RankB,
		Safe:          v.Safe,
		Reason:        v.Reason(),
	})
}

// parseTypeArg wraps arith.ParseType with the argument position for error messages.
func parseTypeArg(what, value string) (arith.Type, error) {
	t, err := arith.ParseType(value)
	if err != nil {
		return arith.TypeInvalid, fmt.Errorf("%s: %w", what, err)
	}
	return t, nil
}
