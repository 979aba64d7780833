package main

import (
	"github.com/spf13/cobra"

	"arithrank/internal/version"
)

// app carries the settings resolved before any subcommand runs.
type app struct {
	cfg   fileConfig
	color bool
	quiet bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "ranktable",
		Short:        "Inspect the portable arithmetic rank table",
		Long:         `ranktable prints categories, ranks and safe-conversion verdicts for the fundamental arithmetic types`,
		Version:      version.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().String("config", "", "path to ranktable.toml (default: search upwards from the working directory)")
	root.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	root.AddCommand(newTableCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newMatrixCmd(a))
	root.AddCommand(newExportCmd(a))
	root.AddCommand(newVerifyCmd(a))
	root.AddCommand(newVersionCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	configPath, err := flags.GetString("config")
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	colorValue := cfg.Output.Color
	if flags.Changed("color") || colorValue == "" {
		if colorValue, err = flags.GetString("color"); err != nil {
			return err
		}
	}
	mode, err := readColorMode(colorValue)
	if err != nil {
		return err
	}
	a.color = applyColorMode(mode, cmd.OutOrStdout())

	a.quiet, err = flags.GetBool("quiet")
	return err
}

// stringSetting prefers an explicitly set flag, then the config value, then the flag default.
func stringSetting(cmd *cobra.Command, flag, fromConfig string) (string, error) {
	value, err := cmd.Flags().GetString(flag)
	if err != nil {
		return "", err
	}
	if cmd.Flags().Changed(flag) || fromConfig == "" {
		return value, nil
	}
	return fromConfig, nil
}
