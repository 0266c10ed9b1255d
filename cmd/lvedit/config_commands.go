package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvedit/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "sample",
		Short: "Print an annotated sample configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write([]byte(config.SampleConfig()))
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration after file and flag overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := ctx.cfg.Encode()
			if err != nil {
				return err
			}
			if ctx.cfgPath != "" {
				if err := writeLine(cmd.OutOrStdout(), "# loaded from "+ctx.cfgPath); err != nil {
					return err
				}
			}
			_, err = cmd.OutOrStdout().Write(raw)
			return err
		},
	})

	return cmd
}
