package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	ctx := newCommandContext()

	rootCmd := &cobra.Command{
		Use:           "lvedit",
		Short:         "Weighted edit distance, manipulation sequences and alignments",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	ctx.bind(rootCmd)

	rootCmd.AddCommand(newDistanceCommand(ctx))
	rootCmd.AddCommand(newAlignCommand(ctx))
	rootCmd.AddCommand(newMatrixCommand(ctx))
	rootCmd.AddCommand(newBatchCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
