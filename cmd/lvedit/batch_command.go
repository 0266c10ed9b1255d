package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvedit/internal/batch"
)

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var (
		inPath  string
		outPath string
		workers int
		align   bool
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Process JSON Lines of {\"source\",\"target\"} pairs in parallel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := ctx.costModel()
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if inPath != "" && inPath != "-" {
				f, err := os.Open(inPath)
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}
			pairs, err := batch.ReadPairs(in, ctx.cfg.TokenizeOptions())
			if err != nil {
				return err
			}

			opts := batch.Options{
				Workers: ctx.cfg.Batch.Workers,
				Seed:    ctx.cfg.Batch.Seed,
				Align:   align,
				Logger:  ctx.logger,
			}
			if cmd.Flags().Changed("workers") {
				opts.Workers = workers
			}
			results, runErr := batch.NewRunner(cm, opts).Run(cmd.Context(), pairs)

			var out io.Writer = cmd.OutOrStdout()
			if outPath != "" && outPath != "-" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				out = f
			}
			if runErr != nil {
				return runErr
			}
			return batch.WriteResults(out, results)
		},
	}
	cmd.Flags().StringVarP(&inPath, "input", "i", "-", "Input JSONL file (- for stdin)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "-", "Output JSONL file (- for stdout)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Worker goroutines (0 = number of CPUs)")
	cmd.Flags().BoolVar(&align, "align", false, "Also emit manipulation sequences and alignments")

	return cmd
}
