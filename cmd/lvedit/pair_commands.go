package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvedit/editdist"
	"github.com/katalvlaran/lvedit/internal/render"
)

type distanceOutput struct {
	Source   []string `json:"source"`
	Target   []string `json:"target"`
	Distance float64  `json:"distance"`
}

func newDistanceCommand(ctx *commandContext) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "distance SOURCE TARGET",
		Short: "Print the minimum weighted edit distance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := checkFormat(format)
			if err != nil {
				return err
			}
			cm, err := ctx.costModel()
			if err != nil {
				return err
			}
			src, tgt, err := ctx.tokenPair(args)
			if err != nil {
				return err
			}
			d, err := editdist.Distance(src, tgt, cm)
			if err != nil {
				return err
			}
			if f == formatJSON {
				return writeJSON(cmd.OutOrStdout(), distanceOutput{Source: src, Target: tgt, Distance: d})
			}
			return writeLine(cmd.OutOrStdout(), strconv.FormatFloat(d, 'g', -1, 64))
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatPlain, "Output format: plain, json")

	return cmd
}

type alignOutput struct {
	Distance      float64         `json:"distance"`
	Ops           []editdist.Op   `json:"ops"`
	AlignedSource []string        `json:"aligned_source"`
	AlignedTarget []string        `json:"aligned_target"`
	Counts        editdist.Counts `json:"counts"`
	ErrorRate     float64         `json:"error_rate"`
	Seed          int64           `json:"seed"`
}

func newAlignCommand(ctx *commandContext) *cobra.Command {
	var (
		format   string
		vertical bool
		summary  bool
	)
	cmd := &cobra.Command{
		Use:   "align SOURCE TARGET",
		Short: "Print one cost-optimal manipulation sequence and the padded alignment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := checkFormat(format)
			if err != nil {
				return err
			}
			cm, err := ctx.costModel()
			if err != nil {
				return err
			}
			src, tgt, err := ctx.tokenPair(args)
			if err != nil {
				return err
			}
			m, err := editdist.Build(src, tgt, cm)
			if err != nil {
				return err
			}
			ops, err := editdist.Reconstruct(src, tgt, m, cm, editdist.NewRand(ctx.seed()))
			if err != nil {
				return err
			}
			al, err := editdist.Align(src, tgt, ops, editdist.Padding)
			if err != nil {
				return err
			}
			counts := editdist.Summarize(ops)
			ctx.logger.Debug("aligned", "distance", m.Distance(), "steps", len(ops), "seed", ctx.seed())

			out := cmd.OutOrStdout()
			switch f {
			case formatJSON:
				return writeJSON(out, alignOutput{
					Distance:      m.Distance(),
					Ops:           ops,
					AlignedSource: al.Source,
					AlignedTarget: al.Target,
					Counts:        counts,
					ErrorRate:     counts.ErrorRate(),
					Seed:          ctx.seed(),
				})
			case formatPlain:
				for _, line := range []string{
					strings.Join(editdist.Strings(ops), "\t"),
					strings.Join(al.Source, "\t"),
					strings.Join(al.Target, "\t"),
				} {
					if err := writeLine(out, line); err != nil {
						return err
					}
				}
				return nil
			}

			opts := render.Options{Color: render.ColorEnabled(stdoutFile(cmd)), Vertical: vertical}
			if err := writeLine(out, render.Alignment(al, opts)); err != nil {
				return err
			}
			if summary {
				return writeLine(out, render.Summary(m.Distance(), counts))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format: table, plain, json")
	cmd.Flags().BoolVar(&vertical, "vertical", false, "One alignment position per row")
	cmd.Flags().BoolVar(&summary, "summary", true, "Print distance and operation counts after the table")

	return cmd
}

func newMatrixCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix SOURCE TARGET",
		Short: "Print the dynamic-programming cost table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := ctx.costModel()
			if err != nil {
				return err
			}
			src, tgt, err := ctx.tokenPair(args)
			if err != nil {
				return err
			}
			m, err := editdist.Build(src, tgt, cm)
			if err != nil {
				return err
			}
			table, err := render.Matrix(m, src, tgt)
			if err != nil {
				return err
			}
			return writeLine(cmd.OutOrStdout(), table)
		},
	}
}
