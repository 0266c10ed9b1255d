// Package render draws alignments and cost tables for terminal output.
package render

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/lvedit/editdist"
)

// Options controls rendering.
type Options struct {
	// Color paints each transformation; see ColorEnabled.
	Color bool
	// Vertical lists one position per row instead of one per column.
	Vertical bool
}

// epsilon labels the empty-prefix row and column of a cost table.
const epsilon = "ε"

var opColors = map[editdist.Op]text.Colors{
	editdist.Match:      {text.FgGreen},
	editdist.Substitute: {text.FgYellow},
	editdist.Delete:     {text.FgRed},
	editdist.Insert:     {text.FgCyan},
}

// ColorEnabled reports whether f is a terminal and NO_COLOR is unset.
func ColorEnabled(f *os.File) bool {
	if f == nil || os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func paint(op editdist.Op, s string, opts Options) string {
	if !opts.Color {
		return s
	}

	return opColors[op].Sprint(s)
}

// Alignment renders an aligned pair with its manipulation sequence.
func Alignment(al editdist.Aligned[string], opts Options) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	if opts.Vertical {
		tw.AppendHeader(table.Row{"#", "op", "source", "target"})
		for k, op := range al.Ops {
			tw.AppendRow(table.Row{
				k + 1,
				paint(op, op.String(), opts),
				paint(op, al.Source[k], opts),
				paint(op, al.Target[k], opts),
			})
		}
		tw.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})
		return tw.Render()
	}

	src := make(table.Row, 0, len(al.Ops)+1)
	tgt := make(table.Row, 0, len(al.Ops)+1)
	ops := make(table.Row, 0, len(al.Ops)+1)
	src = append(src, "source")
	tgt = append(tgt, "target")
	ops = append(ops, "op")
	for k, op := range al.Ops {
		src = append(src, paint(op, al.Source[k], opts))
		tgt = append(tgt, paint(op, al.Target[k], opts))
		ops = append(ops, paint(op, op.String(), opts))
	}
	tw.AppendRows([]table.Row{src, tgt, ops})

	return tw.Render()
}

// Matrix renders the cost table with source labels down the side and target
// labels across the top.
func Matrix(m *editdist.Matrix, source, target []string) (string, error) {
	if m.Rows() != len(source)+1 || m.Cols() != len(target)+1 {
		return "", fmt.Errorf("render matrix %dx%d for %d/%d elements: %w",
			m.Rows(), m.Cols(), len(source), len(target), editdist.ErrDimensionMismatch)
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, 0, m.Cols()+1)
	header = append(header, "", epsilon)
	for _, t := range target {
		header = append(header, t)
	}
	tw.AppendHeader(header)

	configs := make([]table.ColumnConfig, 0, m.Cols())
	for j := 0; j < m.Cols(); j++ {
		configs = append(configs, table.ColumnConfig{Number: j + 2, Align: text.AlignRight})
	}
	tw.SetColumnConfigs(configs)

	for i := 0; i < m.Rows(); i++ {
		label := epsilon
		if i > 0 {
			label = source[i-1]
		}
		row := make(table.Row, 0, m.Cols()+1)
		row = append(row, label)
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return "", err
			}
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		tw.AppendRow(row)
	}

	return tw.Render(), nil
}

// Summary renders distance and per-operation counts as a two-column table.
func Summary(distance float64, c editdist.Counts) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendRows([]table.Row{
		{"distance", strconv.FormatFloat(distance, 'g', -1, 64)},
		{"matches", c.Matches},
		{"substitutions", c.Substitutions},
		{"deletions", c.Deletions},
		{"insertions", c.Insertions},
		{"error rate", strconv.FormatFloat(c.ErrorRate(), 'f', 4, 64)},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})

	return tw.Render()
}
