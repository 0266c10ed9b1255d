// Package lvedit is a weighted edit-distance toolkit: minimum-cost
// transformation of one sequence into another, one optimal manipulation
// sequence picked with seeded, weighted tie-breaking, and a padded alignment.
//
// 🚀 What is inside?
//
//	• Cost model: per-transformation weights plus tie-break preferences
//	• Distance matrix: full DP table or a two-row rolling distance
//	• Path reconstruction: stochastic backtracking with a reproducible seed
//	• Aligner: equal-length source/target rows with a padding symbol
//	• Tokenizers: chars, grapheme clusters or words, Unicode normalized
//	• CLI and JSONL batch runner: cmd/lvedit
//
// ✨ Why choose lvedit?
//
//   - Generic – any comparable element type, or a custom EqualFunc
//   - Deterministic – same seed, same path
//   - Exact – the reported distance is the table's bottom-right cell
//
// Layout:
//
//	editdist/       — cost model, matrix, backtracking, alignment
//	tokenize/       — text to token sequences
//	internal/       — config (TOML), logging (slog), batch, render
//	cmd/lvedit/     — command-line front end
//	examples/       — runnable scenarios
//
// Quick example:
//
//	kitten → sitting
//	<SUB> <MAT> <MAT> <MAT> <SUB> <MAT> <INS>   distance = 3
//
//	go get github.com/katalvlaran/lvedit/editdist
package lvedit
