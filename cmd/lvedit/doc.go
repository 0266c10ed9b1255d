// Command lvedit computes weighted edit distances, manipulation sequences and
// alignments from the command line.
//
//	lvedit distance kitten sitting
//	lvedit align --seed 7 tent test!
//	lvedit matrix --tokens words "the cat" "the hat"
//	lvedit batch -i pairs.jsonl -o results.jsonl --align --workers 8
//	lvedit config sample > lvedit.toml
//
// Costs, tie-break preferences, tokenization and logging come from a TOML
// file (--config or $LVEDIT_CONFIG); flags override individual values.
package main
