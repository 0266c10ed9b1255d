// Package batch runs edit-distance computations over many (source, target)
// pairs with a bounded worker pool.
//
// Parallelism lives here, at the granularity of whole pairs; the editdist core
// stays single-threaded. Every pair draws tie-breaks from its own stream,
// derived from the base seed and the pair's position, so the output does not
// depend on the number of workers or on scheduling.
//
// Input and output are JSON Lines. Each input record needs "source" and
// "target", either as strings (tokenized with the configured tokenize.Options)
// or as arrays of tokens. Output records are the input records annotated in
// place, so any extra fields survive.
package batch
