// SPDX-License-Identifier: MIT

// Package editdist computes weighted edit (Levenshtein) distances between
// arbitrary sequences, reconstructs one cost-optimal manipulation sequence
// and renders it as a padded element-wise alignment.
//
// 🚀 What is it for?
//
//	Edit distance counts the cheapest way to turn a source sequence into a
//	target one using four elementary transformations:
//	  • <MAT> match        — equal elements, zero cost
//	  • <SUB> substitution — replace one element, SubstitutionWeight
//	  • <DEL> deletion     — drop a source element, DeletionWeight
//	  • <INS> insertion    — add a target element, InsertionWeight
//	It is used for OCR/ASR evaluation (reference vs. hypothesis), fuzzy
//	matching, and for generating noisy training alignments.
//
// ✨ Key features:
//   - generic over any comparable element type (runes, tokens, structs)
//   - weighted costs with the weight-scaled border policy
//   - stochastic, seedable tie-breaking among all cost-optimal moves
//   - two-row Distance for O(min(N,M)) memory when no path is needed
//   - alignment with a caller-chosen padding value
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvedit/editdist"
//
//	cm, err := editdist.NewCostModel(
//	  editdist.WithWeights(1, 1, 1),                        // del, ins, sub
//	  editdist.WithSelectionWeights(0.4, 0.2, 0.2, 0.2),    // mat, sub, del, ins
//	)
//	src := []rune("tent")
//	tgt := []rune("test!")
//	d, _ := editdist.Distance(src, tgt, cm)                // 2
//	al, _ := editdist.Alignment(src, tgt, cm, rand.New(rand.NewSource(7)), '_')
//	fmt.Println(editdist.Strings(al.Ops))                  // [<MAT> <MAT> <SUB> <MAT> <INS>]
//
// Pipeline:
//
//	CostModel → Build (matrix) → Reconstruct (ops) → Align (padded pair)
//
// Performance:
//
//   - Build / Reconstruct: O(N·M) time and memory
//   - Distance:            O(N·M) time, O(min(N,M)) memory
//   - Align:               O(N+M)
//
// Concurrency:
//
//	Every function is synchronous and pure. A *CostModel is immutable and may be
//	shared. A *math/rand.Rand is NOT goroutine-safe: use one per goroutine or wrap
//	a shared one with NewLockedRand.
package editdist
