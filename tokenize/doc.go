// SPDX-License-Identifier: MIT

// Package tokenize turns text into the element sequences editdist compares.
//
// Three granularities are supported:
//   - chars    : one element per Unicode code point
//   - graphemes: one element per user-perceived character (rivo/uniseg),
//     so "e" + U+0301 or a flag emoji stays a single element
//   - words    : whitespace-separated fields
//
// Before splitting, text can be normalized (NFC/NFD/NFKC/NFKD via
// golang.org/x/text/unicode/norm) and case-folded (golang.org/x/text/cases).
// Normalizing both sides the same way is what makes "é" precomposed and "é"
// decomposed compare equal.
package tokenize
