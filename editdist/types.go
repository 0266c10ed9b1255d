// SPDX-License-Identifier: MIT

package editdist

import (
	"fmt"
	"strings"
)

// Op is one elementary transformation of a manipulation sequence.
type Op uint8

const (
	// Match keeps an element that is equal on both sides. Cost is always 0.
	Match Op = iota
	// Substitute replaces a source element by a different target element.
	Substitute
	// Delete drops a source element.
	Delete
	// Insert adds a target element.
	Insert

	numOps = 4
)

// Text forms of the transformations and of the padding marker.
const (
	MatchText      = "<MAT>"
	SubstituteText = "<SUB>"
	DeleteText     = "<DEL>"
	InsertText     = "<INS>"

	// Padding is the marker placed on one side of a string alignment where the
	// other side has an insertion or deletion.
	Padding = "<PAD>"
)

var opText = [numOps]string{MatchText, SubstituteText, DeleteText, InsertText}

// Valid reports whether o is one of the four transformations.
func (o Op) Valid() bool { return o < numOps }

// String returns the bracketed text form, e.g. "<SUB>".
func (o Op) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Op(%d)", uint8(o))
	}

	return opText[o]
}

// Diagonal reports whether o consumes one element of each side.
func (o Op) Diagonal() bool { return o == Match || o == Substitute }

// MarshalText implements encoding.TextMarshaler.
func (o Op) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, editErrorf("Op.MarshalText", ErrUnknownOp)
	}

	return []byte(opText[o]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Op) UnmarshalText(b []byte) error {
	v, err := ParseOp(string(b))
	if err != nil {
		return err
	}
	*o = v

	return nil
}

// ParseOp parses "<MAT>", "MAT", "match" and the other spellings
// (case-insensitive) into an Op.
func ParseOp(s string) (Op, error) {
	key := strings.ToUpper(strings.Trim(strings.TrimSpace(s), "<>"))
	switch key {
	case "MAT", "MATCH":
		return Match, nil
	case "SUB", "SUBSTITUTE", "SUBSTITUTION":
		return Substitute, nil
	case "DEL", "DELETE", "DELETION":
		return Delete, nil
	case "INS", "INSERT", "INSERTION":
		return Insert, nil
	}

	return 0, fmt.Errorf("ParseOp(%q): %w", s, ErrUnknownOp)
}

// Strings renders a manipulation sequence in its text form.
func Strings(ops []Op) []string {
	out := make([]string, len(ops))
	for i, o := range ops {
		out[i] = o.String()
	}

	return out
}

// EqualFunc reports whether two elements are equal.
type EqualFunc[T any] func(a, b T) bool

// Aligned is a padded, position-aligned rendering of two sequences.
// Source, Target and Ops always have the same length; position k of Source and
// Target is produced by Ops[k].
type Aligned[T any] struct {
	Source []T
	Target []T
	Ops    []Op
}

// Len returns the common length of the aligned sequences.
func (a Aligned[T]) Len() int { return len(a.Ops) }

// SourcePadded reports whether position k of Source holds the padding value.
func (a Aligned[T]) SourcePadded(k int) bool { return a.Ops[k] == Insert }

// TargetPadded reports whether position k of Target holds the padding value.
func (a Aligned[T]) TargetPadded(k int) bool { return a.Ops[k] == Delete }
