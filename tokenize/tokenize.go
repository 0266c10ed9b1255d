// SPDX-License-Identifier: MIT

package tokenize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var (
	// ErrUnknownMode indicates a tokenization mode other than chars, graphemes or words.
	ErrUnknownMode = errors.New("tokenize: unknown mode")

	// ErrUnknownNormalization indicates a normalization form other than none, nfc, nfd, nfkc or nfkd.
	ErrUnknownNormalization = errors.New("tokenize: unknown normalization form")
)

// Mode selects the element granularity.
type Mode string

const (
	Chars     Mode = "chars"
	Graphemes Mode = "graphemes"
	Words     Mode = "words"
)

// Normalization selects a Unicode normalization form.
type Normalization string

const (
	None Normalization = "none"
	NFC  Normalization = "nfc"
	NFD  Normalization = "nfd"
	NFKC Normalization = "nfkc"
	NFKD Normalization = "nfkd"
)

// Options configures Split. The zero value splits into chars without
// normalization or case folding.
type Options struct {
	Mode      Mode
	Normalize Normalization
	FoldCase  bool
}

// ParseMode accepts a mode name in any case; "" means Chars.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return Chars, nil
	case Chars, Graphemes, Words:
		return m, nil
	}

	return "", fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
}

// ParseNormalization accepts a form name in any case; "" means None.
func ParseNormalization(s string) (Normalization, error) {
	switch n := Normalization(strings.ToLower(strings.TrimSpace(s))); n {
	case "":
		return None, nil
	case None, NFC, NFD, NFKC, NFKD:
		return n, nil
	}

	return "", fmt.Errorf("ParseNormalization(%q): %w", s, ErrUnknownNormalization)
}

// Validate checks both enumerations.
func (o Options) Validate() error {
	if _, err := ParseMode(string(o.Mode)); err != nil {
		return err
	}
	_, err := ParseNormalization(string(o.Normalize))

	return err
}

// Prepare applies normalization and case folding without splitting.
func Prepare(s string, opts Options) (string, error) {
	form, err := ParseNormalization(string(opts.Normalize))
	if err != nil {
		return "", err
	}
	switch form {
	case NFC:
		s = norm.NFC.String(s)
	case NFD:
		s = norm.NFD.String(s)
	case NFKC:
		s = norm.NFKC.String(s)
	case NFKD:
		s = norm.NFKD.String(s)
	}
	if opts.FoldCase {
		// Folding can denormalize (e.g. U+0130); re-apply the requested form.
		s = cases.Fold().String(s)
		if form == NFC {
			s = norm.NFC.String(s)
		}
	}

	return s, nil
}

// Split prepares s and cuts it into elements.
//
// Complexity: O(len(s)).
func Split(s string, opts Options) ([]string, error) {
	mode, err := ParseMode(string(opts.Mode))
	if err != nil {
		return nil, err
	}
	s, err = Prepare(s, opts)
	if err != nil {
		return nil, err
	}

	switch mode {
	case Words:
		return strings.Fields(s), nil
	case Graphemes:
		out := make([]string, 0, uniseg.GraphemeClusterCount(s))
		g := uniseg.NewGraphemes(s)
		for g.Next() {
			out = append(out, g.Str())
		}
		return out, nil
	default:
		out := make([]string, 0, len(s))
		for _, r := range s {
			out = append(out, string(r))
		}
		return out, nil
	}
}

// Join glues elements back together: words with single spaces, others directly.
func Join(elems []string, mode Mode) string {
	if mode == Words {
		return strings.Join(elems, " ")
	}

	return strings.Join(elems, "")
}
