package codon

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidAlphabet sequence holds a base outside A, T, C, G
var ErrInvalidAlphabet = errors.New("invalid DNA base")

// regexp
var (
	// ACGT valid sequence, case insensitive
	ACGT = regexp.MustCompile(`(?i)^[ACGT]*$`)
)

// IsValid reports whether every base of seq is A, T, C or G in either case.
// The empty sequence is valid.
func IsValid(seq string) bool {
	return ACGT.MatchString(seq)
}

// Validate returns nil for a valid sequence, otherwise an error wrapping
// ErrInvalidAlphabet with the first offending base and its offset
func Validate(seq string) error {
	if IsValid(seq) {
		return nil
	}
	for i, c := range seq {
		switch c {
		case 'A', 'T', 'C', 'G', 'a', 't', 'c', 'g':
			continue
		}
		return fmt.Errorf("%w %q at position %d", ErrInvalidAlphabet, c, i)
	}
	return ErrInvalidAlphabet
}

// Normalize trims surrounding space and uppercases seq for Translate
func Normalize(seq string) string {
	return strings.ToUpper(strings.TrimSpace(seq))
}
