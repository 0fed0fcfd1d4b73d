// Package pb holds the Protein Block alphabet and the substitution
// matrix used to score PB sequences against one another
package pb

import "strings"

// Names are the 16 protein blocks, in the order used to index
// the substitution matrix
const Names = "abcdefghijklmnop"

// Wildcard marks a residue whose block could not be assigned.
// It never contributes to a substitution score
const Wildcard = 'z'

// Size is the number of protein blocks
const Size = len(Names)

// Sequence is a labeled string of protein blocks. Symbols are stored
// lower-cased; the sequence is immutable once built
type Sequence struct {
	Label   string
	Symbols string
}

// NewSequence lower-cases the symbols so that both 'Z' and 'z'
// are recognized as the wildcard
func NewSequence(label, symbols string) Sequence {
	return Sequence{
		Label:   label,
		Symbols: strings.ToLower(symbols),
	}
}

// Len is the number of residues in the sequence
func (s Sequence) Len() int { return len(s.Symbols) }

// Index maps a block letter to its row/column in the substitution
// matrix. The second value is false for anything outside the
// 16-letter alphabet (the wildcard included)
func Index(symbol byte) (int, bool) {
	if symbol < 'a' || symbol > 'p' {
		return 0, false
	}
	return int(symbol - 'a'), true
}

// IsWildcard reports whether the symbol is the dummy block
func IsWildcard(symbol byte) bool {
	return symbol == 'z' || symbol == 'Z'
}

// Validate checks every symbol of the sequence against the alphabet.
// The wildcard is always valid
func (s Sequence) Validate() error {
	var invalid []byte
	for i := 0; i < len(s.Symbols); i++ {
		c := s.Symbols[i]
		if IsWildcard(c) {
			continue
		}
		if _, ok := Index(c); !ok {
			invalid = append(invalid, c)
		}
	}
	if len(invalid) > 0 {
		return &InvalidSymbolError{Symbols: invalid}
	}
	return nil
}
