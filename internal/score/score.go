// Package score computes substitution scores between pairs of
// equal-length PB sequences
package score

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/HubLot/PBxplore/internal/pb"
)

// LengthMismatchError is returned when two sequences cannot be
// compared position by position
type LengthMismatchError struct {
	LenA, LenB int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("sequences have different sizes: %d vs %d", e.LenA, e.LenB)
}

// ByPosition computes the substitution score between seqA and seqB for
// each position. A wildcard on either side contributes exactly 0; any
// other symbol outside the alphabet fails with pb.InvalidSymbolError
// naming the offending symbol(s) of the first bad position
func ByPosition(seqA, seqB pb.Sequence, m *pb.SubstitutionMatrix) ([]float64, error) {
	if seqA.Len() != seqB.Len() {
		return nil, &LengthMismatchError{LenA: seqA.Len(), LenB: seqB.Len()}
	}

	scores := make([]float64, seqA.Len())
	for i := 0; i < seqA.Len(); i++ {
		a, b := seqA.Symbols[i], seqB.Symbols[i]
		if pb.IsWildcard(a) || pb.IsWildcard(b) {
			continue
		}
		ia, okA := pb.Index(a)
		ib, okB := pb.Index(b)
		if !okA || !okB {
			var invalid []byte
			if !okA {
				invalid = append(invalid, a)
			}
			if !okB {
				invalid = append(invalid, b)
			}
			return nil, &pb.InvalidSymbolError{Symbols: invalid}
		}
		scores[i] = m.At(ia, ib)
	}
	return scores, nil
}

// Total is the sum of the positional scores between two sequences
func Total(seqA, seqB pb.Sequence, m *pb.SubstitutionMatrix) (float64, error) {
	scores, err := ByPosition(seqA, seqB, m)
	if err != nil {
		return 0, err
	}
	return floats.Sum(scores), nil
}
