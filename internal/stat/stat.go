// Package stat computes positional statistics over a set of aligned
// PB sequences: occurrence and frequency matrices and the Neq
// diversity measure
package stat

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/HubLot/PBxplore/internal/pb"
	"github.com/HubLot/PBxplore/internal/score"
)

// CountMatrix counts the occurrences of each block at each position.
// The result has one row per position and one column per block, in
// alphabet order. Wildcards are skipped; anything else outside the
// alphabet fails with pb.InvalidSymbolError
func CountMatrix(seqs []pb.Sequence) (*mat.Dense, error) {
	if len(seqs) == 0 {
		return nil, fmt.Errorf("stat: no sequences")
	}
	length := seqs[0].Len()
	for _, s := range seqs {
		if s.Len() != length {
			return nil, &score.LengthMismatchError{LenA: length, LenB: s.Len()}
		}
	}

	counts := mat.NewDense(length, pb.Size, nil)
	for _, s := range seqs {
		for i := 0; i < s.Len(); i++ {
			c := s.Symbols[i]
			if pb.IsWildcard(c) {
				continue
			}
			j, ok := pb.Index(c)
			if !ok {
				return nil, &pb.InvalidSymbolError{Symbols: []byte{c}}
			}
			counts.Set(i, j, counts.At(i, j)+1)
		}
	}
	return counts, nil
}

// FreqMatrix converts an occurrence matrix into per-position block
// frequencies, dividing by the number of sequences counted
func FreqMatrix(counts *mat.Dense, nSeq int) (*mat.Dense, error) {
	rows, cols := counts.Dims()
	if cols != pb.Size {
		return nil, fmt.Errorf("stat: count matrix has %d columns, want %d", cols, pb.Size)
	}
	if nSeq <= 0 {
		return nil, fmt.Errorf("stat: non-positive sequence count %d", nSeq)
	}
	freq := mat.NewDense(rows, cols, nil)
	freq.Scale(1/float64(nSeq), counts)
	return freq, nil
}

// Neq computes, for each position, the equivalent number of blocks:
// exp of the Shannon entropy of the block frequencies. A position
// where a single block occurs has Neq 1; a uniform spread over all 16
// blocks has Neq 16
func Neq(counts *mat.Dense, nSeq int) ([]float64, error) {
	freq, err := FreqMatrix(counts, nSeq)
	if err != nil {
		return nil, err
	}
	rows, _ := freq.Dims()
	neq := make([]float64, rows)
	for i := 0; i < rows; i++ {
		h := 0.0
		for j := 0; j < pb.Size; j++ {
			if f := freq.At(i, j); f > 0 {
				h += f * math.Log(f)
			}
		}
		neq[i] = math.Exp(-h)
	}
	return neq, nil
}

// WriteCountMatrix writes an occurrence matrix with a block-name
// header; first is the residue number of the first position
func WriteCountMatrix(w io.Writer, counts *mat.Dense, first int) error {
	if _, err := fmt.Fprint(w, "    "); err != nil {
		return err
	}
	for i := 0; i < pb.Size; i++ {
		if _, err := fmt.Fprintf(w, "%6c", pb.Names[i]); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	rows, _ := counts.Dims()
	for i := 0; i < rows; i++ {
		if _, err := fmt.Fprintf(w, "%-5d", i+first); err != nil {
			return err
		}
		for j := 0; j < pb.Size; j++ {
			sep := " "
			if j == 0 {
				sep = ""
			}
			if _, err := fmt.Fprintf(w, "%s%5d", sep, int(counts.At(i, j))); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteNeq writes the per-position Neq values for the residue frame
// [resMin, resMax]; resMax 0 means the last residue
func WriteNeq(w io.Writer, neq []float64, resMin, resMax int) error {
	if resMax == 0 {
		resMax = len(neq)
	}
	if resMin <= 0 || resMax > len(neq) || resMin > resMax {
		return fmt.Errorf("stat: residue frame [%d, %d] out of range for %d positions", resMin, resMax, len(neq))
	}
	if _, err := fmt.Fprintf(w, "%-6s %8s \n", "resid", "Neq"); err != nil {
		return err
	}
	for i := resMin - 1; i < resMax; i++ {
		if _, err := fmt.Fprintf(w, "%-6d %8.2f \n", i+1, neq[i]); err != nil {
			return err
		}
	}
	return nil
}
