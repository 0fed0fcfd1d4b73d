// Package distance builds the normalized distance matrix between
// PB sequences from their pairwise substitution scores
package distance

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a labeled, symmetric distance matrix with a zero diagonal
// and all entries in [0,1]
type Matrix struct {
	labels []string
	dist   *mat.SymDense
}

// NewMatrix wraps a symmetric matrix with its row/column labels.
// The labels and the matrix dimension must agree
func NewMatrix(labels []string, dist *mat.SymDense) (*Matrix, error) {
	if n := dist.SymmetricDim(); n != len(labels) {
		return nil, fmt.Errorf("distance: %d labels for a %dx%d matrix", len(labels), n, n)
	}
	return &Matrix{labels: labels, dist: dist}, nil
}

// Dim is the number of sequences the matrix covers
func (m *Matrix) Dim() int { return len(m.labels) }

// Labels returns the sequence labels in matrix order
func (m *Matrix) Labels() []string { return m.labels }

// At returns the distance between sequences i and j
func (m *Matrix) At(i, j int) float64 { return m.dist.At(i, j) }

// Sym exposes the underlying symmetric matrix for read-only use
func (m *Matrix) Sym() *mat.SymDense { return m.dist }
