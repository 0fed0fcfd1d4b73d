package pb

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// SubstitutionMatrix scores the similarity between any two protein
// blocks. It is loaded once, validated, and read-only afterwards
type SubstitutionMatrix struct {
	scores *mat.SymDense
}

// LoadSubstitutionMatrix parses a substitution matrix resource: two
// header/comment lines followed by 16 lines of 16 whitespace-separated
// numbers. The table must be exactly 16x16 and symmetric
func LoadSubstitutionMatrix(r io.Reader) (*SubstitutionMatrix, error) {
	scanner := bufio.NewScanner(r)

	// skip the two header lines
	for i := 0; i < 2; i++ {
		if !scanner.Scan() {
			return nil, &MatrixFormatError{Reason: "missing header lines"}
		}
	}

	rows := make([][]float64, 0, Size)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != Size {
			return nil, &MatrixFormatError{
				Row:    len(rows) + 1,
				Reason: fmt.Sprintf("expected %d values, found %d", Size, len(fields)),
			}
		}
		row := make([]float64, Size)
		for j, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &MatrixFormatError{
					Row:    len(rows) + 1,
					Reason: fmt.Sprintf("cannot parse %q as a number", field),
				}
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) != Size {
		return nil, &MatrixFormatError{
			Reason: fmt.Sprintf("expected %d rows, found %d", Size, len(rows)),
		}
	}

	// symmetry check before anything uses the table
	for i := 0; i < Size; i++ {
		for j := i + 1; j < Size; j++ {
			if rows[i][j] != rows[j][i] {
				return nil, &MatrixAsymmetryError{I: i, J: j, Upper: rows[i][j], Low: rows[j][i]}
			}
		}
	}

	scores := mat.NewSymDense(Size, nil)
	for i := 0; i < Size; i++ {
		for j := i; j < Size; j++ {
			scores.SetSym(i, j, rows[i][j])
		}
	}
	return &SubstitutionMatrix{scores: scores}, nil
}

// LoadSubstitutionMatrixFile loads a substitution matrix from a file path
func LoadSubstitutionMatrixFile(path string) (*SubstitutionMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadSubstitutionMatrix(f)
}

// Score looks up the substitution score between two blocks.
// Both symbols must be in the alphabet (no wildcards)
func (m *SubstitutionMatrix) Score(a, b byte) (float64, error) {
	i, ok := Index(a)
	if !ok {
		return 0, &InvalidSymbolError{Symbols: []byte{a}}
	}
	j, ok := Index(b)
	if !ok {
		return 0, &InvalidSymbolError{Symbols: []byte{b}}
	}
	return m.scores.At(i, j), nil
}

// At returns the score at an alphabet index pair, for callers that
// already hold validated indexes
func (m *SubstitutionMatrix) At(i, j int) float64 { return m.scores.At(i, j) }
