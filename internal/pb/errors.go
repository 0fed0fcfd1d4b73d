package pb

import "fmt"

// MatrixFormatError is returned when a substitution matrix resource
// does not parse into exactly 16 rows of 16 numbers
type MatrixFormatError struct {
	Row    int // 1-based row of the offending line, 0 when the row count is wrong
	Reason string
}

func (e *MatrixFormatError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("substitution matrix: row %d: %s", e.Row, e.Reason)
	}
	return fmt.Sprintf("substitution matrix: %s", e.Reason)
}

// MatrixAsymmetryError reports the first cell pair for which
// M[i][j] != M[j][i]
type MatrixAsymmetryError struct {
	I, J       int
	Upper, Low float64
}

func (e *MatrixAsymmetryError) Error() string {
	return fmt.Sprintf("substitution matrix is not symmetric at (%d,%d): %g != %g",
		e.I, e.J, e.Upper, e.Low)
}

// InvalidSymbolError names symbols found outside the PB alphabet
type InvalidSymbolError struct {
	Symbols []byte
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid protein block symbol(s): %q", string(e.Symbols))
}
