package distance

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func testMatrix(t *testing.T) *Matrix {
	t.Helper()
	dist := mat.NewSymDense(3, nil)
	dist.SetSym(0, 1, 0.25)
	dist.SetSym(0, 2, 1.0)
	dist.SetSym(1, 2, 0.75)
	m, err := NewMatrix([]string{"L0", "L1", "L2"}, dist)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	return m
}

func TestReportRoundTrip(t *testing.T) {
	m := testMatrix(t)

	var buf bytes.Buffer
	if err := m.WriteReport(&buf); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	got, err := ParseReport(&buf)
	if err != nil {
		t.Fatalf("ParseReport() error = %v", err)
	}

	if !reflect.DeepEqual(got.Labels(), m.Labels()) {
		t.Errorf("labels = %v, want %v", got.Labels(), m.Labels())
	}
	for i := 0; i < m.Dim(); i++ {
		for j := 0; j < m.Dim(); j++ {
			if math.Abs(got.At(i, j)-m.At(i, j)) > 1e-6 {
				t.Errorf("d(%d,%d) = %g, want %g", i, j, got.At(i, j), m.At(i, j))
			}
		}
	}
}

func TestParseReportErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"missing rows", "     L0 L1\nL0 0.0 0.5\n"},
		{"short row", "     L0 L1\nL0 0.0 0.5\nL1 0.5\n"},
		{"label mismatch", "     L0 L1\nL0 0.0 0.5\nLX 0.5 0.0\n"},
		{"malformed value", "     L0 L1\nL0 0.0 oops\nL1 0.5 0.0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseReport(strings.NewReader(tt.input)); err == nil {
				t.Error("ParseReport() should fail")
			}
		})
	}
}

func TestNewMatrixDimensionCheck(t *testing.T) {
	if _, err := NewMatrix([]string{"only"}, mat.NewSymDense(2, nil)); err == nil {
		t.Error("NewMatrix() should reject mismatched labels")
	}
}
