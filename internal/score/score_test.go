package score

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/HubLot/PBxplore/internal/pb"
)

// toyMatrix builds a substitution matrix with the given diagonal and
// off-diagonal values
func toyMatrix(t *testing.T, diag, off float64) *pb.SubstitutionMatrix {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("header\nheader\n")
	for i := 0; i < pb.Size; i++ {
		for j := 0; j < pb.Size; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			v := off
			if i == j {
				v = diag
			}
			fmt.Fprintf(&sb, "%g", v)
		}
		sb.WriteByte('\n')
	}
	m, err := pb.LoadSubstitutionMatrix(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("toyMatrix: %v", err)
	}
	return m
}

func TestByPosition(t *testing.T) {
	m := toyMatrix(t, 2, -1)

	tests := []struct {
		name string
		a, b string
		want []float64
	}{
		{
			"identical sequences score the diagonal at each position",
			"abcd", "abcd",
			[]float64{2, 2, 2, 2},
		},
		{
			"mismatches score the off-diagonal",
			"aaaa", "aaab",
			[]float64{2, 2, 2, -1},
		},
		{
			"wildcard contributes exactly zero on either side",
			"azaz", "aaza",
			[]float64{2, 0, 0, 0},
		},
		{
			"upper case wildcard behaves the same",
			"aZaa", "aaaa",
			[]float64{2, 0, 2, 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ByPosition(pb.NewSequence("a", tt.a), pb.NewSequence("b", tt.b), m)
			if err != nil {
				t.Fatalf("ByPosition() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ByPosition() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestByPositionLengthMismatch(t *testing.T) {
	m := toyMatrix(t, 2, -1)

	_, err := ByPosition(pb.NewSequence("a", "abc"), pb.NewSequence("b", "ab"), m)
	var mismatch *LengthMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error = %v (%T), want *LengthMismatchError", err, err)
	}
	if mismatch.LenA != 3 || mismatch.LenB != 2 {
		t.Errorf("lengths = (%d, %d), want (3, 2)", mismatch.LenA, mismatch.LenB)
	}
}

func TestByPositionInvalidSymbol(t *testing.T) {
	m := toyMatrix(t, 2, -1)

	_, err := ByPosition(pb.NewSequence("a", "aqa"), pb.NewSequence("b", "aaa"), m)
	var invalid *pb.InvalidSymbolError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v (%T), want *pb.InvalidSymbolError", err, err)
	}
	if string(invalid.Symbols) != "q" {
		t.Errorf("invalid symbols = %q, want %q", invalid.Symbols, "q")
	}
}

func TestTotal(t *testing.T) {
	m := toyMatrix(t, 2, -1)

	got, err := Total(pb.NewSequence("a", "aaaa"), pb.NewSequence("b", "aaab"), m)
	if err != nil {
		t.Fatalf("Total() error = %v", err)
	}
	if want := 5.0; got != want {
		t.Errorf("Total() = %g, want %g", got, want)
	}
}
