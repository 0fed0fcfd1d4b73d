package cluster

import (
	"reflect"
	"testing"
)

func TestMedoids(t *testing.T) {
	// L0-L1 close, both far from L2; L1 is slightly more central
	d := matrixOf(t, 3, 0.2, 0.9, 0.6)

	tests := []struct {
		name       string
		assignment []int
		want       map[int]int
	}{
		{
			"single cluster picks the most central member",
			[]int{1, 1, 1},
			// row sums: L0 = 1.1, L1 = 0.8, L2 = 1.5
			map[int]int{1: 1},
		},
		{
			"singleton cluster returns its only member",
			[]int{1, 1, 2},
			map[int]int{1: 0, 2: 2},
		},
		{
			"all singletons",
			[]int{1, 2, 3},
			map[int]int{1: 0, 2: 1, 3: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Medoids(d, tt.assignment)
			if err != nil {
				t.Fatalf("Medoids() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Medoids() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMedoidsTieGoesToLowestIndex(t *testing.T) {
	// a perfect triangle: every row sum is equal
	d := matrixOf(t, 3, 0.5, 0.5, 0.5)

	got, err := Medoids(d, []int{1, 1, 1})
	if err != nil {
		t.Fatalf("Medoids() error = %v", err)
	}
	if want := map[int]int{1: 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("Medoids() = %v, want %v", got, want)
	}
}

func TestMedoidsRejectsMismatchedAssignment(t *testing.T) {
	d := matrixOf(t, 3, 0.5, 0.5, 0.5)
	if _, err := Medoids(d, []int{1, 1}); err == nil {
		t.Error("Medoids() should reject an assignment of the wrong length")
	}
}
