package cluster

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/HubLot/PBxplore/internal/distance"
)

// Medoids picks, for every cluster, the member with the minimal sum of
// distances to all other cluster members. Ties go to the lowest
// sequence index; a singleton cluster trivially returns its member
func Medoids(d *distance.Matrix, assignment []int) (map[int]int, error) {
	if len(assignment) != d.Dim() {
		return nil, fmt.Errorf("medoids: %d assignments for %d sequences", len(assignment), d.Dim())
	}

	members := make(map[int][]int)
	for i, id := range assignment {
		members[id] = append(members[id], i)
	}
	for id, m := range members {
		if len(m) == 0 {
			return nil, fmt.Errorf("medoids: cluster %d has no members", id)
		}
	}

	medoids := make(map[int]int, len(members))
	for id, m := range members {
		best := m[0]
		bestSum := rowSum(d, m[0], m)
		for _, i := range m[1:] {
			// strictly-less keeps the lowest index on ties
			if s := rowSum(d, i, m); s < bestSum {
				bestSum = s
				best = i
			}
		}
		medoids[id] = best
	}
	return medoids, nil
}

// rowSum is the total distance from sequence i to every member of its
// cluster
func rowSum(d *distance.Matrix, i int, members []int) float64 {
	row := make([]float64, len(members))
	for k, j := range members {
		row[k] = d.At(i, j)
	}
	return floats.Sum(row)
}
