package cluster

import (
	"fmt"
	"math"

	"github.com/HubLot/PBxplore/internal/distance"
)

// Linkage is the rule for computing the distance between two clusters
// during agglomerative merging
type Linkage string

const (
	Ward     Linkage = "ward"
	Single   Linkage = "single"
	Complete Linkage = "complete"
	Average  Linkage = "average"
)

// ParseLinkage validates a user-supplied linkage name
func ParseLinkage(name string) (Linkage, error) {
	switch Linkage(name) {
	case Ward, Single, Complete, Average:
		return Linkage(name), nil
	case "":
		return Ward, nil
	}
	return "", fmt.Errorf("unknown linkage method %q", name)
}

// Agglomerative is the built-in clustering backend: start with every
// sequence in its own cluster and merge the closest pair until k
// clusters remain
type Agglomerative struct{}

// node is one active cluster during merging
type node struct {
	members []int
	size    int
}

// Cluster merges down to k clusters and returns one 1-based cluster id
// per sequence. Ties on the merge distance are broken toward the pair
// that comes first in the active cluster ordering, so repeated runs on
// the same input produce the same partition
func (a *Agglomerative) Cluster(d *distance.Matrix, k int, linkage Linkage) ([]int, error) {
	if _, err := ParseLinkage(string(linkage)); err != nil {
		return nil, err
	}
	n := d.Dim()

	// working copy of inter-cluster distances; row/col c tracks the
	// active cluster currently stored at position c
	work := make([][]float64, n)
	for i := 0; i < n; i++ {
		work[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			work[i][j] = d.At(i, j)
		}
	}

	active := make([]*node, n)
	pos := make([]int, 0, n) // positions of live clusters, ascending
	for i := 0; i < n; i++ {
		active[i] = &node{members: []int{i}, size: 1}
		pos = append(pos, i)
	}

	for len(pos) > k {
		// running best-pair tracker with an explicit lowest-pair
		// tie-break; strictly-less keeps the first (lowest) pair
		bestA, bestB := -1, -1
		bestDist := math.Inf(1)
		for ai := 0; ai < len(pos); ai++ {
			for bi := ai + 1; bi < len(pos); bi++ {
				if v := work[pos[ai]][pos[bi]]; v < bestDist {
					bestDist = v
					bestA, bestB = ai, bi
				}
			}
		}

		pa, pb := pos[bestA], pos[bestB]
		na, nb := active[pa], active[pb]
		dab := work[pa][pb]

		// Lance-Williams update of the merged cluster against every
		// other live cluster
		for _, pc := range pos {
			if pc == pa || pc == pb {
				continue
			}
			nc := active[pc]
			dac, dbc := work[pa][pc], work[pb][pc]
			var v float64
			switch linkage {
			case Single:
				v = math.Min(dac, dbc)
			case Complete:
				v = math.Max(dac, dbc)
			case Average:
				v = (float64(na.size)*dac + float64(nb.size)*dbc) /
					float64(na.size+nb.size)
			case Ward:
				// ward.D2 form: squared distances inside the
				// recurrence, square root back out
				sa := float64(na.size + nc.size)
				sb := float64(nb.size + nc.size)
				sc := float64(nc.size)
				st := float64(na.size + nb.size + nc.size)
				v = math.Sqrt((sa*dac*dac + sb*dbc*dbc - sc*dab*dab) / st)
			}
			work[pa][pc] = v
			work[pc][pa] = v
		}

		// merge b into a, keep the lower position
		na.members = append(na.members, nb.members...)
		na.size += nb.size
		active[pb] = nil
		pos = append(pos[:bestB], pos[bestB+1:]...)
	}

	assignment := make([]int, n)
	for id, pc := range pos {
		for _, member := range active[pc].members {
			assignment[member] = id + 1
		}
	}
	return assignment, nil
}
