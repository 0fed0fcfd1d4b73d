// Package cluster partitions a distance matrix into k groups by
// agglomerative hierarchical clustering and picks a medoid for
// each group
package cluster

import (
	"fmt"

	"github.com/HubLot/PBxplore/internal/distance"
)

// InvalidClusterCountError is returned when k is outside (0, n]
type InvalidClusterCountError struct {
	K, N int
}

func (e *InvalidClusterCountError) Error() string {
	return fmt.Sprintf("invalid cluster count %d for %d sequences", e.K, e.N)
}

// BackendError wraps a clustering backend failure or a malformed
// partition returned by one
type BackendError struct {
	Err error
}

func (e *BackendError) Error() string { return fmt.Sprintf("clustering backend: %v", e.Err) }

func (e *BackendError) Unwrap() error { return e.Err }

// Backend turns a distance matrix into a flat partition. The returned
// slice holds one cluster id per sequence, ids 1-based; id numbering is
// up to the backend and is normalized by the engine
type Backend interface {
	Cluster(d *distance.Matrix, k int, linkage Linkage) ([]int, error)
}

// Partition is the terminal output of one clustering run
type Partition struct {
	// Assignment holds one 1-based cluster id per input sequence,
	// ids numbered by first appearance in input order
	Assignment []int
	// Medoids maps each cluster id to the index of its medoid sequence
	Medoids map[int]int
}

// Engine drives a backend and normalizes its output
type Engine struct {
	backend Backend
	linkage Linkage
}

// New returns an engine over the given backend. A nil backend means
// the built-in agglomerative implementation
func New(backend Backend, linkage Linkage) *Engine {
	if backend == nil {
		backend = &Agglomerative{}
	}
	return &Engine{backend: backend, linkage: linkage}
}

// Cluster partitions the matrix into exactly k clusters. The cluster
// count is validated before any clustering work starts
func (e *Engine) Cluster(d *distance.Matrix, k int) (*Partition, error) {
	n := d.Dim()
	if k <= 0 || k > n {
		return nil, &InvalidClusterCountError{K: k, N: n}
	}

	assignment, err := e.backend.Cluster(d, k, e.linkage)
	if err != nil {
		return nil, &BackendError{Err: err}
	}
	if err := validatePartition(assignment, n, k); err != nil {
		return nil, &BackendError{Err: err}
	}

	assignment = relabel(assignment)

	medoids, err := Medoids(d, assignment)
	if err != nil {
		return nil, err
	}
	return &Partition{Assignment: assignment, Medoids: medoids}, nil
}

// validatePartition checks that a backend produced a complete
// partition into exactly k non-empty clusters
func validatePartition(assignment []int, n, k int) error {
	if len(assignment) != n {
		return fmt.Errorf("partition covers %d of %d sequences", len(assignment), n)
	}
	members := make(map[int]int)
	for i, id := range assignment {
		if id <= 0 {
			return fmt.Errorf("sequence %d has non-positive cluster id %d", i, id)
		}
		members[id]++
	}
	if len(members) != k {
		return fmt.Errorf("partition has %d clusters, requested %d", len(members), k)
	}
	return nil
}

// relabel renumbers cluster ids 1..k by first appearance in input
// order, so ids are stable whatever numbering the backend used
func relabel(assignment []int) []int {
	next := 1
	seen := make(map[int]int, len(assignment))
	out := make([]int, len(assignment))
	for i, id := range assignment {
		mapped, ok := seen[id]
		if !ok {
			mapped = next
			seen[id] = mapped
			next++
		}
		out[i] = mapped
	}
	return out
}
