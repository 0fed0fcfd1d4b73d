package distance

import (
	"fmt"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/HubLot/PBxplore/internal/pb"
	"github.com/HubLot/PBxplore/internal/score"
)

// DegenerateMatrixError is returned when every pairwise score is equal,
// which leaves the similarity-to-distance normalization undefined
type DegenerateMatrixError struct {
	Score float64
}

func (e *DegenerateMatrixError) Error() string {
	return fmt.Sprintf("all pairwise scores equal %g: distance normalization is undefined", e.Score)
}

// Options controls the build
type Options struct {
	// Workers is the number of goroutines scoring sequence pairs.
	// Zero or negative means one worker per CPU
	Workers int
}

// Build computes the normalized distance matrix over the sequences:
//
//  1. score every unordered pair with the substitution matrix and
//     mirror the score into both cells,
//  2. flatten the diagonal to the minimum observed self-similarity,
//  3. normalize to dist = 1 - (score-min)/(max-min),
//  4. force the diagonal to exactly 0.
//
// Sequence lengths and symbols are validated before any pairwise work,
// so no partial matrix is ever produced
func Build(seqs []pb.Sequence, m *pb.SubstitutionMatrix, opts Options) (*Matrix, error) {
	n := len(seqs)
	if n == 0 {
		return nil, fmt.Errorf("distance: no sequences")
	}

	// fail fast on bad input
	for _, s := range seqs {
		if s.Len() != seqs[0].Len() {
			return nil, &score.LengthMismatchError{LenA: seqs[0].Len(), LenB: s.Len()}
		}
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}

	raw, err := pairwiseScores(seqs, m, opts.Workers)
	if err != nil {
		return nil, err
	}

	// self-similarity varies (a wildcard-heavy sequence self-scores
	// near zero), so the diagonal is flattened to the minimum observed
	// self-score before normalizing
	diagMin := raw.At(0, 0)
	for i := 1; i < n; i++ {
		if v := raw.At(i, i); v < diagMin {
			diagMin = v
		}
	}
	for i := 0; i < n; i++ {
		raw.SetSym(i, i, diagMin)
	}

	// a SymDense only maintains its upper triangle, so the scan covers
	// i <= j rather than the raw backing slice
	minAll, maxAll := raw.At(0, 0), raw.At(0, 0)
	for i := 0; i < n; i++ {
		row := make([]float64, 0, n-i)
		for j := i; j < n; j++ {
			row = append(row, raw.At(i, j))
		}
		if v := floats.Min(row); v < minAll {
			minAll = v
		}
		if v := floats.Max(row); v > maxAll {
			maxAll = v
		}
	}
	if minAll == maxAll {
		return nil, &DegenerateMatrixError{Score: minAll}
	}

	dist := mat.NewSymDense(n, nil)
	span := maxAll - minAll
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			dist.SetSym(i, j, 1-(raw.At(i, j)-minAll)/span)
		}
	}
	// self-distance is zero by definition, whatever the affine
	// transform made of the flattened diagonal
	for i := 0; i < n; i++ {
		dist.SetSym(i, i, 0)
	}

	labels := make([]string, n)
	for i, s := range seqs {
		labels[i] = s.Label
	}
	return &Matrix{labels: labels, dist: dist}, nil
}

// pairwiseScores fills the upper triangle plus diagonal with total
// substitution scores. Rows are scored on a worker pool; every worker
// writes disjoint cells so no locking is needed
func pairwiseScores(seqs []pb.Sequence, m *pb.SubstitutionMatrix, workers int) (*mat.SymDense, error) {
	n := len(seqs)
	raw := mat.NewSymDense(n, nil)

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	if workers <= 1 {
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				s, err := score.Total(seqs[i], seqs[j], m)
				if err != nil {
					return nil, err
				}
				raw.SetSym(i, j, s)
			}
		}
		return raw, nil
	}

	rows := make(chan int, n)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range rows {
				for j := i; j < n; j++ {
					s, err := score.Total(seqs[i], seqs[j], m)
					if err != nil {
						errs <- err
						return
					}
					raw.SetSym(i, j, s)
				}
			}
		}()
	}

	for i := 0; i < n; i++ {
		rows <- i
	}
	close(rows)
	wg.Wait()
	close(errs)

	// inputs are validated up front, but a worker error still wins
	// over a partial matrix
	if err := <-errs; err != nil {
		return nil, err
	}
	return raw, nil
}
