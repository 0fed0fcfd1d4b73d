package cluster_test

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/HubLot/PBxplore/internal/cluster"
	"github.com/HubLot/PBxplore/internal/distance"
	"github.com/HubLot/PBxplore/internal/fasta"
	"github.com/HubLot/PBxplore/internal/pb"
	"github.com/HubLot/PBxplore/internal/report"
)

// Full pipeline over a hand-worked scenario: fasta in, substitution
// scoring, distance normalization, clustering, medoids, reports out
func TestPipelineEndToEnd(t *testing.T) {
	const input = ">L0\naaaa\n>L1\naaab\n>L2\nbbbb\n"

	records, err := fasta.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("fasta.Parse() error = %v", err)
	}
	seqs := make([]pb.Sequence, len(records))
	for i, rec := range records {
		seqs[i] = pb.NewSequence(rec.ID, rec.Seq)
	}

	var matText strings.Builder
	matText.WriteString("toy matrix\nsecond header\n")
	for i := 0; i < pb.Size; i++ {
		for j := 0; j < pb.Size; j++ {
			if j > 0 {
				matText.WriteByte(' ')
			}
			if i == j {
				matText.WriteString("2")
			} else {
				matText.WriteString("-1")
			}
		}
		matText.WriteByte('\n')
	}
	matrix, err := pb.LoadSubstitutionMatrix(strings.NewReader(matText.String()))
	if err != nil {
		t.Fatalf("LoadSubstitutionMatrix() error = %v", err)
	}

	dist, err := distance.Build(seqs, matrix, distance.Options{})
	if err != nil {
		t.Fatalf("distance.Build() error = %v", err)
	}

	// expected distances worked out by hand (see builder tests)
	wantDist := map[[2]int]float64{{0, 1}: 0.25, {0, 2}: 1.0, {1, 2}: 0.75}
	for pair, want := range wantDist {
		if got := dist.At(pair[0], pair[1]); math.Abs(got-want) > 1e-12 {
			t.Errorf("d(%d,%d) = %g, want %g", pair[0], pair[1], got, want)
		}
	}

	// the distance report must round-trip
	var distBuf bytes.Buffer
	if err := dist.WriteReport(&distBuf); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	reparsed, err := distance.ParseReport(&distBuf)
	if err != nil {
		t.Fatalf("ParseReport() error = %v", err)
	}
	if !reflect.DeepEqual(reparsed.Labels(), []string{"L0", "L1", "L2"}) {
		t.Errorf("report labels = %v", reparsed.Labels())
	}

	partition, err := cluster.New(nil, cluster.Ward).Cluster(dist, 2)
	if err != nil {
		t.Fatalf("Cluster() error = %v", err)
	}
	if want := []int{1, 1, 2}; !reflect.DeepEqual(partition.Assignment, want) {
		t.Errorf("assignment = %v, want %v", partition.Assignment, want)
	}
	if want := map[int]int{1: 0, 2: 2}; !reflect.DeepEqual(partition.Medoids, want) {
		t.Errorf("medoids = %v, want %v", partition.Medoids, want)
	}

	rep, err := report.Assemble(dist.Labels(), partition.Assignment, partition.Medoids)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	var clustBuf bytes.Buffer
	if err := rep.WriteText(&clustBuf); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	out := clustBuf.String()
	for _, want := range []string{"SEQ_CLU", "CLU_MED", "L0", "L2"} {
		if !strings.Contains(out, want) {
			t.Errorf("clustering report misses %q:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines != 5 {
		t.Errorf("clustering report has %d lines, want 5:\n%s", lines, out)
	}
}
