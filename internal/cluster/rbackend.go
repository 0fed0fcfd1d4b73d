package cluster

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/HubLot/PBxplore/internal/distance"
)

// RBackend delegates the hierarchical clustering to an external R
// process, the way the original analysis pipeline did. It exists for
// compatibility testing against R's hclust/cutree; the built-in
// Agglomerative backend is the default
type RBackend struct {
	// Command overrides the R invocation; empty means
	// "R --vanilla --slave"
	Command []string
}

const rScript = `
connector = textConnection("%s")
distances = read.table(connector, header=FALSE)
rownames(distances) = colnames(distances)

clusters = cutree(hclust(as.dist(distances), method="%s"), k=%d)

cat("cluster_id", clusters, "\n")
`

// rMethod maps a linkage name onto the matching R hclust method
func rMethod(linkage Linkage) (string, error) {
	switch linkage {
	case Ward:
		// ward.D2 matches the unsquared-distance recurrence the
		// built-in backend uses
		return "ward.D2", nil
	case Single, Complete, Average:
		return string(linkage), nil
	}
	return "", fmt.Errorf("unknown linkage method %q", linkage)
}

// Cluster sends the matrix to R as literal text and parses the single
// cluster_id line back into an assignment
func (r *RBackend) Cluster(d *distance.Matrix, k int, linkage Linkage) ([]int, error) {
	method, err := rMethod(linkage)
	if err != nil {
		return nil, err
	}

	n := d.Dim()
	var matText strings.Builder
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j > 0 {
				matText.WriteByte(' ')
			}
			fmt.Fprintf(&matText, "%.10f", d.At(i, j))
		}
		matText.WriteByte('\n')
	}

	script := fmt.Sprintf(rScript, matText.String(), method, k)

	argv := r.Command
	if len(argv) == 0 {
		argv = []string{"R", "--vanilla", "--slave"}
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(script)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("R failed: %v: %s", err, strings.TrimSpace(stderr.String()))
	}

	return parseRClusters(stdout.String(), n)
}

// parseRClusters extracts the assignment from the cluster_id line
func parseRClusters(out string, n int) ([]int, error) {
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] != "cluster_id" {
			continue
		}
		if len(fields) != n+1 {
			return nil, fmt.Errorf("R returned %d cluster ids for %d sequences", len(fields)-1, n)
		}
		assignment := make([]int, n)
		for i, f := range fields[1:] {
			id, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("R returned a malformed cluster id %q", f)
			}
			assignment[i] = id
		}
		return assignment, nil
	}
	return nil, fmt.Errorf("no cluster_id line in R output: %s", strings.TrimSpace(out))
}
