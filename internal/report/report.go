// Package report maps clustering output back onto the original
// sequence identifiers for external reporting
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
)

// SequenceCluster pairs a sequence identifier with its cluster id
type SequenceCluster struct {
	ID      string `json:"id"`
	Cluster int    `json:"cluster"`
}

// ClusterMedoid pairs a cluster id with the identifier of its medoid
type ClusterMedoid struct {
	Cluster int    `json:"cluster"`
	Medoid  string `json:"medoid"`
}

// Report is the result of one clustering run
type Report struct {
	// Sequences lists every input sequence with its cluster id, in
	// input order
	Sequences []SequenceCluster `json:"sequences"`

	// Medoids lists the medoid of every cluster, by ascending
	// cluster id
	Medoids []ClusterMedoid `json:"medoids"`
}

// Assemble builds the report from the sequence labels (in input
// order), the per-sequence assignment and the cluster-to-medoid map
func Assemble(labels []string, assignment []int, medoids map[int]int) (*Report, error) {
	if len(labels) != len(assignment) {
		return nil, fmt.Errorf("report: %d labels for %d assignments", len(labels), len(assignment))
	}

	seqs := make([]SequenceCluster, len(labels))
	for i, label := range labels {
		seqs[i] = SequenceCluster{ID: label, Cluster: assignment[i]}
	}

	meds := make([]ClusterMedoid, 0, len(medoids))
	for id, idx := range medoids {
		if idx < 0 || idx >= len(labels) {
			return nil, fmt.Errorf("report: medoid index %d of cluster %d out of range", idx, id)
		}
		meds = append(meds, ClusterMedoid{Cluster: id, Medoid: labels[idx]})
	}
	sort.Slice(meds, func(i, j int) bool { return meds[i].Cluster < meds[j].Cluster })

	return &Report{Sequences: seqs, Medoids: meds}, nil
}

// WriteText emits the SEQ_CLU / CLU_MED record format
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, sc := range r.Sequences {
		fmt.Fprintf(tw, "SEQ_CLU\t%s\t%d\n", sc.ID, sc.Cluster)
	}
	for _, cm := range r.Medoids {
		fmt.Fprintf(tw, "CLU_MED\t%d\t%s\n", cm.Cluster, cm.Medoid)
	}
	return tw.Flush()
}

// WriteJSON emits the report as indented JSON
func (r *Report) WriteJSON(w io.Writer) error {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}
