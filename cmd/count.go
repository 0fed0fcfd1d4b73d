package cmd

import (
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/HubLot/PBxplore/internal/fasta"
	"github.com/HubLot/PBxplore/internal/pb"
	"github.com/HubLot/PBxplore/internal/stat"
)

var (
	countFastaPaths   []string
	countOutName      string
	countFirstResidue int
)

// countCmd represents the count command
var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count block occurrences at each position of aligned PB sequences",
	Long: `Count block occurrences at each position of aligned PB sequences

"pbxplore count" builds the positional occurrence matrix: one row per
residue position, one column per protein block, counting how many input
sequences carry that block at that position. Wildcard positions are
skipped. The matrix is written to NAME.PB.count`,
	Run: runCount,
}

func init() {
	RootCmd.AddCommand(countCmd)

	countCmd.Flags().StringArrayVarP(&countFastaPaths, "fasta", "f", nil, "path(s) to the PB sequences (fasta format)")
	countCmd.Flags().StringVarP(&countOutName, "output", "o", "", "root name for the result file")
	countCmd.Flags().IntVar(&countFirstResidue, "first-residue", 1, "residue number of the first position")

	countCmd.MarkFlagRequired("fasta")
	countCmd.MarkFlagRequired("output")
}

func runCount(cmd *cobra.Command, args []string) {
	seqs := readSequences(countFastaPaths)

	counts, err := stat.CountMatrix(seqs)
	if err != nil {
		log.Fatalf("Failed to build the count matrix: %v", err)
	}

	name := countOutName + ".PB.count"
	err = writeFileWith(name, func(w io.Writer) error {
		return stat.WriteCountMatrix(w, counts, countFirstResidue)
	})
	if err != nil {
		log.Fatalf("Failed to write %s: %v", name, err)
	}
	log.Printf("wrote %s", name)
}

// readSequences loads PB sequences from fasta files, failing the
// command when nothing can be read
func readSequences(paths []string) []pb.Sequence {
	records, err := fasta.ReadAll(paths)
	if err != nil {
		log.Fatalf("Failed to read the fasta files: %v", err)
	}
	if len(records) == 0 {
		log.Fatalf("No sequence found in %v", paths)
	}
	log.Printf("read %d sequences", len(records))

	seqs := make([]pb.Sequence, len(records))
	for i, rec := range records {
		seqs[i] = pb.NewSequence(rec.ID, rec.Seq)
	}
	return seqs
}
