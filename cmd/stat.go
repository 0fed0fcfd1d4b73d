package cmd

import (
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/HubLot/PBxplore/internal/stat"
)

var (
	statFastaPaths []string
	statOutName    string
	statResMin     int
	statResMax     int
)

// statCmd represents the stat command
var statCmd = &cobra.Command{
	Use:   "stat",
	Short: "Compute the Neq diversity of aligned PB sequences",
	Long: `Compute the Neq diversity of aligned PB sequences

"pbxplore stat" measures, for each residue position, the equivalent
number of protein blocks (Neq): the exponential of the Shannon entropy
of the block frequencies at that position. Neq is 1 where every
sequence carries the same block and 16 where all blocks are equally
likely. Values are written to NAME.PB.Neq`,
	Run: runStat,
}

func init() {
	RootCmd.AddCommand(statCmd)

	statCmd.Flags().StringArrayVarP(&statFastaPaths, "fasta", "f", nil, "path(s) to the PB sequences (fasta format)")
	statCmd.Flags().StringVarP(&statOutName, "output", "o", "", "root name for the result file")
	statCmd.Flags().IntVar(&statResMin, "residue-min", 1, "lower bound of the residue frame")
	statCmd.Flags().IntVar(&statResMax, "residue-max", 0, "upper bound of the residue frame (0 = last residue)")

	statCmd.MarkFlagRequired("fasta")
	statCmd.MarkFlagRequired("output")
}

func runStat(cmd *cobra.Command, args []string) {
	seqs := readSequences(statFastaPaths)

	counts, err := stat.CountMatrix(seqs)
	if err != nil {
		log.Fatalf("Failed to build the count matrix: %v", err)
	}
	neq, err := stat.Neq(counts, len(seqs))
	if err != nil {
		log.Fatalf("Failed to compute the Neq: %v", err)
	}

	name := statOutName + ".PB.Neq"
	err = writeFileWith(name, func(w io.Writer) error {
		return stat.WriteNeq(w, neq, statResMin, statResMax)
	})
	if err != nil {
		log.Fatalf("Failed to write %s: %v", name, err)
	}
	log.Printf("wrote %s", name)
}
