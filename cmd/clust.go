package cmd

import (
	"io"
	"log"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/HubLot/PBxplore/config"
	"github.com/HubLot/PBxplore/internal/cluster"
	"github.com/HubLot/PBxplore/internal/distance"
	"github.com/HubLot/PBxplore/internal/fasta"
	"github.com/HubLot/PBxplore/internal/pb"
	"github.com/HubLot/PBxplore/internal/report"
)

var (
	clustFastaPaths []string
	clustOutName    string
	clustJSON       bool
)

// clustCmd represents the clust command
var clustCmd = &cobra.Command{
	Use:   "clust",
	Short: "Cluster PB sequences by their substitution-score distance",
	Long: `Cluster PB sequences by their substitution-score distance

"pbxplore clust" scores every pair of sequences with the PB substitution
matrix, converts the scores into a normalized distance matrix, and
partitions the sequences into the requested number of clusters with
agglomerative hierarchical clustering. Each cluster is represented by
its medoid, the member closest to all the others.

Three files are written: NAME.PB.dist with the labeled distance matrix,
NAME.PB.clust with one SEQ_CLU line per sequence and one CLU_MED line
per cluster, and NAME.PB.med.fasta with the medoid sequences`,
	Run: runClust,
}

func init() {
	RootCmd.AddCommand(clustCmd)

	clustCmd.Flags().StringArrayVarP(&clustFastaPaths, "fasta", "f", nil, "path(s) to the PB sequences (fasta format)")
	clustCmd.Flags().StringVarP(&clustOutName, "output", "o", "", "root name for the result files")
	clustCmd.Flags().IntP("clusters", "c", 5, "number of clusters wanted")
	clustCmd.Flags().String("linkage", "ward", "linkage method: ward | single | complete | average")
	clustCmd.Flags().String("matrix", "PBs_substitution_matrix.dat", "path to the PB substitution matrix")
	clustCmd.Flags().Bool("external-r", false, "delegate the clustering to an external R process")
	clustCmd.Flags().BoolVar(&clustJSON, "json", false, "also write the clustering report as JSON")

	clustCmd.MarkFlagRequired("fasta")
	clustCmd.MarkFlagRequired("output")

	viper.BindPFlag("clusters", clustCmd.Flags().Lookup("clusters"))
	viper.BindPFlag("linkage", clustCmd.Flags().Lookup("linkage"))
	viper.BindPFlag("matrix", clustCmd.Flags().Lookup("matrix"))
	viper.BindPFlag("external-r", clustCmd.Flags().Lookup("external-r"))
}

func runClust(cmd *cobra.Command, args []string) {
	conf := config.New()

	seqs := readSequences(clustFastaPaths)

	matrix, err := pb.LoadSubstitutionMatrixFile(conf.MatrixPath)
	if err != nil {
		log.Fatalf("Failed to load the substitution matrix %s: %v", conf.MatrixPath, err)
	}

	linkage, err := cluster.ParseLinkage(conf.Cluster.Linkage)
	if err != nil {
		log.Fatalf("%v", err)
	}

	dist, err := distance.Build(seqs, matrix, distance.Options{})
	if err != nil {
		log.Fatalf("Failed to build the distance matrix: %v", err)
	}

	distName := clustOutName + ".PB.dist"
	if err := writeFileWith(distName, dist.WriteReport); err != nil {
		log.Fatalf("Failed to write %s: %v", distName, err)
	}
	log.Printf("wrote %s", distName)

	var backend cluster.Backend
	if conf.Cluster.ExternalR {
		backend = &cluster.RBackend{}
	}
	engine := cluster.New(backend, linkage)

	partition, err := engine.Cluster(dist, conf.Cluster.Count)
	if err != nil {
		log.Fatalf("Clustering failed: %v", err)
	}

	rep, err := report.Assemble(dist.Labels(), partition.Assignment, partition.Medoids)
	if err != nil {
		log.Fatalf("Failed to assemble the clustering report: %v", err)
	}

	clustName := clustOutName + ".PB.clust"
	if err := writeFileWith(clustName, rep.WriteText); err != nil {
		log.Fatalf("Failed to write %s: %v", clustName, err)
	}
	log.Printf("wrote %s", clustName)

	medName := clustOutName + ".PB.med.fasta"
	err = writeFileWith(medName, func(w io.Writer) error {
		return fasta.Write(w, medoidRecords(seqs, partition.Medoids), conf.FastaWidth)
	})
	if err != nil {
		log.Fatalf("Failed to write %s: %v", medName, err)
	}
	log.Printf("wrote %s", medName)

	if clustJSON {
		jsonName := clustName + ".json"
		if err := writeFileWith(jsonName, rep.WriteJSON); err != nil {
			log.Fatalf("Failed to write %s: %v", jsonName, err)
		}
		log.Printf("wrote %s", jsonName)
	}
}

// medoidRecords collects the medoid sequences in ascending cluster order
func medoidRecords(seqs []pb.Sequence, medoids map[int]int) []fasta.Record {
	ids := make([]int, 0, len(medoids))
	for id := range medoids {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	records := make([]fasta.Record, 0, len(ids))
	for _, id := range ids {
		s := seqs[medoids[id]]
		records = append(records, fasta.Record{ID: s.Label, Seq: s.Symbols})
	}
	return records
}

// writeFileWith creates the file and streams a writer function into it
func writeFileWith(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
