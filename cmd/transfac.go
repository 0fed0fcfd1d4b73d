package cmd

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HubLot/PBxplore/internal/stat"
)

var (
	transfacCountPath string
	transfacOutName   string
)

// transfacCmd represents the transfac command
var transfacCmd = &cobra.Command{
	Use:   "transfac",
	Short: "Convert a PB count file into the transfac format",
	Long: `Convert a PB count file into the transfac format

"pbxplore transfac" rewrites an occurrence matrix produced by
"pbxplore count" into the transfac frequency-matrix format consumed by
external sequence-logo tools. The result is written to NAME.transfac`,
	Run: runTransfac,
}

func init() {
	RootCmd.AddCommand(transfacCmd)

	transfacCmd.Flags().StringVarP(&transfacCountPath, "count", "f", "", "path to a PB.count file")
	transfacCmd.Flags().StringVarP(&transfacOutName, "output", "o", "", "root name for the result file")

	transfacCmd.MarkFlagRequired("count")
	transfacCmd.MarkFlagRequired("output")
}

func runTransfac(cmd *cobra.Command, args []string) {
	content, err := os.ReadFile(transfacCountPath)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", transfacCountPath, err)
	}
	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")

	transfac, err := stat.CountToTransfac(transfacCountPath, lines)
	if err != nil {
		log.Fatalf("Failed to convert %s: %v", transfacCountPath, err)
	}

	name := transfacOutName + ".transfac"
	err = writeFileWith(name, func(w io.Writer) error {
		_, werr := io.WriteString(w, transfac+"\n")
		return werr
	})
	if err != nil {
		log.Fatalf("Failed to write %s: %v", name, err)
	}
	log.Printf("wrote %s", name)
}
