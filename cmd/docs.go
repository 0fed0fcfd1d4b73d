package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var docsDir string

// docsCmd regenerates the Markdown command documentation
var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Generate Markdown documentation for all commands",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		if err := doc.GenMarkdownTree(RootCmd, docsDir); err != nil {
			log.Fatalf("Failed to generate the docs: %v", err)
		}
		log.Printf("wrote command docs to %s", docsDir)
	},
}

func init() {
	RootCmd.AddCommand(docsCmd)

	docsCmd.Flags().StringVar(&docsDir, "dir", "./docs", "directory to write the Markdown files into")
}
