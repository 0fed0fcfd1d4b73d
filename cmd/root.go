// Package cmd is for command line interactions with the PBxplore
// application
package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/HubLot/PBxplore/config"
)

// RootCmd represents the base command when called without any
// subcommands
var RootCmd = &cobra.Command{
	Use: "pbxplore",
	Short: `Analyse protein structures through Protein Block sequences.
Cluster PB sequences, count block occurrences and measure local diversity`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to
// happen once to the RootCmd
func Execute() {
	config.SetDefaults()
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
