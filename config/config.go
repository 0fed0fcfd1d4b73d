// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// ClusterConfig is settings for the clustering pipeline
type ClusterConfig struct {
	// the number of clusters to build
	Count int `mapstructure:"clusters"`

	// the linkage method: ward, single, complete or average
	Linkage string `mapstructure:"linkage"`

	// whether to delegate the clustering to an external R process
	ExternalR bool `mapstructure:"external-r"`
}

// Config is the root-level settings struct, a mix of defaults and
// values bound from the command line
type Config struct {
	// path to the PB substitution matrix file
	MatrixPath string `mapstructure:"matrix"`

	// line width when writing fasta sequences
	FastaWidth int `mapstructure:"fasta-width"`

	// clustering settings
	Cluster ClusterConfig `mapstructure:",squash"`
}

// SetDefaults registers the default settings with viper. Called once
// from the root command before any flag binding
func SetDefaults() {
	viper.SetDefault("matrix", "PBs_substitution_matrix.dat")
	viper.SetDefault("fasta-width", 60)
	viper.SetDefault("clusters", 5)
	viper.SetDefault("linkage", "ward")
	viper.SetDefault("external-r", false)
}

// New returns a Config populated from viper
func New() Config {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}
	return c
}
