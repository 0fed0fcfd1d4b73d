package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestNewPicksUpDefaults(t *testing.T) {
	viper.Reset()
	SetDefaults()

	c := New()

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"default cluster count", c.Cluster.Count, 5},
		{"default linkage", c.Cluster.Linkage, "ward"},
		{"default external R", c.Cluster.ExternalR, false},
		{"default fasta width", c.FastaWidth, 60},
		{"default matrix path", c.MatrixPath, "PBs_substitution_matrix.dat"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestNewOverrides(t *testing.T) {
	viper.Reset()
	SetDefaults()
	viper.Set("clusters", 3)
	viper.Set("linkage", "average")

	c := New()
	if c.Cluster.Count != 3 {
		t.Errorf("clusters = %d, want 3", c.Cluster.Count)
	}
	if c.Cluster.Linkage != "average" {
		t.Errorf("linkage = %q, want %q", c.Cluster.Linkage, "average")
	}
}
