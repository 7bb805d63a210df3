package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kestrelvec/hnsw"
)

var buildFlags struct {
	pointsPath string
}

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build an index from a points CSV and print its shape",
		Args:  cobra.NoArgs,
		RunE:  runBuild,
	}
	cmd.Flags().StringVar(&buildFlags.pointsPath, "points", "", "CSV file of label,coord_0,coord_1,... rows")
	cmd.MarkFlagRequired("points")
	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	idx, err := buildIndexFromFile(buildFlags.pointsPath)
	if err != nil {
		return err
	}

	an := hnsw.Analyzer[string]{Index: idx}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "inserted %d points across %d layers\n", idx.Len(), an.Height())
	for l, count := range an.Topography() {
		fmt.Fprintf(out, "  layer %d: %d nodes, avg degree %.2f\n", l, count, an.Connectivity()[l])
	}
	return nil
}
