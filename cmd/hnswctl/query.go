package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kestrelvec/hnsw"
	"github.com/kestrelvec/hnsw/internal/vectorio"
)

var queryFlags struct {
	pointsPath  string
	queriesPath string
	k           int
}

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Build an index from a points CSV and run queries against it",
		Args:  cobra.NoArgs,
		RunE:  runQuery,
	}
	cmd.Flags().StringVar(&queryFlags.pointsPath, "points", "", "CSV file of label,coord_0,coord_1,... rows")
	cmd.Flags().StringVar(&queryFlags.queriesPath, "queries", "", "CSV file of query vectors, label column optional")
	cmd.Flags().IntVar(&queryFlags.k, "k", 10, "number of neighbors to return per query")
	cmd.MarkFlagRequired("points")
	cmd.MarkFlagRequired("queries")
	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
	idx, err := buildIndexFromFile(queryFlags.pointsPath)
	if err != nil {
		return err
	}

	qf, err := os.Open(queryFlags.queriesPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", queryFlags.queriesPath, err)
	}
	defer qf.Close()

	queries, err := vectorio.ReadVectors(qf)
	if err != nil {
		return err
	}

	results, err := idx.SearchBatch(queries, queryFlags.k)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for qi, neighbors := range results {
		fmt.Fprintf(out, "query %d:\n", qi)
		for rank, p := range neighbors {
			d := hnsw.EuclideanDistance(queries[qi], p.Coords())
			fmt.Fprintf(out, "  %d. %v (distance %.4f)\n", rank+1, p.Label(), d)
		}
	}
	return nil
}
