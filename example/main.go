package main

import (
	"fmt"
	"log"

	"github.com/kestrelvec/hnsw"
)

func main() {
	idx, err := hnsw.New[int](16, 200, 1.0, hnsw.EuclideanDistance, hnsw.WithSeed[int](42))
	if err != nil {
		log.Fatalf("failed to create index: %v", err)
	}

	if err := idx.InsertBatch([]hnsw.Point[int]{
		hnsw.NewPoint(hnsw.Vector{1, 1, 1}, 1),
		hnsw.NewPoint(hnsw.Vector{1, -1, 0.999}, 2),
		hnsw.NewPoint(hnsw.Vector{1, 0, -0.5}, 3),
	}); err != nil {
		log.Fatalf("failed to insert points: %v", err)
	}

	neighbors, err := idx.Search(hnsw.Vector{0.5, 0.5, 0.5}, 1)
	if err != nil {
		log.Fatalf("failed to search index: %v", err)
	}
	fmt.Printf("best friend: %v\n", neighbors[0].Label())

	batch := make([]hnsw.Point[int], 5)
	for i := range batch {
		label := 100 + i
		v := float32(i) * 0.5
		batch[i] = hnsw.NewPoint(hnsw.Vector{v, v, v}, label)
	}
	if err := idx.InsertBatch(batch); err != nil {
		log.Fatalf("failed to insert batch: %v", err)
	}
	fmt.Printf("index size after batch insert: %d\n", idx.Len())

	queries := []hnsw.Vector{
		{0, 0, 0},
		{1, 1, 1},
		{100, 100, 100},
	}
	results, err := idx.SearchBatch(queries, 2)
	if err != nil {
		log.Fatalf("failed to search batch: %v", err)
	}
	for i, res := range results {
		labels := make([]int, len(res))
		for j, p := range res {
			labels[j] = p.Label()
		}
		fmt.Printf("query %d nearest: %v\n", i, labels)
	}

	an := hnsw.Analyzer[int]{Index: idx}
	fmt.Printf("graph height: %d layers\n", an.Height())
	fmt.Printf("layer sizes: %v\n", an.Topography())
}
