// Package vectorio reads the CLI's point and query files: CSV rows of
// "label,coord_0,coord_1,...". A row with a non-numeric first column is
// treated as carrying an explicit label; a row where every column parses as
// a number is treated as unlabeled and stamped with a generated UUID, so a
// point identity always exists without the caller inventing one.
package vectorio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"

	"github.com/kestrelvec/hnsw"
)

// ReadPoints parses every row of r into a labeled point.
func ReadPoints(r io.Reader) ([]hnsw.Point[string], error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("vectorio: reading csv: %w", err)
	}

	points := make([]hnsw.Point[string], 0, len(rows))
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		label, coords, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("vectorio: row %d: %w", i, err)
		}
		points = append(points, hnsw.NewPoint(coords, label))
	}
	return points, nil
}

// ReadVectors parses every row of r into a bare coordinate vector, ignoring
// any label column (used for query files, where a result label would be
// meaningless).
func ReadVectors(r io.Reader) ([]hnsw.Vector, error) {
	points, err := ReadPoints(r)
	if err != nil {
		return nil, err
	}
	out := make([]hnsw.Vector, len(points))
	for i, p := range points {
		out[i] = p.Coords()
	}
	return out, nil
}

func parseRow(row []string) (label string, coords hnsw.Vector, err error) {
	start := 0
	if _, numErr := strconv.ParseFloat(row[0], 32); numErr != nil {
		label = row[0]
		start = 1
	} else {
		label = uuid.NewString()
	}

	coords = make(hnsw.Vector, 0, len(row)-start)
	for _, field := range row[start:] {
		v, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return "", nil, fmt.Errorf("parsing coordinate %q: %w", field, err)
		}
		coords = append(coords, float32(v))
	}
	return label, coords, nil
}
