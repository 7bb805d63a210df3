// Command hnswctl builds and queries an in-memory HNSW index from CSV
// point files in a single invocation — the index itself is never persisted
// (hnsw's Non-goals explicitly exclude persistence), so every run re-reads
// its input.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kestrelvec/hnsw"
	"github.com/kestrelvec/hnsw/internal/hnswconfig"
	"github.com/kestrelvec/hnsw/internal/obslog"
	"github.com/kestrelvec/hnsw/internal/vectorio"
)

var flags struct {
	configPath string
	m          int
	efConstr   int
	levelMult  float64
	efSearch   int
	seed       int64
	logLevel   string
	logFormat  string
}

var rootCmd *cobra.Command

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hnswctl",
		Short: "Build and query an in-memory HNSW vector index",
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML file with m/ef_construction/level_mult/ef_search/seed")
	root.PersistentFlags().IntVar(&flags.m, "m", 0, "neighbors linked per node per layer; degree cap is M, 2*M on layer 0 (overrides --config)")
	root.PersistentFlags().IntVar(&flags.efConstr, "ef-construction", 0, "construction candidate list size (overrides --config)")
	root.PersistentFlags().Float64Var(&flags.levelMult, "level-mult", 0, "level generation multiplier (overrides --config)")
	root.PersistentFlags().IntVar(&flags.efSearch, "ef-search", 0, "query candidate list size (overrides --config)")
	root.PersistentFlags().Int64Var(&flags.seed, "seed", 0, "deterministic level-sampler seed")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "debug, info, warn, or error")
	root.PersistentFlags().StringVar(&flags.logFormat, "log-format", "text", "text or json")

	root.AddCommand(newBuildCmd(), newQueryCmd())
	rootCmd = root
	return root
}

func resolveConfig() (hnswconfig.Config, error) {
	cfg := hnswconfig.Default()
	if flags.configPath != "" {
		var err error
		cfg, err = hnswconfig.Load(flags.configPath)
		if err != nil {
			return hnswconfig.Config{}, err
		}
	}
	if flags.m > 0 {
		cfg.M = flags.m
	}
	if flags.efConstr > 0 {
		cfg.EfConstruction = flags.efConstr
	}
	if flags.levelMult > 0 {
		cfg.LevelMult = flags.levelMult
	}
	if flags.efSearch > 0 {
		cfg.EfSearch = flags.efSearch
	}
	if rootCmd.PersistentFlags().Changed("seed") {
		seed := flags.seed
		cfg.Seed = &seed
	}
	return cfg, nil
}

func buildLogger() *slog.Logger {
	var level slog.Level
	switch flags.logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	return obslog.New(obslog.Config{Level: level, Format: flags.logFormat, Output: os.Stderr})
}

func buildIndexFromFile(path string) (*hnsw.Index[string], error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	points, err := vectorio.ReadPoints(f)
	if err != nil {
		return nil, err
	}

	opts := []hnsw.Option[string]{hnsw.WithLogger[string](buildLogger())}
	if cfg.EfSearch > 0 {
		opts = append(opts, hnsw.WithEfSearch[string](cfg.EfSearch))
	}
	if cfg.Seed != nil {
		opts = append(opts, hnsw.WithSeed[string](*cfg.Seed))
	}

	idx, err := hnsw.New[string](cfg.M, cfg.EfConstruction, cfg.LevelMult, hnsw.EuclideanDistance, opts...)
	if err != nil {
		return nil, err
	}
	if err := idx.InsertBatch(points); err != nil {
		return nil, fmt.Errorf("building index: %w", err)
	}
	return idx, nil
}

