package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-matcher/internal/batch"
	"github.com/jonathan/cv-matcher/internal/logger"
	"github.com/jonathan/cv-matcher/internal/report"
	"github.com/jonathan/cv-matcher/internal/types"
)

var batchMatchCmd = &cobra.Command{
	Use:   "batch-match",
	Short: "Rank a directory of candidate profiles against a job profile",
	Long:  "Matches every candidate profile JSON file in a directory against one job profile and produces a ranking with top-candidate detail. A failing candidate is reported, never aborts the batch.",
	RunE:  runBatchMatch,
}

var (
	batchCandidatesDir string
	batchJob           string
	batchTop           int
	batchWorkers       int
	batchOutput        string
)

func init() {
	batchMatchCmd.Flags().StringVarP(&batchCandidatesDir, "candidates-dir", "c", "", "Path to directory of CandidateProfile JSON files (required)")
	batchMatchCmd.Flags().StringVarP(&batchJob, "job", "j", "", "Path to input JobProfile JSON file (required)")
	batchMatchCmd.Flags().IntVarP(&batchTop, "top", "n", 0, "How many detailed top candidates to retain (default from config)")
	batchMatchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Concurrent match workers (default from config)")
	batchMatchCmd.Flags().StringVarP(&batchOutput, "out", "o", "", "Path to output batch result JSON file (prints to stdout when omitted)")

	if err := batchMatchCmd.MarkFlagRequired("candidates-dir"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates-dir flag as required: %v", err))
	}
	if err := batchMatchCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(batchMatchCmd)
}

func runBatchMatch(cmd *cobra.Command, _ []string) error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	job, err := loadJobProfile(batchJob)
	if err != nil {
		return err
	}
	candidates, err := loadCandidateDir(batchCandidatesDir)
	if err != nil {
		return err
	}

	log, err := logger.New(flagJSON, flagDebug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	topN := cfg.Batch.TopCandidates
	if cmd.Flags().Changed("top") {
		topN = batchTop
	}
	workers := cfg.Batch.Workers
	if cmd.Flags().Changed("workers") {
		workers = batchWorkers
	}

	ranker := batch.NewRanker(engine,
		batch.WithWorkers(workers),
		batch.WithTopCandidates(topN),
		batch.WithLogger(log),
	)

	result, err := ranker.Run(cmd.Context(), job, candidates)
	if err != nil {
		return fmt.Errorf("failed to run batch match: %w", err)
	}

	if batchOutput != "" {
		response := types.BatchMatchResponse{Success: true, Batch: result}
		if err := writeJSON(batchOutput, response); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Successfully ranked %d candidates to %s\n", result.Total, batchOutput)
		return nil
	}

	printer := report.NewPrinter(os.Stdout)
	printer.PrintBatchResult(result)
	printer.PrintCommonGaps(result.TopCandidates)

	return nil
}

// loadCandidateDir loads every .json file in dir as a candidate profile, in
// deterministic filename order. A file that fails to decode still enters the
// batch as a placeholder so the ranking tallies it as failed.
func loadCandidateDir(dir string) ([]*types.CandidateProfile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, fmt.Errorf("no candidate profile JSON files found in %s", dir)
	}

	candidates := make([]*types.CandidateProfile, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		candidate, err := loadCandidateProfile(path)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			candidate = &types.CandidateProfile{ID: name}
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}
