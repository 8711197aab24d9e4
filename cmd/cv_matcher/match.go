package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-matcher/internal/report"
	"github.com/jonathan/cv-matcher/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score one candidate profile against a job profile",
	Long:  "Scores a structured candidate profile against a structured job profile, producing an overall score, per-facet breakdowns and a prioritized gap analysis.",
	RunE:  runMatch,
}

var (
	matchCandidate string
	matchJob       string
	matchOutput    string
)

func init() {
	matchCmd.Flags().StringVarP(&matchCandidate, "candidate", "c", "", "Path to input CandidateProfile JSON file (required)")
	matchCmd.Flags().StringVarP(&matchJob, "job", "j", "", "Path to input JobProfile JSON file (required)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output match analysis JSON file (prints to stdout when omitted)")

	if err := matchCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	candidate, err := loadCandidateProfile(matchCandidate)
	if err != nil {
		return err
	}
	job, err := loadJobProfile(matchJob)
	if err != nil {
		return err
	}

	result, err := engine.Match(candidate, job)
	if err != nil {
		return fmt.Errorf("failed to match candidate: %w", err)
	}
	gaps := engine.Gaps(result)

	if matchOutput != "" {
		response := types.MatchResponse{Success: true, Match: result, Gaps: gaps}
		if err := writeJSON(matchOutput, response); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Successfully wrote match analysis to %s\n", matchOutput)
		return nil
	}

	printer := report.NewPrinter(os.Stdout)
	printer.PrintMatchResult(result)
	printer.PrintGaps(gaps)

	return nil
}
