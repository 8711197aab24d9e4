package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/cv-matcher/internal/schemas"
	"github.com/jonathan/cv-matcher/internal/types"
)

// loadCandidateProfile reads and decodes a candidate profile JSON file.
// Schema validation problems are reported as warnings; the engine enforces
// the structural contract itself.
func loadCandidateProfile(path string) (*types.CandidateProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate profile file %s: %w", path, err)
	}

	if err := schemas.ValidateCandidateProfile(content); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: candidate profile %s failed schema validation: %v\n", path, err)
	}

	var candidate types.CandidateProfile
	if err := json.Unmarshal(content, &candidate); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate profile JSON: %w", err)
	}

	return &candidate, nil
}

// loadJobProfile reads and decodes a job profile JSON file.
func loadJobProfile(path string) (*types.JobProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job profile file %s: %w", path, err)
	}

	if err := schemas.ValidateJobProfile(content); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: job profile %s failed schema validation: %v\n", path, err)
	}

	var job types.JobProfile
	if err := json.Unmarshal(content, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job profile JSON: %w", err)
	}

	return &job, nil
}

// writeJSON marshals v with indentation and writes it to path, creating the
// output directory if needed.
func writeJSON(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	return nil
}
