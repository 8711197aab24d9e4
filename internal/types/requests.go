package types

import "github.com/go-playground/validator/v10"

// MatchRequest asks the API to score one candidate against one job.
type MatchRequest struct {
	Candidate *CandidateProfile `json:"candidate" validate:"required"`
	Job       *JobProfile       `json:"job" validate:"required"`
}

// BatchMatchRequest asks the API to rank many candidates against one job.
// TopCandidates of zero uses the server default.
type BatchMatchRequest struct {
	Job           *JobProfile         `json:"job" validate:"required"`
	Candidates    []*CandidateProfile `json:"candidates" validate:"required,min=1"`
	TopCandidates int                 `json:"top_candidates,omitempty" validate:"omitempty,min=1"`
}

// MatchResponse wraps a single match analysis for API consumers.
type MatchResponse struct {
	Success bool         `json:"success"`
	Match   *MatchResult `json:"match_analysis"`
	Gaps    []Gap        `json:"gaps"`
}

// BatchMatchResponse wraps a batch ranking for API consumers.
type BatchMatchResponse struct {
	Success bool         `json:"success"`
	Batch   *BatchResult `json:"batch"`
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BatchMatchRequest using the validator.
func (r *BatchMatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
