package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cv-matcher/internal/batch"
	"github.com/jonathan/cv-matcher/internal/types"
)

// handleMatch scores one candidate against one job.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.engine.Match(req.Candidate, req.Job)
	if err != nil {
		s.errorResponse(w, statusFor(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.MatchResponse{
		Success: true,
		Match:   result,
		Gaps:    s.engine.Gaps(result),
	})
}

// handleBatchMatch ranks many candidates against one job.
func (s *Server) handleBatchMatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := []batch.Option{
		batch.WithWorkers(s.cfg.Workers),
		batch.WithTopCandidates(s.cfg.TopCandidates),
		batch.WithLogger(s.log),
	}
	if req.TopCandidates > 0 {
		opts = append(opts, batch.WithTopCandidates(req.TopCandidates))
	}
	ranker := batch.NewRanker(s.engine, opts...)

	result, err := ranker.Run(r.Context(), req.Job, req.Candidates)
	if err != nil {
		s.errorResponse(w, statusFor(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.BatchMatchResponse{
		Success: true,
		Batch:   result,
	})
}

// statusFor maps match errors to HTTP status codes. Input contract
// violations are client errors; anything else is a server error.
func statusFor(err error) int {
	var malformed *types.MalformedProfileError
	if errors.As(err, &malformed) {
		return http.StatusBadRequest
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
