package matching

import (
	"math"

	"github.com/jonathan/cv-matcher/internal/normalize"
	"github.com/jonathan/cv-matcher/internal/types"
)

// Engine computes match results. It holds only immutable configuration, so a
// single Engine is safe for concurrent use and every Match call is a pure
// function of its two inputs.
type Engine struct {
	cfg   Config
	keyer *normalize.Keyer
}

// New builds an Engine, failing fast with a ConfigError before any matching
// can occur.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, keyer: normalize.NewKeyer(cfg.Synonyms)}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Match scores one candidate profile against one job profile. Structural
// violations of the input contract surface immediately; data-quality issues
// (unparseable names or experience strings) degrade locally instead.
func (e *Engine) Match(candidate *types.CandidateProfile, job *types.JobProfile) (*types.MatchResult, error) {
	if err := candidate.Validate(); err != nil {
		return nil, err
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}

	tech := e.matchTechnologies(&candidate.Technologies, &job.RequiredTechnologies)
	soft := e.matchSoftSkills(&candidate.SoftSkills, &job.RequiredSoftSkills)
	exp := matchExperience(candidate.YearsOfExperience, job.MinimumExperience)

	return &types.MatchResult{
		CandidateID:   candidate.ID,
		CandidateName: candidate.Name,
		JobTitle:      job.JobTitle,
		OverallScore:  e.aggregate(tech.Score, soft.Score, exp.Score),
		Technology:    tech,
		SoftSkills:    soft,
		Experience:    exp,
	}, nil
}

// aggregate combines the three facet scores using the configured category
// weights. Weights sum to 100, so the division keeps the result in [0,100].
func (e *Engine) aggregate(tech, soft, exp float64) float64 {
	overall := (e.cfg.Weights.Technology*tech +
		e.cfg.Weights.SoftSkills*soft +
		e.cfg.Weights.Experience*exp) / 100
	return round1(clamp(overall))
}

// round1 rounds to one decimal place, the precision of every score.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
