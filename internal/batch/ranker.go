// Package batch ranks many candidate profiles against one job profile,
// tolerating per-candidate failures.
package batch

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-matcher/internal/matching"
	"github.com/jonathan/cv-matcher/internal/types"
)

const (
	// DefaultTopCandidates is how many detailed results a ranking retains.
	DefaultTopCandidates = 5
	// DefaultWorkers bounds the match pool independently of batch size.
	DefaultWorkers = 4
)

// Ranker runs the full match pipeline over a batch of candidates. Matching
// is embarrassingly parallel: the engine is stateless, so workers share it
// without locking.
type Ranker struct {
	engine  *matching.Engine
	workers int
	topN    int
	log     *zap.Logger
}

// Option configures a Ranker.
type Option func(*Ranker)

// WithWorkers caps the number of concurrent match computations.
func WithWorkers(n int) Option {
	return func(r *Ranker) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithTopCandidates sets how many detailed results the ranking retains.
func WithTopCandidates(n int) Option {
	return func(r *Ranker) {
		if n > 0 {
			r.topN = n
		}
	}
}

// WithLogger sets the structured logger. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(r *Ranker) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRanker builds a Ranker around a constructed engine.
func NewRanker(engine *matching.Engine, opts ...Option) *Ranker {
	r := &Ranker{
		engine:  engine,
		workers: DefaultWorkers,
		topN:    DefaultTopCandidates,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// outcome is the per-candidate result of the pending → matched|failed state
// machine. Exactly one of result/err is set.
type outcome struct {
	id     string
	name   string
	result *types.MatchResult
	err    error
}

// Run matches every candidate against the job and returns the ranked batch.
// A failing candidate is tallied and excluded from ranking but never aborts
// the run; only context cancellation stops the batch early.
func (r *Ranker) Run(ctx context.Context, job *types.JobProfile, candidates []*types.CandidateProfile) (*types.BatchResult, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}

	r.log.Info("starting batch match",
		zap.Int("candidates", len(candidates)),
		zap.Int("workers", r.workers),
		zap.String("job_title", job.JobTitle),
	)

	outcomes := make([]outcome, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, candidate := range candidates {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			outcomes[i] = r.matchOne(candidate, job)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// Cancellation discards in-flight results; nothing to clean up.
		return nil, err
	}

	return r.rank(outcomes), nil
}

// matchOne runs the pipeline for a single candidate, converting any error
// into a failed outcome.
func (r *Ranker) matchOne(candidate *types.CandidateProfile, job *types.JobProfile) outcome {
	out := outcome{id: candidateID(candidate)}
	if candidate != nil {
		out.name = candidate.Name
	}

	result, err := r.engine.Match(candidate, job)
	if err != nil {
		out.err = err
		return out
	}
	result.CandidateID = out.id
	out.result = result
	return out
}

// rank folds per-candidate outcomes into the final batch result: matched
// summaries stable-sorted by overall score descending (ties keep input
// order), top-N detailed results, and failed candidates appended for
// transparency.
func (r *Ranker) rank(outcomes []outcome) *types.BatchResult {
	// Summaries stay paired with their detailed results through the sort.
	// Candidate ids come from the caller and are not necessarily unique, so
	// they cannot key the detail lookup.
	type ranked struct {
		summary types.CandidateSummary
		result  *types.MatchResult
	}

	matched := make([]ranked, 0, len(outcomes))
	failed := make([]types.CandidateSummary, 0)

	for _, out := range outcomes {
		if out.err != nil {
			r.log.Warn("candidate failed",
				zap.String("candidate_id", out.id),
				zap.Error(out.err),
			)
			failed = append(failed, types.CandidateSummary{
				CandidateID:   out.id,
				CandidateName: out.name,
				Status:        types.StatusFailed,
				Error:         out.err.Error(),
			})
			continue
		}
		matched = append(matched, ranked{
			summary: types.CandidateSummary{
				CandidateID:     out.id,
				CandidateName:   out.result.CandidateName,
				OverallScore:    out.result.OverallScore,
				TechnologyScore: out.result.Technology.Score,
				SoftSkillsScore: out.result.SoftSkills.Score,
				ExperienceScore: out.result.Experience.Score,
				Status:          types.StatusMatched,
			},
			result: out.result,
		})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].summary.OverallScore > matched[j].summary.OverallScore
	})

	topN := min(r.topN, len(matched))
	top := make([]*types.MatchResult, 0, topN)
	summaries := make([]types.CandidateSummary, 0, len(matched)+len(failed))
	for i, m := range matched {
		if i < topN {
			top = append(top, m.result)
		}
		summaries = append(summaries, m.summary)
	}
	summaries = append(summaries, failed...)

	r.log.Info("batch match complete",
		zap.Int("total", len(outcomes)),
		zap.Int("succeeded", len(matched)),
		zap.Int("failed", len(failed)),
	)

	return &types.BatchResult{
		Total:         len(outcomes),
		Succeeded:     len(matched),
		Failed:        len(failed),
		TopCandidates: top,
		AllCandidates: summaries,
	}
}

// candidateID keeps summaries addressable even when the input profile
// carries no id.
func candidateID(candidate *types.CandidateProfile) string {
	if candidate != nil && candidate.ID != "" {
		return candidate.ID
	}
	return uuid.NewString()
}
