package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-matcher/internal/types"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := New(DefaultConfig())
	require.NoError(t, err)
	return engine
}

func TestMatchTechnologies_WeightedScore(t *testing.T) {
	e := newTestEngine(t)

	cv := &types.Technologies{
		ProgrammingLanguages: []types.Technology{
			{Name: "Python", Probability: 95},
			{Name: "JavaScript", Probability: 80},
		},
	}
	job := &types.RequiredTechnologies{
		ProgrammingLanguages: []types.RequiredTechnology{
			{Name: "Python", Importance: types.TierCritical},
			{Name: "Java", Importance: types.TierHigh, Required: true},
		},
	}

	result := e.matchTechnologies(cv, job)

	// critical 3 matched out of 3+2 total weight
	assert.Equal(t, 60.0, result.Score)
	assert.Equal(t, 1, result.MatchedCount)
	assert.Equal(t, 2, result.TotalRequirements)

	require.Len(t, result.Matched, 1)
	assert.Equal(t, "Python", result.Matched[0].Name)
	assert.Equal(t, 95, result.Matched[0].CVScore)
	assert.Equal(t, "Programming Languages", result.Matched[0].Category)

	require.Len(t, result.Missing, 1)
	assert.Equal(t, "Java", result.Missing[0].Name)
	assert.True(t, result.Missing[0].Required)
}

func TestMatchTechnologies_SynonymsMatch(t *testing.T) {
	e := newTestEngine(t)

	cv := &types.Technologies{
		ProgrammingLanguages: []types.Technology{{Name: "Golang", Probability: 90}},
		Databases:            []types.Technology{{Name: "Postgres", Probability: 85}},
	}
	job := &types.RequiredTechnologies{
		ProgrammingLanguages: []types.RequiredTechnology{{Name: "Go", Importance: types.TierCritical}},
		Databases:            []types.RequiredTechnology{{Name: "PostgreSQL", Importance: types.TierHigh}},
	}

	result := e.matchTechnologies(cv, job)

	assert.Equal(t, 100.0, result.Score)
	assert.Equal(t, 2, result.MatchedCount)
	assert.Empty(t, result.Missing)
}

func TestMatchTechnologies_CategoryScoping(t *testing.T) {
	e := newTestEngine(t)

	// Docker under devops does not satisfy a databases requirement.
	cv := &types.Technologies{
		DevOps: []types.Technology{{Name: "Docker", Probability: 90}},
	}
	job := &types.RequiredTechnologies{
		Databases: []types.RequiredTechnology{{Name: "Docker", Importance: types.TierMedium}},
	}

	result := e.matchTechnologies(cv, job)

	assert.Equal(t, 0.0, result.Score)
	require.Len(t, result.Missing, 1)
	assert.Equal(t, "Docker", result.Missing[0].Name)
}

func TestMatchTechnologies_CloudProviderScoping(t *testing.T) {
	e := newTestEngine(t)

	cv := &types.Technologies{
		CloudServices: types.CloudServices{
			AWS: []types.Technology{{Name: "Lambda", Probability: 90}},
		},
	}
	job := &types.RequiredTechnologies{
		CloudServices: types.RequiredCloudServices{
			AWS: []types.RequiredTechnology{{Name: "Lambda", Importance: types.TierHigh}},
			GCP: []types.RequiredTechnology{{Name: "Lambda", Importance: types.TierHigh}},
		},
	}

	result := e.matchTechnologies(cv, job)

	require.Len(t, result.Matched, 1)
	assert.Equal(t, "AWS Cloud", result.Matched[0].Category)
	require.Len(t, result.Missing, 1)
	assert.Equal(t, "GCP Cloud", result.Missing[0].Category)
	assert.Equal(t, 50.0, result.Score)
}

func TestMatchTechnologies_DuplicateKeepsHighestProbability(t *testing.T) {
	e := newTestEngine(t)

	cv := &types.Technologies{
		ProgrammingLanguages: []types.Technology{
			{Name: "Python", Probability: 60},
			{Name: "python", Probability: 90},
		},
	}
	job := &types.RequiredTechnologies{
		ProgrammingLanguages: []types.RequiredTechnology{{Name: "Python", Importance: types.TierHigh}},
	}

	result := e.matchTechnologies(cv, job)

	require.Len(t, result.Matched, 1)
	assert.Equal(t, 90, result.Matched[0].CVScore)
}

func TestMatchTechnologies_NoRequirementsVacuouslySatisfied(t *testing.T) {
	e := newTestEngine(t)

	cv := &types.Technologies{
		ProgrammingLanguages: []types.Technology{{Name: "Python", Probability: 95}},
	}

	result := e.matchTechnologies(cv, &types.RequiredTechnologies{})

	assert.Equal(t, 100.0, result.Score)
	assert.Equal(t, 0, result.TotalRequirements)
	assert.Empty(t, result.Matched)
	assert.Empty(t, result.Missing)
}

func TestMatchTechnologies_ExtraMissingRequirementNeverRaisesScore(t *testing.T) {
	e := newTestEngine(t)

	cv := &types.Technologies{
		ProgrammingLanguages: []types.Technology{{Name: "Python", Probability: 95}},
	}
	job := &types.RequiredTechnologies{
		ProgrammingLanguages: []types.RequiredTechnology{
			{Name: "Python", Importance: types.TierCritical},
		},
	}

	before := e.matchTechnologies(cv, job).Score

	job.ProgrammingLanguages = append(job.ProgrammingLanguages,
		types.RequiredTechnology{Name: "Scala", Importance: types.TierCritical})
	after := e.matchTechnologies(cv, job).Score

	assert.LessOrEqual(t, after, before)
}

func TestMatchTechnologies_MissingSortedByWeightThenCategoryThenName(t *testing.T) {
	e := newTestEngine(t)

	job := &types.RequiredTechnologies{
		ProgrammingLanguages: []types.RequiredTechnology{
			{Name: "Rust", Importance: types.TierLow},
			{Name: "Go", Importance: types.TierCritical},
		},
		Databases: []types.RequiredTechnology{
			{Name: "Redis", Importance: types.TierCritical},
			{Name: "Cassandra", Importance: types.TierCritical},
		},
	}

	result := e.matchTechnologies(&types.Technologies{}, job)

	require.Len(t, result.Missing, 4)
	assert.Equal(t, "Cassandra", result.Missing[0].Name)
	assert.Equal(t, "Redis", result.Missing[1].Name)
	assert.Equal(t, "Go", result.Missing[2].Name)
	assert.Equal(t, "Rust", result.Missing[3].Name)
}
