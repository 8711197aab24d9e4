package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-matcher/internal/types"
)

func TestMatchSoftSkills_PresenceThreshold(t *testing.T) {
	e := newTestEngine(t)

	cv := &types.SoftSkills{
		LeadershipManagement: []types.SoftSkill{
			{Skill: "Mentoring", Confidence: 49},
		},
		CommunicationCollaboration: []types.SoftSkill{
			{Skill: "Public Speaking", Confidence: 50},
		},
	}
	job := &types.RequiredSoftSkills{
		LeadershipManagement: []types.RequiredSoftSkill{
			{Skill: "Mentoring", Importance: types.TierHigh},
		},
		CommunicationCollaboration: []types.RequiredSoftSkill{
			{Skill: "Public Speaking", Importance: types.TierHigh},
		},
	}

	result := e.matchSoftSkills(cv, job)

	// Confidence 49 is below the threshold of 50; the skill is absent.
	require.Len(t, result.Matched, 1)
	assert.Equal(t, "Public Speaking", result.Matched[0].Name)
	require.Len(t, result.Missing, 1)
	assert.Equal(t, "Mentoring", result.Missing[0].Name)
	assert.Equal(t, 50.0, result.Score)
}

func TestMatchSoftSkills_SameCategoryOnly(t *testing.T) {
	e := newTestEngine(t)

	// Adaptability listed under the wrong category does not satisfy the
	// requirement.
	cv := &types.SoftSkills{
		Others: []types.SoftSkill{{Skill: "Adaptability", Confidence: 90}},
	}
	job := &types.RequiredSoftSkills{
		AdaptabilityLearning: []types.RequiredSoftSkill{
			{Skill: "Adaptability", Importance: types.TierMedium},
		},
	}

	result := e.matchSoftSkills(cv, job)

	assert.Equal(t, 0.0, result.Score)
	require.Len(t, result.Missing, 1)
	assert.Equal(t, "Adaptability Learning", result.Missing[0].Category)
}

func TestMatchSoftSkills_CaseInsensitive(t *testing.T) {
	e := newTestEngine(t)

	cv := &types.SoftSkills{
		ProblemSolvingAnalytical: []types.SoftSkill{
			{Skill: "critical thinking", Confidence: 75},
		},
	}
	job := &types.RequiredSoftSkills{
		ProblemSolvingAnalytical: []types.RequiredSoftSkill{
			{Skill: "Critical Thinking", Importance: types.TierHigh},
		},
	}

	result := e.matchSoftSkills(cv, job)

	assert.Equal(t, 100.0, result.Score)
	require.Len(t, result.Matched, 1)
	assert.Equal(t, 75, result.Matched[0].CVScore)
}

func TestMatchSoftSkills_NoRequirementsVacuouslySatisfied(t *testing.T) {
	e := newTestEngine(t)

	result := e.matchSoftSkills(&types.SoftSkills{}, &types.RequiredSoftSkills{})

	assert.Equal(t, 100.0, result.Score)
	assert.Equal(t, 0, result.TotalRequirements)
}

func TestMatchSoftSkills_CustomThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PresenceThreshold = 70
	e, err := New(cfg)
	require.NoError(t, err)

	cv := &types.SoftSkills{
		Interpersonal: []types.SoftSkill{{Skill: "Empathy", Confidence: 65}},
	}
	job := &types.RequiredSoftSkills{
		Interpersonal: []types.RequiredSoftSkill{{Skill: "Empathy", Importance: types.TierMedium}},
	}

	result := e.matchSoftSkills(cv, job)

	assert.Equal(t, 0.0, result.Score)
}
