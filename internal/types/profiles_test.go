package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateProfileValidate(t *testing.T) {
	valid := &CandidateProfile{Name: "Ada Lovelace"}
	assert.NoError(t, valid.Validate())

	var nilProfile *CandidateProfile
	err := nilProfile.Validate()
	require.Error(t, err)

	missingName := &CandidateProfile{YearsOfExperience: "5 years"}
	err = missingName.Validate()
	require.Error(t, err)

	var malformed *MalformedProfileError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "candidate", malformed.Profile)
	assert.Equal(t, "name", malformed.Field)
}

func TestJobProfileValidate(t *testing.T) {
	valid := &JobProfile{JobTitle: "Backend Engineer"}
	assert.NoError(t, valid.Validate())

	missingTitle := &JobProfile{JobLevel: "Senior"}
	err := missingTitle.Validate()
	require.Error(t, err)

	var malformed *MalformedProfileError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "job", malformed.Profile)
	assert.Equal(t, "job_title", malformed.Field)
}

func TestRequiredTechnologyUnmarshal_NormalizesTier(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want ImportanceTier
	}{
		{name: "known tier kept", doc: `{"name": "Go", "importance": "critical"}`, want: TierCritical},
		{name: "unknown tier degrades", doc: `{"name": "Go", "importance": "urgent"}`, want: TierMedium},
		{name: "absent tier degrades", doc: `{"name": "Go"}`, want: TierMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req RequiredTechnology
			require.NoError(t, json.Unmarshal([]byte(tt.doc), &req))
			assert.Equal(t, tt.want, req.Importance)
		})
	}
}

func TestRequiredSoftSkillUnmarshal_NormalizesTier(t *testing.T) {
	var req RequiredSoftSkill
	require.NoError(t, json.Unmarshal([]byte(`{"skill": "Mentoring", "importance": "someday"}`), &req))
	assert.Equal(t, TierMedium, req.Importance)
}

func TestJobProfileUnmarshal_NestedTiers(t *testing.T) {
	doc := `{
		"job_title": "Backend Engineer",
		"required_technologies": {
			"cloud_services": {
				"aws": [{"name": "Lambda", "importance": "nice-to-have"}]
			}
		},
		"required_soft_skills": {}
	}`

	var job JobProfile
	require.NoError(t, json.Unmarshal([]byte(doc), &job))
	require.Len(t, job.RequiredTechnologies.CloudServices.AWS, 1)
	assert.Equal(t, TierMedium, job.RequiredTechnologies.CloudServices.AWS[0].Importance)
}

func TestTechGroups_FixedOrder(t *testing.T) {
	techs := &Technologies{}
	groups := techs.TechGroups()

	require.Len(t, groups, 8)
	assert.Equal(t, CategoryProgrammingLanguages, groups[0].Category)
	assert.Equal(t, ProviderAWS, groups[1].Provider)
	assert.Equal(t, ProviderOtherClouds, groups[4].Provider)
	assert.Equal(t, CategoryOtherTech, groups[7].Category)
}

func TestCategoryLabels(t *testing.T) {
	assert.Equal(t, "Programming Languages", TechCategoryLabel(CategoryProgrammingLanguages, ""))
	assert.Equal(t, "AWS Cloud", TechCategoryLabel(CategoryCloudServices, ProviderAWS))
	assert.Equal(t, "GCP Cloud", TechCategoryLabel(CategoryCloudServices, ProviderGCP))
	assert.Equal(t, "Leadership Management", SkillCategoryLabel(SkillLeadership))
	assert.Equal(t, "Others", SkillCategoryLabel(SkillOther))
}
