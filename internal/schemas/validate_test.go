package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCandidateProfile_Valid(t *testing.T) {
	doc := []byte(`{
		"name": "Ada Lovelace",
		"years_of_experience": "7 years",
		"technologies": {
			"programming_languages": [{"name": "Python", "probability": 95}],
			"cloud_services": {
				"aws": [{"name": "Lambda", "probability": 80}]
			}
		},
		"soft_skills": {
			"leadership_management": [
				{"skill": "Mentoring", "confidence": 85, "evidence": "led a team of four"}
			]
		}
	}`)

	assert.NoError(t, ValidateCandidateProfile(doc))
}

func TestValidateCandidateProfile_MissingName(t *testing.T) {
	doc := []byte(`{
		"technologies": {},
		"soft_skills": {}
	}`)

	err := ValidateCandidateProfile(doc)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateCandidateProfile_ConfidenceOutOfRange(t *testing.T) {
	doc := []byte(`{
		"name": "Ada Lovelace",
		"technologies": {},
		"soft_skills": {
			"interpersonal": [{"skill": "Empathy", "confidence": 140}]
		}
	}`)

	err := ValidateCandidateProfile(doc)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJobProfile_Valid(t *testing.T) {
	doc := []byte(`{
		"job_title": "Backend Engineer",
		"job_level": "Senior",
		"minimum_experience": "5 years",
		"required_technologies": {
			"programming_languages": [
				{"name": "Go", "importance": "critical", "required": true}
			],
			"cloud_services": {
				"gcp": [{"name": "Cloud Run", "importance": "medium"}]
			}
		},
		"required_soft_skills": {
			"communication_collaboration": [
				{"skill": "Cross-team communication", "importance": "high"}
			]
		}
	}`)

	assert.NoError(t, ValidateJobProfile(doc))
}

func TestValidateJobProfile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "missing job title",
			doc: `{
				"required_technologies": {},
				"required_soft_skills": {}
			}`,
		},
		{
			name: "wrong type for requirement name",
			doc: `{
				"job_title": "Backend Engineer",
				"required_technologies": {
					"databases": [{"name": 42}]
				},
				"required_soft_skills": {}
			}`,
		},
		{
			name: "unknown technology category",
			doc: `{
				"job_title": "Backend Engineer",
				"required_technologies": {
					"frameworks": []
				},
				"required_soft_skills": {}
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJobProfile([]byte(tt.doc))
			require.Error(t, err)

			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "error should be ValidationError type, got %T: %v", err, err)
			assert.Greater(t, len(validationErr.Errors), 0)
		})
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	err := ValidateCandidateProfile([]byte("{ invalid json }"))
	require.Error(t, err)
}
