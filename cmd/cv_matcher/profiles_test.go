package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const candidateJSON = `{
	"name": "Ada Lovelace",
	"years_of_experience": "7 years",
	"technologies": {
		"programming_languages": [{"name": "Python", "probability": 95}]
	},
	"soft_skills": {}
}`

const jobJSON = `{
	"job_title": "Backend Engineer",
	"minimum_experience": "5 years",
	"required_technologies": {
		"programming_languages": [{"name": "python", "importance": "critical"}]
	},
	"required_soft_skills": {}
}`

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCandidateProfile(t *testing.T) {
	path := writeTempFile(t, t.TempDir(), "candidate.json", candidateJSON)

	candidate, err := loadCandidateProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", candidate.Name)
	assert.Len(t, candidate.Technologies.ProgrammingLanguages, 1)
}

func TestLoadCandidateProfile_MissingFile(t *testing.T) {
	_, err := loadCandidateProfile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read candidate profile")
}

func TestLoadCandidateProfile_MalformedJSON(t *testing.T) {
	path := writeTempFile(t, t.TempDir(), "candidate.json", "{ not json")

	_, err := loadCandidateProfile(path)
	require.Error(t, err)
}

func TestLoadJobProfile(t *testing.T) {
	path := writeTempFile(t, t.TempDir(), "job.json", jobJSON)

	job, err := loadJobProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", job.JobTitle)
}

func TestLoadCandidateDir(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "b.json", candidateJSON)
	writeTempFile(t, dir, "a.json", `{"name": "Grace Hopper", "technologies": {}, "soft_skills": {}}`)
	writeTempFile(t, dir, "broken.json", "{ not json")
	writeTempFile(t, dir, "notes.txt", "ignored")

	candidates, err := loadCandidateDir(dir)
	require.NoError(t, err)
	require.Len(t, candidates, 3)

	// Filename order, with the undecodable file kept as a placeholder.
	assert.Equal(t, "Grace Hopper", candidates[0].Name)
	assert.Equal(t, "Ada Lovelace", candidates[1].Name)
	assert.Equal(t, "broken.json", candidates[2].ID)
	assert.Empty(t, candidates[2].Name)
}

func TestLoadCandidateDir_Empty(t *testing.T) {
	_, err := loadCandidateDir(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidate profile JSON files")
}

func TestWriteJSON_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "result.json")

	require.NoError(t, writeJSON(path, map[string]int{"total": 3}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"total": 3`)
}
