package types

import "strings"

// MatchedItem is one requirement satisfied by the candidate. CVScore carries
// the candidate-side probability (technology) or confidence (soft skill) for
// display next to the job importance.
type MatchedItem struct {
	Name       string         `json:"name"`
	Category   string         `json:"category"`
	Importance ImportanceTier `json:"importance"`
	CVScore    int            `json:"cv_score"`
}

// MissingItem is one requirement with no matching candidate entry.
type MissingItem struct {
	Name       string         `json:"name"`
	Category   string         `json:"category"`
	Importance ImportanceTier `json:"importance"`
	Required   bool           `json:"required"`
}

// FacetResult is the matched/missing/score output for one facet.
// MatchedCount and TotalRequirements are raw counts for display; the score
// itself is importance-weighted.
type FacetResult struct {
	Score             float64       `json:"score"`
	MatchedCount      int           `json:"matched_count"`
	TotalRequirements int           `json:"total_requirements"`
	Matched           []MatchedItem `json:"matched"`
	Missing           []MissingItem `json:"missing"`
}

// ExperienceResult is the outcome of comparing free-text experience values.
// The parse flags distinguish "genuinely zero years" from "could not parse".
type ExperienceResult struct {
	CandidateExperience string  `json:"candidate_experience"`
	RequiredExperience  string  `json:"required_experience"`
	CandidateYears      float64 `json:"candidate_years"`
	RequiredYears       float64 `json:"required_years"`
	CandidateParsed     bool    `json:"candidate_parsed"`
	RequiredParsed      bool    `json:"required_parsed"`
	Score               float64 `json:"score"`
	MeetsRequirement    bool    `json:"meets_requirement"`
}

// MatchResult is the full scored comparison of one candidate against one job.
type MatchResult struct {
	CandidateID   string           `json:"candidate_id,omitempty"`
	CandidateName string           `json:"candidate_name"`
	JobTitle      string           `json:"job_title"`
	OverallScore  float64          `json:"overall_score"`
	Technology    FacetResult      `json:"technology_match"`
	SoftSkills    FacetResult      `json:"soft_skills_match"`
	Experience    ExperienceResult `json:"experience_match"`
}

// Facet identifies one scoring facet of a match.
type Facet string

const (
	FacetTechnology Facet = "technology"
	FacetSoftSkills Facet = "soft_skills"
	FacetExperience Facet = "experience"
)

// Gap is one unmet requirement, decorated for prioritized display.
type Gap struct {
	Name       string         `json:"name"`
	Facet      Facet          `json:"facet"`
	Category   string         `json:"category"`
	Importance ImportanceTier `json:"importance"`
	Weight     float64        `json:"weight"`
	Required   bool           `json:"required"`
}

// MatchStatus is the terminal state of one candidate in a batch run. Every
// candidate starts out pending and ends matched or failed; summaries are only
// built once that transition has happened, so pending never surfaces here.
type MatchStatus string

const (
	StatusMatched MatchStatus = "matched"
	StatusFailed  MatchStatus = "failed"
)

// CandidateSummary is a flattened projection of a MatchResult for ranking
// without re-walking full detail. Failed candidates keep zero scores and
// carry the failure reason.
type CandidateSummary struct {
	CandidateID     string      `json:"candidate_id"`
	CandidateName   string      `json:"candidate_name"`
	OverallScore    float64     `json:"overall_score"`
	TechnologyScore float64     `json:"technology_score"`
	SoftSkillsScore float64     `json:"soft_skills_score"`
	ExperienceScore float64     `json:"experience_score"`
	Status          MatchStatus `json:"status"`
	Error           string      `json:"error,omitempty"`
}

// BatchResult is the outcome of ranking many candidates against one job.
type BatchResult struct {
	Total         int                `json:"total"`
	Succeeded     int                `json:"succeeded"`
	Failed        int                `json:"failed"`
	TopCandidates []*MatchResult     `json:"top_candidates"`
	AllCandidates []CandidateSummary `json:"all_candidates_summary"`
}

// TechCategoryLabel renders a display label for a technology category, e.g.
// "Programming Languages" or "AWS Cloud" for provider sub-groups.
func TechCategoryLabel(category TechCategory, provider CloudProvider) string {
	if category == CategoryCloudServices {
		return strings.ToUpper(string(provider)) + " Cloud"
	}
	return titleCase(string(category))
}

// SkillCategoryLabel renders a display label for a soft-skill category, e.g.
// "Leadership Management".
func SkillCategoryLabel(category SoftSkillCategory) string {
	return titleCase(string(category))
}

func titleCase(snake string) string {
	words := strings.Split(snake, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
