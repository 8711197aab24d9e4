package matching

import (
	"regexp"
	"strconv"

	"github.com/jonathan/cv-matcher/internal/types"
)

// yearsPattern captures the first integer or decimal in a free-text
// experience string. A trailing "+" ("3+ years") is ignored, which makes the
// captured value an exact floor for scoring.
var yearsPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// parseYears extracts a numeric year value from free text. The second return
// reports whether anything parseable was found; callers degrade to zero
// years on failure instead of propagating an error.
func parseYears(s string) (float64, bool) {
	match := yearsPattern.FindString(s)
	if match == "" {
		return 0, false
	}
	years, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return years, true
}

// matchExperience compares free-text experience values. A zero or
// unparseable requirement is vacuously satisfied; an unparseable candidate
// value degrades to zero years with the parse flag recording the
// degradation for downstream visibility.
func matchExperience(cvExperience, requiredExperience string) types.ExperienceResult {
	cvYears, cvParsed := parseYears(cvExperience)
	reqYears, reqParsed := parseYears(requiredExperience)

	result := types.ExperienceResult{
		CandidateExperience: cvExperience,
		RequiredExperience:  requiredExperience,
		CandidateYears:      cvYears,
		RequiredYears:       reqYears,
		CandidateParsed:     cvParsed,
		RequiredParsed:      reqParsed,
	}

	switch {
	case !reqParsed || reqYears == 0:
		result.Score = 100
		result.MeetsRequirement = true
	case cvYears >= reqYears:
		result.Score = 100
		result.MeetsRequirement = true
	default:
		result.Score = round1(clamp(cvYears / reqYears * 100))
		result.MeetsRequirement = false
	}

	return result
}
