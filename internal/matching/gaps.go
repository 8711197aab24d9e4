package matching

import (
	"fmt"
	"sort"

	"github.com/jonathan/cv-matcher/internal/types"
)

// facetOrder breaks weight ties in the gap list: technology first, then
// soft skills, then experience.
var facetOrder = map[types.Facet]int{
	types.FacetTechnology: 0,
	types.FacetSoftSkills: 1,
	types.FacetExperience: 2,
}

// Gaps flattens the missing sets of an already-computed result into a single
// ranked list: importance weight descending, ties by facet order, then name.
// It is a presentation transform and never alters scores.
func (e *Engine) Gaps(result *types.MatchResult) []types.Gap {
	gaps := make([]types.Gap, 0, len(result.Technology.Missing)+len(result.SoftSkills.Missing)+1)

	for _, item := range result.Technology.Missing {
		gaps = append(gaps, types.Gap{
			Name:       item.Name,
			Facet:      types.FacetTechnology,
			Category:   item.Category,
			Importance: item.Importance,
			Weight:     e.cfg.tierWeight(item.Importance),
			Required:   item.Required,
		})
	}
	for _, item := range result.SoftSkills.Missing {
		gaps = append(gaps, types.Gap{
			Name:       item.Name,
			Facet:      types.FacetSoftSkills,
			Category:   item.Category,
			Importance: item.Importance,
			Weight:     e.cfg.tierWeight(item.Importance),
			Required:   item.Required,
		})
	}

	// An unmet experience minimum is a single gap entry. Falling short of a
	// hard minimum usually filters the candidate outright, so it ranks
	// alongside critical requirements.
	if !result.Experience.MeetsRequirement {
		gaps = append(gaps, types.Gap{
			Name:       fmt.Sprintf("%g+ years of experience", result.Experience.RequiredYears),
			Facet:      types.FacetExperience,
			Category:   "Experience",
			Importance: types.TierCritical,
			Weight:     e.cfg.tierWeight(types.TierCritical),
			Required:   true,
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		if gaps[i].Weight != gaps[j].Weight {
			return gaps[i].Weight > gaps[j].Weight
		}
		if facetOrder[gaps[i].Facet] != facetOrder[gaps[j].Facet] {
			return facetOrder[gaps[i].Facet] < facetOrder[gaps[j].Facet]
		}
		return gaps[i].Name < gaps[j].Name
	})

	return gaps
}
