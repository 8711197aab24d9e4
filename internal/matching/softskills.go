package matching

import (
	"github.com/jonathan/cv-matcher/internal/types"
)

// matchSoftSkills compares job soft-skill requirements against candidate
// skills. Matching is scoped to the same named category, and a candidate
// skill only counts when its extraction confidence meets the presence
// threshold; sub-threshold mentions are treated as absent.
func (e *Engine) matchSoftSkills(cv *types.SoftSkills, job *types.RequiredSoftSkills) types.FacetResult {
	// candidate key -> confidence, per category, above-threshold only
	present := make(map[types.SoftSkillCategory]map[string]int)
	for _, group := range cv.SkillGroups() {
		for _, entry := range group.Entries {
			if float64(entry.Confidence) < e.cfg.PresenceThreshold {
				continue
			}
			key := e.keyer.Key(entry.Skill)
			if key == "" {
				continue
			}
			if present[group.Category] == nil {
				present[group.Category] = make(map[string]int)
			}
			if conf, ok := present[group.Category][key]; !ok || entry.Confidence > conf {
				present[group.Category][key] = entry.Confidence
			}
		}
	}

	var matched []types.MatchedItem
	var missing []types.MissingItem
	totalWeight := 0.0
	matchedWeight := 0.0

	for _, group := range job.SkillGroups() {
		label := types.SkillCategoryLabel(group.Category)
		for _, req := range group.Entries {
			key := e.keyer.Key(req.Skill)
			if key == "" {
				continue
			}
			weight := e.cfg.tierWeight(req.Importance)
			totalWeight += weight

			if conf, ok := present[group.Category][key]; ok {
				matched = append(matched, types.MatchedItem{
					Name:       req.Skill,
					Category:   label,
					Importance: req.Importance,
					CVScore:    conf,
				})
				matchedWeight += weight
			} else {
				missing = append(missing, types.MissingItem{
					Name:       req.Skill,
					Category:   label,
					Importance: req.Importance,
					Required:   req.Required,
				})
			}
		}
	}

	e.sortMatched(matched)
	e.sortMissing(missing)

	return types.FacetResult{
		Score:             weightedScore(matchedWeight, totalWeight),
		MatchedCount:      len(matched),
		TotalRequirements: len(matched) + len(missing),
		Matched:           matched,
		Missing:           missing,
	}
}
