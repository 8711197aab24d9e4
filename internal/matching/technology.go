package matching

import (
	"sort"

	"github.com/jonathan/cv-matcher/internal/types"
)

// techBucket scopes candidate lookups: a requirement only matches candidate
// entries in the same category, and cloud requirements only within the same
// provider sub-group.
type techBucket struct {
	category types.TechCategory
	provider types.CloudProvider
}

// matchTechnologies compares job technology requirements against candidate
// technologies by normalized-name equality within the same taxonomy bucket.
func (e *Engine) matchTechnologies(cv *types.Technologies, job *types.RequiredTechnologies) types.FacetResult {
	// candidate key -> probability, per bucket
	known := make(map[techBucket]map[string]int)
	for _, group := range cv.TechGroups() {
		bucket := techBucket{category: group.Category, provider: group.Provider}
		for _, entry := range group.Entries {
			key := e.keyer.Key(entry.Name)
			if key == "" {
				continue
			}
			if known[bucket] == nil {
				known[bucket] = make(map[string]int)
			}
			// Keep the highest probability on duplicate mentions.
			if prob, ok := known[bucket][key]; !ok || entry.Probability > prob {
				known[bucket][key] = entry.Probability
			}
		}
	}

	var matched []types.MatchedItem
	var missing []types.MissingItem
	totalWeight := 0.0
	matchedWeight := 0.0

	for _, group := range job.TechGroups() {
		bucket := techBucket{category: group.Category, provider: group.Provider}
		label := types.TechCategoryLabel(group.Category, group.Provider)
		for _, req := range group.Entries {
			key := e.keyer.Key(req.Name)
			if key == "" {
				continue
			}
			weight := e.cfg.tierWeight(req.Importance)
			totalWeight += weight

			if prob, ok := known[bucket][key]; ok {
				matched = append(matched, types.MatchedItem{
					Name:       req.Name,
					Category:   label,
					Importance: req.Importance,
					CVScore:    prob,
				})
				matchedWeight += weight
			} else {
				missing = append(missing, types.MissingItem{
					Name:       req.Name,
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

// weightedScore is the importance-weighted match ratio. Zero requirements
// are vacuously satisfied.
func weightedScore(matchedWeight, totalWeight float64) float64 {
	if totalWeight <= 0 {
		return 100
	}
	return round1(clamp(matchedWeight / totalWeight * 100))
}

// sortMissing orders gaps by importance weight descending, then category,
// then name. Gap reports and tests rely on this ordering.
func (e *Engine) sortMissing(items []types.MissingItem) {
	sort.SliceStable(items, func(i, j int) bool {
		wi, wj := e.cfg.tierWeight(items[i].Importance), e.cfg.tierWeight(items[j].Importance)
		if wi != wj {
			return wi > wj
		}
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Name < items[j].Name
	})
}

// sortMatched mirrors the missing ordering for deterministic display.
func (e *Engine) sortMatched(items []types.MatchedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		wi, wj := e.cfg.tierWeight(items[i].Importance), e.cfg.tierWeight(items[j].Importance)
		if wi != wj {
			return wi > wj
		}
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Name < items[j].Name
	})
}
