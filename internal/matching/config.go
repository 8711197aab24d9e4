package matching

import (
	"fmt"
	"math"

	"github.com/jonathan/cv-matcher/internal/types"
)

// Default configuration values.
const (
	DefaultTechnologyWeight = 50.0
	DefaultSoftSkillsWeight = 30.0
	DefaultExperienceWeight = 20.0

	// DefaultPresenceThreshold is the minimum extraction confidence for a
	// candidate soft skill to count as present.
	DefaultPresenceThreshold = 50.0
)

// DefaultTierWeights maps importance tiers to their scoring weights.
func DefaultTierWeights() map[types.ImportanceTier]float64 {
	return map[types.ImportanceTier]float64{
		types.TierCritical: 3,
		types.TierHigh:     2,
		types.TierMedium:   1,
		types.TierLow:      0.5,
	}
}

// Weights holds the per-facet category weights. They must sum to exactly 100.
type Weights struct {
	Technology float64 `json:"technology"`
	SoftSkills float64 `json:"soft_skills"`
	Experience float64 `json:"experience"`
}

// Config is the explicit configuration surface of the engine. It is passed
// in at construction time, never read from globals, so the engine stays
// reentrant and testable with different configurations per case.
type Config struct {
	Weights           Weights
	TierWeights       map[types.ImportanceTier]float64
	PresenceThreshold float64
	Synonyms          map[string]string
}

// DefaultConfig returns the reference configuration: technology 50,
// soft skills 30, experience 20, presence threshold 50, default tiers and
// synonyms.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Technology: DefaultTechnologyWeight,
			SoftSkills: DefaultSoftSkillsWeight,
			Experience: DefaultExperienceWeight,
		},
		TierWeights:       DefaultTierWeights(),
		PresenceThreshold: DefaultPresenceThreshold,
	}
}

// Validate fails fast on configuration that would corrupt every score:
// category weights not summing to 100, negative weights, or a tier weight
// table missing a known tier.
func (c *Config) Validate() error {
	sum := c.Weights.Technology + c.Weights.SoftSkills + c.Weights.Experience
	if math.Abs(sum-100) > 1e-9 {
		return &ConfigError{Message: fmt.Sprintf("category weights must sum to 100, got %g", sum)}
	}
	if c.Weights.Technology < 0 || c.Weights.SoftSkills < 0 || c.Weights.Experience < 0 {
		return &ConfigError{Message: "category weights must be non-negative"}
	}
	if len(c.TierWeights) == 0 {
		return &ConfigError{Message: "tier weight table is empty"}
	}
	for tier := range c.TierWeights {
		if types.ParseImportanceTier(string(tier)) != tier {
			return &ConfigError{Message: fmt.Sprintf("unknown importance tier %q in weight table", tier)}
		}
	}
	for _, tier := range types.Tiers {
		w, ok := c.TierWeights[tier]
		if !ok {
			return &ConfigError{Message: fmt.Sprintf("tier weight table is missing %q", tier)}
		}
		if w <= 0 {
			return &ConfigError{Message: fmt.Sprintf("tier weight for %q must be positive, got %g", tier, w)}
		}
	}
	if c.PresenceThreshold < 0 || c.PresenceThreshold > 100 {
		return &ConfigError{Message: fmt.Sprintf("presence threshold must be in [0,100], got %g", c.PresenceThreshold)}
	}
	return nil
}

// tierWeight resolves the scoring weight for a requirement tier. Tiers are
// normalized at decode time, so the lookup cannot miss on a validated table.
func (c *Config) tierWeight(tier types.ImportanceTier) float64 {
	return c.TierWeights[types.ParseImportanceTier(string(tier))]
}
