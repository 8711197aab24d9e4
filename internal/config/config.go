// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/jonathan/cv-matcher/internal/batch"
	"github.com/jonathan/cv-matcher/internal/matching"
	"github.com/jonathan/cv-matcher/internal/types"
)

// DefaultServerPort is the port the HTTP server binds when none is configured.
const DefaultServerPort = 8080

// Config is the full application configuration. All fields are optional;
// missing values fall back to the defaults registered in SetDefaults.
type Config struct {
	Scoring  ScoringConfig     `mapstructure:"scoring"`
	Batch    BatchConfig       `mapstructure:"batch"`
	Server   ServerConfig      `mapstructure:"server"`
	Synonyms map[string]string `mapstructure:"synonyms"`
}

// ScoringConfig controls how the engine weighs facets and importance tiers.
type ScoringConfig struct {
	TechnologyWeight  float64            `mapstructure:"technology-weight"`
	SoftSkillsWeight  float64            `mapstructure:"soft-skills-weight"`
	ExperienceWeight  float64            `mapstructure:"experience-weight"`
	PresenceThreshold float64            `mapstructure:"presence-threshold"`
	TierWeights       map[string]float64 `mapstructure:"tier-weights"`
}

// BatchConfig controls batch ranking behavior.
type BatchConfig struct {
	Workers       int `mapstructure:"workers"`
	TopCandidates int `mapstructure:"top-candidates"`
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// SetDefaults registers default configuration values on the given viper
// instance. Call before ReadInConfig so file values override defaults.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("scoring.technology-weight", matching.DefaultTechnologyWeight)
	v.SetDefault("scoring.soft-skills-weight", matching.DefaultSoftSkillsWeight)
	v.SetDefault("scoring.experience-weight", matching.DefaultExperienceWeight)
	v.SetDefault("scoring.presence-threshold", matching.DefaultPresenceThreshold)
	v.SetDefault("batch.workers", batch.DefaultWorkers)
	v.SetDefault("batch.top-candidates", batch.DefaultTopCandidates)
	v.SetDefault("server.port", DefaultServerPort)
}

// Load unmarshals the viper instance into a Config and validates the
// non-scoring fields. Scoring fields are validated by the engine at
// construction time.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the batch and server sections.
func (c *Config) Validate() error {
	if c.Batch.Workers < 0 {
		return fmt.Errorf("config error: 'batch.workers' must be non-negative")
	}
	if c.Batch.TopCandidates < 0 {
		return fmt.Errorf("config error: 'batch.top-candidates' must be non-negative")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' must be in [0, 65535]")
	}
	return nil
}

// Matching converts the scoring section into an engine configuration.
// Unknown tier names are carried through so the engine can reject them.
func (c *Config) Matching() matching.Config {
	mc := matching.Config{
		Weights: matching.Weights{
			Technology: c.Scoring.TechnologyWeight,
			SoftSkills: c.Scoring.SoftSkillsWeight,
			Experience: c.Scoring.ExperienceWeight,
		},
		TierWeights:       matching.DefaultTierWeights(),
		PresenceThreshold: c.Scoring.PresenceThreshold,
		Synonyms:          c.Synonyms,
	}
	for name, weight := range c.Scoring.TierWeights {
		mc.TierWeights[types.ImportanceTier(name)] = weight
	}
	return mc
}
