// Package config carries the engine's immutable configuration. The
// reference pipeline kept grid size and output paths on a long-lived mutable
// object; here everything is a value handed to the facade at construction.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"svw.info/puzzlegen/internal/domain"
)

// MinClueFloor is the proven minimum clue count for a uniquely solvable
// 9x9 puzzle; no profile may dip below it.
const MinClueFloor = 17

const (
	// DefaultMaxAttempts bounds the facade's generate-and-check retry loop.
	DefaultMaxAttempts = 100
	// DefaultExtraRemovalTries bounds the second carve pass used when the
	// first pass leaves more clues than the profile's maximum.
	DefaultExtraRemovalTries = 20
)

// Config is the complete engine configuration.
type Config struct {
	Profiles          map[domain.Difficulty]domain.DifficultyProfile
	MaxAttempts       int
	ExtraRemovalTries int
}

// Default returns the built-in difficulty bands.
func Default() Config {
	return Config{
		Profiles: map[domain.Difficulty]domain.DifficultyProfile{
			domain.Easy:   {Name: "easy", MinClues: 32, MaxClues: 48, TargetClues: 40},
			domain.Medium: {Name: "medium", MinClues: 25, MaxClues: 36, TargetClues: 30},
			domain.Hard:   {Name: "hard", MinClues: 20, MaxClues: 28, TargetClues: 24},
			domain.Expert: {Name: "expert", MinClues: 17, MaxClues: 26, TargetClues: 20},
		},
		MaxAttempts:       DefaultMaxAttempts,
		ExtraRemovalTries: DefaultExtraRemovalTries,
	}
}

// Profile resolves the band for a difficulty, falling back to the built-in
// table when the config carries no override.
func (c Config) Profile(d domain.Difficulty) domain.DifficultyProfile {
	if p, ok := c.Profiles[d]; ok {
		return p
	}
	return Default().Profiles[d]
}

// LoadProfiles reads difficulty-band overrides from a YAML file:
//
//	profiles:
//	  - name: easy
//	    min_clues: 32
//	    max_clues: 48
//	    target_clues: 40
//
// Entries replace the built-in band for the named difficulty; unnamed
// difficulties keep their defaults.
func LoadProfiles(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	var doc struct {
		Profiles []domain.DifficultyProfile `yaml:"profiles"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	for _, p := range doc.Profiles {
		d, err := domain.ParseDifficulty(p.Name)
		if err != nil {
			return cfg, err
		}
		if err := ValidateProfile(p); err != nil {
			return cfg, err
		}
		cfg.Profiles[d] = p
	}
	return cfg, nil
}

// ValidateProfile rejects bands that are internally inconsistent or below
// the 17-clue floor.
func ValidateProfile(p domain.DifficultyProfile) error {
	if p.MinClues < MinClueFloor {
		return fmt.Errorf("profile %s: min_clues %d below floor %d", p.Name, p.MinClues, MinClueFloor)
	}
	if p.TargetClues < p.MinClues || p.TargetClues > p.MaxClues {
		return fmt.Errorf("profile %s: target_clues %d outside [%d, %d]", p.Name, p.TargetClues, p.MinClues, p.MaxClues)
	}
	if p.MaxClues > 81 {
		return fmt.Errorf("profile %s: max_clues %d exceeds 81", p.Name, p.MaxClues)
	}
	return nil
}
