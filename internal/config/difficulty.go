package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted presets in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset parses a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// IsFixedPreset returns true if the preset disables per-level scaling.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	cfg.Difficulty.Preset = string(preset)
	cfg.Difficulty.ScaleWithLevel = !IsFixedPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Level.Density = math.Max(0, cfg.Level.Density-0.05)
		cfg.Session.TimeLimit += 30
		cfg.Budget.Attract++
		cfg.Budget.Repel++
	case DifficultyHard:
		cfg.Level.Density = math.Min(1, cfg.Level.Density+0.05)
		cfg.Session.TimeLimit = math.Max(15, cfg.Session.TimeLimit-15)
		cfg.Budget.Attract = max(1, cfg.Budget.Attract-1)
		cfg.Budget.Repel = max(1, cfg.Budget.Repel-1)
	}
}

// LevelScaling calculates per-level parameters.
type LevelScaling struct {
	cfg Config
}

// NewLevelScaling creates a scaler for cfg.
func NewLevelScaling(cfg Config) *LevelScaling {
	return &LevelScaling{cfg: cfg}
}

// Index returns the scaling index for a level: the level itself, or 0 when
// scaling is disabled.
func (s *LevelScaling) Index(level int) int {
	if !s.cfg.Difficulty.ScaleWithLevel || level < 0 {
		return 0
	}
	return level
}

// TimeLimit returns the countdown length for a level.
func (s *LevelScaling) TimeLimit(level int) float64 {
	return s.cfg.Session.TimeLimit + float64(s.Index(level))*s.cfg.Session.TimePerLevel
}

// Budget boosts a base allowance for a level: n + floor(n * index * boost).
func (s *LevelScaling) Budget(base, level int) int {
	if base <= 0 {
		return 0
	}
	boost := math.Floor(float64(base) * float64(s.Index(level)) * s.cfg.Budget.LevelBoost)
	return base + int(boost)
}

// Density returns the effective obstacle fraction for a level, matching the
// generator's density + index/100 rule.
func (s *LevelScaling) Density(level int) float64 {
	return s.cfg.Level.Density + float64(s.Index(level))/100
}
