package config

import (
	_ "embed"
)

//go:embed defaults/magnets.yaml
var defaultMagnetsYAML []byte

// Default returns the hardcoded default configuration. It matches the
// embedded defaults/magnets.yaml.
func Default() Config {
	return Config{
		Level: LevelConfig{
			Width:        20,
			Height:       10,
			Density:      0.25,
			CellSize:     1.0,
			EnsurePath:   true,
			MaxAttempts:  100,
			ArenaPadding: 1.0,
			InnerPadding: 0.5,
			SpawnMargin:  0.4,
			GoalHalfSize: 0.4,
		},
		Ball: BallConfig{
			Radius:             0.25,
			Mass:               1.0,
			Drag:               1.5,
			AngularDrag:        3.0,
			MaxSpeed:           8.0,
			StabilityThreshold: 0.1,
			SettleFactor:       0.9,
		},
		Magnet: MagnetConfig{
			Radius:           0.4,
			MaxForce:         15.0,
			Smoothing:        0.7,
			DeadZone:         0.1,
			StopSpeed:        0.3,
			ReductionZone:    0.8,
			NearSurfaceScale: 0.3,
			SurfaceCutoff:    0.05,
			PickRadius:       0.6,
		},
		Obstacle: ObstacleConfig{
			HalfSize: 0.45,
			Mass:     1.0,
			Drag:     2.0,
		},
		Templates: map[string]TemplateConfig{
			TemplateAttract:   {Strength: 25, Range: 5, Polarity: PolarityAttract, Kind: KindNormal},
			TemplateRepel:     {Strength: 25, Range: 5, Polarity: PolarityRepel, Kind: KindNormal},
			TemplateTrap:      {Strength: 20, Range: 4, Polarity: PolarityAttract, Kind: KindTrap},
			TemplateParabolic: {Strength: 12, Range: 9, Polarity: PolarityMode, Kind: KindNormal},
		},
		Gesture: GestureConfig{
			LongPress:       0.45,
			TwoFingerWindow: 0.1,
			TwoFingerType:   TemplateRepel,
		},
		Budget: BudgetConfig{
			Attract:    3,
			Repel:      3,
			Trap:       1,
			Parabolic:  1,
			LevelBoost: 0.1,
		},
		Session: SessionConfig{
			TimeLimit:        60,
			TimePerLevel:     2.5,
			OutcomeDelay:     0.5,
			FixedStep:        0.02,
			InitialSpawn:     TemplateAttract,
			ShowInstructions: true,
		},
		Difficulty: DifficultyConfig{
			Preset:         string(DifficultyNormal),
			ScaleWithLevel: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMagnetsYAML
}
