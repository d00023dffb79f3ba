package game

import (
	"github.com/vovakirdan/magnet-maze/internal/config"
	"github.com/vovakirdan/magnet-maze/internal/core"
	"github.com/vovakirdan/magnet-maze/internal/game/gesture"
	"github.com/vovakirdan/magnet-maze/internal/game/level"
	"github.com/vovakirdan/magnet-maze/internal/game/physics"
)

// GenParams returns the generator settings a session uses for a level.
func GenParams(cfg config.Config, levelNum int, seed int64) level.GenParams {
	return level.GenParams{
		Width:       cfg.Level.Width,
		Height:      cfg.Level.Height,
		Density:     cfg.Level.Density,
		LevelIndex:  config.NewLevelScaling(cfg).Index(levelNum),
		Seed:        seed,
		EnsurePath:  cfg.Level.EnsurePath,
		MaxAttempts: cfg.Level.MaxAttempts,
	}
}

func ballParams(c config.BallConfig) physics.BallParams {
	return physics.BallParams{
		Radius:             c.Radius,
		Mass:               c.Mass,
		Drag:               c.Drag,
		AngularDrag:        c.AngularDrag,
		MaxSpeed:           c.MaxSpeed,
		StabilityThreshold: c.StabilityThreshold,
		SettleFactor:       c.SettleFactor,
	}
}

func obstacleParams(c config.ObstacleConfig, cellSize float64) physics.ObstacleParams {
	return physics.ObstacleParams{
		HalfSize: c.HalfSize * cellSize,
		Mass:     c.Mass,
		Drag:     c.Drag,
	}
}

// magnetParams merges the shared force shaping with a spawn template.
func magnetParams(c config.MagnetConfig, t config.TemplateConfig) physics.MagnetParams {
	return physics.MagnetParams{
		Strength:         t.Strength,
		Range:            t.Range,
		Radius:           c.Radius,
		MaxForce:         c.MaxForce,
		Smoothing:        c.Smoothing,
		DeadZone:         c.DeadZone,
		StopSpeed:        c.StopSpeed,
		ReductionZone:    c.ReductionZone,
		NearSurfaceScale: c.NearSurfaceScale,
		SurfaceCutoff:    c.SurfaceCutoff,
	}
}

// templatePolarity resolves a template polarity, consulting the global
// mode for "mode" templates.
func templatePolarity(t config.TemplateConfig, mode physics.Polarity) physics.Polarity {
	switch t.Polarity {
	case config.PolarityRepel:
		return physics.Repel
	case config.PolarityMode:
		return mode
	default:
		return physics.Attract
	}
}

func templateKind(t config.TemplateConfig) physics.Kind {
	if t.Kind == config.KindTrap {
		return physics.Trap
	}
	return physics.Normal
}

func gestureConfig(c config.GestureConfig) gesture.Config {
	gc := gesture.Config{
		LongPress:       c.LongPress,
		TwoFingerWindow: c.TwoFingerWindow,
		TwoFingerType:   core.SpawnRepel,
	}
	if t, err := core.ParseSpawnType(c.TwoFingerType); err == nil && t != core.SpawnNone {
		gc.TwoFingerType = t
	}
	return gc
}
