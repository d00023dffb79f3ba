package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "magnets.yaml"

// ValidationError describes an invalid configuration value.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return e.Code + ": " + e.Message
}

// Load loads the game configuration.
// Search order: customPath -> ~/.magnets/configs/magnets.yaml -> ./configs/magnets.yaml -> embedded default
// Files are decoded over Default(), so a partial file only overrides what it names.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultMagnetsYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".magnets", "configs", filename)
}

// Validate checks that the configuration can drive a session.
func (c Config) Validate() error {
	switch {
	case c.Level.Width < 2 || c.Level.Height < 1:
		return ValidationError{"INVALID_LEVEL", fmt.Sprintf("grid must be at least 2x1, got %dx%d", c.Level.Width, c.Level.Height)}
	case c.Level.Density < 0 || c.Level.Density > 1:
		return ValidationError{"INVALID_LEVEL", fmt.Sprintf("density must be in [0,1], got %v", c.Level.Density)}
	case c.Level.CellSize <= 0:
		return ValidationError{"INVALID_LEVEL", "cell_size must be positive"}
	case c.Level.MaxAttempts < 1:
		return ValidationError{"INVALID_LEVEL", "max_attempts must be at least 1"}
	case c.Ball.Radius <= 0 || c.Ball.Mass <= 0 || c.Ball.MaxSpeed <= 0:
		return ValidationError{"INVALID_BALL", "radius, mass and max_speed must be positive"}
	case c.Magnet.Radius <= 0 || c.Magnet.MaxForce <= 0:
		return ValidationError{"INVALID_MAGNET", "radius and max_force must be positive"}
	case c.Magnet.Smoothing <= 0 || c.Magnet.Smoothing > 1:
		return ValidationError{"INVALID_MAGNET", fmt.Sprintf("smoothing must be in (0,1], got %v", c.Magnet.Smoothing)}
	case c.Obstacle.HalfSize <= 0 || c.Obstacle.Mass <= 0:
		return ValidationError{"INVALID_OBSTACLE", "half_size and mass must be positive"}
	case c.Gesture.LongPress <= 0 || c.Gesture.TwoFingerWindow < 0:
		return ValidationError{"INVALID_GESTURE", "long_press must be positive and two_finger_window non-negative"}
	case c.Budget.Attract < 0 || c.Budget.Repel < 0 || c.Budget.Trap < 0 || c.Budget.Parabolic < 0:
		return ValidationError{"INVALID_BUDGET", "budgets must be non-negative"}
	case c.Session.TimeLimit <= 0 || c.Session.FixedStep <= 0 || c.Session.OutcomeDelay < 0:
		return ValidationError{"INVALID_SESSION", "time_limit and fixed_step must be positive"}
	}

	for name, t := range c.Templates {
		if t.Range <= 0 || t.Strength < 0 {
			return ValidationError{"INVALID_TEMPLATE", fmt.Sprintf("%s: range must be positive and strength non-negative", name)}
		}
		switch t.Polarity {
		case PolarityAttract, PolarityRepel, PolarityMode:
		default:
			return ValidationError{"INVALID_TEMPLATE", fmt.Sprintf("%s: unknown polarity %q", name, t.Polarity)}
		}
		switch t.Kind {
		case KindNormal, KindTrap:
		default:
			return ValidationError{"INVALID_TEMPLATE", fmt.Sprintf("%s: unknown kind %q", name, t.Kind)}
		}
	}

	if _, err := ParsePreset(c.Difficulty.Preset); err != nil {
		return ValidationError{"INVALID_DIFFICULTY", err.Error()}
	}
	return nil
}
