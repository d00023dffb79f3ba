// Package config provides YAML-based game configuration loading and
// difficulty management for Magnet Maze.
package config

// Config contains all tunables for a game session.
type Config struct {
	Level      LevelConfig               `yaml:"level"`
	Ball       BallConfig                `yaml:"ball"`
	Magnet     MagnetConfig              `yaml:"magnet"`
	Obstacle   ObstacleConfig            `yaml:"obstacle"`
	Templates  map[string]TemplateConfig `yaml:"templates"`
	Gesture    GestureConfig             `yaml:"gesture"`
	Budget     BudgetConfig              `yaml:"budget"`
	Session    SessionConfig             `yaml:"session"`
	Difficulty DifficultyConfig          `yaml:"difficulty"`
}

// LevelConfig defines grid generation and arena layout.
type LevelConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Density      float64 `yaml:"density"` // Base obstacle fraction before per-level increase
	CellSize     float64 `yaml:"cell_size"`
	EnsurePath   bool    `yaml:"ensure_path"`
	MaxAttempts  int     `yaml:"max_attempts"`
	ArenaPadding float64 `yaml:"arena_padding"` // Wall distance beyond the grid edge
	InnerPadding float64 `yaml:"inner_padding"`
	SpawnMargin  float64 `yaml:"spawn_margin"`
	GoalHalfSize float64 `yaml:"goal_half_size"` // Fraction of a cell
}

// BallConfig defines the metal ball body.
type BallConfig struct {
	Radius             float64 `yaml:"radius"`
	Mass               float64 `yaml:"mass"`
	Drag               float64 `yaml:"drag"`
	AngularDrag        float64 `yaml:"angular_drag"`
	MaxSpeed           float64 `yaml:"max_speed"`
	StabilityThreshold float64 `yaml:"stability_threshold"`
	SettleFactor       float64 `yaml:"settle_factor"`
}

// MagnetConfig defines force shaping shared by every magnet.
type MagnetConfig struct {
	Radius           float64 `yaml:"radius"`
	MaxForce         float64 `yaml:"max_force"`
	Smoothing        float64 `yaml:"smoothing"`
	DeadZone         float64 `yaml:"dead_zone"`
	StopSpeed        float64 `yaml:"stop_speed"`
	ReductionZone    float64 `yaml:"reduction_zone"`
	NearSurfaceScale float64 `yaml:"near_surface_scale"`
	SurfaceCutoff    float64 `yaml:"surface_cutoff"`
	PickRadius       float64 `yaml:"pick_radius"` // Hit radius for tapping a magnet
}

// ObstacleConfig defines obstacle bodies.
type ObstacleConfig struct {
	HalfSize float64 `yaml:"half_size"`
	Mass     float64 `yaml:"mass"`
	Drag     float64 `yaml:"drag"`
}

// TemplateConfig is the per-type spawn template.
type TemplateConfig struct {
	Strength float64 `yaml:"strength"`
	Range    float64 `yaml:"range"`
	Polarity string  `yaml:"polarity"` // "attract", "repel" or "mode"
	Kind     string  `yaml:"kind"`     // "normal" or "trap"
}

// GestureConfig defines gesture timings in seconds.
type GestureConfig struct {
	LongPress       float64 `yaml:"long_press"`
	TwoFingerWindow float64 `yaml:"two_finger_window"`
	TwoFingerType   string  `yaml:"two_finger_type"`
}

// BudgetConfig defines base magnet allowances per level.
type BudgetConfig struct {
	Attract    int     `yaml:"attract"`
	Repel      int     `yaml:"repel"`
	Trap       int     `yaml:"trap"`
	Parabolic  int     `yaml:"parabolic"`
	LevelBoost float64 `yaml:"level_boost"` // n += floor(n * level * boost)
}

// SessionConfig defines timers and session defaults.
type SessionConfig struct {
	TimeLimit        float64 `yaml:"time_limit"`
	TimePerLevel     float64 `yaml:"time_per_level"`
	OutcomeDelay     float64 `yaml:"outcome_delay"`
	FixedStep        float64 `yaml:"fixed_step"`
	InitialSpawn     string  `yaml:"initial_spawn"`
	ShowInstructions bool    `yaml:"show_instructions"`
}

// DifficultyConfig defines how levels scale.
type DifficultyConfig struct {
	Preset         string `yaml:"preset"`
	ScaleWithLevel bool   `yaml:"scale_with_level"`
}

// Spawn template names.
const (
	TemplateAttract   = "attract"
	TemplateRepel     = "repel"
	TemplateTrap      = "trap"
	TemplateParabolic = "parabolic"
)

// Polarity values accepted in templates.
const (
	PolarityAttract = "attract"
	PolarityRepel   = "repel"
	PolarityMode    = "mode"
)

// Kind values accepted in templates.
const (
	KindNormal = "normal"
	KindTrap   = "trap"
)

// Template returns the named spawn template.
func (c Config) Template(name string) (TemplateConfig, bool) {
	t, ok := c.Templates[name]
	return t, ok
}

// Clone returns a deep copy of the config.
func (c Config) Clone() Config {
	out := c
	out.Templates = make(map[string]TemplateConfig, len(c.Templates))
	for k, v := range c.Templates {
		out.Templates[k] = v
	}
	return out
}
