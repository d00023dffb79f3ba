// Package levels reads and writes Magnet Maze layouts as YAML files.
// It depends on level but level does not depend on levels.
package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/magnet-maze/internal/game/level"
)

// YAMLLevel is the on-disk structure of a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name,omitempty"`
	Level    int               `yaml:"level,omitempty"`
	Seed     int64             `yaml:"seed,omitempty"`
	Density  float64           `yaml:"density,omitempty"`
	Size     YAMLSize          `yaml:"size"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize holds grid dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// File is a parsed level ready for a session.
type File struct {
	ID       string
	Name     string
	Level    int
	Seed     int64
	Density  float64
	Grid     *level.Grid
	Metadata map[string]string
	Path     string
}

// ValidationError describes a structurally broken level file.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ParseYAML parses and validates a level file.
func ParseYAML(data []byte) (File, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return File{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	g, err := level.GridFromRows(yl.Rows)
	if err != nil {
		return File{}, err
	}
	if yl.Size.W != 0 && (yl.Size.W != g.W || yl.Size.H != g.H) {
		return File{}, ValidationError{
			Code:    "SIZE_MISMATCH",
			Message: fmt.Sprintf("size %dx%d does not match rows %dx%d", yl.Size.W, yl.Size.H, g.W, g.H),
		}
	}
	if err := Validate(g); err != nil {
		return File{}, err
	}

	lvl := yl.Level
	if lvl <= 0 {
		lvl = 1
	}
	return File{
		ID:       yl.ID,
		Name:     yl.Name,
		Level:    lvl,
		Seed:     yl.Seed,
		Density:  yl.Density,
		Grid:     g,
		Metadata: yl.Metadata,
	}, nil
}

// Validate checks what every playable grid must hold: one start,
// one goal and a path between them.
func Validate(g *level.Grid) error {
	if n := g.Count(level.Start); n != 1 {
		return ValidationError{Code: "START_COUNT", Message: fmt.Sprintf("expected 1 start, found %d", n)}
	}
	if n := g.Count(level.Goal); n != 1 {
		return ValidationError{Code: "GOAL_COUNT", Message: fmt.Sprintf("expected 1 goal, found %d", n)}
	}
	start, _ := g.Find(level.Start)
	goal, _ := g.Find(level.Goal)
	if !level.Reachable(g, start, goal) {
		return ValidationError{Code: "NO_PATH", Message: fmt.Sprintf("goal %s unreachable from start %s", goal, start)}
	}
	return nil
}

// MarshalYAML encodes a level file.
func MarshalYAML(f File) ([]byte, error) {
	yl := YAMLLevel{
		ID:       f.ID,
		Name:     f.Name,
		Level:    f.Level,
		Seed:     f.Seed,
		Density:  f.Density,
		Size:     YAMLSize{W: f.Grid.W, H: f.Grid.H},
		Rows:     f.Grid.Rows(),
		Metadata: f.Metadata,
	}
	data, err := yaml.Marshal(&yl)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}
