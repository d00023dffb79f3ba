package level

import (
	"fmt"
	"math"
)

// GenParams configures level generation.
type GenParams struct {
	Width       int     // Grid columns
	Height      int     // Grid rows
	Density     float64 // Base obstacle fraction before level scaling
	LevelIndex  int     // Adds LevelIndex/100 to the density
	Seed        int64   // RNG seed; same seed and params give the same grid
	EnsurePath  bool    // Retry until start and goal are connected
	MaxAttempts int     // Retry limit when EnsurePath is set
}

// DefaultGenParams returns the stock 20x10 layout settings.
func DefaultGenParams() GenParams {
	return GenParams{
		Width:       20,
		Height:      10,
		Density:     0.25,
		LevelIndex:  1,
		Seed:        1,
		EnsurePath:  true,
		MaxAttempts: 100,
	}
}

// GenerationError reports why a layout could not be produced.
type GenerationError struct {
	Code    string
	Message string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ObstacleCount is the number of obstacles the generator tries to place:
// round(W*H*(density + level/100)). It is never negative.
func ObstacleCount(p GenParams) int {
	n := int(math.Round(float64(p.Width*p.Height) * (p.Density + float64(p.LevelIndex)/100)))
	if n < 0 {
		return 0
	}
	return n
}

// Generate builds a layout with a fresh RNG seeded from p.Seed.
// ok is false when no connected layout was found within MaxAttempts; the
// returned grid is then the last failed attempt and must not be spawned.
func Generate(p GenParams) (*Grid, bool) {
	return GenerateWith(NewRNG(p.Seed), p)
}

// GenerateWith builds a layout drawing from an existing RNG stream. Each
// retry resamples the whole grid with fresh draws from the same stream.
func GenerateWith(rng *RNG, p GenParams) (*Grid, bool) {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = 100
	}

	g := NewGrid(p.Width, p.Height)
	start := StartFor(p.Width, p.Height)
	goal := GoalFor(p.Width, p.Height)
	want := ObstacleCount(p)

	free := make([]Coord, 0, p.Width*p.Height)
	for attempt := 0; attempt < attempts; attempt++ {
		for i := range g.Cells {
			g.Cells[i] = Empty
		}
		g.Set(start, Start)
		g.Set(goal, Goal)

		free = free[:0]
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				if c := C(x, y); g.Get(c) == Empty {
					free = append(free, c)
				}
			}
		}
		rng.Shuffle(len(free), func(i, j int) {
			free[i], free[j] = free[j], free[i]
		})

		n := min(want, len(free))
		for _, c := range free[:n] {
			g.Set(c, Obstacle)
		}

		if !p.EnsurePath || Reachable(g, start, goal) {
			return g, true
		}
	}
	return g, false
}

// Build draws a connected layout from rng, converting failure into a
// GenerationError.
func Build(rng *RNG, p GenParams) (*Grid, error) {
	if p.Width < 2 || p.Height < 1 {
		return nil, &GenerationError{
			Code:    "INVALID_SIZE",
			Message: fmt.Sprintf("grid %dx%d cannot hold a start and a goal", p.Width, p.Height),
		}
	}
	g, ok := GenerateWith(rng, p)
	if !ok {
		return nil, &GenerationError{
			Code: "NO_PATH",
			Message: fmt.Sprintf("no connected %dx%d layout with %d obstacles after %d attempts",
				p.Width, p.Height, ObstacleCount(p), p.MaxAttempts),
		}
	}
	return g, nil
}
