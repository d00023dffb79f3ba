package level

import "github.com/vovakirdan/magnet-maze/internal/core"

// SpawnKind identifies what a spawn command creates.
type SpawnKind uint8

const (
	SpawnStart SpawnKind = iota
	SpawnGoal
	SpawnObstacle
)

// ObstacleVariant is the visual/tag flavour of an obstacle. Both variants
// collide with the ball and can be shoved by trap magnets.
type ObstacleVariant uint8

const (
	VariantBlock ObstacleVariant = iota
	VariantRock
)

// String returns the variant tag.
func (v ObstacleVariant) String() string {
	if v == VariantRock {
		return "rock"
	}
	return "block"
}

// SpawnCommand places one entity in the world.
type SpawnCommand struct {
	Kind    SpawnKind
	Cell    Coord
	World   core.Vec2
	Variant ObstacleVariant
}

// Layout maps grid cells to world positions. The grid is centred on the
// world origin with cells CellSize wide; world Y grows with the row index.
type Layout struct {
	W, H     int
	CellSize float64
}

// NewLayout returns the layout for g.
func NewLayout(g *Grid, cellSize float64) Layout {
	if cellSize <= 0 {
		cellSize = 1
	}
	return Layout{W: g.W, H: g.H, CellSize: cellSize}
}

// World returns the centre of cell c in world units.
func (l Layout) World(c Coord) core.Vec2 {
	cs := l.CellSize
	offX := -float64(l.W)*cs/2 + cs/2
	offY := -float64(l.H)*cs/2 + cs/2
	return core.V(float64(c.X)*cs+offX, float64(c.Y)*cs+offY)
}

// Bounds returns the world-space box covering every cell.
func (l Layout) Bounds() core.Bounds {
	return core.NewBounds(core.V(0, 0), float64(l.W)*l.CellSize/2, float64(l.H)*l.CellSize/2)
}

// Spawns converts a grid into spawn commands in row-major order. Each
// obstacle's variant is drawn 50/50 from rng.
func Spawns(g *Grid, cellSize float64, rng *RNG) []SpawnCommand {
	l := NewLayout(g, cellSize)
	var out []SpawnCommand
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			cmd := SpawnCommand{Cell: c, World: l.World(c)}
			switch g.Get(c) {
			case Start:
				cmd.Kind = SpawnStart
			case Goal:
				cmd.Kind = SpawnGoal
			case Obstacle:
				cmd.Kind = SpawnObstacle
				cmd.Variant = ObstacleVariant(rng.Intn(2))
			default:
				continue
			}
			out = append(out, cmd)
		}
	}
	return out
}
