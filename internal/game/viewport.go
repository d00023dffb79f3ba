package game

import (
	"math"

	"github.com/vovakirdan/magnet-maze/internal/core"
)

// HUDRows is the number of screen rows reserved above the arena.
const HUDRows = 2

// Viewport projects between world units and fractional screen cells.
// Origin is the screen position of the world origin.
type Viewport struct {
	Origin core.Vec2
	ScaleX float64 // Screen columns per world unit
	ScaleY float64 // Screen rows per world unit
}

// NewViewport centres the world origin in the screen area below the HUD.
// Terminal cells are about twice as tall as wide, so one world unit spans
// two columns and one row.
func NewViewport(screenW, screenH int) Viewport {
	return Viewport{
		Origin: core.V(float64(screenW/2), float64(HUDRows+(screenH-HUDRows)/2)),
		ScaleX: 2,
		ScaleY: 1,
	}
}

// IdentityViewport maps screen coordinates one-to-one onto world units.
func IdentityViewport() Viewport {
	return Viewport{ScaleX: 1, ScaleY: 1}
}

// ToWorld converts a screen position to world units.
func (v Viewport) ToWorld(p core.Vec2) core.Vec2 {
	return core.V((p.X-v.Origin.X)/v.ScaleX, (p.Y-v.Origin.Y)/v.ScaleY)
}

// ToScreen converts a world position to a fractional screen position.
func (v Viewport) ToScreen(p core.Vec2) core.Vec2 {
	return core.V(v.Origin.X+p.X*v.ScaleX, v.Origin.Y+p.Y*v.ScaleY)
}

// Cell returns the screen cell containing world position p.
func (v Viewport) Cell(p core.Vec2) (x, y int) {
	s := v.ToScreen(p)
	return int(math.Floor(s.X)), int(math.Floor(s.Y))
}

// Rect returns the screen cells covered by world bounds b.
func (v Viewport) Rect(b core.Bounds) core.Rect {
	lo := v.ToScreen(b.Min)
	hi := v.ToScreen(b.Max)
	x0, y0 := int(math.Round(lo.X)), int(math.Round(lo.Y))
	x1, y1 := int(math.Round(hi.X)), int(math.Round(hi.Y))
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
