package physics

import (
	"math"

	"github.com/vovakirdan/magnet-maze/internal/core"
)

// ObstacleParams tunes obstacle bodies.
type ObstacleParams struct {
	HalfSize float64 // Half the side of the square collider
	Mass     float64
	Drag     float64
}

// DefaultObstacleParams returns the stock obstacle tuning.
func DefaultObstacleParams() ObstacleParams {
	return ObstacleParams{HalfSize: 0.45, Mass: 1, Drag: 2}
}

// Obstacle is a square body. It stays put until a trap pushes it, after
// which it integrates like the ball.
type Obstacle struct {
	ID       int
	Tag      string
	Position core.Vec2
	Velocity core.Vec2
	Params   ObstacleParams

	dynamic bool
	force   core.Vec2
	origin  core.Vec2
}

// NewObstacle creates a static obstacle at pos.
func NewObstacle(id int, tag string, pos core.Vec2, params ObstacleParams) *Obstacle {
	return &Obstacle{ID: id, Tag: tag, Position: pos, Params: params, origin: pos}
}

// Dynamic reports whether a trap has ever pushed this obstacle.
func (o *Obstacle) Dynamic() bool { return o.dynamic }

// ApplyForce accumulates a force and makes the obstacle dynamic.
func (o *Obstacle) ApplyForce(f core.Vec2) {
	o.force = o.force.Add(f)
	o.dynamic = true
}

// Integrate advances a dynamic obstacle by dt. Static obstacles do not move.
func (o *Obstacle) Integrate(dt float64) {
	if !o.dynamic {
		return
	}
	mass := o.Params.Mass
	if mass <= 0 {
		mass = 1
	}
	o.Velocity = o.Velocity.Add(o.force.Scale(dt / mass))
	o.Velocity = o.Velocity.Scale(1 / (1 + dt*o.Params.Drag))
	o.Position = o.Position.Add(o.Velocity.Scale(dt))
	o.force = core.Vec2{}
}

// ConfineTo keeps the obstacle inside the arena.
func (o *Obstacle) ConfineTo(arena core.Bounds) bool {
	return confine(&o.Position, &o.Velocity, o.Params.HalfSize, arena)
}

// Box returns the collider.
func (o *Obstacle) Box() core.Bounds {
	return core.NewBounds(o.Position, o.Params.HalfSize, o.Params.HalfSize)
}

// Reset returns the obstacle to its spawn position as a static body.
func (o *Obstacle) Reset() {
	o.Position = o.origin
	o.Velocity = core.Vec2{}
	o.force = core.Vec2{}
	o.dynamic = false
}

// CircleHitsBox reports whether a circle overlaps a box.
func CircleHitsBox(center core.Vec2, r float64, box core.Bounds) bool {
	closest := box.Clamp(center)
	return center.Sub(closest).LenSq() < r*r
}

// PushOut returns the circle centre moved out of the box so that the
// circle just touches it.
func PushOut(center core.Vec2, r float64, box core.Bounds) core.Vec2 {
	closest := box.Clamp(center)
	d := center.Sub(closest)
	if !d.IsZero() {
		return closest.Add(d.Normalized().Scale(r))
	}

	// Centre inside the box: leave through the nearest face.
	left := center.X - box.Min.X
	right := box.Max.X - center.X
	top := center.Y - box.Min.Y
	bottom := box.Max.Y - center.Y
	switch math.Min(math.Min(left, right), math.Min(top, bottom)) {
	case left:
		return core.V(box.Min.X-r, center.Y)
	case right:
		return core.V(box.Max.X+r, center.Y)
	case top:
		return core.V(center.X, box.Min.Y-r)
	default:
		return core.V(center.X, box.Max.Y+r)
	}
}
