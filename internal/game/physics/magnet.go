// Package physics simulates the magnet field, the metal ball and the
// obstacles it can collide with. It is a small fixed-step integrator, not a
// general physics engine: bodies are circles (ball, magnets) and
// axis-aligned boxes (obstacles).
package physics

import (
	"math"

	"github.com/vovakirdan/magnet-maze/internal/core"
)

// Polarity is the direction of a magnet's force on the ball.
type Polarity uint8

const (
	Attract Polarity = iota
	Repel
)

// String returns the polarity name.
func (p Polarity) String() string {
	if p == Repel {
		return "repel"
	}
	return "attract"
}

// Flip returns the opposite polarity.
func (p Polarity) Flip() Polarity {
	if p == Attract {
		return Repel
	}
	return Attract
}

// Kind distinguishes ball-affecting magnets from obstacle-pushing traps.
type Kind uint8

const (
	Normal Kind = iota
	Trap
)

// String returns the kind name.
func (k Kind) String() string {
	if k == Trap {
		return "trap"
	}
	return "normal"
}

// State is the stick state machine of a normal magnet.
type State uint8

const (
	Free State = iota
	Stuck
)

// MagnetParams tunes one magnet's field.
type MagnetParams struct {
	Strength         float64 // Peak force at the centre
	Range            float64 // No force beyond this distance
	Radius           float64 // Physical radius; surface = Radius + ball radius
	MaxForce         float64 // Cap on the far-field force
	Smoothing        float64 // Lerp factor toward the new force each tick
	DeadZone         float64 // Stick band beyond the surface
	StopSpeed        float64 // Ball must be this slow to stick
	ReductionZone    float64 // Width of the damped band outside the surface
	NearSurfaceScale float64 // Slope of the damped band at the surface
	SurfaceCutoff    float64 // Zero force this close to the surface
}

// DefaultMagnetParams returns the stock attract magnet tuning.
func DefaultMagnetParams() MagnetParams {
	return MagnetParams{
		Strength:         25,
		Range:            5,
		Radius:           0.4,
		MaxForce:         15,
		Smoothing:        0.7,
		DeadZone:         0.1,
		StopSpeed:        0.3,
		ReductionZone:    0.8,
		NearSurfaceScale: 0.3,
		SurfaceCutoff:    0.05,
	}
}

// separationAxis is used when two centres coincide: the ball is treated as
// sitting on the +X side of the magnet.
var separationAxis = core.V(1, 0)

// Magnet is a placed force field.
type Magnet struct {
	ID       int
	Position core.Vec2
	Polarity Polarity
	Kind     Kind
	Params   MagnetParams

	state   State
	applied core.Vec2
}

// NewMagnet creates a free magnet with no accumulated force.
func NewMagnet(id int, pos core.Vec2, polarity Polarity, kind Kind, params MagnetParams) *Magnet {
	return &Magnet{
		ID:       id,
		Position: pos,
		Polarity: polarity,
		Kind:     kind,
		Params:   params,
	}
}

// State returns the current stick state.
func (m *Magnet) State() State { return m.state }

// Stuck reports whether the ball is held on the surface.
func (m *Magnet) Stuck() bool { return m.state == Stuck }

// Applied returns the smoothed force applied on the last tick.
func (m *Magnet) Applied() core.Vec2 { return m.applied }

// Toggle flips polarity, releases the ball and clears the smoothed force.
func (m *Magnet) Toggle() {
	m.Polarity = m.Polarity.Flip()
	m.state = Free
	m.applied = core.Vec2{}
}

// Hit reports whether a world point lies within pick distance of the magnet.
func (m *Magnet) Hit(p core.Vec2, pick float64) bool {
	return m.Position.Dist(p) <= math.Max(pick, m.Params.Radius)
}

// ComputeForce returns the raw (unsmoothed) force on a ball of the given
// radius at ballPos.
func (m *Magnet) ComputeForce(ballPos core.Vec2, ballRadius float64) core.Vec2 {
	if m.Params.Range <= 0 {
		return core.Vec2{}
	}
	sep := m.Position.Sub(ballPos)
	dist := sep.Len()
	if dist > m.Params.Range {
		return core.Vec2{}
	}

	dir := sep.Normalized()
	if dist == 0 {
		dir = separationAxis.Neg()
	}
	if m.Polarity == Repel {
		dir = dir.Neg()
	}
	return dir.Scale(m.magnitude(dist, ballRadius))
}

// magnitude is the parabolic falloff strength*(1-(d/range)^2), capped at
// MaxForce, damped inside the reduction band just outside the surface. The
// damping ramp starts with slope NearSurfaceScale and reaches the undamped
// value at the band's outer edge so the force has no jump there. A plain
// strength*t*NearSurfaceScale*(1-(d/range)^2) ramp is deliberately not
// used: it drops to NearSurfaceScale of the base force at the band edge.
func (m *Magnet) magnitude(dist, ballRadius float64) float64 {
	p := m.Params
	ratio := dist / p.Range
	base := math.Min(p.Strength*(1-ratio*ratio), p.MaxForce)

	surface := p.Radius + ballRadius
	if dist >= surface && dist < surface+p.ReductionZone {
		gap := dist - surface
		if gap < p.SurfaceCutoff {
			return 0
		}
		t := core.Clamp01(gap / p.ReductionZone)
		s := p.NearSurfaceScale
		return base * (s*t + (1-s)*t*t)
	}
	return base
}

// Tick runs one physics step of this magnet against the ball and obstacles.
// Trap magnets only push obstacles. Normal magnets stick, release or pull.
func (m *Magnet) Tick(b *Ball, obstacles []*Obstacle) {
	if m.Kind == Trap {
		m.pushObstacles(obstacles)
		return
	}
	if b == nil {
		return
	}

	dist := m.Position.Dist(b.Position)
	surface := m.Params.Radius + b.Params.Radius

	if m.Polarity == Attract && dist <= surface+m.Params.DeadZone && b.Speed() <= m.Params.StopSpeed {
		m.stick(b, surface)
		return
	}

	if m.state == Stuck {
		if m.Polarity != Attract || dist > surface+2*m.Params.DeadZone {
			m.state = Free
		} else {
			m.stick(b, surface)
			return
		}
	}

	target := m.ComputeForce(b.Position, b.Params.Radius)
	m.applied = core.Lerp(m.applied, target, m.Params.Smoothing)
	b.ApplyForce(m.applied)
}

// stick snaps the ball onto the magnet surface and freezes it.
func (m *Magnet) stick(b *Ball, surface float64) {
	dir := b.Position.Sub(m.Position).Normalized()
	if dir.IsZero() {
		dir = separationAxis
	}
	b.Position = m.Position.Add(dir.Scale(surface))
	b.Stop()
	m.applied = core.Vec2{}
	m.state = Stuck
}

// pushObstacles shoves every obstacle within half the range straight away
// from the trap with a constant force.
func (m *Magnet) pushObstacles(obstacles []*Obstacle) {
	reach := m.Params.Range / 2
	push := m.Params.Strength * 0.5
	for _, o := range obstacles {
		away := o.Position.Sub(m.Position)
		if away.Len() > reach {
			continue
		}
		dir := away.Normalized()
		if dir.IsZero() {
			dir = separationAxis
		}
		o.ApplyForce(dir.Scale(push))
	}
}
