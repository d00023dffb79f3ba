package physics

import "github.com/vovakirdan/magnet-maze/internal/core"

// BallParams tunes the metal ball.
type BallParams struct {
	Radius             float64
	Mass               float64
	Drag               float64 // Linear damping per second
	AngularDrag        float64
	MaxSpeed           float64
	StabilityThreshold float64 // Below this speed the ball settles
	SettleFactor       float64 // Velocity multiplier while settling
}

// DefaultBallParams returns the stock ball tuning.
func DefaultBallParams() BallParams {
	return BallParams{
		Radius:             0.25,
		Mass:               1,
		Drag:               1.5,
		AngularDrag:        3,
		MaxSpeed:           8,
		StabilityThreshold: 0.1,
		SettleFactor:       0.9,
	}
}

// Ball is the single dynamic body the player steers.
type Ball struct {
	Position        core.Vec2
	Velocity        core.Vec2
	AngularVelocity float64
	Params          BallParams

	force core.Vec2
	start core.Vec2
}

// NewBall creates a ball at rest at start.
func NewBall(start core.Vec2, params BallParams) *Ball {
	return &Ball{Position: start, Params: params, start: start}
}

// ApplyForce accumulates a force for the next Integrate.
func (b *Ball) ApplyForce(f core.Vec2) {
	b.force = b.force.Add(f)
}

// PendingForce returns the force accumulated since the last Integrate.
func (b *Ball) PendingForce() core.Vec2 { return b.force }

// Speed returns the length of the velocity.
func (b *Ball) Speed() float64 { return b.Velocity.Len() }

// Stop zeroes linear and angular velocity.
func (b *Ball) Stop() {
	b.Velocity = core.Vec2{}
	b.AngularVelocity = 0
}

// Start returns the position the ball returns to on Reset.
func (b *Ball) Start() core.Vec2 { return b.start }

// Reset puts the ball back at its start position, at rest.
func (b *Ball) Reset() {
	b.Position = b.start
	b.Stop()
	b.force = core.Vec2{}
}

// Integrate advances the ball by dt: semi-implicit Euler with linear
// damping, then the speed cap, then the low-speed settle.
func (b *Ball) Integrate(dt float64) {
	mass := b.Params.Mass
	if mass <= 0 {
		mass = 1
	}

	b.Velocity = b.Velocity.Add(b.force.Scale(dt / mass))
	b.Velocity = b.Velocity.Scale(1 / (1 + dt*b.Params.Drag))
	b.AngularVelocity *= 1 / (1 + dt*b.Params.AngularDrag)
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	b.force = core.Vec2{}

	b.Velocity = b.Velocity.ClampLen(b.Params.MaxSpeed)
	if s := b.Velocity.Len(); s > 0 && s < b.Params.StabilityThreshold {
		b.Velocity = b.Velocity.Scale(b.Params.SettleFactor)
	}
}

// ConfineTo keeps the ball inside the arena. Velocity into a wall is
// dropped so the ball comes to rest against it. Returns true on contact.
func (b *Ball) ConfineTo(arena core.Bounds) bool {
	return confine(&b.Position, &b.Velocity, b.Params.Radius, arena)
}

// confine clamps a body of the given half extent inside arena and zeroes
// outward velocity components.
func confine(pos, vel *core.Vec2, half float64, arena core.Bounds) bool {
	inner := arena.Inset(half)
	clamped := inner.Clamp(*pos)
	if clamped == *pos {
		return false
	}
	if clamped.X != pos.X {
		vel.X = 0
	}
	if clamped.Y != pos.Y {
		vel.Y = 0
	}
	*pos = clamped
	return true
}
