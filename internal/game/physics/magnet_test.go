package physics

import (
	"math"
	"testing"

	"github.com/vovakirdan/magnet-maze/internal/core"
)

const eps = 1e-9

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func newTestMagnet(pol Polarity) *Magnet {
	return NewMagnet(1, core.V(0, 0), pol, Normal, DefaultMagnetParams())
}

func TestComputeForceAtCentre(t *testing.T) {
	m := newTestMagnet(Repel)
	f := m.ComputeForce(core.V(0, 0), 0.25)

	if !approx(f.Len(), 15, eps) {
		t.Errorf("|F| = %v, expected min(25, 15) = 15", f.Len())
	}
	if f.X <= 0 || f.Y != 0 {
		t.Errorf("repel force at the centre should point along +X, got %v", f)
	}

	// A hair off-centre the direction follows the separation
	f = m.ComputeForce(core.V(0, 1e-6), 0.25)
	if f.Y <= 0 || !approx(f.Len(), 15, 1e-6) {
		t.Errorf("repel force should push the ball away (+Y), got %v", f)
	}
}

func TestComputeForceBands(t *testing.T) {
	p := DefaultMagnetParams()
	surface := p.Radius + 0.25

	tests := []struct {
		name string
		dist float64
		want float64
	}{
		{"beyond range", p.Range + 0.01, 0},
		{"at range", p.Range, 0},
		{"far field", 3, math.Min(25*(1-0.36), 15)},
		{"inside surface is undamped", 0.3, 15},
		{"surface cutoff", surface + 0.04, 0},
		{"just past cutoff", surface + 0.06, 15 * (0.3*0.075 + 0.7*0.075*0.075)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestMagnet(Attract)
			f := m.ComputeForce(core.V(tc.dist, 0), 0.25)
			if !approx(f.Len(), tc.want, 1e-9) {
				t.Errorf("|F(%v)| = %v, expected %v", tc.dist, f.Len(), tc.want)
			}
			if f.Len() > 0 && f.X >= 0 {
				t.Errorf("attract force should point at the magnet (-X), got %v", f)
			}
		})
	}
}

func TestForceContinuousAtBandEdge(t *testing.T) {
	m := newTestMagnet(Attract)
	p := m.Params
	edge := p.Radius + 0.25 + p.ReductionZone

	for _, h := range []float64{1e-3, 1e-5, 1e-7} {
		in := m.ComputeForce(core.V(edge-h, 0), 0.25).Len()
		out := m.ComputeForce(core.V(edge+h, 0), 0.25).Len()
		if math.Abs(in-out) > 100*h {
			t.Errorf("h=%g: jump across band edge %v -> %v", h, in, out)
		}
	}
}

func TestForceIsZeroOutsideRange(t *testing.T) {
	m := newTestMagnet(Repel)
	for _, d := range []float64{5.0001, 6, 50, 1e6} {
		for _, dir := range []core.Vec2{core.V(1, 0), core.V(0, -1), core.V(0.6, 0.8)} {
			if f := m.ComputeForce(dir.Scale(d), 0.25); !f.IsZero() {
				t.Errorf("F at %v = %v, expected zero", dir.Scale(d), f)
			}
		}
	}
}

func TestMagnetSmoothing(t *testing.T) {
	m := newTestMagnet(Attract)
	b := NewBall(core.V(3, 0), DefaultBallParams())
	target := m.ComputeForce(b.Position, b.Params.Radius)

	m.Tick(b, nil)
	want := target.Scale(0.7)
	if got := b.PendingForce(); !approx(got.X, want.X, eps) || !approx(got.Y, want.Y, eps) {
		t.Errorf("first tick force = %v, expected %v", got, want)
	}

	b.Integrate(0) // clears the accumulator without moving
	m.Tick(b, nil)
	want = core.Lerp(want, target, 0.7)
	if got := m.Applied(); !approx(got.X, want.X, eps) {
		t.Errorf("second tick applied = %v, expected %v", got, want)
	}
}

func TestMagnetStickAndRelease(t *testing.T) {
	m := newTestMagnet(Attract)
	b := NewBall(core.V(0, 0), DefaultBallParams())
	surface := m.Params.Radius + b.Params.Radius
	dz := m.Params.DeadZone

	// Slow ball inside the stick band snaps to the surface
	b.Position = core.V(surface+0.5*dz, 0)
	b.Velocity = core.V(0.1, 0)
	m.Tick(b, nil)
	if !m.Stuck() {
		t.Fatal("magnet should be stuck")
	}
	if !approx(b.Position.Dist(m.Position), surface, eps) || b.Speed() != 0 {
		t.Errorf("ball should rest on the surface, pos=%v v=%v", b.Position, b.Velocity)
	}

	// Drifting past the entry band but within twice the dead zone stays stuck
	b.Position = core.V(surface+1.5*dz, 0)
	b.Velocity = core.V(2, 0)
	m.Tick(b, nil)
	if !m.Stuck() {
		t.Error("ball within 2x dead zone should remain stuck")
	}
	if !approx(b.Position.X, surface, eps) {
		t.Errorf("stuck ball should be re-snapped, got %v", b.Position)
	}

	// Beyond twice the dead zone the magnet lets go
	b.Position = core.V(surface+2.5*dz, 0)
	b.Velocity = core.V(2, 0)
	m.Tick(b, nil)
	if m.Stuck() {
		t.Error("ball beyond 2x dead zone should be released")
	}
	// Released ball is outside the entry band, so it cannot re-stick next tick
	if surface+2.5*dz <= surface+dz {
		t.Error("release threshold must exceed the entry threshold")
	}
}

func TestFastBallDoesNotStick(t *testing.T) {
	m := newTestMagnet(Attract)
	b := NewBall(core.V(0.7, 0), DefaultBallParams())
	b.Velocity = core.V(0, 3)
	m.Tick(b, nil)
	if m.Stuck() {
		t.Error("ball above stop speed should not stick")
	}
}

func TestRepelNeverSticks(t *testing.T) {
	m := newTestMagnet(Repel)
	b := NewBall(core.V(0.65, 0), DefaultBallParams())
	m.Tick(b, nil)
	if m.Stuck() {
		t.Error("repel magnets never stick")
	}
}

func TestToggleReleases(t *testing.T) {
	m := newTestMagnet(Attract)
	b := NewBall(core.V(0.65, 0), DefaultBallParams())
	m.Tick(b, nil)
	if !m.Stuck() {
		t.Fatal("expected stuck before toggle")
	}

	m.Toggle()
	if m.Stuck() || m.Polarity != Repel || !m.Applied().IsZero() {
		t.Errorf("Toggle() should release, flip and clear force; stuck=%v pol=%v applied=%v",
			m.Stuck(), m.Polarity, m.Applied())
	}

	// Clear of the surface cutoff the flipped magnet pushes
	b.Position = core.V(1.2, 0)
	m.Tick(b, nil)
	if b.PendingForce().X <= 0 {
		t.Errorf("after toggle the ball should be pushed away, got %v", b.PendingForce())
	}
}

func TestTrapPushesObstacles(t *testing.T) {
	trap := NewMagnet(2, core.V(0, 0), Attract, Trap, DefaultMagnetParams())
	near := NewObstacle(1, "block", core.V(1, 0), DefaultObstacleParams())
	far := NewObstacle(2, "rock", core.V(3, 0), DefaultObstacleParams())
	b := NewBall(core.V(0.5, 0), DefaultBallParams())

	trap.Tick(b, []*Obstacle{near, far})

	if !near.Dynamic() {
		t.Fatal("obstacle within range/2 should become dynamic")
	}
	near.Integrate(0.1)
	if near.Position.X <= 1 {
		t.Errorf("obstacle should move away from the trap, got %v", near.Position)
	}
	if far.Dynamic() {
		t.Error("obstacle beyond range/2 should not be pushed")
	}
	if !b.PendingForce().IsZero() || trap.Stuck() {
		t.Error("trap magnets ignore the ball")
	}
}
