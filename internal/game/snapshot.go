package game

import (
	"math"

	"github.com/vovakirdan/magnet-maze/internal/core"
)

// Snapshot contains the session state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick     uint64
	Level    int
	Seed     int64
	Outcome  int
	TimeLeft float64

	BallX, BallY   float64
	BallVX, BallVY float64

	// Each magnet is 5 values: X, Y, Polarity, Kind, Stuck
	MagnetCount int
	MagnetData  []float64

	// Each obstacle is 2 values: X, Y
	ObstacleData []float64

	// Remaining budget in core.SpawnTypes order
	Budget []int
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        s.ticks,
		Level:       s.levelNum,
		Seed:        s.seed,
		Outcome:     int(s.outcome.Kind),
		TimeLeft:    s.timeLeft,
		MagnetCount: len(s.magnets),
	}
	if s.ball != nil {
		snap.BallX, snap.BallY = s.ball.Position.X, s.ball.Position.Y
		snap.BallVX, snap.BallVY = s.ball.Velocity.X, s.ball.Velocity.Y
	}

	snap.MagnetData = make([]float64, 0, len(s.magnets)*5)
	for _, m := range s.magnets {
		stuck := 0.0
		if m.Stuck() {
			stuck = 1
		}
		snap.MagnetData = append(snap.MagnetData,
			m.Position.X, m.Position.Y, float64(m.Polarity), float64(m.Kind), stuck)
	}

	snap.ObstacleData = make([]float64, 0, len(s.obstacles)*2)
	for _, o := range s.obstacles {
		snap.ObstacleData = append(snap.ObstacleData, o.Position.X, o.Position.Y)
	}

	for _, t := range core.SpawnTypes {
		snap.Budget = append(snap.Budget, s.budget.Remaining(t))
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Level)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Seed)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Outcome)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MagnetCount) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.TimeLeft)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)

	for _, v := range snap.MagnetData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.ObstacleData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.Budget {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
