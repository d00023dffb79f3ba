// Package gesture turns raw pointer events into magnet commands: tap to
// spawn or remove, long-press to toggle polarity, two-finger tap to spawn
// the alternate type at the midpoint.
package gesture

import (
	"io"
	"maps"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/magnet-maze/internal/core"
	"github.com/vovakirdan/magnet-maze/internal/game/physics"
)

// Spawner executes the commands the recognizer produces. Positions are in
// screen coordinates; the spawner owns the projection into the world.
type Spawner interface {
	MagnetAt(screen core.Vec2) *physics.Magnet
	TrySpawn(screen core.Vec2, t core.SpawnType) *physics.Magnet
	Remove(m *physics.Magnet)
	Toggle(m *physics.Magnet)
}

// PendingSource reports the type a single tap on empty space spawns.
type PendingSource interface {
	Pending() core.SpawnType
}

// Config holds gesture timings in seconds.
type Config struct {
	LongPress       float64
	TwoFingerWindow float64
	TwoFingerType   core.SpawnType
}

// DefaultConfig returns the stock timings.
func DefaultConfig() Config {
	return Config{
		LongPress:       0.45,
		TwoFingerWindow: 0.1,
		TwoFingerType:   core.SpawnRepel,
	}
}

// TapInfo tracks one active pointer from down to up.
type TapInfo struct {
	ID             int64
	StartTime      float64
	StartPos       core.Vec2
	Pos            core.Vec2
	LongPressFired bool
	Target         *physics.Magnet // Magnet under the pointer at down, if any
	Consumed       bool            // Claimed by a two-finger gesture
}

// Recognizer is the per-session gesture state machine.
type Recognizer struct {
	cfg     Config
	spawner Spawner
	pending PendingSource
	logger  *log.Logger
	taps    map[int64]*TapInfo
	enabled bool
}

// New creates an enabled recognizer. A nil logger discards output.
func New(cfg Config, spawner Spawner, pending PendingSource, logger *log.Logger) *Recognizer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recognizer{
		cfg:     cfg,
		spawner: spawner,
		pending: pending,
		logger:  logger,
		taps:    make(map[int64]*TapInfo),
		enabled: true,
	}
}

// Enabled reports whether events are being processed.
func (r *Recognizer) Enabled() bool { return r.enabled }

// SetEnabled turns input on or off. Disabling drops every active tap.
func (r *Recognizer) SetEnabled(on bool) {
	r.enabled = on
	if !on {
		r.Reset()
	}
}

// Reset forgets all active pointers.
func (r *Recognizer) Reset() {
	clear(r.taps)
}

// Active returns the number of pointers currently down.
func (r *Recognizer) Active() int { return len(r.taps) }

// Tap returns a copy of the tracking record for a pointer.
func (r *Recognizer) Tap(id int64) (TapInfo, bool) {
	tap, ok := r.taps[id]
	if !ok {
		return TapInfo{}, false
	}
	return *tap, true
}

// HandleEvent feeds one pointer event observed at time now.
func (r *Recognizer) HandleEvent(ev core.PointerEvent, now float64) {
	if !r.enabled {
		return
	}
	switch ev.Phase {
	case core.PointerDown:
		r.down(ev, now)
	case core.PointerMove:
		if tap, ok := r.taps[ev.ID]; ok {
			tap.Pos = ev.Pos
			r.checkHold(tap, now)
		}
	case core.PointerUp:
		r.up(ev, now)
	case core.PointerCancel:
		delete(r.taps, ev.ID)
	}
}

// Update runs the per-frame hold check for stationary pointers.
func (r *Recognizer) Update(now float64) {
	if !r.enabled {
		return
	}
	for _, id := range slices.Sorted(maps.Keys(r.taps)) {
		r.checkHold(r.taps[id], now)
	}
}

func (r *Recognizer) down(ev core.PointerEvent, now float64) {
	tap := &TapInfo{
		ID:        ev.ID,
		StartTime: now,
		StartPos:  ev.Pos,
		Pos:       ev.Pos,
		Target:    r.spawner.MagnetAt(ev.Pos),
	}
	r.taps[ev.ID] = tap

	if len(r.taps) != 2 {
		return
	}
	for id, other := range r.taps {
		if id == ev.ID || other.Consumed {
			continue
		}
		if now-other.StartTime < r.cfg.TwoFingerWindow {
			other.Consumed = true
			tap.Consumed = true
			mid := core.Midpoint(other.StartPos, tap.StartPos)
			r.logger.Debug("two-finger tap", "type", r.cfg.TwoFingerType, "at", mid)
			r.spawner.TrySpawn(mid, r.cfg.TwoFingerType)
		}
	}
}

func (r *Recognizer) up(ev core.PointerEvent, now float64) {
	tap, ok := r.taps[ev.ID]
	if !ok {
		return
	}
	delete(r.taps, ev.ID)
	tap.Pos = ev.Pos
	r.checkHold(tap, now)

	if tap.LongPressFired || tap.Consumed {
		return
	}
	if tap.Target != nil {
		r.spawner.Remove(tap.Target)
		return
	}

	t := r.pending.Pending()
	if t == core.SpawnNone {
		r.logger.Debug("tap ignored, no spawn type selected", "at", ev.Pos)
		return
	}
	r.spawner.TrySpawn(ev.Pos, t)
}

// checkHold toggles the target once the pointer has been held long enough.
func (r *Recognizer) checkHold(tap *TapInfo, now float64) {
	if tap.Target == nil || tap.LongPressFired || tap.Consumed {
		return
	}
	if now-tap.StartTime >= r.cfg.LongPress {
		tap.LongPressFired = true
		r.spawner.Toggle(tap.Target)
	}
}
