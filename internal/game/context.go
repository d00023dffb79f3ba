package game

import (
	"github.com/vovakirdan/magnet-maze/internal/core"
	"github.com/vovakirdan/magnet-maze/internal/game/physics"
)

// SpawnContext holds the player's spawn selection. It is owned by the
// session and outlives level loads, so the pending type persists.
type SpawnContext struct {
	pending core.SpawnType
	mode    physics.Polarity // Polarity for templates that follow the global mode
	active  *physics.Magnet  // Last spawned or long-pressed magnet
}

// NewSpawnContext creates a context with the given pending type and
// attract mode.
func NewSpawnContext(pending core.SpawnType) *SpawnContext {
	return &SpawnContext{pending: pending, mode: physics.Attract}
}

// Pending returns the type a single tap spawns.
func (c *SpawnContext) Pending() core.SpawnType { return c.pending }

// SetPending selects the type for subsequent taps.
func (c *SpawnContext) SetPending(t core.SpawnType) { c.pending = t }

// Mode returns the global polarity mode.
func (c *SpawnContext) Mode() physics.Polarity { return c.mode }

// SetMode sets the global polarity mode.
func (c *SpawnContext) SetMode(p physics.Polarity) { c.mode = p }

// FlipMode inverts the global polarity mode.
func (c *SpawnContext) FlipMode() { c.mode = c.mode.Flip() }

// Active returns the magnet the polarity switch acts on, or nil.
func (c *SpawnContext) Active() *physics.Magnet { return c.active }

// SetActive marks m as the polarity switch target.
func (c *SpawnContext) SetActive(m *physics.Magnet) { c.active = m }

// forget drops m as the active magnet if it is.
func (c *SpawnContext) forget(m *physics.Magnet) {
	if c.active == m {
		c.active = nil
	}
}
