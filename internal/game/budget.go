package game

import (
	"fmt"

	"github.com/vovakirdan/magnet-maze/internal/config"
	"github.com/vovakirdan/magnet-maze/internal/core"
)

// Budget tracks how many magnets of each type may still be spawned this
// level. Counters only ever go down; removing a magnet does not refund it.
type Budget struct {
	remaining map[core.SpawnType]int
}

// NewBudget computes the level's allowances from the base counts, boosted
// by the level scaling rule.
func NewBudget(cfg config.BudgetConfig, scaling *config.LevelScaling, level int) Budget {
	return Budget{remaining: map[core.SpawnType]int{
		core.SpawnAttract:   scaling.Budget(cfg.Attract, level),
		core.SpawnRepel:     scaling.Budget(cfg.Repel, level),
		core.SpawnTrap:      scaling.Budget(cfg.Trap, level),
		core.SpawnParabolic: scaling.Budget(cfg.Parabolic, level),
	}}
}

// Remaining returns the allowance left for t.
func (b Budget) Remaining(t core.SpawnType) int {
	return b.remaining[t]
}

// CanSpawn reports whether one more magnet of type t is allowed.
func (b Budget) CanSpawn(t core.SpawnType) bool {
	return b.remaining[t] > 0
}

// CanSpawnPending reports whether the context's pending type can spawn.
func (b Budget) CanSpawnPending(ctx *SpawnContext) bool {
	return ctx.Pending() != core.SpawnNone && b.CanSpawn(ctx.Pending())
}

// Consume spends one allowance of type t.
func (b *Budget) Consume(t core.SpawnType) error {
	if !b.CanSpawn(t) {
		return fmt.Errorf("%w: %s", ErrBudgetExceeded, t)
	}
	b.remaining[t]--
	return nil
}

// Clone returns an independent copy.
func (b Budget) Clone() Budget {
	out := Budget{remaining: make(map[core.SpawnType]int, len(b.remaining))}
	for t, n := range b.remaining {
		out.remaining[t] = n
	}
	return out
}
