package game

import (
	"errors"
	"testing"

	"github.com/vovakirdan/magnet-maze/internal/config"
	"github.com/vovakirdan/magnet-maze/internal/core"
)

func TestBudgetLevelBoost(t *testing.T) {
	cfg := config.Default()
	scaling := config.NewLevelScaling(cfg)

	tests := []struct {
		level   int
		attract int
		trap    int
	}{
		{1, 3, 1},
		{4, 4, 1},
		{10, 6, 2},
	}
	for _, tc := range tests {
		b := NewBudget(cfg.Budget, scaling, tc.level)
		if b.Remaining(core.SpawnAttract) != tc.attract || b.Remaining(core.SpawnTrap) != tc.trap {
			t.Errorf("level %d: attract=%d trap=%d, expected %d/%d", tc.level,
				b.Remaining(core.SpawnAttract), b.Remaining(core.SpawnTrap), tc.attract, tc.trap)
		}
	}
}

func TestBudgetConsume(t *testing.T) {
	cfg := config.Default()
	cfg.Budget.Trap = 1
	b := NewBudget(cfg.Budget, config.NewLevelScaling(cfg), 1)

	if err := b.Consume(core.SpawnTrap); err != nil {
		t.Fatalf("Consume() error = %v", err)
	}
	err := b.Consume(core.SpawnTrap)
	if !errors.Is(err, ErrBudgetExceeded) {
		t.Errorf("Consume() past zero = %v, expected ErrBudgetExceeded", err)
	}
	if b.Remaining(core.SpawnTrap) != 0 {
		t.Errorf("remaining went negative: %d", b.Remaining(core.SpawnTrap))
	}
	if b.CanSpawn(core.SpawnNone) {
		t.Error("the none type never spawns")
	}
}

func TestCanSpawnPending(t *testing.T) {
	cfg := config.Default()
	cfg.Budget.Attract = 0
	cfg.Budget.Repel = 2
	b := NewBudget(cfg.Budget, config.NewLevelScaling(cfg), 1)
	ctx := NewSpawnContext(core.SpawnRepel)

	if !b.CanSpawnPending(ctx) {
		t.Error("repel has budget")
	}
	ctx.SetPending(core.SpawnAttract)
	if b.CanSpawnPending(ctx) {
		t.Error("attract has no budget")
	}
	ctx.SetPending(core.SpawnNone)
	if b.CanSpawnPending(ctx) {
		t.Error("nothing selected")
	}

	// The predicate is pure
	if b.Remaining(core.SpawnRepel) != 2 {
		t.Error("CanSpawnPending must not consume")
	}
}
