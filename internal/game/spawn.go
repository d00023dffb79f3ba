package game

import (
	"slices"

	"github.com/vovakirdan/magnet-maze/internal/core"
	"github.com/vovakirdan/magnet-maze/internal/game/physics"
)

// TrySpawn places a magnet of type t at a screen position. The position is
// projected into the world and clamped inside the arena margin. It returns
// nil, with no state change, when input is disabled, the type has no
// template or the budget for it is spent.
func (s *Session) TrySpawn(screen core.Vec2, t core.SpawnType) *physics.Magnet {
	if s.outcome.Kind != OutcomeNone || !s.gestures.Enabled() {
		s.rejectSpawn(t, ErrInputDisabled)
		return nil
	}
	if t == core.SpawnNone {
		s.rejectSpawn(t, ErrNoSpawnType)
		return nil
	}
	tmpl, ok := s.cfg.Template(t.String())
	if !ok {
		s.rejectSpawn(t, ErrNoTemplate)
		return nil
	}
	if !s.budget.CanSpawn(t) {
		s.rejectSpawn(t, ErrBudgetExceeded)
		return nil
	}

	pos := s.spawnArea.Clamp(s.viewport.ToWorld(screen))
	s.nextID++
	m := physics.NewMagnet(s.nextID, pos,
		templatePolarity(tmpl, s.ctx.Mode()), templateKind(tmpl),
		magnetParams(s.cfg.Magnet, tmpl))

	if err := s.budget.Consume(t); err != nil {
		s.rejectSpawn(t, err)
		return nil
	}
	s.magnets = append(s.magnets, m)
	s.placed++
	s.ctx.SetActive(m)

	s.logger.Debug("magnet spawned", "id", m.ID, "type", t, "polarity", m.Polarity,
		"at", pos, "remaining", s.budget.Remaining(t))
	return m
}

func (s *Session) rejectSpawn(t core.SpawnType, err error) {
	s.logger.Debug("spawn rejected", "type", t, "reason", err)
}

// MagnetAt returns the most recently spawned magnet under a screen
// position, or nil.
func (s *Session) MagnetAt(screen core.Vec2) *physics.Magnet {
	p := s.viewport.ToWorld(screen)
	for i := len(s.magnets) - 1; i >= 0; i-- {
		if m := s.magnets[i]; m.Hit(p, s.cfg.Magnet.PickRadius) {
			return m
		}
	}
	return nil
}

// Remove destroys a magnet. Removing an unknown magnet is a no-op and the
// budget is not refunded.
func (s *Session) Remove(m *physics.Magnet) {
	i := slices.Index(s.magnets, m)
	if i < 0 {
		return
	}
	s.magnets = slices.Delete(s.magnets, i, i+1)
	s.ctx.forget(m)
	s.logger.Debug("magnet removed", "id", m.ID)
}

// Toggle flips a magnet's polarity, releasing the ball if it was stuck,
// and makes it the polarity switch target.
func (s *Session) Toggle(m *physics.Magnet) {
	if !slices.Contains(s.magnets, m) {
		return
	}
	m.Toggle()
	s.ctx.SetActive(m)
	s.logger.Debug("magnet toggled", "id", m.ID, "polarity", m.Polarity)
}
