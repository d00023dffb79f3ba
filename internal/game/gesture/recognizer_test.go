package gesture

import (
	"testing"

	"golang.org/x/mobile/event/touch"

	"github.com/vovakirdan/magnet-maze/internal/core"
	"github.com/vovakirdan/magnet-maze/internal/game/physics"
)

type spawnCall struct {
	pos core.Vec2
	t   core.SpawnType
}

// fakeSpawner records commands and treats anything within 1 unit of a
// placed magnet as a hit.
type fakeSpawner struct {
	magnets []*physics.Magnet
	spawns  []spawnCall
	removed []*physics.Magnet
	toggled []*physics.Magnet
}

func (f *fakeSpawner) MagnetAt(p core.Vec2) *physics.Magnet {
	for _, m := range f.magnets {
		if m.Position.Dist(p) <= 1 {
			return m
		}
	}
	return nil
}

func (f *fakeSpawner) TrySpawn(p core.Vec2, t core.SpawnType) *physics.Magnet {
	f.spawns = append(f.spawns, spawnCall{p, t})
	m := physics.NewMagnet(len(f.magnets)+1, p, physics.Attract, physics.Normal, physics.DefaultMagnetParams())
	f.magnets = append(f.magnets, m)
	return m
}

func (f *fakeSpawner) Remove(m *physics.Magnet) { f.removed = append(f.removed, m) }
func (f *fakeSpawner) Toggle(m *physics.Magnet) { f.toggled = append(f.toggled, m) }

type fixedPending core.SpawnType

func (p fixedPending) Pending() core.SpawnType { return core.SpawnType(p) }

func newTestRecognizer(pending core.SpawnType) (*Recognizer, *fakeSpawner) {
	sp := &fakeSpawner{}
	return New(DefaultConfig(), sp, fixedPending(pending), nil), sp
}

func ev(id int64, phase core.PointerPhase, x, y float64) core.PointerEvent {
	return core.PointerEvent{ID: id, Phase: phase, Pos: core.V(x, y)}
}

func TestLongPressTogglesOnce(t *testing.T) {
	r, sp := newTestRecognizer(core.SpawnAttract)
	m := sp.TrySpawn(core.V(10, 10), core.SpawnAttract)
	sp.spawns = nil

	r.HandleEvent(ev(0, core.PointerDown, 10, 10), 0)
	for now := 0.0; now <= 0.5; now += 0.05 {
		r.Update(now)
	}
	if len(sp.toggled) != 1 || sp.toggled[0] != m {
		t.Fatalf("toggled %d times, expected exactly once", len(sp.toggled))
	}
	tap, _ := r.Tap(0)
	if !tap.LongPressFired {
		t.Error("tap should record the fired long press")
	}

	r.HandleEvent(ev(0, core.PointerUp, 10, 10), 0.5)
	if len(sp.removed) != 0 || len(sp.spawns) != 0 || len(sp.toggled) != 1 {
		t.Errorf("release after long press should do nothing, removed=%d spawns=%d toggled=%d",
			len(sp.removed), len(sp.spawns), len(sp.toggled))
	}
}

func TestShortHoldDoesNotToggle(t *testing.T) {
	r, sp := newTestRecognizer(core.SpawnAttract)
	sp.TrySpawn(core.V(10, 10), core.SpawnAttract)

	r.HandleEvent(ev(0, core.PointerDown, 10, 10), 0)
	r.Update(0.44)
	if len(sp.toggled) != 0 {
		t.Error("hold below the threshold should not toggle")
	}
}

func TestLongPressEvaluatedAtRelease(t *testing.T) {
	r, sp := newTestRecognizer(core.SpawnAttract)
	sp.TrySpawn(core.V(10, 10), core.SpawnAttract)

	// No Update calls in between: the release itself sees the long hold
	r.HandleEvent(ev(0, core.PointerDown, 10, 10), 1)
	r.HandleEvent(ev(0, core.PointerUp, 10, 10), 1.6)
	if len(sp.toggled) != 1 || len(sp.removed) != 0 {
		t.Errorf("toggled=%d removed=%d, expected toggle only", len(sp.toggled), len(sp.removed))
	}
}

func TestTapRemovesMagnet(t *testing.T) {
	r, sp := newTestRecognizer(core.SpawnAttract)
	m := sp.TrySpawn(core.V(10, 10), core.SpawnAttract)
	sp.spawns = nil

	r.HandleEvent(ev(0, core.PointerDown, 10.5, 10), 0)
	r.HandleEvent(ev(0, core.PointerUp, 10.5, 10), 0.1)

	if len(sp.removed) != 1 || sp.removed[0] != m {
		t.Fatalf("expected the tapped magnet removed, got %v", sp.removed)
	}
	if len(sp.spawns) != 0 {
		t.Error("tap on a magnet should not spawn")
	}
}

func TestTapSpawnsPending(t *testing.T) {
	tests := []struct {
		name    string
		pending core.SpawnType
		spawned bool
	}{
		{"attract", core.SpawnAttract, true},
		{"trap", core.SpawnTrap, true},
		{"nothing selected", core.SpawnNone, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, sp := newTestRecognizer(tc.pending)
			r.HandleEvent(ev(0, core.PointerDown, 3, 4), 0)
			r.HandleEvent(ev(0, core.PointerUp, 3, 5), 0.05)

			if !tc.spawned {
				if len(sp.spawns) != 0 {
					t.Errorf("expected no spawn, got %v", sp.spawns)
				}
				return
			}
			if len(sp.spawns) != 1 {
				t.Fatalf("expected one spawn, got %d", len(sp.spawns))
			}
			got := sp.spawns[0]
			if got.t != tc.pending || got.pos != core.V(3, 5) {
				t.Errorf("spawn = %+v, expected %v at release position", got, tc.pending)
			}
		})
	}
}

func TestTwoFingerSpawnsAtMidpoint(t *testing.T) {
	r, sp := newTestRecognizer(core.SpawnAttract)

	r.HandleEvent(ev(0, core.PointerDown, 2, 2), 1.0)
	r.HandleEvent(ev(1, core.PointerDown, 6, 4), 1.05)

	if len(sp.spawns) != 1 {
		t.Fatalf("expected one two-finger spawn, got %d", len(sp.spawns))
	}
	if got := sp.spawns[0]; got.t != core.SpawnRepel || got.pos != core.V(4, 3) {
		t.Errorf("spawn = %+v, expected repel at (4,3)", got)
	}

	r.HandleEvent(ev(0, core.PointerUp, 2, 2), 1.1)
	r.HandleEvent(ev(1, core.PointerUp, 6, 4), 1.1)
	if len(sp.spawns) != 1 {
		t.Errorf("releasing consumed pointers should not spawn again, got %d spawns", len(sp.spawns))
	}
	if r.Active() != 0 {
		t.Errorf("Active() = %d after release", r.Active())
	}
}

func TestTwoFingerUsesPressPositions(t *testing.T) {
	r, sp := newTestRecognizer(core.SpawnAttract)

	r.HandleEvent(ev(0, core.PointerDown, -4, 4), 1.0)
	r.HandleEvent(ev(0, core.PointerMove, 4, 4), 1.02)
	r.HandleEvent(ev(1, core.PointerDown, -4, 4), 1.05)

	if len(sp.spawns) != 1 {
		t.Fatalf("expected one two-finger spawn, got %d", len(sp.spawns))
	}
	if got := sp.spawns[0].pos; got != core.V(-4, 4) {
		t.Errorf("spawn at %v, expected midpoint of the presses (-4,4)", got)
	}
}

func TestSlowSecondFingerIsTwoTaps(t *testing.T) {
	r, sp := newTestRecognizer(core.SpawnAttract)

	r.HandleEvent(ev(0, core.PointerDown, 2, 2), 1.0)
	r.HandleEvent(ev(1, core.PointerDown, 6, 4), 1.2)
	if len(sp.spawns) != 0 {
		t.Fatal("second finger outside the window should not trigger a two-finger spawn")
	}
	r.HandleEvent(ev(0, core.PointerUp, 2, 2), 1.25)
	r.HandleEvent(ev(1, core.PointerUp, 6, 4), 1.3)
	if len(sp.spawns) != 2 || sp.spawns[0].t != core.SpawnAttract {
		t.Errorf("expected two pending-type spawns, got %v", sp.spawns)
	}
}

func TestCancelDiscardsTap(t *testing.T) {
	r, sp := newTestRecognizer(core.SpawnAttract)
	r.HandleEvent(ev(0, core.PointerDown, 2, 2), 0)
	r.HandleEvent(ev(0, core.PointerCancel, 2, 2), 0.1)
	r.HandleEvent(ev(0, core.PointerUp, 2, 2), 0.2)

	if len(sp.spawns) != 0 || r.Active() != 0 {
		t.Errorf("cancelled pointer should produce nothing, spawns=%v", sp.spawns)
	}
}

func TestDisabledIgnoresInput(t *testing.T) {
	r, sp := newTestRecognizer(core.SpawnAttract)
	r.HandleEvent(ev(0, core.PointerDown, 2, 2), 0)
	r.SetEnabled(false)
	if r.Active() != 0 {
		t.Error("disabling should drop active taps")
	}

	r.HandleEvent(ev(0, core.PointerUp, 2, 2), 0.1)
	r.HandleEvent(ev(1, core.PointerDown, 2, 2), 0.2)
	r.HandleEvent(ev(1, core.PointerUp, 2, 2), 0.3)
	if len(sp.spawns) != 0 {
		t.Errorf("disabled recognizer spawned %v", sp.spawns)
	}
}

func TestRegionFilter(t *testing.T) {
	f := NewRegionFilter(core.Rect{X: 0, Y: 0, W: 10, H: 2})

	if f.Allow(ev(0, core.PointerDown, 5, 1)) {
		t.Error("pointer starting on the HUD should be blocked")
	}
	if f.Allow(ev(0, core.PointerMove, 5, 8)) || f.Allow(ev(0, core.PointerUp, 5, 8)) {
		t.Error("later events for a blocked pointer should be blocked")
	}
	if !f.Allow(ev(0, core.PointerDown, 5, 8)) {
		t.Error("a fresh press outside the HUD should pass")
	}
	if !f.Allow(ev(0, core.PointerUp, 5, 1)) {
		t.Error("release over the HUD of an allowed pointer should pass")
	}
}

func TestFromTouch(t *testing.T) {
	tests := []struct {
		typ   touch.Type
		phase core.PointerPhase
	}{
		{touch.TypeBegin, core.PointerDown},
		{touch.TypeMove, core.PointerMove},
		{touch.TypeEnd, core.PointerUp},
	}
	for _, tc := range tests {
		got := FromTouch(touch.Event{X: 1.5, Y: 2, Sequence: 7, Type: tc.typ})
		if got.ID != 7 || got.Phase != tc.phase || got.Pos != core.V(1.5, 2) {
			t.Errorf("FromTouch(%v) = %+v", tc.typ, got)
		}
	}
}
