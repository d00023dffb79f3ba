package mobile

import (
	"math"
	"testing"

	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"github.com/vovakirdan/magnet-maze/internal/config"
	"github.com/vovakirdan/magnet-maze/internal/core"
	"github.com/vovakirdan/magnet-maze/internal/game"
	"github.com/vovakirdan/magnet-maze/internal/game/physics"
)

// newTestDriver returns a driver on an 80x24 cell surface backed by an
// 800x480 pixel screen, so one cell is 10x20 pixels.
func newTestDriver(t *testing.T) (*Driver, *game.Session) {
	t.Helper()
	cfg := config.Default()
	cfg.Session.ShowInstructions = false
	s := game.New(cfg, nil)
	if err := s.Reset(core.DefaultConfig()); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	d := NewDriver(s, 80, 24, nil)
	d.Handle(size.Event{WidthPx: 800, HeightPx: 480})
	return d, s
}

func TestInputScalesTouches(t *testing.T) {
	in := NewInput(80, 24)
	in.Resize(size.Event{WidthPx: 800, HeightPx: 480})

	in.Touch(touch.Event{X: 405, Y: 270, Sequence: 3, Type: touch.TypeBegin})
	if in.Held() != 1 {
		t.Fatalf("Held() = %d, expected 1", in.Held())
	}
	f := in.Flush()
	if len(f.Pointers) != 1 {
		t.Fatalf("pointers = %d, expected 1", len(f.Pointers))
	}
	if got := f.Pointers[0]; got.ID != 3 || got.Phase != core.PointerDown || got.Pos != core.V(40.5, 13.5) {
		t.Errorf("pointer = %+v, expected down at cell (40.5, 13.5)", got)
	}
	if len(in.Flush().Pointers) != 0 {
		t.Error("Flush() should start an empty frame")
	}

	in.CancelAll()
	f = in.Flush()
	if in.Held() != 0 || len(f.Pointers) != 1 || f.Pointers[0].Phase != core.PointerCancel {
		t.Errorf("CancelAll() queued %+v, held=%d", f.Pointers, in.Held())
	}
}

func TestDriverTapSpawnsOnPaint(t *testing.T) {
	d, s := newTestDriver(t)

	d.Handle(touch.Event{X: 450, Y: 280, Sequence: 1, Type: touch.TypeBegin})
	d.Handle(touch.Event{X: 450, Y: 280, Sequence: 1, Type: touch.TypeEnd})
	if len(s.Magnets()) != 0 {
		t.Fatal("touches should wait for the next paint")
	}

	d.Handle(paint.Event{})
	ms := s.Magnets()
	if len(ms) != 1 {
		t.Fatalf("magnets = %d after paint, expected 1", len(ms))
	}
	// Cell (45, 14) is 5 columns and 1 row from the origin at (40, 13)
	if want := core.V(2.5, 1); ms[0].Position.Sub(want).Len() > 1e-9 {
		t.Errorf("magnet at %v, expected %v", ms[0].Position, want)
	}
	if d.Last().State.MagnetsPlaced != 1 {
		t.Errorf("MagnetsPlaced = %d", d.Last().State.MagnetsPlaced)
	}
}

func TestDriverTwoFingerRepel(t *testing.T) {
	d, s := newTestDriver(t)

	d.Handle(touch.Event{X: 380, Y: 260, Sequence: 1, Type: touch.TypeBegin})
	d.Handle(touch.Event{X: 420, Y: 260, Sequence: 2, Type: touch.TypeBegin})
	d.Handle(paint.Event{})

	ms := s.Magnets()
	if len(ms) != 1 {
		t.Fatalf("magnets = %d, expected one two-finger spawn", len(ms))
	}
	if ms[0].Polarity != physics.Repel || ms[0].Position.Len() > 1e-9 {
		t.Errorf("spawn = %v at %v, expected repel at the origin", ms[0].Polarity, ms[0].Position)
	}
}

func TestDriverFocusLossPauses(t *testing.T) {
	d, s := newTestDriver(t)

	d.Handle(touch.Event{X: 450, Y: 280, Sequence: 1, Type: touch.TypeBegin})
	d.Handle(paint.Event{})
	if !d.Handle(lifecycle.Event{From: lifecycle.StageFocused, To: lifecycle.StageVisible}) {
		t.Fatal("focus loss should not stop the driver")
	}
	if !s.State().Paused {
		t.Error("session should pause when focus is lost")
	}

	d.Handle(touch.Event{X: 450, Y: 280, Sequence: 1, Type: touch.TypeEnd})
	d.Handle(paint.Event{})
	if len(s.Magnets()) != 0 {
		t.Error("a touch interrupted by focus loss must not spawn")
	}
}

func TestDriverRunStopsWhenDead(t *testing.T) {
	d, s := newTestDriver(t)

	events := make(chan any, 4)
	events <- paint.Event{}
	events <- lifecycle.Event{From: lifecycle.StageVisible, To: lifecycle.StageDead}
	events <- paint.Event{}
	close(events)

	d.Run(events)
	if got, want := s.Now(), 1.0/60; math.Abs(got-want) > 1e-9 {
		t.Errorf("Now() = %v, expected one %v step before the app died", got, want)
	}
}
