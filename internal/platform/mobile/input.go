// Package mobile adapts golang.org/x/mobile app events to a game session.
// Touch coordinates arrive in pixels and are scaled into the same screen
// cell space the terminal front end uses.
package mobile

import (
	"maps"
	"slices"

	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"github.com/vovakirdan/magnet-maze/internal/core"
	"github.com/vovakirdan/magnet-maze/internal/game/gesture"
)

// Input collects touches between frames.
type Input struct {
	cols, rows   int
	cellW, cellH float64
	held         map[int64]bool
	frame        core.InputFrame
}

// NewInput returns an input sized for a cols x rows cell grid. Until the
// first size event one pixel maps to one cell.
func NewInput(cols, rows int) *Input {
	return &Input{
		cols:  cols,
		rows:  rows,
		cellW: 1,
		cellH: 1,
		held:  make(map[int64]bool),
		frame: core.NewInputFrame(),
	}
}

// Resize records the surface size in pixels.
func (in *Input) Resize(e size.Event) {
	if e.WidthPx <= 0 || e.HeightPx <= 0 || in.cols <= 0 || in.rows <= 0 {
		return
	}
	in.cellW = float64(e.WidthPx) / float64(in.cols)
	in.cellH = float64(e.HeightPx) / float64(in.rows)
}

// Touch queues one touch event as a pointer event in cell coordinates.
func (in *Input) Touch(e touch.Event) {
	ev := gesture.FromTouch(e)
	ev.Pos = core.V(ev.Pos.X/in.cellW, ev.Pos.Y/in.cellH)
	switch ev.Phase {
	case core.PointerDown:
		in.held[ev.ID] = true
	case core.PointerUp, core.PointerCancel:
		delete(in.held, ev.ID)
	}
	in.frame.AddPointer(ev)
}

// CancelAll queues a cancel for every finger still down.
func (in *Input) CancelAll() {
	for _, id := range slices.Sorted(maps.Keys(in.held)) {
		in.frame.AddPointer(core.PointerEvent{ID: id, Phase: core.PointerCancel})
	}
	clear(in.held)
}

// Held returns the number of fingers currently down.
func (in *Input) Held() int { return len(in.held) }

// Flush returns the queued frame and starts a new one.
func (in *Input) Flush() core.InputFrame {
	f := in.frame
	in.frame = core.NewInputFrame()
	return f
}
