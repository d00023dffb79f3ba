package tui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/magnet-maze/internal/core"
)

// Pointer ids assigned to mouse buttons.
const (
	pointerLeft  int64 = 0
	pointerRight int64 = 1
)

// PointerTracker turns terminal mouse messages into pointer events.
//
// The left button is pointer 0 and the right button pointer 1. A
// shift+click presses both at once so a single mouse can perform the
// two-finger gesture. Positions are cell centres.
type PointerTracker struct {
	held map[int64]bool
}

// NewPointerTracker creates a tracker with no pointers held.
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{held: make(map[int64]bool)}
}

// Held reports whether the pointer is down.
func (p *PointerTracker) Held(id int64) bool {
	return p.held[id]
}

// Translate converts one mouse message to zero or more pointer events.
func (p *PointerTracker) Translate(msg tea.MouseMsg) []core.PointerEvent {
	pos := core.V(float64(msg.X)+0.5, float64(msg.Y)+0.5)

	switch msg.Action {
	case tea.MouseActionPress:
		var ids []int64
		switch {
		case msg.Button == tea.MouseButtonLeft && msg.Shift:
			ids = []int64{pointerLeft, pointerRight}
		case msg.Button == tea.MouseButtonLeft:
			ids = []int64{pointerLeft}
		case msg.Button == tea.MouseButtonRight:
			ids = []int64{pointerRight}
		default:
			return nil
		}
		var out []core.PointerEvent
		for _, id := range ids {
			if p.held[id] {
				continue
			}
			p.held[id] = true
			out = append(out, core.PointerEvent{ID: id, Phase: core.PointerDown, Pos: pos})
		}
		return out

	case tea.MouseActionMotion:
		return p.all(core.PointerMove, pos, false)

	case tea.MouseActionRelease:
		// Terminals in cell-motion mode often report releases without a
		// button, so a release lifts every held pointer.
		return p.all(core.PointerUp, pos, true)
	}
	return nil
}

// CancelAll lifts every held pointer without completing its gesture.
func (p *PointerTracker) CancelAll() []core.PointerEvent {
	return p.all(core.PointerCancel, core.Vec2{}, true)
}

func (p *PointerTracker) all(phase core.PointerPhase, pos core.Vec2, lift bool) []core.PointerEvent {
	if len(p.held) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(p.held))
	for id := range p.held {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]core.PointerEvent, 0, len(ids))
	for _, id := range ids {
		out = append(out, core.PointerEvent{ID: id, Phase: phase, Pos: pos})
		if lift {
			delete(p.held, id)
		}
	}
	return out
}
