package gesture

import (
	"golang.org/x/mobile/event/touch"

	"github.com/vovakirdan/magnet-maze/internal/core"
)

// FromTouch converts a mobile touch event into a pointer event. The touch
// sequence number identifies the finger.
func FromTouch(e touch.Event) core.PointerEvent {
	ev := core.PointerEvent{
		ID:  int64(e.Sequence),
		Pos: core.V(float64(e.X), float64(e.Y)),
	}
	switch e.Type {
	case touch.TypeBegin:
		ev.Phase = core.PointerDown
	case touch.TypeMove:
		ev.Phase = core.PointerMove
	case touch.TypeEnd:
		ev.Phase = core.PointerUp
	default:
		ev.Phase = core.PointerCancel
	}
	return ev
}
