package core

// Action represents a semantic game action, abstracted from physical key presses.
// Pointer gestures are carried separately as PointerEvents.
type Action int

const (
	ActionNone            Action = iota
	ActionSelectNone             // 0 - clear the pending spawn type
	ActionSelectAttract          // 1 - pending spawn type: attract
	ActionSelectRepel            // 2 - pending spawn type: repel
	ActionSelectTrap             // 3 - pending spawn type: trap
	ActionSelectParabolic        // 4 - pending spawn type: parabolic
	ActionSwitchPolarity         // Space - toggle active magnet or global polarity
	ActionPause                  // P, Escape - pause/unpause
	ActionRetry                  // R - replay the current layout
	ActionRegenerate             // G - new layout for the current level
	ActionNextLevel              // N - advance after a win
	ActionDismiss                // Enter - close the instructions overlay
	ActionQuit                   // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSelectNone:
		return "SelectNone"
	case ActionSelectAttract:
		return "SelectAttract"
	case ActionSelectRepel:
		return "SelectRepel"
	case ActionSelectTrap:
		return "SelectTrap"
	case ActionSelectParabolic:
		return "SelectParabolic"
	case ActionSwitchPolarity:
		return "SwitchPolarity"
	case ActionPause:
		return "Pause"
	case ActionRetry:
		return "Retry"
	case ActionRegenerate:
		return "Regenerate"
	case ActionNextLevel:
		return "NextLevel"
	case ActionDismiss:
		return "Dismiss"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// SelectedSpawnType maps a selection action to the spawn type it picks.
// ok is false for actions that do not select a type.
func (a Action) SelectedSpawnType() (t SpawnType, ok bool) {
	switch a {
	case ActionSelectNone:
		return SpawnNone, true
	case ActionSelectAttract:
		return SpawnAttract, true
	case ActionSelectRepel:
		return SpawnRepel, true
	case ActionSelectTrap:
		return SpawnTrap, true
	case ActionSelectParabolic:
		return SpawnParabolic, true
	}
	return SpawnNone, false
}

// PointerPhase is the lifecycle stage of a pointer event.
type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
	PointerCancel
)

// String returns the phase name.
func (p PointerPhase) String() string {
	switch p {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is one raw touch or mouse event in screen coordinates.
type PointerEvent struct {
	ID    int64
	Phase PointerPhase
	Pos   Vec2
}

// InputFrame holds everything the platform collected for one tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Pointers are applied in arrival order.
	Pointers []PointerEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddPointer queues a pointer event for this frame.
func (f *InputFrame) AddPointer(ev PointerEvent) {
	f.Pointers = append(f.Pointers, ev)
}

// Clear resets all actions and pointer events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointers = f.Pointers[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointers = append([]PointerEvent(nil), f.Pointers...)
	return clone
}
