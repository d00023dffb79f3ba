package gesture

import "github.com/vovakirdan/magnet-maze/internal/core"

// RegionFilter drops pointers that start over UI-covered screen regions.
// Once a pointer is blocked, every later event for it is dropped too, so
// the recognizer never sees half a gesture.
type RegionFilter struct {
	regions []core.Rect
	blocked map[int64]bool
}

// NewRegionFilter creates a filter for the given regions.
func NewRegionFilter(regions ...core.Rect) *RegionFilter {
	return &RegionFilter{regions: regions, blocked: make(map[int64]bool)}
}

// SetRegions replaces the covered regions (e.g. after a resize).
func (f *RegionFilter) SetRegions(regions ...core.Rect) {
	f.regions = regions
}

// Allow reports whether ev may reach the recognizer.
func (f *RegionFilter) Allow(ev core.PointerEvent) bool {
	switch ev.Phase {
	case core.PointerDown:
		for _, r := range f.regions {
			if r.ContainsPoint(ev.Pos) {
				f.blocked[ev.ID] = true
				return false
			}
		}
		delete(f.blocked, ev.ID)
		return true
	case core.PointerUp, core.PointerCancel:
		if f.blocked[ev.ID] {
			delete(f.blocked, ev.ID)
			return false
		}
		return true
	default:
		return !f.blocked[ev.ID]
	}
}
