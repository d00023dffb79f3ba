package mobile

import (
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"github.com/vovakirdan/magnet-maze/internal/core"
	"github.com/vovakirdan/magnet-maze/internal/game"
)

// Driver routes app events into a session: size and touch events feed the
// input queue, and each paint event steps the session with the queued frame.
type Driver struct {
	session *game.Session
	input   *Input
	logger  *log.Logger
	last    core.StepResult
}

// NewDriver binds a session to a cols x rows cell surface.
func NewDriver(s *game.Session, cols, rows int, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s.Resize(cols, rows)
	return &Driver{session: s, input: NewInput(cols, rows), logger: logger}
}

// Handle processes one event from the app event stream. It returns false
// once the app has reached the dead stage.
func (d *Driver) Handle(e any) bool {
	switch e := e.(type) {
	case lifecycle.Event:
		if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOff {
			d.input.CancelAll()
			d.session.SetPaused(true)
		}
		if e.To == lifecycle.StageDead {
			d.logger.Info("app stopped", "level", d.session.Level())
			return false
		}
	case size.Event:
		d.input.Resize(e)
	case touch.Event:
		d.input.Touch(e)
	case paint.Event:
		d.last = d.session.Step(d.input.Flush())
	}
	return true
}

// Run drains events until the channel closes or the app dies.
func (d *Driver) Run(events <-chan any) {
	for e := range events {
		if !d.Handle(e) {
			return
		}
	}
}

// Last returns the result of the most recent step.
func (d *Driver) Last() core.StepResult { return d.last }
