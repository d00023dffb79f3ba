// Package game runs one Magnet Maze play session: level loading, the
// fixed-step magnet simulation, spawn rules and outcome timers.
package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/magnet-maze/internal/config"
	"github.com/vovakirdan/magnet-maze/internal/core"
	"github.com/vovakirdan/magnet-maze/internal/game/gesture"
	"github.com/vovakirdan/magnet-maze/internal/game/level"
	"github.com/vovakirdan/magnet-maze/internal/game/physics"
)

// Outcome reasons.
const (
	ReasonHitObstacle = "Ball hit an obstacle!"
	ReasonTimeUp      = "Time's Up!"
	ReasonWin         = "Level Complete!"
)

// OutcomeKind is the latched result of a level.
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeGameOver
	OutcomeWin
)

// String returns the storage name of the outcome.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeGameOver:
		return "gameover"
	case OutcomeWin:
		return "win"
	default:
		return "none"
	}
}

// Outcome is the level result. Once set it never changes until the next
// level load or retry.
type Outcome struct {
	Kind   OutcomeKind
	Reason string
}

// noPending marks an unscheduled outcome timer.
const noPending = -1.0

// Session owns every entity of one level and advances it.
//
// Update is the per-frame step (input, timers, delayed outcomes) and
// FixedUpdate the physics step. Step drives both from the platform tick.
type Session struct {
	cfg     config.Config
	scaling *config.LevelScaling
	logger  *log.Logger
	runtime core.RuntimeConfig

	// Level
	levelNum  int
	seed      int64
	fixedGrid *level.Grid // Set when playing a level file; generation is skipped
	grid      *level.Grid
	layout    level.Layout
	arena     core.Bounds
	spawnArea core.Bounds
	goal      core.Bounds
	viewport  Viewport

	// Registries
	ball      *physics.Ball
	magnets   []*physics.Magnet
	obstacles []*physics.Obstacle
	nextID    int

	ctx      *SpawnContext
	budget   Budget
	gestures *gesture.Recognizer
	filter   *gesture.RegionFilter

	// Clocks
	now         float64
	accumulator float64
	timeLeft    float64
	ticks       uint64

	placed           int
	paused           bool
	showInstructions bool

	outcome           Outcome
	pendingGameOverAt float64
	pendingReason     string
	pendingWinAt      float64
}

// New creates a session. Call Reset or Load before stepping it.
// A nil logger discards output.
func New(cfg config.Config, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	pending, err := core.ParseSpawnType(cfg.Session.InitialSpawn)
	if err != nil {
		pending = core.SpawnAttract
	}

	s := &Session{
		cfg:               cfg,
		scaling:           config.NewLevelScaling(cfg),
		logger:            logger,
		ctx:               NewSpawnContext(pending),
		showInstructions:  cfg.Session.ShowInstructions,
		pendingGameOverAt: noPending,
		pendingWinAt:      noPending,
	}
	s.gestures = gesture.New(gestureConfig(cfg.Gesture), s, s.ctx, logger)
	s.filter = gesture.NewRegionFilter()
	return s
}

// Reset generates and loads the level named by rc.Level with rc.Seed.
func (s *Session) Reset(rc core.RuntimeConfig) error {
	s.applyRuntime(rc)
	s.fixedGrid = nil
	return s.load()
}

// Load plays a prebuilt grid instead of generating one. Retry and next
// level keep using it.
func (s *Session) Load(rc core.RuntimeConfig, g *level.Grid) error {
	s.applyRuntime(rc)
	s.fixedGrid = g.Clone()
	return s.load()
}

func (s *Session) applyRuntime(rc core.RuntimeConfig) {
	if rc.TickRate <= 0 {
		rc.TickRate = 60
	}
	s.runtime = rc
	s.levelNum = max(1, rc.Level)
	s.seed = rc.Seed
	s.SetViewport(NewViewport(rc.ScreenW, rc.ScreenH))
}

// load builds the current level's entities and starts a fresh round.
func (s *Session) load() error {
	rng := level.NewRNG(s.seed)

	var g *level.Grid
	if s.fixedGrid != nil {
		g = s.fixedGrid.Clone()
	} else {
		var err error
		g, err = level.Build(rng, GenParams(s.cfg, s.levelNum, s.seed))
		if err != nil {
			s.logger.Error("level generation failed", "level", s.levelNum, "seed", s.seed, "err", err)
			return fmt.Errorf("level %d: %w", s.levelNum, err)
		}
	}

	cs := s.cfg.Level.CellSize
	s.grid = g
	s.layout = level.NewLayout(g, cs)
	s.arena = s.layout.Bounds().Expand(s.cfg.Level.ArenaPadding)
	s.spawnArea = s.arena.Inset(s.cfg.Level.InnerPadding + s.cfg.Level.SpawnMargin)

	s.ball = nil
	s.obstacles = s.obstacles[:0]
	s.nextID = 0
	for _, cmd := range level.Spawns(g, cs, rng) {
		switch cmd.Kind {
		case level.SpawnStart:
			s.ball = physics.NewBall(cmd.World, ballParams(s.cfg.Ball))
		case level.SpawnGoal:
			half := s.cfg.Level.GoalHalfSize * cs
			s.goal = core.NewBounds(cmd.World, half, half)
		case level.SpawnObstacle:
			s.nextID++
			o := physics.NewObstacle(s.nextID, cmd.Variant.String(), cmd.World, obstacleParams(s.cfg.Obstacle, cs))
			s.obstacles = append(s.obstacles, o)
		}
	}
	if s.ball == nil {
		return &level.GenerationError{Code: "NO_START", Message: "level has no start cell"}
	}

	s.logger.Info("level loaded",
		"level", s.levelNum, "seed", s.seed,
		"size", fmt.Sprintf("%dx%d", g.W, g.H), "obstacles", len(s.obstacles))
	s.startRound()
	return nil
}

// startRound resets every per-attempt value on the current layout.
func (s *Session) startRound() {
	s.ball.Reset()
	for _, o := range s.obstacles {
		o.Reset()
	}
	s.magnets = s.magnets[:0]
	s.ctx.SetActive(nil)
	s.budget = NewBudget(s.cfg.Budget, s.scaling, s.levelNum)
	s.timeLeft = s.scaling.TimeLimit(s.levelNum)
	s.placed = 0
	s.paused = false
	s.accumulator = 0
	s.outcome = Outcome{}
	s.pendingGameOverAt = noPending
	s.pendingReason = ""
	s.pendingWinAt = noPending
	s.gestures.SetEnabled(true)
}

// Retry replays the current layout: the ball returns to the start,
// obstacles to their cells, magnets are cleared and budget and timer refill.
func (s *Session) Retry() {
	if s.ball == nil {
		return
	}
	s.logger.Debug("retry", "level", s.levelNum)
	s.startRound()
}

// Regenerate loads a new layout for the current level. On failure the
// session keeps its seed and current layout.
func (s *Session) Regenerate() error {
	s.seed++
	if err := s.load(); err != nil {
		s.seed--
		return err
	}
	return nil
}

// NextLevel advances to the next level with the same seed. On failure the
// session stays on the current level and layout.
func (s *Session) NextLevel() error {
	s.levelNum++
	if err := s.load(); err != nil {
		s.levelNum--
		return err
	}
	return nil
}

// Step runs one platform frame: discrete actions, pointer events, the
// frame update and as many fixed physics steps as the frame time covers.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	s.handleActions(in)

	for _, ev := range in.Pointers {
		s.HandlePointer(ev)
	}

	dt := 1.0 / float64(s.runtime.TickRate)
	if s.running() {
		s.Update(dt)
		s.accumulator += dt
		step := s.cfg.Session.FixedStep
		for s.accumulator >= step {
			s.FixedUpdate(step)
			s.accumulator -= step
		}
	}
	s.ticks++

	return core.StepResult{State: s.State()}
}

func (s *Session) handleActions(in core.InputFrame) {
	if in.Has(core.ActionDismiss) && s.showInstructions {
		s.showInstructions = false
		return
	}
	if s.showInstructions {
		return
	}

	for _, a := range []core.Action{
		core.ActionSelectNone, core.ActionSelectAttract, core.ActionSelectRepel,
		core.ActionSelectTrap, core.ActionSelectParabolic,
	} {
		if in.Has(a) {
			t, _ := a.SelectedSpawnType()
			s.ctx.SetPending(t)
		}
	}

	switch {
	case in.Has(core.ActionRetry):
		s.Retry()
	case in.Has(core.ActionRegenerate):
		if err := s.Regenerate(); err != nil {
			s.logger.Error("regenerate failed", "err", err)
		}
	case in.Has(core.ActionNextLevel) && s.outcome.Kind == OutcomeWin:
		if err := s.NextLevel(); err != nil {
			s.logger.Error("next level failed", "err", err)
		}
	case in.Has(core.ActionPause) && s.outcome.Kind == OutcomeNone:
		s.paused = !s.paused
	case in.Has(core.ActionSwitchPolarity):
		s.SwitchPolarity()
	}
}

// running reports whether clocks and physics advance.
func (s *Session) running() bool {
	return !s.paused && !s.showInstructions
}

// HandlePointer feeds one pointer event through the HUD filter to the
// gesture recognizer.
func (s *Session) HandlePointer(ev core.PointerEvent) {
	if !s.running() {
		return
	}
	if !s.filter.Allow(ev) {
		return
	}
	s.gestures.HandleEvent(ev, s.now)
}

// Update is the frame step: it advances the session clock, runs the hold
// check, counts down the timer and fires delayed outcomes.
func (s *Session) Update(dt float64) {
	s.now += dt
	s.gestures.Update(s.now)

	if s.outcome.Kind != OutcomeNone {
		return
	}

	s.timeLeft -= dt
	if s.timeLeft <= 0 {
		s.timeLeft = 0
		s.TriggerGameOver(ReasonTimeUp)
		return
	}

	if s.pendingGameOverAt >= 0 && s.now >= s.pendingGameOverAt {
		s.TriggerGameOver(s.pendingReason)
		return
	}
	if s.pendingWinAt >= 0 && s.now >= s.pendingWinAt {
		s.TriggerWin()
	}
}

// FixedUpdate is the physics step: magnets act first, then bodies
// integrate, then contacts resolve. Physics freezes once the outcome
// is latched.
func (s *Session) FixedUpdate(dt float64) {
	if s.outcome.Kind != OutcomeNone {
		return
	}

	for _, m := range s.magnets {
		m.Tick(s.ball, s.obstacles)
	}

	for _, o := range s.obstacles {
		o.Integrate(dt)
		o.ConfineTo(s.arena)
	}

	s.ball.Integrate(dt)
	s.ball.ConfineTo(s.arena)

	s.resolveContacts()
}

func (s *Session) resolveContacts() {
	r := s.ball.Params.Radius
	for _, o := range s.obstacles {
		box := o.Box()
		if !physics.CircleHitsBox(s.ball.Position, r, box) {
			continue
		}
		s.ball.Position = physics.PushOut(s.ball.Position, r, box)
		s.ball.Stop()
		s.scheduleGameOver(ReasonHitObstacle)
	}

	if physics.CircleHitsBox(s.ball.Position, r, s.goal) {
		s.scheduleWin()
	}
}

func (s *Session) outcomeScheduled() bool {
	return s.pendingGameOverAt >= 0 || s.pendingWinAt >= 0
}

func (s *Session) scheduleGameOver(reason string) {
	if s.outcomeScheduled() {
		return
	}
	s.pendingGameOverAt = s.now + s.cfg.Session.OutcomeDelay
	s.pendingReason = reason
	s.logger.Debug("game over scheduled", "reason", reason, "at", s.pendingGameOverAt)
}

func (s *Session) scheduleWin() {
	if s.outcomeScheduled() {
		return
	}
	s.pendingWinAt = s.now + s.cfg.Session.OutcomeDelay
	s.logger.Debug("win scheduled", "at", s.pendingWinAt)
}

// TriggerGameOver latches a game over and disables input. Later triggers
// of either kind are ignored.
func (s *Session) TriggerGameOver(reason string) {
	if s.outcome.Kind != OutcomeNone {
		return
	}
	s.outcome = Outcome{Kind: OutcomeGameOver, Reason: reason}
	s.gestures.SetEnabled(false)
	s.logger.Info("game over", "level", s.levelNum, "reason", reason, "magnets", s.placed)
}

// TriggerWin latches a win and disables input.
func (s *Session) TriggerWin() {
	if s.outcome.Kind != OutcomeNone {
		return
	}
	s.outcome = Outcome{Kind: OutcomeWin, Reason: ReasonWin}
	s.gestures.SetEnabled(false)
	s.logger.Info("level complete", "level", s.levelNum, "time_left", s.timeLeft, "magnets", s.placed)
}

// SwitchPolarity toggles the active magnet and syncs the global mode to it,
// or flips the global mode when no magnet is active.
func (s *Session) SwitchPolarity() {
	if s.outcome.Kind != OutcomeNone {
		return
	}
	if m := s.ctx.Active(); m != nil {
		m.Toggle()
		s.ctx.SetMode(m.Polarity)
		return
	}
	s.ctx.FlipMode()
}

// SetViewport sets the screen projection and the HUD exclusion region.
func (s *Session) SetViewport(v Viewport) {
	s.viewport = v
	s.filter.SetRegions(core.NewRect(0, 0, max(s.runtime.ScreenW, 1), HUDRows))
}

// Resize adapts the projection to a new terminal size. Entities keep
// their world positions.
func (s *Session) Resize(screenW, screenH int) {
	s.runtime.ScreenW = screenW
	s.runtime.ScreenH = screenH
	s.SetViewport(NewViewport(screenW, screenH))
}

// SetPaused pauses or resumes the clocks. Pausing drops every tracked
// pointer. It has no effect once an outcome is latched.
func (s *Session) SetPaused(on bool) {
	if s.outcome.Kind != OutcomeNone {
		return
	}
	s.paused = on
	if on {
		s.gestures.Reset()
	}
}

// SetInstructionsVisible shows or hides the instructions overlay. The
// session is paused while it is shown.
func (s *Session) SetInstructionsVisible(on bool) {
	s.showInstructions = on
}

// State returns the platform-facing state snapshot.
func (s *Session) State() core.GameState {
	return core.GameState{
		Level:            s.levelNum,
		TimeLeft:         s.timeLeft,
		MagnetsPlaced:    s.placed,
		GameOver:         s.outcome.Kind == OutcomeGameOver,
		Won:              s.outcome.Kind == OutcomeWin,
		Reason:           s.outcome.Reason,
		Paused:           s.paused,
		ShowInstructions: s.showInstructions,
	}
}

// Outcome returns the latched outcome.
func (s *Session) Outcome() Outcome { return s.outcome }

// Level returns the 1-based level number.
func (s *Session) Level() int { return s.levelNum }

// Seed returns the layout seed.
func (s *Session) Seed() int64 { return s.seed }

// Grid returns the current layout.
func (s *Session) Grid() *level.Grid { return s.grid }

// Ball returns the ball.
func (s *Session) Ball() *physics.Ball { return s.ball }

// Magnets returns the live magnets in spawn order.
func (s *Session) Magnets() []*physics.Magnet {
	return append([]*physics.Magnet(nil), s.magnets...)
}

// Obstacles returns the obstacle bodies.
func (s *Session) Obstacles() []*physics.Obstacle { return s.obstacles }

// Arena returns the wall rectangle in world units.
func (s *Session) Arena() core.Bounds { return s.arena }

// SpawnArea returns the rectangle spawn positions are clamped into.
func (s *Session) SpawnArea() core.Bounds { return s.spawnArea }

// Goal returns the goal trigger box.
func (s *Session) Goal() core.Bounds { return s.goal }

// Budget returns a copy of the remaining allowances.
func (s *Session) Budget() Budget { return s.budget.Clone() }

// Context returns the spawn selection.
func (s *Session) Context() *SpawnContext { return s.ctx }

// Recognizer returns the gesture recognizer.
func (s *Session) Recognizer() *gesture.Recognizer { return s.gestures }

// Viewport returns the screen projection.
func (s *Session) Viewport() Viewport { return s.viewport }

// Now returns the session clock in seconds.
func (s *Session) Now() float64 { return s.now }

// TimeLeft returns the countdown in seconds.
func (s *Session) TimeLeft() float64 { return s.timeLeft }
