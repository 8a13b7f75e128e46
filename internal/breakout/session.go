package breakout

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// saveTimeout bounds a single high-score write at session end.
const saveTimeout = 2 * time.Second

// ScoreStore persists the best score across sessions.
// The session only caches a copy; the store owns persistence.
type ScoreStore interface {
	LoadHighScore(ctx context.Context) (int, error)
	SaveHighScore(ctx context.Context, score int) error
}

// StepResult describes the session after one call to Step.
type StepResult struct {
	Tick         uint64
	Phase        Phase
	Outcome      Outcome
	Score        int
	Cleared      int  // Bricks cleared during this tick
	Ended        bool // The session ended during this tick
	NewHighScore bool // The ending score beat the previous best
	Message      Message
}

// Option configures a Session.
type Option func(*Session)

// WithStore sets the high-score store. Without one the high score lives
// in memory only.
func WithStore(store ScoreStore) Option {
	return func(s *Session) {
		s.store = store
	}
}

// WithLogger sets the logger used for lifecycle and store events.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSeed makes ball launches deterministic.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)) //#nosec G115 -- seed bits only
	}
}

// Session owns the ball, paddle, bricks, score and lifecycle of one game.
// It is not safe for concurrent use; a single driver calls Step per tick.
type Session struct {
	cfg    config.Config
	rng    *rand.Rand
	store  ScoreStore
	logger *log.Logger

	ball   Ball
	paddle Paddle
	grid   *Grid

	score     int
	highScore int
	phase     Phase
	outcome   Outcome
	tick      uint64
}

// NewSession validates cfg, loads the high score and lays out a fresh scene
// in the Idle phase. A store that fails to load leaves the high score at 0.
func NewSession(ctx context.Context, cfg config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}

	s := &Session{
		cfg:    cfg,
		logger: log.New(io.Discard),
		grid:   NewGrid(cfg.Bricks),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		WithSeed(time.Now().UnixNano())(s)
	}

	if s.store != nil {
		high, err := s.store.LoadHighScore(ctx)
		if err != nil {
			s.logger.Warn("could not load high score", "error", err)
		} else if high > 0 {
			s.highScore = high
		}
	}

	s.resetScene()
	s.phase = PhaseIdle
	return s, nil
}

// resetScene restores the entities to their start-of-session layout.
func (s *Session) resetScene() {
	s.score = 0
	s.tick = 0
	s.outcome = OutcomeNone

	s.ball = Ball{
		X:      s.cfg.Arena.Width / 2,
		Y:      s.cfg.Arena.Height - s.cfg.Ball.StartOffset,
		Radius: s.cfg.Ball.Radius,
	}
	s.ball.DX, s.ball.DY = LaunchVelocity(s.rng, s.cfg.Ball.Speed, s.cfg.Ball.MinAngle, s.cfg.Ball.MaxAngle)

	s.paddle = Paddle{
		X:      (s.cfg.Arena.Width - s.cfg.Paddle.Width) / 2,
		Width:  s.cfg.Paddle.Width,
		Height: s.cfg.Paddle.Height,
	}

	s.grid.Restore()
}

// Reset starts a fresh session from any phase: score zeroed, ball re-seeded,
// paddle centered, all bricks alive, phase Running.
func (s *Session) Reset() {
	s.resetScene()
	s.phase = PhaseRunning
	s.logger.Debug("session reset", "high", s.highScore)
}

// Start handles the start/restart intent. From Idle or Ended it resets and
// enters Running and returns true; the caller should arm its tick source.
// While Running it does nothing and returns false.
func (s *Session) Start() bool {
	if s.phase == PhaseRunning {
		return false
	}
	s.Reset()
	s.logger.Debug("session started")
	return true
}

// Step advances the simulation by one tick. Outside the Running phase it
// changes nothing. The order is fixed: paddle, wall, ceiling, paddle
// collision, defeat, victory, integration, bricks.
func (s *Session) Step(in core.Intent) StepResult {
	if s.phase != PhaseRunning {
		return s.result(0, false)
	}
	s.tick++

	s.movePaddle(in)

	CheckWall(&s.ball, s.cfg.Arena.Width)
	CheckCeiling(&s.ball)
	CheckPaddle(&s.ball, s.paddle, s.cfg.Arena.Height)

	if MissedPaddle(s.ball, s.paddle, s.cfg.Arena.Height) {
		return s.end(OutcomeDefeat)
	}
	if s.score == s.grid.Total() {
		return s.end(OutcomeVictory)
	}

	s.ball.Move()

	cleared := CheckBricks(&s.ball, s.grid)
	s.score += cleared
	return s.result(cleared, false)
}

// movePaddle applies the movement intent. Right is checked first and wins
// when both directions are held.
func (s *Session) movePaddle(in core.Intent) {
	switch {
	case in.Right:
		s.paddle.MoveBy(s.cfg.Paddle.Step, s.cfg.Arena.Width)
	case in.Left:
		s.paddle.MoveBy(-s.cfg.Paddle.Step, s.cfg.Arena.Width)
	}
}

// end freezes the session and records a new high score if one was set.
func (s *Session) end(outcome Outcome) StepResult {
	s.phase = PhaseEnded
	s.outcome = outcome

	newHigh := s.score > s.highScore
	if newHigh {
		s.highScore = s.score
		s.saveHighScore()
	}

	s.logger.Info("session ended",
		"outcome", outcome,
		"score", s.score,
		"total", s.grid.Total(),
		"high", s.highScore,
		"ticks", s.tick,
	)

	res := s.result(0, true)
	res.NewHighScore = newHigh
	return res
}

// saveHighScore writes the cached high score. Failures are logged and the
// in-memory value stays authoritative for the rest of the process.
func (s *Session) saveHighScore() {
	if s.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := s.store.SaveHighScore(ctx, s.highScore); err != nil {
		s.logger.Warn("could not save high score", "score", s.highScore, "error", err)
	}
}

func (s *Session) result(cleared int, ended bool) StepResult {
	return StepResult{
		Tick:    s.tick,
		Phase:   s.phase,
		Outcome: s.outcome,
		Score:   s.score,
		Cleared: cleared,
		Ended:   ended,
		Message: s.Message(),
	}
}

// Message returns the lifecycle message for the current state.
func (s *Session) Message() Message {
	return Message{
		Kind:      messageFor(s.phase, s.outcome),
		Score:     s.score,
		Total:     s.grid.Total(),
		HighScore: s.highScore,
	}
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Outcome returns the outcome of an ended session.
func (s *Session) Outcome() Outcome { return s.outcome }

// Score returns the number of bricks destroyed this session.
func (s *Session) Score() int { return s.score }

// HighScore returns the cached best score.
func (s *Session) HighScore() int { return s.highScore }

// Config returns the session configuration.
func (s *Session) Config() config.Config { return s.cfg }

// TickInterval returns the configured tick cadence.
func (s *Session) TickInterval() time.Duration {
	return time.Duration(s.cfg.Clock.TickMillis) * time.Millisecond
}
