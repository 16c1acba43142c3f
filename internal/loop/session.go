package loop

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/orbrunner/internal/loop/config"
	"github.com/tomz197/orbrunner/internal/object"
	"github.com/tomz197/orbrunner/internal/physics"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseIdle     Phase = iota // Title screen
	PhaseRunning               // Active gameplay
	PhasePaused                // Simulation frozen, last frame still shown
	PhaseGameOver              // Final score shown until retry or home
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Observer receives session lifecycle events (metrics, logging).
type Observer interface {
	GameStarted()
	GameOver(score, level, frames int)
}

type nopObserver struct{}

func (nopObserver) GameStarted()            {}
func (nopObserver) GameOver(int, int, int) {}

// SessionOptions configures a Session. Zero values select defaults.
type SessionOptions struct {
	Arena    object.Arena
	Rand     physics.Rand
	HUD      HUD
	Observer Observer
	Logger   *log.Logger
}

// Session drives one player's sequence of games.
type Session struct {
	Phase      Phase
	World      *World // nil until the first start; kept frozen after game over
	FinalScore int

	arena    object.Arena
	rng      physics.Rand
	hud      HUD
	observer Observer
	logger   *log.Logger
	lastTime time.Time
	games    int
}

// NewSession creates an idle session.
func NewSession(opts SessionOptions) *Session {
	if opts.Arena.Width == 0 || opts.Arena.Height == 0 {
		opts.Arena = object.Arena{Width: config.ArenaWidth, Height: config.ArenaHeight}
	}
	if opts.Rand == nil {
		opts.Rand = newRand()
	}
	if opts.HUD == nil {
		opts.HUD = nopHUD{}
	}
	if opts.Observer == nil {
		opts.Observer = nopObserver{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Session{
		Phase:    PhaseIdle,
		arena:    opts.Arena,
		rng:      opts.Rand,
		hud:      opts.HUD,
		observer: opts.Observer,
		logger:   opts.Logger,
	}
}

// Start begins a new game with a full world reset. Valid from any phase.
func (s *Session) Start(now time.Time) {
	s.World = NewWorld(s.arena, s.rng, s.hud)
	s.Phase = PhaseRunning
	s.FinalScore = 0
	s.lastTime = now
	s.games++

	s.observer.GameStarted()
	s.logger.Debug("game started", "game", s.games)
}

// TogglePause switches between running and paused. Resuming resynchronizes
// the frame clock so the paused interval never reaches the simulation.
// Returns false when no game is in progress.
func (s *Session) TogglePause(now time.Time) bool {
	switch s.Phase {
	case PhaseRunning:
		s.Phase = PhasePaused
		s.logger.Debug("paused", "frame", s.World.Frame)
	case PhasePaused:
		s.Phase = PhaseRunning
		s.lastTime = now
		s.logger.Debug("resumed", "frame", s.World.Frame)
	default:
		return false
	}
	return true
}

// Home returns from the game-over screen to the title screen.
func (s *Session) Home() bool {
	if s.Phase != PhaseGameOver {
		return false
	}
	s.Phase = PhaseIdle
	return true
}

// Handle applies the frame's input actions to the lifecycle.
func (s *Session) Handle(in object.Input, now time.Time) {
	switch s.Phase {
	case PhaseIdle:
		if in.Start {
			s.Start(now)
		}
	case PhaseRunning, PhasePaused:
		if in.Pause {
			s.TogglePause(now)
		}
	case PhaseGameOver:
		if in.Start {
			s.Start(now)
		} else if in.Home {
			s.Home()
		}
	}
}

// Advance steps the world once if the session is running. Elapsed time is
// clamped to config.MaxFrameDelta.
func (s *Session) Advance(now time.Time, in object.Input) Outcome {
	if s.Phase != PhaseRunning {
		return OutcomeContinue
	}

	dt := FrameDelta(s.lastTime, now)
	s.lastTime = now

	s.World.Input = in
	outcome := s.World.Step(dt)
	if outcome == OutcomeGameOver {
		s.end()
	}
	return outcome
}

// Tick handles input actions, then advances the simulation.
func (s *Session) Tick(now time.Time, in object.Input) Outcome {
	s.Handle(in, now)
	return s.Advance(now, in)
}

// end freezes the session and records the final score.
func (s *Session) end() {
	w := s.World
	s.Phase = PhaseGameOver
	s.FinalScore = w.Score

	s.observer.GameOver(w.Score, w.Level, w.Frame)
	s.logger.Info("game over", "score", w.Score, "level", w.Level, "frames", w.Frame)
}

// FrameDelta returns the elapsed time between frames, clamped to
// [0, config.MaxFrameDelta].
func FrameDelta(last, now time.Time) time.Duration {
	dt := now.Sub(last)
	if dt < 0 {
		return 0
	}
	return min(dt, config.MaxFrameDelta)
}
