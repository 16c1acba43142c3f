package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/tomz197/orbrunner/internal/draw"
	"github.com/tomz197/orbrunner/internal/input"
	"github.com/tomz197/orbrunner/internal/loop/config"
	"github.com/tomz197/orbrunner/internal/object"
	"github.com/tomz197/orbrunner/internal/physics"
)

// Options configures Run. Zero values select defaults.
type Options struct {
	TermSizeFunc draw.TermSizeFunc  // Defaults to the size of os.Stdout
	Renderer     *lipgloss.Renderer // Text styling; defaults to 256 colors on the output writer
	Logger       *log.Logger
	Observer     Observer
	Rand         physics.Rand
}

// Run starts the main game loop with the standard Input → Update → Draw cycle.
// It returns when the player quits, the input stream closes or ctx is cancelled.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = NewTermRenderer(w)
	}

	sc := newScreen(w, renderer)
	session := NewSession(SessionOptions{
		Arena:    object.Arena{Width: config.ArenaWidth, Height: config.ArenaHeight},
		Rand:     opts.Rand,
		HUD:      sc.hud,
		Observer: opts.Observer,
		Logger:   opts.Logger,
	})
	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	defer draw.ClearScreen(w)

	for ctx.Err() == nil {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		in := input.ReadInput(stream)
		if in.Quit || in.Closed {
			return nil
		}

		// ===== UPDATE PHASE =====
		if termW, termH, err := termSizeFunc(); err == nil {
			sc.resize(termW, termH)
		}
		session.Tick(frameStart, in)

		// ===== DRAW PHASE =====
		if err := sc.drawFrame(session); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}
	return nil
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
