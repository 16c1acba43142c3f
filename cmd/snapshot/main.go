// Command snapshot plays a seeded game with the autopilot and writes the
// final frame to a PNG file.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/orbrunner/internal/bot"
	"github.com/tomz197/orbrunner/internal/draw"
	"github.com/tomz197/orbrunner/internal/loop"
	"github.com/tomz197/orbrunner/internal/loop/config"
	"github.com/tomz197/orbrunner/internal/object"
)

type options struct {
	seed   int64
	frames int
	out    string
	width  int
	height int
}

func main() {
	var opts options
	flag.Int64Var(&opts.seed, "seed", 1, "random seed")
	flag.IntVar(&opts.frames, "frames", 60*config.TargetFPS, "maximum frames to simulate")
	flag.StringVar(&opts.out, "out", "orbrunner.png", "output PNG path")
	flag.IntVar(&opts.width, "width", 960, "image width in pixels")
	flag.IntVar(&opts.height, "height", 540, "image height in pixels")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "snapshot"})

	s, err := simulate(opts, logger)
	if err != nil {
		logger.Fatal("simulation failed", "err", err)
	}
	if err := renderFrame(s, opts.width, opts.height).SavePNG(opts.out); err != nil {
		logger.Fatal("write image", "path", opts.out, "err", err)
	}
	logger.Info("wrote snapshot", "path", opts.out, "frame", s.World.Frame, "score", s.World.Score, "phase", s.Phase)
}

// simulate plays one game on a fixed clock until game over or the frame limit.
func simulate(opts options, logger *log.Logger) (*loop.Session, error) {
	if opts.frames <= 0 {
		return nil, fmt.Errorf("frames must be positive, got %d", opts.frames)
	}

	s := loop.NewSession(loop.SessionOptions{
		Arena:  object.Arena{Width: config.ArenaWidth, Height: config.ArenaHeight},
		Rand:   rand.New(rand.NewSource(opts.seed)),
		Logger: logger,
	})

	now := time.Unix(0, 0)
	s.Start(now)

	var pilot bot.Autopilot
	for i := 0; i < opts.frames && s.Phase == loop.PhaseRunning; i++ {
		now = now.Add(config.TargetFrameTime)
		s.Advance(now, pilot.Decide(s.World))
	}
	return s, nil
}

// renderFrame draws the world and a status line onto a new raster.
func renderFrame(s *loop.Session, width, height int) *draw.Raster {
	w := s.World
	r := draw.NewRaster(width, height, w.Arena.Width, w.Arena.Height)
	r.Clear()
	// Render only fails on surface errors, which gg does not produce
	_ = loop.Render(r, w)

	status := fmt.Sprintf("Score %d   Level %d   Lives %d", w.Score, w.Level, max(w.Lives, 0))
	r.Text(w.Arena.Width/2, 20, status, draw.InkText)
	if s.Phase == loop.PhaseGameOver {
		r.Text(w.Arena.Width/2, w.Arena.Height/2, "GAME OVER", draw.InkOrb)
	}
	return r
}
