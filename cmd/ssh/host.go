package main

import (
	"bufio"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/google/uuid"
	"github.com/tomz197/orbrunner/internal/draw"
	"github.com/tomz197/orbrunner/internal/loop"
	"github.com/tomz197/orbrunner/internal/metrics"
	"github.com/tomz197/orbrunner/internal/ratelimit"
)

// Rejection reasons, used as metric labels.
const (
	rejectRateLimit = "rate_limit"
	rejectCapacity  = "capacity"
	rejectNoPTY     = "no_pty"
	rejectShutdown  = "shutdown"
)

// gameHost runs one independent game per SSH session.
type gameHost struct {
	logger   *log.Logger
	recorder *metrics.Recorder
	limiter  *ratelimit.IPLimiter

	ctx    context.Context // Cancelled on shutdown; ends every running game
	cancel context.CancelFunc
	slots  chan struct{}
	wg     sync.WaitGroup
}

func newGameHost(logger *log.Logger, recorder *metrics.Recorder, limiter *ratelimit.IPLimiter, maxSessions int) *gameHost {
	if maxSessions < 1 {
		maxSessions = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &gameHost{
		logger:   logger,
		recorder: recorder,
		limiter:  limiter,
		ctx:      ctx,
		cancel:   cancel,
		slots:    make(chan struct{}, maxSessions),
	}
}

// admit reserves a session slot for ip. On success the caller must call
// release exactly once.
func (h *gameHost) admit(ip string) (ok bool, reason string) {
	if h.ctx.Err() != nil {
		return false, rejectShutdown
	}
	if !h.limiter.Allow(ip) {
		return false, rejectRateLimit
	}
	select {
	case h.slots <- struct{}{}:
		h.wg.Add(1)
		h.recorder.SessionStarted()
		return true, ""
	default:
		return false, rejectCapacity
	}
}

func (h *gameHost) release() {
	<-h.slots
	h.recorder.SessionEnded()
	h.wg.Done()
}

// shutdown ends all running games and waits up to timeout for them to exit.
func (h *gameHost) shutdown(timeout time.Duration) {
	h.cancel()

	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		h.logger.Info("All games stopped")
	case <-time.After(timeout):
		h.logger.Warn("Timed out waiting for games to stop", "active", len(h.slots))
	}
}

// middleware handles SSH sessions and runs the game.
func (h *gameHost) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		id := uuid.NewString()
		ip := ratelimit.HostIP(sess.RemoteAddr())
		logger := h.logger.With("session", id, "user", sess.User(), "ip", ip)

		pty, winCh, ok := sess.Pty()
		if !ok {
			h.recorder.ConnectionRejected(rejectNoPTY)
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		if ok, reason := h.admit(ip); !ok {
			h.recorder.ConnectionRejected(reason)
			logger.Warn("session rejected", "reason", reason)
			fmt.Fprintln(sess, rejectMessage(reason))
			return
		}
		defer h.release()

		logger.Info("New game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

		// Listen for window size changes in a goroutine
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		ctx, cancel := context.WithCancel(sess.Context())
		defer cancel()
		stop := context.AfterFunc(h.ctx, cancel)
		defer stop()

		started := time.Now()
		err := loop.Run(ctx, bufio.NewReader(sess), sess, loop.Options{
			TermSizeFunc: sizeTracker.getSize,
			Renderer:     loop.NewTermRenderer(sess),
			Logger:       logger,
			Observer:     h.recorder,
		})
		if err != nil {
			logger.Error("Game error", "err", err)
		}

		logger.Info("Session ended", "duration", time.Since(started).Round(time.Second))
		next(sess)
	}
}

func rejectMessage(reason string) string {
	switch reason {
	case rejectRateLimit:
		return "Too many connections from your address. Try again in a few seconds."
	case rejectCapacity:
		return "The server is full. Try again later."
	case rejectShutdown:
		return "The server is shutting down."
	default:
		return "Connection refused."
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
