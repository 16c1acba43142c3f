package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tomz197/orbrunner/internal/config"
	"github.com/tomz197/orbrunner/internal/metrics"
	"github.com/tomz197/orbrunner/internal/ratelimit"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
	defaultMaxSessions = 64
	defaultMetricsAddr = "127.0.0.1:9090"

	gameShutdownTimeout = 10 * time.Second
	sshShutdownTimeout  = 5 * time.Second
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "orbrunner-ssh",
	})

	if path, err := config.LoadDotEnv(); err != nil {
		logger.Fatal("failed to load .env", "err", err)
	} else if path != "" {
		logger.Info("loaded environment", "file", path)
	}
	if lvl, err := log.ParseLevel(config.GetEnv("ORBRUNNER_LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(lvl)
	}

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	metricsAddr := config.GetEnv("METRICS_ADDR", defaultMetricsAddr)
	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath, "workingDir", workingDir)

	limiter := ratelimit.New(ratelimit.Config{
		PerSecond:       config.GetEnvFloat("SSH_CONN_RATE", ratelimit.DefaultConfig.PerSecond),
		Burst:           config.GetEnvInt("SSH_CONN_BURST", ratelimit.DefaultConfig.Burst),
		CleanupInterval: ratelimit.DefaultConfig.CleanupInterval,
	})
	defer limiter.Stop()

	recorder := metrics.NewRecorder()
	games := newGameHost(logger, recorder, limiter, config.GetEnvInt("SSH_MAX_SESSIONS", defaultMaxSessions))

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			games.middleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	metricsServer := &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter(recorder),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("Starting metrics server", "addr", metricsAddr)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", "err", err)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting SSH server", "host", host, "port", port)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("Shutting down server...")

	// Stop accepting players, then end running games so their sessions can close
	games.shutdown(gameShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), sshShutdownTimeout)
	defer cancel()

	if err := metricsServer.Shutdown(ctx); err != nil {
		logger.Error("metrics shutdown error", "err", err)
	}
	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// metricsRouter serves Prometheus metrics and a liveness probe.
func metricsRouter(recorder *metrics.Recorder) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Handle("/metrics", recorder.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}
