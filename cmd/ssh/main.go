package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/tomz197/cyberjet/internal/audio"
	"github.com/tomz197/cyberjet/internal/config"
	"github.com/tomz197/cyberjet/internal/draw"
	applog "github.com/tomz197/cyberjet/internal/logging"
	"github.com/tomz197/cyberjet/internal/loop/client"
	"github.com/tomz197/cyberjet/internal/loop/server"
	"github.com/tomz197/cyberjet/internal/telemetry"
)

// app holds what every SSH session shares.
type app struct {
	hub      *server.Server
	metrics  *telemetry.Metrics
	logger   *log.Logger
	settings config.Settings
}

func main() {
	settings, err := config.Load(config.GetEnv("CYBERJET_CONFIG_DIR", "."))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := applog.New(os.Stderr, settings.LogLevel)

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("ssh config",
		"host", settings.SSH.Host,
		"port", settings.SSH.Port,
		"hostKeyPath", settings.SSH.HostKeyPath,
		"workingDir", workingDir,
	)

	metrics, err := telemetry.New()
	if err != nil {
		logger.Fatal("failed to create metrics", "err", err)
	}

	// Shared hub - every SSH client reports to it
	hubCtx, cancelHub := context.WithCancel(context.Background())
	hub := server.NewServer(server.WithLogger(logger))
	go hub.Run(hubCtx)
	if err := metrics.ObservePlayers(hub.PlayerCount); err != nil {
		logger.Warn("failed to observe player count", "err", err)
	}
	logger.Info("game hub started")

	a := &app{hub: hub, metrics: metrics, logger: logger, settings: settings}

	opts := []ssh.Option{
		wish.WithAddress(config.Addr(settings.SSH.Host, settings.SSH.Port)),
		wish.WithMiddleware(
			a.gameMiddleware,
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

	if settings.SSH.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(settings.SSH.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting ssh server", "addr", config.Addr(settings.SSH.Host, settings.SSH.Port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	// Notify players and wait for them to disconnect
	hub.Shutdown(15 * time.Second)
	cancelHub()
	logger.Info("game hub stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameMiddleware handles SSH sessions and runs the game client.
func (a *app) gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		logger := a.logger.With("user", sess.User())
		logger.Info("new game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

		// Listen for window size changes in a goroutine
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		reader := bufio.NewReader(sess)
		clientOpts := client.ClientOptions{
			TermSizeFunc: sizeTracker.getSize,
			Username:     sess.User(),
			ViewWidth:    a.settings.View.Width,
			ViewHeight:   a.settings.View.Height,
			// Remote sessions cannot reach our speakers; the bell is all they get.
			Audio:   audio.New(audio.KindBell, sess, logger),
			Metrics: a.metrics,
			Logger:  logger,
		}

		c := client.NewClient(a.hub, reader, sess, clientOpts)
		if err := c.Run(sess.Context()); err != nil {
			logger.Error("game error", "err", err)
		}

		logger.Info("session ended")
		next(sess)
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
