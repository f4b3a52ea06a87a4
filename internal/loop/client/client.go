// Package client drives one terminal: it polls keys, ticks the player's
// game at a fixed frame rate and renders the result.
package client

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/cyberjet/internal/audio"
	"github.com/tomz197/cyberjet/internal/draw"
	"github.com/tomz197/cyberjet/internal/input"
	"github.com/tomz197/cyberjet/internal/loop"
	"github.com/tomz197/cyberjet/internal/loop/config"
	"github.com/tomz197/cyberjet/internal/loop/server"
	"github.com/tomz197/cyberjet/internal/telemetry"
)

// Client handles rendering and input for a single connection.
type Client struct {
	server       server.GameServer
	handle       *server.ClientHandle
	game         *loop.Game
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	termSizeFunc draw.TermSizeFunc
	audio        audio.Player
	metrics      *telemetry.Metrics
	logger       *log.Logger
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	ViewWidth    int // Logical viewport, defaults to config.ViewWidth
	ViewHeight   int // Logical viewport, defaults to config.ViewHeight
	Audio        audio.Player
	Metrics      *telemetry.Metrics
	Logger       *log.Logger
	Clock        loop.Clock
}

// NewClient creates a new client registered with the given hub.
func NewClient(gs server.GameServer, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	viewWidth, viewHeight := opts.ViewWidth, opts.ViewHeight
	if viewWidth <= 0 || viewHeight <= 0 {
		viewWidth, viewHeight = config.ViewWidth, config.ViewHeight
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Audio
	if player == nil {
		player = audio.Nop{}
	}

	handle := gs.RegisterClient(opts.Username)
	logger = logger.With("client", handle.ID)

	gameOpts := []loop.Option{
		loop.WithViewport(viewWidth, viewHeight),
		loop.WithLogger(logger),
	}
	if opts.Clock != nil {
		gameOpts = append(gameOpts, loop.WithClock(opts.Clock))
	}

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := draw.TerminalSizeRawWith(termSizeFunc)
	aspect := float64(viewWidth) / float64(viewHeight)
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight, aspect)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, float64(viewWidth), float64(viewHeight))
	canvas.SetOffset(offsetCol, offsetRow)
	chunkWriter := draw.NewChunkWriter(w, offsetCol, offsetRow)

	return &Client{
		server:       gs,
		handle:       handle,
		game:         loop.NewGame(gameOpts...),
		state:        NewClientState(),
		canvas:       canvas,
		chunkWriter:  chunkWriter,
		writer:       w,
		lastInput:    time.Now(),
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		audio:        player,
		metrics:      opts.Metrics,
		logger:       logger,
	}
}

// Run starts the client loop. Blocks until the client quits, the hub shuts
// it down or ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	defer c.inputStream.Close()

	draw.HideCursor(c.writer)
	draw.EnableFocusReporting(c.writer)
	defer draw.ShowCursor(c.writer)
	defer draw.DisableFocusReporting(c.writer)
	draw.ClearScreen(c.writer)

	if c.metrics != nil {
		c.metrics.SessionStarted(ctx)
		defer c.metrics.SessionEnded(context.WithoutCancel(ctx))
	}

	lastTime := time.Now()

	for c.state.Running {
		select {
		case <-ctx.Done():
			c.state.Running = false
			continue
		default:
		}

		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		c.frame(ctx)

		// Draw frame
		if err := c.drawFrame(); err != nil {
			c.server.UnregisterClient(c.handle.ID)
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	// Unregister from hub
	c.server.UnregisterClient(c.handle.ID)
	c.audio.Close()

	draw.ClearScreen(c.writer)
	return nil
}

// frame runs everything but drawing for one frame.
func (c *Client) frame(ctx context.Context) {
	c.processInput()
	c.processServerEvents()
	c.updateScreen()

	switch c.state.Phase {
	case PhaseIntro:
		c.updateIntro()
	case PhaseGame:
		c.updateGame(ctx)
	case PhaseShutdown:
		c.updateShutdownState()
	}
}

// processInput reads this frame's keys and tracks inactivity.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)

	if c.state.Input.Any() {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.logger.Info("disconnecting inactive client")
		c.state.Running = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityWarnUser {
		c.state.isInactive = true
		// Nobody is watching; do not let the world run on without them.
		c.game.SetVisible(false)
	}

	if c.state.Input.Quit || c.inputStream.Closed() {
		c.state.Running = false
	}
}

// processServerEvents handles events from the hub.
func (c *Client) processServerEvents() {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				// Hub closed the channel
				c.state.Running = false
				return
			}
			switch event.Type {
			case server.EventServerShutdown:
				c.state.Phase = PhaseShutdown
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
				c.game.SetVisible(false)
			case server.EventTopScore:
				c.state.lastRank = event.Rank
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSizeRawWith(c.termSizeFunc)
	if err != nil {
		return
	}
	aspect := c.canvas.LogicalWidth() / c.canvas.LogicalHeight()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight, aspect)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize fits a render area with the viewport's aspect ratio inside
// the terminal, capped at the max render resolution, and computes the
// centering offset. Terminal cells are about twice as tall as wide and
// every cell holds two pixels, so one column matches one pixel row.
func clampTermSize(termWidth, termHeight int, aspect float64) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(max(termWidth, 0), config.MaxTermWidth)
	renderHeight = min(max(termHeight, 0), config.MaxTermHeight)

	if aspect > 0 && renderHeight > 0 {
		fitWidth := int(float64(renderHeight*2) * aspect)
		if fitWidth <= renderWidth {
			renderWidth = fitWidth
		} else {
			renderHeight = int(float64(renderWidth) / aspect / 2)
		}
	}

	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// updateIntro counts down the title card. Any key skips it.
func (c *Client) updateIntro() {
	c.state.introTimer -= c.state.delta.Seconds()
	if c.state.introTimer <= 0 || c.state.Input.Any() {
		input.ResetKeyInput(c.inputStream)
		c.state.Input = input.Input{}
		c.state.Phase = PhaseGame
	}
}

// updateGame maps this frame's keys onto game actions, ticks the game and
// presents its events.
func (c *Client) updateGame(ctx context.Context) {
	in := c.state.Input

	if in.FocusLost {
		c.game.SetVisible(false)
	}
	if in.FocusGained {
		c.game.SetVisible(true)
	}

	switch c.game.State() {
	case loop.StateMenu:
		if in.Start || in.Fire {
			c.startGame()
		}
	case loop.StateRunning:
		if in.Pause {
			c.game.TogglePause()
		} else if in.Fire {
			c.game.Fire()
		}
	case loop.StatePaused:
		switch {
		case in.Pause:
			c.game.TogglePause()
		case in.Menu:
			c.game.ReturnToMenu()
		}
	case loop.StateGameOver:
		switch {
		case in.Start:
			c.startGame()
		case in.Restart:
			c.game.Restart()
		case in.Menu:
			c.game.ReturnToMenu()
		}
	}

	c.game.Tick(loop.Controls{
		Up:    in.Up,
		Down:  in.Down,
		Left:  in.Left,
		Right: in.Right,
	})

	c.handleGameEvents(ctx, c.game.DrainEvents())
}

// startGame starts a fresh game and forgets keys held on the previous screen.
func (c *Client) startGame() {
	input.ResetKeyInput(c.inputStream)
	c.state.lastRank = 0
	c.game.Start()
}

// handleGameEvents turns game events into sound, metrics and hub reports.
func (c *Client) handleGameEvents(ctx context.Context, events []loop.Event) {
	for _, e := range events {
		if c.metrics != nil {
			c.metrics.RecordEvent(ctx, e.Kind.String())
		}

		switch e.Kind {
		case loop.EventShot:
			c.audio.Laser()
		case loop.EventExplosion:
			c.audio.Explosion()
		case loop.EventReloadDone:
			c.audio.ReloadDone()
		case loop.EventLevelUp:
			c.logger.Debug("level up", "level", e.Level)
		case loop.EventGameOver:
			c.logger.Info("game over", "score", e.Score)
			c.state.lastRank = 0
			c.server.ReportScore(c.handle.ID, e.Score)
			if c.metrics != nil {
				c.metrics.RecordGameOver(ctx, e.Score)
			}
		}
	}
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}
