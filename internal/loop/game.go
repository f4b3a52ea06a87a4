// Package loop holds the simulation core: the entity store, the session
// counters, the per-tick step and the game state machine.
package loop

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/cyberjet/internal/loop/config"
	"github.com/tomz197/cyberjet/internal/object"
)

// Controls are the directional keys held during a tick.
type Controls = object.Steering

// Game is one player's game. It is not safe for concurrent use: a single
// goroutine (the tick driver) owns it and calls every method.
type Game struct {
	clock  Clock
	rng    *rand.Rand
	logger *log.Logger

	screen  object.Screen
	state   GameState
	session Session
	store   *Store
	spawner *object.EnemySpawner

	// active is true between a game start and the next stop. Deadlines
	// reached while it is false do nothing.
	active bool

	lastShot time.Time
	hasShot  bool

	spawnAt  time.Time // Next enemy spawn, zero when disarmed
	reloadAt time.Time // Reload completion, zero when not reloading
	startAt  time.Time // Pending delayed restart, zero when none

	events []Event
}

// Option configures a Game.
type Option func(*Game)

// WithClock sets the time source. Defaults to MonotonicClock.
func WithClock(c Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// WithSeed seeds the randomness used for spawning and explosions.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithViewport sets the logical viewport size.
func WithViewport(width, height int) Option {
	return func(g *Game) {
		g.screen = object.NewScreen(width, height)
	}
}

// NewGame creates a game sitting in the menu.
func NewGame(opts ...Option) *Game {
	g := &Game{
		clock:   MonotonicClock{},
		screen:  object.NewScreen(config.ViewWidth, config.ViewHeight),
		state:   StateMenu,
		session: NewSession(),
		spawner: object.NewEnemySpawner(config.MaxEnemies),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	g.store = NewStore(g.screen)
	return g
}

// State returns the current game phase.
func (g *Game) State() GameState {
	return g.state
}

// Session returns a copy of the session counters.
func (g *Game) Session() Session {
	return g.session
}

// Screen returns the logical viewport.
func (g *Game) Screen() object.Screen {
	return g.screen
}

// Start begins a new game from the menu, or immediately from the game-over
// screen. It is ignored while a game is running or paused.
func (g *Game) Start() {
	switch g.state {
	case StateMenu, StateGameOver:
		g.begin()
	}
}

// Restart schedules a new game after a short delay. Only valid on the
// game-over screen.
func (g *Game) Restart() {
	if g.state != StateGameOver || !g.startAt.IsZero() {
		return
	}
	g.startAt = g.clock.Now().Add(config.RestartDelay)
}

// ReturnToMenu abandons the current game. Valid when paused or game over.
func (g *Game) ReturnToMenu() {
	switch g.state {
	case StatePaused, StateGameOver:
		g.stop()
		g.setState(StateMenu)
	}
}

// TogglePause switches between running and paused. Other states ignore it.
func (g *Game) TogglePause() {
	switch g.state {
	case StateRunning:
		g.setState(StatePaused)
	case StatePaused:
		g.setState(StateRunning)
	}
}

// SetVisible reports whether the player can see the game. Losing
// visibility pauses a running game; regaining it never resumes.
func (g *Game) SetVisible(visible bool) {
	if !visible && g.state == StateRunning {
		g.setState(StatePaused)
	}
}

// Resize changes the logical viewport and keeps the craft inside it.
func (g *Game) Resize(width, height int) {
	g.screen = object.NewScreen(width, height)
	g.store.Craft.Clamp(g.screen)
}

// begin resets the session and the world and starts running.
func (g *Game) begin() {
	now := g.clock.Now()
	g.session.reset()
	g.store.Reset(g.screen)
	g.active = true
	g.hasShot = false
	g.reloadAt = time.Time{}
	g.startAt = time.Time{}
	g.spawnAt = now.Add(config.SpawnInterval)
	g.setState(StateRunning)
}

// stop cancels every pending timer.
func (g *Game) stop() {
	g.active = false
	g.spawnAt = time.Time{}
	g.reloadAt = time.Time{}
	g.startAt = time.Time{}
}

// endGame freezes the world on health exhaustion.
func (g *Game) endGame() {
	g.stop()
	g.setState(StateGameOver)
	g.emit(Event{Kind: EventGameOver, Score: g.session.Score})
}

func (g *Game) setState(s GameState) {
	if s == g.state {
		return
	}
	g.logger.Debug("game state changed", "from", g.state, "to", s)
	g.state = s
}
