package client

import (
	"time"

	"github.com/tomz197/cyberjet/internal/input"
	"github.com/tomz197/cyberjet/internal/loop"
	"github.com/tomz197/cyberjet/internal/loop/config"
)

// Phase is the client-level screen sitting around the game itself.
type Phase int

const (
	PhaseIntro    Phase = iota // Title card before the menu
	PhaseGame                  // The game's own state machine decides the screen
	PhaseShutdown              // Hub is shutting down
)

// screenKey identifies what is on screen. A change triggers a full clear.
type screenKey struct {
	phase    Phase
	state    loop.GameState
	inactive bool
}

// ClientState holds per-connection state (input, timers, phase).
// Each client has its own instance, managed by the Client.
type ClientState struct {
	Input         input.Input
	Phase         Phase
	Running       bool          // Client loop running
	delta         time.Duration // Frame delta time
	introTimer    float64       // Seconds left on the title card
	shutdownTimer float64       // Countdown before auto-disconnect on shutdown
	isInactive    bool          // Whether the client is in inactive warning state
	prevScreen    screenKey
	hasPrevScreen bool
	lastRank      int // Leaderboard rank of the last finished game, 0 if none
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		Phase:      PhaseIntro,
		Running:    true,
		introTimer: config.IntroSeconds,
	}
}
