// Package audio plays sound effects for game events. Failures never reach
// the game: a player that cannot make sound degrades to silence.
package audio

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/tomz197/cyberjet/internal/draw"
)

// Player plays the game's sound effects.
type Player interface {
	Laser()
	Explosion()
	ReloadDone()
	Close()
}

// Kind selects a Player implementation.
type Kind string

const (
	KindSpeaker Kind = "speaker" // Local sound card via beep
	KindBell    Kind = "bell"    // Terminal bell on the session output
	KindNone    Kind = "none"
)

// New returns the player for kind. A speaker that fails to initialize falls
// back to the terminal bell; the failure is logged.
func New(kind Kind, w io.Writer, logger *log.Logger) Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	switch kind {
	case KindSpeaker:
		sm := NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio unavailable, using terminal bell", "err", err)
			return NewBell(w, logger)
		}
		return sm
	case KindBell:
		return NewBell(w, logger)
	default:
		return Nop{}
	}
}

// Nop is a silent Player.
type Nop struct{}

func (Nop) Laser()      {}
func (Nop) Explosion()  {}
func (Nop) ReloadDone() {}
func (Nop) Close()      {}

// Bell rings the terminal bell on explosions. Lasers stay silent, a bell
// per shot would drown everything else.
type Bell struct {
	mu     sync.Mutex
	w      io.Writer
	logger *log.Logger
	failed bool
}

// NewBell creates a Bell writing to w.
func NewBell(w io.Writer, logger *log.Logger) *Bell {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Bell{w: w, logger: logger}
}

func (b *Bell) Laser() {}

// Explosion rings the bell once.
func (b *Bell) Explosion() {
	b.ring()
}

// ReloadDone rings the bell once.
func (b *Bell) ReloadDone() {
	b.ring()
}

func (b *Bell) Close() {}

func (b *Bell) ring() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failed || b.w == nil {
		return
	}
	if err := draw.Bell(b.w); err != nil {
		// Log once, then stay quiet.
		b.failed = true
		b.logger.Debug("terminal bell failed", "err", err)
	}
}
