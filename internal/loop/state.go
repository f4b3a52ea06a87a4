package loop

import (
	"github.com/tomz197/cyberjet/internal/loop/config"
)

// GameState represents the current game phase.
type GameState int

const (
	StateMenu     GameState = iota // Title menu, nothing simulated
	StateRunning                   // Active gameplay
	StatePaused                    // World frozen until the player unpauses
	StateGameOver                  // Health exhausted, waiting for restart or menu
)

// String returns the state name used in logs.
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session holds the per-game counters shown on the HUD.
type Session struct {
	Score     int
	HighScore int // Survives reset for the lifetime of the Game
	Level     int
	Ammo      int
	Health    int // Percentage, 0-100
	Reloading bool
}

// NewSession returns a session ready for a fresh game.
func NewSession() Session {
	var s Session
	s.reset()
	return s
}

// reset clears everything but the high score.
func (s *Session) reset() {
	s.Score = 0
	s.Level = LevelForScore(0)
	s.Ammo = config.MaxAmmo
	s.Health = config.MaxHealth
	s.Reloading = false
}

// addScore credits points, tracking the high score. It reports whether the
// level changed.
func (s *Session) addScore(points int) bool {
	s.Score += points
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
	level := LevelForScore(s.Score)
	if level == s.Level {
		return false
	}
	s.Level = level
	return true
}

// damage lowers health, never below zero. It reports whether health ran out.
func (s *Session) damage(amount int) bool {
	s.Health = max(s.Health-amount, 0)
	return s.Health == 0
}

// LevelForScore returns the difficulty level reached at score.
func LevelForScore(score int) int {
	return score/config.PointsPerLevel + 1
}
