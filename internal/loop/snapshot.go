package loop

import (
	"github.com/tomz197/cyberjet/internal/object"
)

// Snapshot is a copy of everything the render stage needs for one frame.
// Mutating it never affects the game.
type Snapshot struct {
	State       GameState
	Screen      object.Screen
	Session     Session
	Craft       object.Craft
	Projectiles []object.Projectile
	Enemies     []object.Enemy
	Particles   []object.Particle
}

// Paused reports whether the world is frozen by a pause.
func (s *Snapshot) Paused() bool {
	return s.State == StatePaused
}

// GameOver reports whether health ran out.
func (s *Snapshot) GameOver() bool {
	return s.State == StateGameOver
}

// Snapshot copies the current world and session.
func (g *Game) Snapshot() Snapshot {
	st := g.store
	snap := Snapshot{
		State:       g.state,
		Screen:      g.screen,
		Session:     g.session,
		Craft:       *st.Craft,
		Projectiles: make([]object.Projectile, len(st.Projectiles)),
		Enemies:     make([]object.Enemy, len(st.Enemies)),
		Particles:   make([]object.Particle, len(st.Particles)),
	}
	for i, p := range st.Projectiles {
		snap.Projectiles[i] = *p
	}
	for i, e := range st.Enemies {
		snap.Enemies[i] = *e
	}
	for i, p := range st.Particles {
		snap.Particles[i] = *p
	}
	return snap
}

// Draw renders every entity of the snapshot in paint order: craft,
// projectiles, enemies, then particles on top.
func (s *Snapshot) Draw(ctx object.DrawContext) {
	s.Craft.Draw(ctx)
	for i := range s.Projectiles {
		s.Projectiles[i].Draw(ctx)
	}
	for i := range s.Enemies {
		s.Enemies[i].Draw(ctx)
	}
	for i := range s.Particles {
		s.Particles[i].Draw(ctx)
	}
}
