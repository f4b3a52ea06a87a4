package loop

import (
	"github.com/tomz197/cyberjet/internal/loop/config"
	"github.com/tomz197/cyberjet/internal/object"
)

// Store owns every live entity of one game.
type Store struct {
	Craft       *object.Craft
	Projectiles []*object.Projectile
	Enemies     []*object.Enemy
	Particles   []*object.Particle

	maxProjectiles int
	maxParticles   int
}

// NewStore creates an empty store with the craft at its start position.
func NewStore(screen object.Screen) *Store {
	return &Store{
		Craft:          object.NewCraft(screen),
		Projectiles:    make([]*object.Projectile, 0, config.MaxProjectiles),
		Enemies:        make([]*object.Enemy, 0, config.MaxEnemies),
		maxProjectiles: config.MaxProjectiles,
		maxParticles:   config.MaxParticles,
	}
}

// Reset drops every entity and puts a fresh craft at its start position.
func (s *Store) Reset(screen object.Screen) {
	for _, p := range s.Particles {
		p.Release()
	}
	clear(s.Projectiles)
	clear(s.Enemies)
	clear(s.Particles)
	s.Projectiles = s.Projectiles[:0]
	s.Enemies = s.Enemies[:0]
	s.Particles = s.Particles[:0]
	s.Craft = object.NewCraft(screen)
}

// AddProjectile stores p unless the projectile cap is reached.
func (s *Store) AddProjectile(p *object.Projectile) bool {
	if len(s.Projectiles) >= s.maxProjectiles {
		return false
	}
	s.Projectiles = append(s.Projectiles, p)
	return true
}

// AddEnemy stores e.
func (s *Store) AddEnemy(e *object.Enemy) {
	s.Enemies = append(s.Enemies, e)
}

// SpawnParticle stores p unless the particle cap is reached.
// Implements object.Spawner.
func (s *Store) SpawnParticle(p *object.Particle) bool {
	if len(s.Particles) >= s.maxParticles {
		return false
	}
	s.Particles = append(s.Particles, p)
	return true
}

// removeEnemy deletes the enemy at i, keeping order.
func (s *Store) removeEnemy(i int) {
	copy(s.Enemies[i:], s.Enemies[i+1:])
	s.Enemies[len(s.Enemies)-1] = nil
	s.Enemies = s.Enemies[:len(s.Enemies)-1]
}

// removeProjectile deletes the projectile at i, keeping order.
func (s *Store) removeProjectile(i int) {
	copy(s.Projectiles[i:], s.Projectiles[i+1:])
	s.Projectiles[len(s.Projectiles)-1] = nil
	s.Projectiles = s.Projectiles[:len(s.Projectiles)-1]
}

// updateEntities advances every entity one tick and drops the ones that
// left the viewport or expired. Craft movement happens first.
func (s *Store) updateEntities(steer object.Steering, screen object.Screen) {
	s.Craft.Move(steer, screen)

	kept := s.Projectiles[:0] // reuse backing array
	for _, p := range s.Projectiles {
		if !p.Update(screen) {
			kept = append(kept, p)
		}
	}
	clear(s.Projectiles[len(kept):])
	s.Projectiles = kept

	keptEnemies := s.Enemies[:0]
	for _, e := range s.Enemies {
		if !e.Update(screen) {
			keptEnemies = append(keptEnemies, e)
		}
	}
	clear(s.Enemies[len(keptEnemies):])
	s.Enemies = keptEnemies

	keptParticles := s.Particles[:0]
	for _, p := range s.Particles {
		if p.Update() {
			p.Release()
			continue
		}
		keptParticles = append(keptParticles, p)
	}
	clear(s.Particles[len(keptParticles):])
	s.Particles = keptParticles
}
