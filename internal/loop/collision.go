package loop

import (
	"github.com/tomz197/cyberjet/internal/loop/config"
	"github.com/tomz197/cyberjet/internal/object"
	"github.com/tomz197/cyberjet/internal/physics"
)

// resolveCollisions checks every enemy, newest first, against the craft
// and then against the projectiles. A craft hit wins over projectile hits
// for the same enemy, and each projectile kills at most one enemy.
func (g *Game) resolveCollisions() {
	s := g.store
	craft := s.Craft.Bounds()

	for i := len(s.Enemies) - 1; i >= 0; i-- {
		e := s.Enemies[i]

		if physics.Overlaps(craft, e.Bounds()) {
			s.removeEnemy(i)
			g.emit(Event{Kind: EventCraftHit})
			if g.session.damage(config.CollisionDamage) {
				g.endGame()
				return
			}
			continue
		}

		g.checkProjectileHits(i, e)
	}
}

// checkProjectileHits destroys enemy i if any projectile overlaps it.
func (g *Game) checkProjectileHits(i int, e *object.Enemy) {
	s := g.store
	bounds := e.Bounds()

	for j := len(s.Projectiles) - 1; j >= 0; j-- {
		if !physics.Overlaps(s.Projectiles[j].Bounds(), bounds) {
			continue
		}

		cx, cy := e.Center()
		object.SpawnExplosion(cx, cy, object.BurstSize(g.session.Level), g.rng, s)
		g.emit(Event{Kind: EventExplosion, X: cx, Y: cy})

		s.removeEnemy(i)
		s.removeProjectile(j)

		if g.session.addScore(config.KillReward) {
			g.emit(Event{Kind: EventLevelUp, Level: g.session.Level})
		}
		return
	}
}
