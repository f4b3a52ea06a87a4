package loop

import (
	"github.com/tomz197/cyberjet/internal/loop/config"
	"github.com/tomz197/cyberjet/internal/object"
)

// Fire shoots one projectile from the craft's muzzle. It reports whether a
// projectile was spawned. Firing with an empty magazine starts a reload.
func (g *Game) Fire() bool {
	if g.state != StateRunning || g.session.Reloading {
		return false
	}

	now := g.clock.Now()
	if g.hasShot && now.Sub(g.lastShot) < config.ShootCooldown {
		return false
	}
	g.lastShot = now
	g.hasShot = true

	if g.session.Ammo <= 0 {
		g.startReload(now)
		return false
	}

	x, y := g.store.Craft.Muzzle()
	if !g.store.AddProjectile(object.NewProjectile(x, y)) {
		return false
	}
	g.session.Ammo--
	g.emit(Event{Kind: EventShot})
	return true
}
