package loop

import (
	"time"

	"github.com/tomz197/cyberjet/internal/loop/config"
)

// runTimers applies every deadline reached by now. Timers never fire on
// their own; the tick driver drains them here before stepping.
func (g *Game) runTimers(now time.Time) {
	if !g.startAt.IsZero() && !now.Before(g.startAt) {
		g.startAt = time.Time{}
		if g.state == StateGameOver {
			g.begin()
		}
	}

	if !g.reloadAt.IsZero() && !now.Before(g.reloadAt) {
		g.reloadAt = time.Time{}
		g.finishReload()
	}

	if !g.spawnAt.IsZero() && !now.Before(g.spawnAt) {
		// A late tick spawns once; missed periods are skipped.
		for !now.Before(g.spawnAt) {
			g.spawnAt = g.spawnAt.Add(config.SpawnInterval)
		}
		g.spawnEnemy()
	}
}

// spawnEnemy adds an enemy at the right edge unless the game is not running
// or the enemy cap is reached.
func (g *Game) spawnEnemy() {
	if g.state != StateRunning {
		return
	}
	e := g.spawner.Next(len(g.store.Enemies), g.screen, g.session.Level, g.rng)
	if e == nil {
		return
	}
	g.store.AddEnemy(e)
}

func (g *Game) startReload(now time.Time) {
	g.session.Reloading = true
	g.reloadAt = now.Add(config.ReloadTime)
	g.emit(Event{Kind: EventReloadStarted})
}

func (g *Game) finishReload() {
	if !g.active || !g.session.Reloading {
		return
	}
	g.session.Ammo = config.MaxAmmo
	g.session.Reloading = false
	g.emit(Event{Kind: EventReloadDone})
}
