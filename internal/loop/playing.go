package loop

// Tick advances the game by one frame: due timers first, then, while
// running, movement followed by collision resolution.
func (g *Game) Tick(c Controls) {
	g.runTimers(g.clock.Now())

	if g.state != StateRunning {
		return
	}

	g.store.updateEntities(c, g.screen)
	g.resolveCollisions()
}
