package loop

// EventKind identifies a discrete game event.
type EventKind int

const (
	EventShot          EventKind = iota // A projectile left the craft
	EventExplosion                      // An enemy was destroyed at X, Y
	EventCraftHit                       // An enemy rammed the craft
	EventLevelUp                        // Level changed to Level
	EventReloadStarted                  // Ammo ran out and reloading began
	EventReloadDone                     // Ammo refilled
	EventGameOver                       // Health exhausted with final Score
)

// String returns the event name used in logs and metrics.
func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventExplosion:
		return "explosion"
	case EventCraftHit:
		return "craft_hit"
	case EventLevelUp:
		return "level_up"
	case EventReloadStarted:
		return "reload_started"
	case EventReloadDone:
		return "reload_done"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a notification for the presentation layer. Events never feed
// back into the simulation.
type Event struct {
	Kind  EventKind
	X, Y  float64 // Explosion center
	Score int     // Final score for EventGameOver
	Level int     // New level for EventLevelUp
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// DrainEvents returns the events raised since the last call and clears the queue.
func (g *Game) DrainEvents() []Event {
	if len(g.events) == 0 {
		return nil
	}
	out := g.events
	g.events = nil
	return out
}
