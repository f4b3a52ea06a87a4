package object

// EnemySpawner creates enemies at the right edge while the population is
// under its cap.
type EnemySpawner struct {
	limit int
}

// NewEnemySpawner creates a spawner that never lets the live count exceed limit.
func NewEnemySpawner(limit int) *EnemySpawner {
	if limit < 0 {
		limit = 0
	}
	return &EnemySpawner{
		limit: limit,
	}
}

// Limit returns the population cap.
func (s *EnemySpawner) Limit() int {
	return s.limit
}

// Next returns a new enemy, or nil when live enemies already fill the cap.
func (s *EnemySpawner) Next(live int, screen Screen, level int, rng Rand) *Enemy {
	if live >= s.limit {
		return nil
	}
	return NewEnemyAtEdge(screen, level, rng)
}
