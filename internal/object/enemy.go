package object

import (
	"github.com/tomz197/cyberjet/internal/draw"
	"github.com/tomz197/cyberjet/internal/loop/config"
	"github.com/tomz197/cyberjet/internal/physics"
)

// Enemy is a square hostile that drifts from right to left.
type Enemy struct {
	X, Y  float64 // Top-left corner
	Size  float64 // Side length
	Speed float64 // Units per tick, always positive
	Color draw.Color
}

// NewEnemy creates an enemy at (x, y) with the given size and speed.
func NewEnemy(x, y, size, speed float64) *Enemy {
	return &Enemy{
		X:     x,
		Y:     y,
		Size:  size,
		Speed: speed,
		Color: draw.ColorOrange,
	}
}

// EnemySpeed returns the base speed for a level before the random bonus.
func EnemySpeed(level int) float64 {
	return config.EnemyBaseSpeed + float64(level/config.EnemyLevelsPerStep)
}

// NewEnemyAtEdge creates an enemy just past the right edge of the viewport
// with a random size, vertical position and speed scaled by level.
func NewEnemyAtEdge(screen Screen, level int, rng Rand) *Enemy {
	size := config.EnemyMinSize + rng.Float64()*config.EnemySizeRange
	span := max(1, float64(screen.Height)-size)
	y := rng.Float64() * span
	speed := EnemySpeed(level) + rng.Float64()*config.EnemySpeedRange
	return NewEnemy(float64(screen.Width)+config.OffscreenMargin, y, size, speed)
}

// Update advances the enemy one tick. It reports true once the enemy has
// passed the left edge by more than the offscreen margin.
func (e *Enemy) Update(_ Screen) bool {
	e.X -= e.Speed
	return e.X+e.Size <= -config.OffscreenMargin
}

// Bounds returns the enemy's bounding box.
func (e *Enemy) Bounds() physics.Rect {
	return physics.Rect{X: e.X, Y: e.Y, W: e.Size, H: e.Size}
}

// Center returns the center of the enemy, where explosions originate.
func (e *Enemy) Center() (float64, float64) {
	return e.X + e.Size/2, e.Y + e.Size/2
}

// Draw renders the enemy.
func (e *Enemy) Draw(ctx DrawContext) {
	ctx.Canvas.FillRect(e.X, e.Y, e.Size, e.Size, e.Color)
}
