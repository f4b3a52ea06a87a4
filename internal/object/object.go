// Package object defines the game entities and how each one advances a tick
// and draws itself.
package object

import (
	"github.com/tomz197/cyberjet/internal/draw"
	"github.com/tomz197/cyberjet/internal/physics"
)

// Screen represents the logical viewport dimensions.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen builds a Screen with its center precomputed.
func NewScreen(width, height int) Screen {
	return Screen{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas
}

// Rand is the randomness source used for spawning. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Spawner accepts particles created during a tick.
type Spawner interface {
	// SpawnParticle stores p. It returns false when the particle was refused
	// (capacity reached); the caller keeps ownership of p in that case.
	SpawnParticle(p *Particle) bool
}

// Object is a drawable game entity with a bounding box.
type Object interface {
	Bounds() physics.Rect
	Draw(ctx DrawContext)
}

var (
	_ Object = (*Craft)(nil)
	_ Object = (*Projectile)(nil)
	_ Object = (*Enemy)(nil)
	_ Object = (*Particle)(nil)
)
