package object

import (
	"sync"

	"github.com/tomz197/cyberjet/internal/draw"
	"github.com/tomz197/cyberjet/internal/loop/config"
	"github.com/tomz197/cyberjet/internal/physics"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived fragment of an explosion.
type Particle struct {
	X, Y   float64 // Position
	DX, DY float64 // Velocity in units per tick
	Life   int     // Ticks remaining
	Color  draw.Color
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, dx, dy float64, life int) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.DX = dx
	p.DY = dy
	p.Life = life
	p.Color = draw.ColorYellow
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	*p = Particle{}
	particlePool.Put(p)
}

// BurstSize returns how many particles an explosion spawns at the given level.
func BurstSize(level int) int {
	return physics.ClampInt(config.BurstMaxParticles-level/2, config.BurstMinParticles, config.BurstMaxParticles)
}

// SpawnExplosion creates a burst of count particles centered on (x, y).
// It stops early once the spawner refuses a particle and returns how many
// particles were accepted.
func SpawnExplosion(x, y float64, count int, rng Rand, spawner Spawner) int {
	if spawner == nil {
		return 0
	}

	spawned := 0
	for range count {
		dx := (rng.Float64()*2 - 1) * config.ParticleMaxVelocity
		dy := (rng.Float64()*2 - 1) * config.ParticleMaxVelocity
		life := config.ParticleMinLife + int(rng.Float64()*config.ParticleLifeRange)

		p := NewParticle(x, y, dx, dy, life)
		if !spawner.SpawnParticle(p) {
			p.Release()
			break
		}
		spawned++
	}
	return spawned
}

// Update moves the particle and burns one tick of life. It reports true
// once the particle has expired.
func (p *Particle) Update() bool {
	p.X += p.DX
	p.Y += p.DY
	p.Life--
	return p.Life <= 0
}

// Bounds returns the particle's drawn square.
func (p *Particle) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: config.ParticleSize, H: config.ParticleSize}
}

// Draw renders the particle as a small square.
func (p *Particle) Draw(ctx DrawContext) {
	ctx.Canvas.FillRect(p.X, p.Y, config.ParticleSize, config.ParticleSize, p.Color)
}
