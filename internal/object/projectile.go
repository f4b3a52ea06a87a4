package object

import (
	"github.com/tomz197/cyberjet/internal/draw"
	"github.com/tomz197/cyberjet/internal/loop/config"
	"github.com/tomz197/cyberjet/internal/physics"
)

// Projectile is a bullet fired by the craft. It only travels to the right.
type Projectile struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64 // Units per tick
	Color         draw.Color
}

// NewProjectile creates a projectile with its top-left corner at (x, y).
func NewProjectile(x, y float64) *Projectile {
	return &Projectile{
		X:      x,
		Y:      y,
		Width:  config.ProjectileWidth,
		Height: config.ProjectileHeight,
		Speed:  config.ProjectileSpeed,
		Color:  draw.ColorCyan,
	}
}

// Update advances the projectile one tick. It reports true once the
// projectile has left the viewport past the offscreen margin.
func (p *Projectile) Update(screen Screen) bool {
	p.X += p.Speed
	return p.X >= float64(screen.Width)+config.OffscreenMargin
}

// Bounds returns the projectile's bounding box.
func (p *Projectile) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Draw renders the projectile.
func (p *Projectile) Draw(ctx DrawContext) {
	ctx.Canvas.FillRect(p.X, p.Y, p.Width, p.Height, p.Color)
}
