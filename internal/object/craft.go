package object

import (
	"github.com/tomz197/cyberjet/internal/draw"
	"github.com/tomz197/cyberjet/internal/loop/config"
	"github.com/tomz197/cyberjet/internal/physics"
)

// Steering holds the directional keys held during a tick.
type Steering struct {
	Up, Down, Left, Right bool
}

// Craft is the player-controlled jet.
type Craft struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64 // Units per tick on each axis
	Color         draw.Color
}

// NewCraft creates the jet at its start position for the given viewport.
func NewCraft(screen Screen) *Craft {
	c := &Craft{
		X:      config.CraftStartX,
		Y:      float64(screen.Height)/2 + config.CraftStartY,
		Width:  config.CraftWidth,
		Height: config.CraftHeight,
		Speed:  config.CraftSpeed,
		Color:  draw.ColorMagenta,
	}
	c.Clamp(screen)
	return c
}

// Move applies held directions, each axis independently, then clamps the
// craft inside the viewport.
func (c *Craft) Move(s Steering, screen Screen) {
	if s.Up {
		c.Y -= c.Speed
	}
	if s.Down {
		c.Y += c.Speed
	}
	if s.Left {
		c.X -= c.Speed
	}
	if s.Right {
		c.X += c.Speed
	}
	c.Clamp(screen)
}

// Clamp keeps the craft within [0, W-w] x [0, H-h].
func (c *Craft) Clamp(screen Screen) {
	c.X = physics.Clamp(c.X, 0, float64(screen.Width)-c.Width)
	c.Y = physics.Clamp(c.Y, 0, float64(screen.Height)-c.Height)
}

// Muzzle returns where a new projectile's top-left corner is placed.
func (c *Craft) Muzzle() (float64, float64) {
	return c.X + c.Width, c.Y + c.Height/2 - config.ProjectileHeight/2
}

// Bounds returns the craft's bounding box.
func (c *Craft) Bounds() physics.Rect {
	return physics.Rect{X: c.X, Y: c.Y, W: c.Width, H: c.Height}
}

// Draw renders the craft as a triangle spanning its bounding box, apex on the left edge.
func (c *Craft) Draw(ctx DrawContext) {
	points := ctx.Canvas.BorrowPoints(3)
	points[0] = draw.Point{X: c.X, Y: c.Y + c.Height/2}
	points[1] = draw.Point{X: c.X + c.Width, Y: c.Y}
	points[2] = draw.Point{X: c.X + c.Width, Y: c.Y + c.Height}
	ctx.Canvas.DrawPolygon(points, true, c.Color)
}
