// Package arcade provides the small set of engine services the game loop
// consumes: axis-aligned bodies with gravity, world bounds, a fixed-size
// object pool, periodic timers and text labels. Units are world units
// (pixels of the logical world) and seconds; positive y points down.
package arcade

import "time"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// Box is an axis-aligned rectangle in world units.
type Box struct {
	X, Y, W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// Empty reports whether the box has no area.
func (b Box) Empty() bool { return b.W <= 0 || b.H <= 0 }

// Overlaps reports whether two boxes share interior area.
// Touching edges do not overlap, and empty boxes overlap nothing.
func (b Box) Overlaps(o Box) bool {
	if b.Empty() || o.Empty() {
		return false
	}
	return b.X < o.Right() && o.X < b.Right() && b.Y < o.Bottom() && o.Y < b.Bottom()
}

// Touches reports whether two boxes intersect, counting shared edges.
func (b Box) Touches(o Box) bool {
	return b.X <= o.Right() && o.X <= b.Right() && b.Y <= o.Bottom() && o.Y <= b.Bottom()
}

// Body is a sprite-sized physics body. Pos is the sprite's top-left
// corner; the hitbox is a sub-rectangle of the sprite.
type Body struct {
	Pos     Vec2
	Size    Vec2 // sprite size
	Vel     Vec2 // units per second
	Gravity Vec2 // units per second squared
	Enabled bool

	hitOffset Vec2
	hitSize   Vec2
}

// NewBody creates an enabled body whose hitbox covers the whole sprite.
func NewBody(x, y, w, h float64) Body {
	return Body{
		Pos:     Vec2{X: x, Y: y},
		Size:    Vec2{X: w, Y: h},
		Enabled: true,
		hitSize: Vec2{X: w, Y: h},
	}
}

// SetHitbox sets the collision rectangle relative to the sprite's top-left.
func (b *Body) SetHitbox(w, h, offsetX, offsetY float64) {
	b.hitSize = Vec2{X: w, Y: h}
	b.hitOffset = Vec2{X: offsetX, Y: offsetY}
}

// Bounds returns the sprite rectangle.
func (b Body) Bounds() Box {
	return Box{X: b.Pos.X, Y: b.Pos.Y, W: b.Size.X, H: b.Size.Y}
}

// Hitbox returns the collision rectangle in world coordinates.
func (b Body) Hitbox() Box {
	return Box{
		X: b.Pos.X + b.hitOffset.X,
		Y: b.Pos.Y + b.hitOffset.Y,
		W: b.hitSize.X,
		H: b.hitSize.Y,
	}
}

// Step integrates gravity into velocity, then velocity into position.
// Disabled bodies do not move.
func (b *Body) Step(dt time.Duration) {
	if !b.Enabled {
		return
	}
	sec := dt.Seconds()
	b.Vel.X += b.Gravity.X * sec
	b.Vel.Y += b.Gravity.Y * sec
	b.Pos.X += b.Vel.X * sec
	b.Pos.Y += b.Vel.Y * sec
}

// World is the fixed-size playable area.
type World struct {
	W, H float64
}

// Bounds returns the world rectangle anchored at the origin.
func (w World) Bounds() Box {
	return Box{W: w.W, H: w.H}
}

// InWorld reports whether any part of the box is inside the world,
// edges included.
func (w World) InWorld(b Box) bool {
	return w.Bounds().Touches(b)
}
