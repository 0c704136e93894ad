package component

import (
	"strconv"

	"github.com/milk9111/skystrike/common"
)

// ID identifies an actor within a session.
type ID uint64

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Valid reports whether the id was allocated.
func (id ID) Valid() bool {
	return id > 0
}

// IDSource hands out increasing actor ids.
type IDSource struct {
	next ID
}

// Next allocates a fresh id.
func (s *IDSource) Next() ID {
	s.next++
	return s.next
}

// Body is the positional part of an actor.
type Body struct {
	X, Y          float64
	Width, Height float64
	// HitInsetX/HitInsetY shrink the collision box inside the visual bounds.
	HitInsetX float64
	HitInsetY float64
}

// Bounds returns the visual bounds at the current position.
func (b *Body) Bounds() common.Rect {
	if b == nil {
		return common.Rect{}
	}
	return common.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// HitBounds returns the collision box, honoring the hitbox inset.
func (b *Body) HitBounds() common.Rect {
	r := b.Bounds()
	if b == nil || (b.HitInsetX == 0 && b.HitInsetY == 0) {
		return r
	}
	return r.Inset(b.HitInsetX, b.HitInsetY)
}

// MoveBy shifts the body. Non-finite deltas are rejected.
func (b *Body) MoveBy(dx, dy float64) bool {
	if b == nil || !common.Finite(dx, dy, b.X+dx, b.Y+dy) {
		return false
	}
	b.X += dx
	b.Y += dy
	return true
}

// SetPosition places the body. Non-finite coordinates are rejected.
func (b *Body) SetPosition(x, y float64) bool {
	if b == nil || !common.Finite(x, y) {
		return false
	}
	b.X = x
	b.Y = y
	return true
}

// Actor is the shared state of every destructible entity: identity, image,
// geometry and health. Concrete kinds embed it and add their own update rule.
type Actor struct {
	id    ID
	kind  string
	image string

	Body
	Health
}

// NewActor builds an actor at (x, y).
func NewActor(id ID, kind, image string, x, y, w, h float64, health int) Actor {
	a := Actor{
		id:     id,
		kind:   kind,
		image:  image,
		Health: NewHealth(health),
	}
	a.Width = w
	a.Height = h
	if !a.SetPosition(x, y) {
		a.X, a.Y = 0, 0
	}
	return a
}

// ID implements Node.
func (a *Actor) ID() ID { return a.id }

// Kind returns the prefab name the actor was built from.
func (a *Actor) Kind() string { return a.kind }

// Image implements Node.
func (a *Actor) Image() string { return a.image }

// Bounds implements Positioned.
func (a *Actor) Bounds() common.Rect { return a.Body.Bounds() }

// HitBounds implements Positioned.
func (a *Actor) HitBounds() common.Rect { return a.Body.HitBounds() }

// TakeDamage implements Damageable.
func (a *Actor) TakeDamage(amount int) bool { return a.Health.TakeDamage(amount) }

// Destroy implements Damageable.
func (a *Actor) Destroy() { a.Health.Destroy() }

// IsDestroyed implements Damageable.
func (a *Actor) IsDestroyed() bool { return a.Health.IsDestroyed() }
