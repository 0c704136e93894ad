package common

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned box in screen space (y grows downward).
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// BB converts the rect to a chipmunk bounding box.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.Width, T: r.Y + r.Height}
}

// Intersects reports whether the two rects overlap. Touching edges count.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.BB().Intersects(other.BB())
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inset shrinks the rect by dx on the left and right and dy on the top and bottom.
// A rect inset past its own size collapses to a zero-size rect at its center.
func (r Rect) Inset(dx, dy float64) Rect {
	out := Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width - 2*dx, Height: r.Height - 2*dy}
	if out.Width < 0 {
		out.X = r.X + r.Width/2
		out.Width = 0
	}
	if out.Height < 0 {
		out.Y = r.Y + r.Height/2
		out.Height = 0
	}
	return out
}

// Center returns the midpoint of the rect.
func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }
