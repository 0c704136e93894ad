package manager

import "github.com/milk9111/skystrike/component"

// Roster is an ordered collection of actors. Insertion order is update and
// draw order. The roster owns its actors and keeps the scene in sync.
type Roster[T component.Destructible] struct {
	items []T
	scene component.Scene
}

func NewRoster[T component.Destructible](scene component.Scene) *Roster[T] {
	if scene == nil {
		scene = component.NopScene{}
	}
	return &Roster[T]{scene: scene}
}

func (r *Roster[T]) Add(items ...T) {
	for _, it := range items {
		r.items = append(r.items, it)
		r.scene.Attach(it)
	}
}

// UpdateAll advances every live actor once.
func (r *Roster[T]) UpdateAll() {
	for _, it := range r.items {
		if it.IsDestroyed() {
			continue
		}
		it.UpdateActor()
	}
}

// RemoveDestroyed drops destroyed actors, preserving the order of the
// survivors, and returns how many were removed.
func (r *Roster[T]) RemoveDestroyed() int {
	writeIdx := 0
	for _, it := range r.items {
		if it.IsDestroyed() {
			r.scene.Detach(it)
			continue
		}
		r.items[writeIdx] = it
		writeIdx++
	}
	removed := len(r.items) - writeIdx
	var zero T
	for i := writeIdx; i < len(r.items); i++ {
		r.items[i] = zero
	}
	r.items = r.items[:writeIdx]
	return removed
}

func (r *Roster[T]) Clear() {
	for _, it := range r.items {
		r.scene.Detach(it)
	}
	r.items = nil
}

func (r *Roster[T]) Count() int {
	if r == nil {
		return 0
	}
	return len(r.items)
}

// Items exposes the backing slice. Callers must not retain it across frames.
func (r *Roster[T]) Items() []T {
	if r == nil {
		return nil
	}
	return r.items
}

// Each calls fn for every live actor in order.
func (r *Roster[T]) Each(fn func(T)) {
	for _, it := range r.items {
		if !it.IsDestroyed() {
			fn(it)
		}
	}
}
