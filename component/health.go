package component

// Health is the destructible part of an actor.
type Health struct {
	Max       int
	Current   int
	Destroyed bool
	// Shielded actors ignore damage but can still be destroyed explicitly.
	Shielded bool
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max int) Health {
	if max <= 0 {
		max = 1
	}
	return Health{Max: max, Current: max}
}

// IsDestroyed reports whether the actor reached its terminal state.
func (h *Health) IsDestroyed() bool {
	return h == nil || h.Destroyed
}

// TakeDamage subtracts amount from Current. It is a no-op on a destroyed or
// shielded actor. Returns true if damage was applied.
func (h *Health) TakeDamage(amount int) bool {
	if h == nil || h.Destroyed || h.Shielded || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current <= 0 {
		h.Destroyed = true
	}
	return true
}

// Destroy forces the destroyed state regardless of remaining health.
func (h *Health) Destroy() {
	if h != nil {
		h.Destroyed = true
	}
}

// Repair restores health up to Max.
func (h *Health) Repair(amount int) {
	if h == nil || h.Destroyed || amount <= 0 {
		return
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// CurrentHP returns the current health value.
func (h *Health) CurrentHP() int {
	if h == nil {
		return 0
	}
	return h.Current
}

// MaxHP returns the maximum health value.
func (h *Health) MaxHP() int {
	if h == nil {
		return 0
	}
	return h.Max
}
