package obj

import "github.com/milk9111/skystrike/component"

type Effect string

const (
	EffectSpreadshot Effect = "spreadshot"
	EffectRepair     Effect = "repair"
)

// PowerUp falls through the arena until the user collects it or it drops
// past the floor line.
type PowerUp struct {
	component.Actor

	effect    Effect
	amount    int
	fall      float64
	floor     float64
	sound     string
	collected bool
}

func (p *PowerUp) UpdatePosition() {
	if p.IsDestroyed() {
		return
	}
	p.MoveBy(0, p.fall)
}

func (p *PowerUp) UpdateActor() {
	if p.IsDestroyed() {
		return
	}
	p.UpdatePosition()
	if p.floor > 0 && p.Y > p.floor {
		p.Destroy()
	}
}

func (p *PowerUp) TakeDamage(int) bool {
	if p.IsDestroyed() {
		return false
	}
	p.Destroy()
	return true
}

func (p *PowerUp) Effect() Effect { return p.effect }
func (p *PowerUp) Sound() string { return p.sound }

// Collect applies the effect to u and consumes the power-up. It reports
// false if the power-up was already used or destroyed.
func (p *PowerUp) Collect(u *User) bool {
	if p.IsDestroyed() || p.collected || u == nil || u.IsDestroyed() {
		return false
	}
	p.collected = true
	amount := p.amount
	if amount <= 0 {
		amount = 1
	}
	switch p.effect {
	case EffectSpreadshot:
		u.AddCharges(amount)
	case EffectRepair:
		u.Repair(amount)
	}
	p.Destroy()
	return true
}
