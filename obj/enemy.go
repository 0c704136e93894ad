package obj

import (
	"log"

	"github.com/milk9111/skystrike/common"
	"github.com/milk9111/skystrike/component"
	"github.com/milk9111/skystrike/prefabs"
)

// Enemy is a hostile ship. The boss variant adds a shield and a narrower
// hitbox; both come from its prefab.
type Enemy struct {
	component.Actor

	pattern Pattern
	score   int
	boss    bool
	fire    prefabs.FireSpec
	// cooldown counts down frames until the next shot is allowed.
	cooldown int

	shield       *prefabs.ShieldSpec
	shieldFrames int

	clamp bool
	arena common.Rect
	frame int

	rng     common.Rand
	factory *Factory
}

func (e *Enemy) UpdatePosition() {
	if e.IsDestroyed() {
		return
	}
	if e.pattern != nil {
		dx, dy := e.pattern.Step(e)
		e.MoveBy(dx, dy)
	}
	if e.clamp {
		e.clampToArena()
	}
}

func (e *Enemy) UpdateActor() {
	if e.IsDestroyed() {
		return
	}
	e.frame++
	e.UpdatePosition()
	if e.cooldown > 0 {
		e.cooldown--
	}
	e.updateShield()
}

// Frame returns the number of updates applied so far.
func (e *Enemy) Frame() int { return e.frame }

func (e *Enemy) Score() int { return e.score }

func (e *Enemy) IsBoss() bool { return e.boss }

// HasShield reports whether the prefab defines a shield at all.
func (e *Enemy) HasShield() bool { return e.shield != nil }

// Fire rolls the fire policy and returns a projectile when it triggers.
func (e *Enemy) Fire() *Projectile {
	if e.IsDestroyed() || e.factory == nil || e.fire.Projectile == "" || e.cooldown > 0 {
		return nil
	}
	if !common.Chance(e.rng, e.fire.Rate) {
		return nil
	}
	e.cooldown = e.fire.CooldownFrames

	x := e.X + e.fire.Offset.X
	if e.fire.FixedX != nil {
		x = *e.fire.FixedX
	}
	p, err := e.factory.NewProjectile(e.fire.Projectile, component.SideEnemy, x, e.Y+e.fire.Offset.Y)
	if err != nil {
		log.Printf("obj: enemy %s fire: %v", e.ID(), err)
		return nil
	}
	return p
}

// Breached reports whether a live enemy has crossed the defence line.
func (e *Enemy) Breached(line float64) bool {
	return !e.IsDestroyed() && e.X < line
}

func (e *Enemy) updateShield() {
	if e.shield == nil {
		return
	}
	if e.Shielded {
		e.shieldFrames++
		if e.shieldFrames >= e.shield.MaxFrames {
			e.Shielded = false
			e.shieldFrames = 0
		}
		return
	}
	if common.Chance(e.rng, e.shield.Probability) {
		e.Shielded = true
		e.shieldFrames = 0
	}
}

func (e *Enemy) clampToArena() {
	x := common.Clamp(e.X, e.arena.X, e.arena.Right()-e.Width)
	y := common.Clamp(e.Y, e.arena.Y, e.arena.Bottom()-e.Height)
	e.SetPosition(x, y)
}
