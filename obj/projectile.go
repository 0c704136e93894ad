package obj

import (
	"log"

	"github.com/milk9111/skystrike/common"
	"github.com/milk9111/skystrike/component"
	"github.com/milk9111/skystrike/prefabs"
)

// Projectile is a single-hit shot fired by either side.
type Projectile struct {
	component.Actor

	Side   component.Side
	Damage int
	VX, VY float64
	// LifeFrames destroys the projectile after that many updates; zero means unlimited.
	LifeFrames int

	age     int
	split   *prefabs.SplitSpec
	armed   bool
	fuse    int
	spawned []*Projectile
	factory *Factory
}

func (p *Projectile) UpdatePosition() {
	if p.IsDestroyed() {
		return
	}
	p.MoveBy(p.VX, p.VY)
}

func (p *Projectile) UpdateActor() {
	if p.IsDestroyed() {
		return
	}
	p.UpdatePosition()

	p.age++
	if p.LifeFrames > 0 && p.age >= p.LifeFrames {
		p.Destroy()
		return
	}

	if p.split == nil {
		return
	}
	if !p.armed && p.X < p.split.TriggerX {
		p.armed = true
		p.fuse = p.split.FuseFrames
	}
	if p.armed {
		p.fuse--
		if p.fuse <= 0 {
			p.explode()
		}
	}
}

// TakeDamage destroys the projectile regardless of amount.
func (p *Projectile) TakeDamage(amount int) bool {
	if p.IsDestroyed() {
		return false
	}
	p.Destroy()
	return true
}

// Armed reports whether the split fuse is burning.
func (p *Projectile) Armed() bool { return p.armed }

// TakeSpawned returns fragments created since the last call.
func (p *Projectile) TakeSpawned() []*Projectile {
	out := p.spawned
	p.spawned = nil
	return out
}

func (p *Projectile) explode() {
	s := p.split
	p.Destroy()
	if p.factory == nil || s.Fragment == "" {
		return
	}
	rng := p.factory.Rand
	for i := 0; i < s.Count; i++ {
		frag, err := p.factory.NewProjectile(s.Fragment, p.Side, p.X, p.Y)
		if err != nil {
			log.Printf("obj: projectile %s split: %v", p.ID(), err)
			return
		}
		frag.VX = common.Between(rng, s.VX.Min, s.VX.Max)
		frag.VY = common.Between(rng, s.VY.Min, s.VY.Max)
		p.spawned = append(p.spawned, frag)
	}
}
