package manager

import (
	"github.com/milk9111/skystrike/common"
	"github.com/milk9111/skystrike/component"
	"github.com/milk9111/skystrike/event"
	"github.com/milk9111/skystrike/obj"
)

// Collider is anything that can take part in a collision pass.
type Collider interface {
	HitBounds() common.Rect
	IsDestroyed() bool
}

// Detect tests every pair from as and bs and calls apply for each
// overlapping pair. Pairs where either side is already destroyed are
// skipped, so an actor destroyed by an earlier apply is never hit again.
// It returns the number of apply calls.
func Detect[A, B Collider](as []A, bs []B, apply func(a A, b B)) int {
	n := 0
	for _, a := range as {
		if a.IsDestroyed() {
			continue
		}
		for _, b := range bs {
			if a.IsDestroyed() {
				break
			}
			if b.IsDestroyed() {
				continue
			}
			if !a.HitBounds().Intersects(b.HitBounds()) {
				continue
			}
			apply(a, b)
			n++
		}
	}
	return n
}

// CollisionStats counts what one Resolve pass did.
type CollisionStats struct {
	ShotHits  int
	Kills     int
	UserHits  int
	Rammed    int
	Collected int
}

// CollisionManager runs the four collision policies in a fixed order.
type CollisionManager struct {
	Events *event.Queue
	Sound  component.Sound
}

func NewCollisionManager(events *event.Queue, sound component.Sound) *CollisionManager {
	if sound == nil {
		sound = &component.SilentSound{}
	}
	return &CollisionManager{Events: events, Sound: sound}
}

func (c *CollisionManager) Resolve(user *obj.User, enemies *EnemyManager, projectiles *ProjectileManager, powerups *PowerUpManager) CollisionStats {
	var stats CollisionStats
	users := []*obj.User{user}

	// User shots against enemies. A shot is spent on contact, so a
	// shielded boss absorbs it.
	stats.ShotHits = Detect(projectiles.User().Items(), enemies.Items(), func(p *obj.Projectile, e *obj.Enemy) {
		if !component.CanHit(p.Side, component.SideEnemy) {
			return
		}
		p.TakeDamage(p.Damage)
		if !e.TakeDamage(p.Damage) {
			return
		}
		c.Events.Push(event.Event{Kind: event.KindEnemyHit, Actor: e.ID(), Other: p.ID(), Amount: p.Damage})
		if e.IsDestroyed() {
			c.credit(user, e)
			stats.Kills++
		}
	})

	stats.UserHits = Detect(projectiles.Enemy().Items(), users, func(p *obj.Projectile, u *obj.User) {
		if !component.CanHit(p.Side, component.SideUser) {
			return
		}
		p.TakeDamage(p.Damage)
		if u.TakeDamage(p.Damage) {
			c.Events.Push(event.Event{Kind: event.KindUserHit, Actor: u.ID(), Other: p.ID(), Amount: p.Damage})
		}
	})

	stats.Rammed = Detect(enemies.Items(), users, func(e *obj.Enemy, u *obj.User) {
		if u.TakeDamage(1) {
			c.Events.Push(event.Event{Kind: event.KindUserHit, Actor: u.ID(), Other: e.ID(), Amount: 1})
		}
		if e.TakeDamage(1) && e.IsDestroyed() {
			c.credit(user, e)
			stats.Kills++
		}
	})

	stats.Collected = Detect(users, powerups.Items(), func(u *obj.User, p *obj.PowerUp) {
		if !p.Collect(u) {
			return
		}
		c.Events.Push(event.Event{Kind: event.KindPowerUpConsumed, Actor: p.ID(), Other: u.ID(), Detail: string(p.Effect())})
		if s := p.Sound(); s != "" {
			c.Sound.Play(s)
		}
	})

	return stats
}

func (c *CollisionManager) credit(user *obj.User, e *obj.Enemy) {
	user.IncrementKills()
	user.AddScore(e.Score())
	c.Events.Push(event.Event{Kind: event.KindEnemyKilled, Actor: e.ID(), Amount: e.Score(), Detail: e.Kind()})
}
