package manager

import (
	"github.com/milk9111/skystrike/common"
	"github.com/milk9111/skystrike/component"
	"github.com/milk9111/skystrike/obj"
)

// ProjectileManager keeps user and enemy shots apart so collision passes
// never test a side against itself.
type ProjectileManager struct {
	user  *Roster[*obj.Projectile]
	enemy *Roster[*obj.Projectile]
}

func NewProjectileManager(scene component.Scene) *ProjectileManager {
	return &ProjectileManager{
		user:  NewRoster[*obj.Projectile](scene),
		enemy: NewRoster[*obj.Projectile](scene),
	}
}

func (m *ProjectileManager) User() *Roster[*obj.Projectile] { return m.user }
func (m *ProjectileManager) Enemy() *Roster[*obj.Projectile] { return m.enemy }

func (m *ProjectileManager) AddUser(ps ...*obj.Projectile) { m.user.Add(ps...) }
func (m *ProjectileManager) AddEnemy(ps ...*obj.Projectile) { m.enemy.Add(ps...) }

// Add routes each projectile by the side that fired it.
func (m *ProjectileManager) Add(ps ...*obj.Projectile) {
	for _, p := range ps {
		if p == nil {
			continue
		}
		if p.Side == component.SideUser {
			m.user.Add(p)
		} else {
			m.enemy.Add(p)
		}
	}
}

// UpdateAll advances both rosters and adopts fragments from split shots.
func (m *ProjectileManager) UpdateAll() {
	m.user.UpdateAll()
	m.enemy.UpdateAll()

	var spawned []*obj.Projectile
	for _, r := range []*Roster[*obj.Projectile]{m.user, m.enemy} {
		for _, p := range r.Items() {
			spawned = append(spawned, p.TakeSpawned()...)
		}
	}
	m.Add(spawned...)
}

// Cull destroys projectiles that no longer overlap arena.
func (m *ProjectileManager) Cull(arena common.Rect) int {
	n := 0
	cull := func(p *obj.Projectile) {
		if !p.Bounds().Intersects(arena) {
			p.Destroy()
			n++
		}
	}
	m.user.Each(cull)
	m.enemy.Each(cull)
	return n
}

func (m *ProjectileManager) RemoveDestroyed() int {
	return m.user.RemoveDestroyed() + m.enemy.RemoveDestroyed()
}

func (m *ProjectileManager) Clear() {
	m.user.Clear()
	m.enemy.Clear()
}

func (m *ProjectileManager) Count() int {
	return m.user.Count() + m.enemy.Count()
}

// Items returns user shots followed by enemy shots.
func (m *ProjectileManager) Items() []*obj.Projectile {
	out := make([]*obj.Projectile, 0, m.Count())
	out = append(out, m.user.Items()...)
	return append(out, m.enemy.Items()...)
}
