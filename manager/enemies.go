package manager

import (
	"github.com/milk9111/skystrike/component"
	"github.com/milk9111/skystrike/obj"
)

type EnemyManager struct {
	*Roster[*obj.Enemy]
}

func NewEnemyManager(scene component.Scene) *EnemyManager {
	return &EnemyManager{Roster: NewRoster[*obj.Enemy](scene)}
}

// GenerateFire rolls every live enemy's fire policy and returns the shots.
func (m *EnemyManager) GenerateFire() []*obj.Projectile {
	var out []*obj.Projectile
	m.Each(func(e *obj.Enemy) {
		if p := e.Fire(); p != nil {
			out = append(out, p)
		}
	})
	return out
}

// Breached destroys enemies that crossed line and returns them.
func (m *EnemyManager) Breached(line float64) []*obj.Enemy {
	var out []*obj.Enemy
	for _, e := range m.items {
		if e.Breached(line) {
			e.Destroy()
			out = append(out, e)
		}
	}
	return out
}

// Boss returns the first live boss, or nil.
func (m *EnemyManager) Boss() *obj.Enemy {
	for _, e := range m.items {
		if e.IsBoss() && !e.IsDestroyed() {
			return e
		}
	}
	return nil
}
