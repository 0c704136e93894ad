package manager

import (
	"testing"

	"github.com/milk9111/skystrike/common"
	"github.com/milk9111/skystrike/component"
	"github.com/milk9111/skystrike/event"
	"github.com/milk9111/skystrike/obj"
	"github.com/milk9111/skystrike/prefabs"
)

type fixedRand struct{ v float64 }

func (r fixedRand) Float64() float64 { return r.v }
func (r fixedRand) Intn(int) int { return 0 }
func (r fixedRand) Shuffle(int, func(i, j int)) {}

type countingScene struct {
	attached map[component.ID]bool
	detached int
}

func newCountingScene() *countingScene {
	return &countingScene{attached: map[component.ID]bool{}}
}

func (s *countingScene) Attach(n component.Node) { s.attached[n.ID()] = true }

func (s *countingScene) Detach(n component.Node) {
	delete(s.attached, n.ID())
	s.detached++
}

type recordingSound struct {
	component.SilentSound
	played []string
}

func (s *recordingSound) Play(name string) { s.played = append(s.played, name) }

func newFactory(t *testing.T) *obj.Factory {
	t.Helper()
	cat, err := prefabs.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	return obj.NewFactory(cat, fixedRand{v: 0.99}, common.Arena(), nil)
}

func mustEnemy(t *testing.T, f *obj.Factory, name string, x, y float64) *obj.Enemy {
	t.Helper()
	e, err := f.NewEnemy(name, x, y)
	if err != nil {
		t.Fatalf("NewEnemy(%s): %v", name, err)
	}
	return e
}

func mustShot(t *testing.T, f *obj.Factory, name string, side component.Side, x, y float64) *obj.Projectile {
	t.Helper()
	p, err := f.NewProjectile(name, side, x, y)
	if err != nil {
		t.Fatalf("NewProjectile(%s): %v", name, err)
	}
	return p
}

func TestRemoveDestroyedPreservesOrder(t *testing.T) {
	tests := []struct {
		name    string
		destroy []int
		want    []int
	}{
		{"none", nil, []int{0, 1, 2, 3, 4}},
		{"middle", []int{1, 3}, []int{0, 2, 4}},
		{"ends", []int{0, 4}, []int{1, 2, 3}},
		{"all", []int{0, 1, 2, 3, 4}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFactory(t)
			scene := newCountingScene()
			m := NewEnemyManager(scene)
			var all []*obj.Enemy
			for i := 0; i < 5; i++ {
				e := mustEnemy(t, f, "fighter", float64(200*i), 100)
				all = append(all, e)
				m.Add(e)
			}
			for _, i := range tt.destroy {
				all[i].Destroy()
			}

			if got := m.RemoveDestroyed(); got != len(tt.destroy) {
				t.Fatalf("removed = %d, want %d", got, len(tt.destroy))
			}
			if scene.detached != len(tt.destroy) {
				t.Fatalf("detached = %d, want %d", scene.detached, len(tt.destroy))
			}
			items := m.Items()
			if len(items) != len(tt.want) {
				t.Fatalf("count = %d, want %d", len(items), len(tt.want))
			}
			for i, idx := range tt.want {
				if items[i] != all[idx] {
					t.Fatalf("items[%d] = %s, want %s", i, items[i].ID(), all[idx].ID())
				}
				if items[i].IsDestroyed() {
					t.Fatalf("destroyed enemy survived prune")
				}
			}
		})
	}
}

func TestDetect(t *testing.T) {
	f := newFactory(t)

	t.Run("one apply per overlapping pair", func(t *testing.T) {
		shot := mustShot(t, f, "user_shot", component.SideUser, 500, 300)
		e := mustEnemy(t, f, "fighter", 520, 290)
		calls := 0
		n := Detect([]*obj.Projectile{shot}, []*obj.Enemy{e}, func(*obj.Projectile, *obj.Enemy) { calls++ })
		if n != 1 || calls != 1 {
			t.Fatalf("n = %d calls = %d, want 1", n, calls)
		}
	})

	t.Run("spent shot hits once", func(t *testing.T) {
		shot := mustShot(t, f, "user_shot", component.SideUser, 500, 300)
		a := mustEnemy(t, f, "fighter", 520, 290)
		b := mustEnemy(t, f, "fighter", 525, 295)
		n := Detect([]*obj.Projectile{shot}, []*obj.Enemy{a, b}, func(p *obj.Projectile, e *obj.Enemy) {
			p.TakeDamage(1)
			e.TakeDamage(1)
		})
		if n != 1 {
			t.Fatalf("n = %d, want 1", n)
		}
		if !a.IsDestroyed() || b.IsDestroyed() {
			t.Fatalf("a destroyed = %v, b destroyed = %v", a.IsDestroyed(), b.IsDestroyed())
		}
	})

	t.Run("destroyed pairs skipped", func(t *testing.T) {
		shot := mustShot(t, f, "user_shot", component.SideUser, 500, 300)
		e := mustEnemy(t, f, "fighter", 520, 290)
		e.Destroy()
		n := Detect([]*obj.Projectile{shot}, []*obj.Enemy{e}, func(*obj.Projectile, *obj.Enemy) {})
		if n != 0 {
			t.Fatalf("n = %d, want 0", n)
		}
	})

	t.Run("disjoint", func(t *testing.T) {
		shot := mustShot(t, f, "user_shot", component.SideUser, 0, 0)
		e := mustEnemy(t, f, "fighter", 900, 600)
		if n := Detect([]*obj.Projectile{shot}, []*obj.Enemy{e}, func(*obj.Projectile, *obj.Enemy) {}); n != 0 {
			t.Fatalf("n = %d, want 0", n)
		}
	})
}

func TestShotKillsOneOfThree(t *testing.T) {
	f := newFactory(t)
	user := f.NewUser()
	enemies := NewEnemyManager(nil)
	projectiles := NewProjectileManager(nil)
	powerups := NewPowerUpManager(nil)

	weak := mustEnemy(t, f, "fighter", 600, 100)
	enemies.Add(
		mustEnemy(t, f, "weaver", 600, 400),
		weak,
		mustEnemy(t, f, "weaver", 1000, 600),
	)
	if weak.CurrentHP() != 1 {
		t.Fatalf("fighter hp = %d, want 1", weak.CurrentHP())
	}
	projectiles.Add(mustShot(t, f, "user_shot", component.SideUser, 610, 110))

	var q event.Queue
	c := NewCollisionManager(&q, nil)
	stats := c.Resolve(user, enemies, projectiles, powerups)
	if stats.Kills != 1 || user.Kills() != 1 {
		t.Fatalf("kills = %d/%d, want 1", stats.Kills, user.Kills())
	}
	enemies.RemoveDestroyed()
	projectiles.RemoveDestroyed()

	if enemies.Count() != 2 {
		t.Fatalf("enemies = %d, want 2", enemies.Count())
	}
	if projectiles.Count() != 0 {
		t.Fatalf("spent shot not pruned")
	}
	if user.Score() != weak.Score() {
		t.Fatalf("score = %d, want %d", user.Score(), weak.Score())
	}
	evts := q.Drain()
	if len(evts) != 2 || evts[0].Kind != event.KindEnemyHit || evts[1].Kind != event.KindEnemyKilled {
		t.Fatalf("events = %+v", evts)
	}
}

func TestEnemyShotAndRamHitUser(t *testing.T) {
	f := newFactory(t)
	user := f.NewUser()
	enemies := NewEnemyManager(nil)
	projectiles := NewProjectileManager(nil)

	projectiles.Add(mustShot(t, f, "enemy_shot", component.SideEnemy, user.X+10, user.Y+10))
	rammer := mustEnemy(t, f, "fighter", user.X+20, user.Y)
	enemies.Add(rammer)

	c := NewCollisionManager(&event.Queue{}, nil)
	stats := c.Resolve(user, enemies, projectiles, NewPowerUpManager(nil))
	if stats.UserHits != 1 || stats.Rammed != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	if user.CurrentHP() != user.MaxHP()-2 {
		t.Fatalf("user hp = %d, want %d", user.CurrentHP(), user.MaxHP()-2)
	}
	if !rammer.IsDestroyed() || user.Kills() != 1 {
		t.Fatalf("rammer destroyed = %v kills = %d", rammer.IsDestroyed(), user.Kills())
	}
}

func TestPowerUpCollectedOnce(t *testing.T) {
	f := newFactory(t)
	user := f.NewUser()
	powerups := NewPowerUpManager(nil)
	p, err := f.NewPowerUp("spreadshot", user.X+10, user.Y+10)
	if err != nil {
		t.Fatalf("NewPowerUp: %v", err)
	}
	powerups.Add(p)

	sound := &recordingSound{}
	c := NewCollisionManager(&event.Queue{}, sound)
	for i := 0; i < 2; i++ {
		c.Resolve(user, NewEnemyManager(nil), NewProjectileManager(nil), powerups)
	}

	if !p.IsDestroyed() {
		t.Fatalf("power-up not destroyed")
	}
	if user.Charges() != 1 {
		t.Fatalf("charges = %d, want 1", user.Charges())
	}
	if len(sound.played) != 1 || sound.played[0] != "powerup" {
		t.Fatalf("sounds = %v", sound.played)
	}
	if n := powerups.RemoveDestroyed(); n != 1 || powerups.Count() != 0 {
		t.Fatalf("prune removed %d, left %d", n, powerups.Count())
	}
}

func TestProjectileManager(t *testing.T) {
	f := newFactory(t)
	m := NewProjectileManager(nil)
	m.Add(
		mustShot(t, f, "user_shot", component.SideUser, 100, 100),
		mustShot(t, f, "enemy_shot", component.SideEnemy, 600, 100),
		mustShot(t, f, "boss_web", component.SideEnemy, 950, 300),
	)
	if m.User().Count() != 1 || m.Enemy().Count() != 2 {
		t.Fatalf("user = %d enemy = %d", m.User().Count(), m.Enemy().Count())
	}
	items := m.Items()
	if len(items) != 3 || items[0].Side != component.SideUser || items[1].Kind() != "enemy_shot" || items[2].Kind() != "boss_web" {
		t.Fatalf("items out of order: %d entries", len(items))
	}

	for i := 0; i < 20; i++ {
		m.UpdateAll()
	}
	m.RemoveDestroyed()
	// enemy_shot, plus three fragments replacing the web
	if got := m.Enemy().Count(); got != 4 {
		t.Fatalf("enemy projectiles = %d, want 4", got)
	}

	offscreen := mustShot(t, f, "user_shot", component.SideUser, common.BaseWidth+50, 100)
	m.Add(offscreen)
	if n := m.Cull(common.Arena()); n != 1 {
		t.Fatalf("culled = %d, want 1", n)
	}
	if !offscreen.IsDestroyed() {
		t.Fatalf("offscreen shot kept")
	}
}

func TestEnemyManagerBreachAndBoss(t *testing.T) {
	f := newFactory(t)
	m := NewEnemyManager(nil)
	leaker := mustEnemy(t, f, "fighter", -5, 100)
	m.Add(leaker, mustEnemy(t, f, "fighter", 400, 100))
	if m.Boss() != nil {
		t.Fatalf("unexpected boss")
	}
	boss := mustEnemy(t, f, "boss", 0, 0)
	m.Add(boss)

	got := m.Breached(0)
	if len(got) != 1 || got[0] != leaker || !leaker.IsDestroyed() {
		t.Fatalf("breached = %v", got)
	}
	if m.Boss() != boss {
		t.Fatalf("boss lookup failed")
	}
	boss.Destroy()
	if m.Boss() != nil {
		t.Fatalf("destroyed boss returned")
	}
}

func TestGameState(t *testing.T) {
	tests := []struct {
		state      State
		notPlaying bool
		terminal   bool
	}{
		{StateInitializing, true, false},
		{StateLoading, true, false},
		{StatePlaying, false, false},
		{StatePaused, true, false},
		{StateWin, true, true},
		{StateGameOver, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			g := NewGameState()
			prev := g.SetCurrentState(tt.state)
			if prev != StateInitializing {
				t.Fatalf("prev = %s, want INITIALIZING", prev)
			}
			if g.CurrentState() != tt.state {
				t.Fatalf("state = %s", g.CurrentState())
			}
			if g.IsNotPlaying() != tt.notPlaying {
				t.Fatalf("IsNotPlaying = %v, want %v", g.IsNotPlaying(), tt.notPlaying)
			}
			if g.IsTerminal() != tt.terminal {
				t.Fatalf("IsTerminal = %v, want %v", g.IsTerminal(), tt.terminal)
			}
		})
	}
}
