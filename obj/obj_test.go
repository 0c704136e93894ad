package obj

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/skystrike/common"
	"github.com/milk9111/skystrike/prefabs"
)

type fixedRand struct{ v float64 }

func (r fixedRand) Float64() float64 { return r.v }
func (r fixedRand) Intn(int) int { return 0 }
func (r fixedRand) Shuffle(int, func(i, j int)) {}

func newTestFactory(t *testing.T, rng common.Rand) *Factory {
	t.Helper()
	cat, err := prefabs.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	return NewFactory(cat, rng, common.Arena(), nil)
}

func TestUserFire(t *testing.T) {
	f := newTestFactory(t, fixedRand{v: 0.5})
	u := f.NewUser()

	if got := len(u.Fire()); got != 1 {
		t.Fatalf("plain fire = %d projectiles, want 1", got)
	}

	u.AddCharges(1)
	shots := u.Fire()
	if len(shots) != 5 {
		t.Fatalf("spread fire = %d projectiles, want 5", len(shots))
	}
	if u.Charges() != 0 {
		t.Fatalf("charges = %d, want 0", u.Charges())
	}
	seen := map[float64]bool{}
	for _, p := range shots {
		if p.VX <= 0 {
			t.Fatalf("user shot vx = %v", p.VX)
		}
		seen[p.Y] = true
	}
	if len(seen) != 5 {
		t.Fatalf("spread rows = %d, want 5", len(seen))
	}

	if got := len(u.Fire()); got != 1 {
		t.Fatalf("fire after spread = %d, want 1", got)
	}
}

func TestUserMovement(t *testing.T) {
	tests := []struct {
		name   string
		move   func(u *User)
		startY float64
		wantDY float64
	}{
		{"down", (*User).MoveDown, 300, 8},
		{"up", (*User).MoveUp, 300, -8},
		{"up at top edge", (*User).MoveUp, 0, 0},
		{"stopped", func(u *User) { u.MoveDown(); u.StopVertical() }, 300, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFactory(t, fixedRand{})
			u := f.NewUser()
			u.SetPosition(u.X, tt.startY)
			tt.move(u)
			u.UpdateActor()
			if got := u.Y - tt.startY; got != tt.wantDY {
				t.Fatalf("dy = %v, want %v", got, tt.wantDY)
			}
		})
	}
}

func TestBossShield(t *testing.T) {
	f := newTestFactory(t, fixedRand{v: 0})
	boss, err := f.NewEnemy("boss", 0, 0)
	if err != nil {
		t.Fatalf("NewEnemy: %v", err)
	}
	hp := boss.CurrentHP()
	if !boss.HasShield() {
		t.Fatalf("boss prefab has no shield")
	}
	fighter, err := f.NewEnemy("fighter", 0, 0)
	if err != nil {
		t.Fatalf("NewEnemy: %v", err)
	}
	if fighter.HasShield() {
		t.Fatalf("fighter reports a shield")
	}

	boss.UpdateActor()
	if !boss.Shielded {
		t.Fatalf("shield did not activate")
	}
	if boss.TakeDamage(1) {
		t.Fatalf("shielded boss took damage")
	}
	if boss.CurrentHP() != hp {
		t.Fatalf("hp = %d, want %d", boss.CurrentHP(), hp)
	}

	for i := 0; i < 250; i++ {
		boss.UpdateActor()
	}
	if boss.Shielded {
		t.Fatalf("shield still up after max frames")
	}
	if !boss.TakeDamage(1) || boss.CurrentHP() != hp-1 {
		t.Fatalf("unshielded boss hp = %d, want %d", boss.CurrentHP(), hp-1)
	}
}

func TestBossHitboxAndClamp(t *testing.T) {
	f := newTestFactory(t, fixedRand{v: 0.99})
	boss, err := f.NewEnemy("boss", 0, 0)
	if err != nil {
		t.Fatalf("NewEnemy: %v", err)
	}
	hit := boss.HitBounds()
	full := boss.Bounds()
	if hit.Width != full.Width-160 || hit.Height != full.Height-160 {
		t.Fatalf("hitbox = %+v, bounds = %+v", hit, full)
	}

	boss.SetPosition(5000, -300)
	boss.UpdateActor()
	arena := common.Arena()
	b := boss.Bounds()
	if b.X < 0 || b.Y < 0 || b.Right() > arena.Right() || b.Bottom() > arena.Bottom() {
		t.Fatalf("boss left the arena: %+v", b)
	}
}

func TestEnemyFire(t *testing.T) {
	tests := []struct {
		name  string
		roll  float64
		fires bool
	}{
		{"below rate", 0.001, true},
		{"above rate", 0.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFactory(t, fixedRand{v: tt.roll})
			e, err := f.NewEnemy("fighter", 1300, 200)
			if err != nil {
				t.Fatalf("NewEnemy: %v", err)
			}
			p := e.Fire()
			if (p != nil) != tt.fires {
				t.Fatalf("fired = %v, want %v", p != nil, tt.fires)
			}
			if p != nil && (p.X != 1200 || p.Y != 250 || p.VX >= 0) {
				t.Fatalf("projectile at (%v, %v) vx %v", p.X, p.Y, p.VX)
			}
		})
	}
}

func TestBossWebSplits(t *testing.T) {
	f := newTestFactory(t, fixedRand{v: 0.5})
	web, err := f.NewProjectile("boss_web", 0, 950, 300)
	if err != nil {
		t.Fatalf("NewProjectile: %v", err)
	}

	for i := 0; i < 19; i++ {
		web.UpdateActor()
	}
	if web.IsDestroyed() || !web.Armed() {
		t.Fatalf("web destroyed = %v armed = %v before the fuse ran out", web.IsDestroyed(), web.Armed())
	}
	web.UpdateActor()
	if !web.IsDestroyed() {
		t.Fatalf("web did not explode after fuse")
	}

	frags := web.TakeSpawned()
	if len(frags) != 3 {
		t.Fatalf("fragments = %d, want 3", len(frags))
	}
	if len(web.TakeSpawned()) != 0 {
		t.Fatalf("fragments returned twice")
	}
	for _, fr := range frags {
		if fr.VX < -23 || fr.VX >= -3 || fr.VY < -10 || fr.VY >= 15 {
			t.Fatalf("fragment velocity (%v, %v)", fr.VX, fr.VY)
		}
	}

	fr := frags[0]
	for i := 0; i < 39; i++ {
		fr.UpdateActor()
	}
	if fr.IsDestroyed() {
		t.Fatalf("fragment expired early")
	}
	fr.UpdateActor()
	if !fr.IsDestroyed() {
		t.Fatalf("fragment outlived its lifetime")
	}
}

func TestProjectileSingleHit(t *testing.T) {
	f := newTestFactory(t, fixedRand{})
	p, err := f.NewProjectile("user_shot", 0, 0, 0)
	if err != nil {
		t.Fatalf("NewProjectile: %v", err)
	}
	if !p.TakeDamage(1) {
		t.Fatalf("first hit not applied")
	}
	if p.TakeDamage(1) {
		t.Fatalf("second hit applied")
	}
	x := p.X
	p.UpdateActor()
	if p.X != x {
		t.Fatalf("destroyed projectile moved")
	}
}

func TestScriptPattern(t *testing.T) {
	f := newTestFactory(t, fixedRand{v: 0.99})
	e, err := f.NewEnemy("weaver", 1000, 300)
	if err != nil {
		t.Fatalf("NewEnemy: %v", err)
	}
	e.UpdateActor()
	if e.X != 995 {
		t.Fatalf("x = %v, want 995", e.X)
	}
	if dy := e.Y - 300; dy != 4 && dy != -4 {
		t.Fatalf("dy = %v, want ±4", dy)
	}
}

func TestScriptPatternErrorDisables(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "scripts"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	src := []byte("move := func(ctx) { return [ctx.vx] }\n")
	if err := os.WriteFile(filepath.Join(dir, "scripts", "broken.tengo"), src, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	prev := prefabs.Dir
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = prev })

	f := newTestFactory(t, fixedRand{v: 0.99})
	compiled, err := f.compileScript("broken.tengo")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	sp := newScriptPattern(prefabs.PatternSpec{Script: "broken.tengo", Velocity: prefabs.PointSpec{X: -5}}, compiled.Clone(), f.Arena)

	e, err := f.NewEnemy("fighter", 1000, 300)
	if err != nil {
		t.Fatalf("NewEnemy: %v", err)
	}
	e.pattern = sp
	e.UpdateActor()
	if !sp.Disabled() {
		t.Fatalf("script not disabled")
	}
	if e.X != 1000 || e.Y != 300 {
		t.Fatalf("enemy moved to (%v, %v)", e.X, e.Y)
	}
}

func TestPowerUpCollect(t *testing.T) {
	tests := []struct {
		name   string
		prefab string
		check  func(u *User) bool
	}{
		{"spreadshot", "spreadshot", func(u *User) bool { return u.Charges() == 1 }},
		{"repair", "repair", func(u *User) bool { return u.CurrentHP() == u.MaxHP()-1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFactory(t, fixedRand{})
			u := f.NewUser()
			u.TakeDamage(2)
			p, err := f.NewPowerUp(tt.prefab, 100, 0)
			if err != nil {
				t.Fatalf("NewPowerUp: %v", err)
			}
			if !p.Collect(u) {
				t.Fatalf("collect failed")
			}
			if p.Collect(u) {
				t.Fatalf("collected twice")
			}
			if !p.IsDestroyed() {
				t.Fatalf("power-up not destroyed")
			}
			if !tt.check(u) {
				t.Fatalf("effect not applied once: charges=%d hp=%d", u.Charges(), u.CurrentHP())
			}
		})
	}
}

func TestPowerUpFalls(t *testing.T) {
	f := newTestFactory(t, fixedRand{})
	p, err := f.NewPowerUp("spreadshot", 100, 640)
	if err != nil {
		t.Fatalf("NewPowerUp: %v", err)
	}
	p.UpdateActor()
	if p.Y != 643 || p.IsDestroyed() {
		t.Fatalf("y = %v destroyed = %v", p.Y, p.IsDestroyed())
	}
	for i := 0; i < 3; i++ {
		p.UpdateActor()
	}
	if !p.IsDestroyed() {
		t.Fatalf("power-up survived past the floor at y=%v", p.Y)
	}
}
