package obj

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/skystrike/common"
	"github.com/milk9111/skystrike/component"
	"github.com/milk9111/skystrike/prefabs"
)

// Factory builds actors from prefab specs. One factory belongs to one
// session. Factories that share an IDSource never hand out the same id.
type Factory struct {
	Catalog *prefabs.Catalog
	Rand    common.Rand
	Arena   common.Rect

	ids     *component.IDSource
	scripts map[string]*tengo.Compiled
}

// NewFactory builds a factory. A nil ids gives the factory its own source.
func NewFactory(cat *prefabs.Catalog, rng common.Rand, arena common.Rect, ids *component.IDSource) *Factory {
	if ids == nil {
		ids = &component.IDSource{}
	}
	return &Factory{
		Catalog: cat,
		Rand:    rng,
		Arena:   arena,
		ids:     ids,
		scripts: map[string]*tengo.Compiled{},
	}
}

// NextID allocates an actor id unique across every factory sharing the source.
func (f *Factory) NextID() component.ID {
	return f.ids.Next()
}

func (f *Factory) NewUser() *User {
	spec := f.Catalog.User
	u := &User{
		Actor:   component.NewActor(f.NextID(), spec.Name, spec.Image, spec.Start.X, spec.Start.Y, spec.Size.Width, spec.Size.Height, spec.Health),
		speed:   spec.Speed,
		bounds:  spec.Bounds,
		fire:    spec.Fire,
		factory: f,
	}
	return u
}

func (f *Factory) NewProjectile(name string, side component.Side, x, y float64) (*Projectile, error) {
	spec, err := f.Catalog.Projectile(name)
	if err != nil {
		return nil, err
	}
	p := &Projectile{
		Actor:      component.NewActor(f.NextID(), spec.Name, spec.Image, x, y, spec.Size.Width, spec.Size.Height, 1),
		Side:       side,
		Damage:     spec.Damage,
		VX:         spec.Velocity.X,
		VY:         spec.Velocity.Y,
		LifeFrames: spec.LifeFrames,
		split:      spec.Split,
		factory:    f,
	}
	if p.Damage <= 0 {
		p.Damage = 1
	}
	return p, nil
}

func (f *Factory) NewEnemy(name string, x, y float64) (*Enemy, error) {
	spec, err := f.Catalog.Enemy(name)
	if err != nil {
		return nil, err
	}
	if spec.Start != nil {
		x, y = spec.Start.X, spec.Start.Y
	}
	e := &Enemy{
		Actor:   component.NewActor(f.NextID(), spec.Name, spec.Image, x, y, spec.Size.Width, spec.Size.Height, spec.Health),
		score:   spec.Score,
		boss:    spec.Boss,
		fire:    spec.Fire,
		shield:  spec.Shield,
		clamp:   spec.ClampToArena,
		arena:   f.Arena,
		rng:     f.Rand,
		factory: f,
	}
	if spec.HitboxInset != nil {
		e.HitInsetX = spec.HitboxInset.X
		e.HitInsetY = spec.HitboxInset.Y
	}
	pattern, err := f.newPattern(spec.Pattern)
	if err != nil {
		return nil, fmt.Errorf("obj: enemy %s: %w", name, err)
	}
	e.pattern = pattern
	return e, nil
}

func (f *Factory) NewPowerUp(name string, x, y float64) (*PowerUp, error) {
	spec, err := f.Catalog.PowerUp(name)
	if err != nil {
		return nil, err
	}
	return &PowerUp{
		Actor:  component.NewActor(f.NextID(), spec.Name, spec.Image, x, y, spec.Size.Width, spec.Size.Height, 1),
		effect: Effect(spec.Effect),
		amount: spec.Amount,
		fall:   spec.FallSpeed,
		floor:  spec.FloorY,
		sound:  spec.Sound,
	}, nil
}

func (f *Factory) newPattern(spec prefabs.PatternSpec) (Pattern, error) {
	switch spec.Type {
	case "", PatternLinear:
		return Linear{VX: spec.Velocity.X, VY: spec.Velocity.Y}, nil
	case PatternShuffle:
		return NewShuffle(spec.Speed, spec.Repeat, spec.HoldFrames, f.Rand), nil
	case PatternScript:
		compiled, err := f.compileScript(spec.Script)
		if err != nil {
			return nil, err
		}
		return newScriptPattern(spec, compiled.Clone(), f.Arena), nil
	default:
		return nil, fmt.Errorf("unknown pattern %q", spec.Type)
	}
}

func (f *Factory) compileScript(name string) (*tengo.Compiled, error) {
	if c, ok := f.scripts[name]; ok {
		return c, nil
	}
	if f.scripts == nil {
		f.scripts = map[string]*tengo.Compiled{}
	}
	c, err := compilePatternScript(name)
	if err != nil {
		return nil, err
	}
	log.Printf("obj: compiled pattern script %s", name)
	f.scripts[name] = c
	return c, nil
}
