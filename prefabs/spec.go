package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type RangeSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type BoundsSpec struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

type UserSpec struct {
	Name   string     `yaml:"name"`
	Kind   string     `yaml:"kind"`
	Image  string     `yaml:"image"`
	Size   SizeSpec   `yaml:"size"`
	Health int        `yaml:"health"`
	Speed  float64    `yaml:"speed"`
	Start  PointSpec  `yaml:"start"`
	Bounds BoundsSpec `yaml:"bounds"`
	Fire   FireSpec   `yaml:"fire"`
}

type FireSpec struct {
	Projectile string    `yaml:"projectile"`
	Offset     PointSpec `yaml:"offset"`
	// FixedX places the projectile at an absolute x instead of an offset.
	FixedX *float64 `yaml:"fixed_x"`
	// Spread lists y offsets used while a spreadshot charge is available.
	Spread         []float64 `yaml:"spread"`
	Rate           float64   `yaml:"rate"`
	CooldownFrames int       `yaml:"cooldown_frames"`
	Sound          string    `yaml:"sound"`
}

type ProjectileSpec struct {
	Name       string     `yaml:"name"`
	Kind       string     `yaml:"kind"`
	Image      string     `yaml:"image"`
	Size       SizeSpec   `yaml:"size"`
	Damage     int        `yaml:"damage"`
	Velocity   PointSpec  `yaml:"velocity"`
	LifeFrames int        `yaml:"life_frames"`
	Split      *SplitSpec `yaml:"split"`
}

type SplitSpec struct {
	// TriggerX arms the fuse once the projectile's x drops below it.
	TriggerX   float64   `yaml:"trigger_x"`
	FuseFrames int       `yaml:"fuse_frames"`
	Fragment   string    `yaml:"fragment"`
	Count      int       `yaml:"count"`
	VX         RangeSpec `yaml:"vx"`
	VY         RangeSpec `yaml:"vy"`
}

type PatternSpec struct {
	Type       string    `yaml:"type"`
	Velocity   PointSpec `yaml:"velocity"`
	Speed      float64   `yaml:"speed"`
	Repeat     int       `yaml:"repeat"`
	HoldFrames int       `yaml:"hold_frames"`
	Script     string    `yaml:"script"`
}

type ShieldSpec struct {
	Probability float64 `yaml:"probability"`
	MaxFrames   int     `yaml:"max_frames"`
}

type EnemySpec struct {
	Name         string      `yaml:"name"`
	Kind         string      `yaml:"kind"`
	Image        string      `yaml:"image"`
	Size         SizeSpec    `yaml:"size"`
	Health       int         `yaml:"health"`
	Score        int         `yaml:"score"`
	Boss         bool        `yaml:"boss"`
	Start        *PointSpec  `yaml:"start"`
	Pattern      PatternSpec `yaml:"pattern"`
	Fire         FireSpec    `yaml:"fire"`
	Shield       *ShieldSpec `yaml:"shield"`
	HitboxInset  *PointSpec  `yaml:"hitbox_inset"`
	ClampToArena bool        `yaml:"clamp_to_arena"`
}

type PowerUpSpec struct {
	Name      string   `yaml:"name"`
	Kind      string   `yaml:"kind"`
	Image     string   `yaml:"image"`
	Size      SizeSpec `yaml:"size"`
	FallSpeed float64  `yaml:"fall_speed"`
	// FloorY destroys the power-up once its y passes this line.
	FloorY float64 `yaml:"floor_y"`
	Effect string  `yaml:"effect"`
	Amount int     `yaml:"amount"`
	Sound  string  `yaml:"sound"`
}
