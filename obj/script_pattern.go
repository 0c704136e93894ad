package obj

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/skystrike/common"
	"github.com/milk9111/skystrike/prefabs"
)

// Pattern scripts define `move := func(ctx) { ... }` returning [dx, dy].
const patternDispatchScript = `
__result = move(__ctx)
`

func compilePatternScript(name string) (*tengo.Compiled, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("obj: load script %s: %w", name, err)
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + patternDispatchScript))
	_ = script.Add("__ctx", map[string]any{})
	_ = script.Add("__result", nil)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("obj: compile script %s: %w", name, err)
	}
	return compiled, nil
}

// ScriptPattern delegates movement to a tengo script. A runtime error
// disables the script and the enemy holds still from then on.
type ScriptPattern struct {
	script   string
	compiled *tengo.Compiled
	vx, vy   float64
	speed    float64
	hold     int
	arena    common.Rect
	disabled bool
}

func newScriptPattern(spec prefabs.PatternSpec, compiled *tengo.Compiled, arena common.Rect) *ScriptPattern {
	hold := spec.HoldFrames
	if hold <= 0 {
		hold = 1
	}
	return &ScriptPattern{
		script:   spec.Script,
		compiled: compiled,
		vx:       spec.Velocity.X,
		vy:       spec.Velocity.Y,
		speed:    spec.Speed,
		hold:     hold,
		arena:    arena,
	}
}

// Disabled reports whether a script error stopped the pattern.
func (s *ScriptPattern) Disabled() bool { return s.disabled }

func (s *ScriptPattern) Step(e *Enemy) (float64, float64) {
	if s.disabled || s.compiled == nil {
		return 0, 0
	}
	dx, dy, err := s.run(e)
	if err != nil {
		s.disabled = true
		log.Printf("obj: enemy=%s script %s disabled: %v", e.ID(), s.script, err)
		return 0, 0
	}
	return dx, dy
}

func (s *ScriptPattern) run(e *Enemy) (float64, float64, error) {
	ctx := map[string]any{
		"frame":        e.Frame(),
		"x":            e.X,
		"y":            e.Y,
		"vx":           s.vx,
		"vy":           s.vy,
		"speed":        s.speed,
		"hold":         s.hold,
		"arena_width":  s.arena.Width,
		"arena_height": s.arena.Height - e.Height,
	}
	if err := s.compiled.Set("__ctx", ctx); err != nil {
		return 0, 0, err
	}
	if err := s.compiled.Run(); err != nil {
		return 0, 0, err
	}

	out := s.compiled.Get("__result").Array()
	if len(out) != 2 {
		return 0, 0, fmt.Errorf("move returned %d values, want 2", len(out))
	}
	dx, ok := asFloat(out[0])
	if !ok {
		return 0, 0, fmt.Errorf("dx is %T", out[0])
	}
	dy, ok := asFloat(out[1])
	if !ok {
		return 0, 0, fmt.Errorf("dy is %T", out[1])
	}
	if !common.Finite(dx, dy) {
		return 0, 0, fmt.Errorf("non-finite step (%v, %v)", dx, dy)
	}
	return dx, dy, nil
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
