package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrUnknownLevel = errors.New("levels: unknown level")

const (
	GoalClearWaves    = "clear_waves"
	GoalKillCount     = "kill_count"
	GoalBoss          = "boss"
	GoalWavesThenBoss = "waves_then_boss"
)

// Level describes one stage of the campaign.
type Level struct {
	Name        string       `json:"name"`
	Title       string       `json:"title"`
	Next        string       `json:"next,omitempty"`
	IntroFrames int          `json:"intro_frames"`
	UserHealth  int          `json:"user_health,omitempty"`
	Goal        Goal         `json:"goal"`
	Waves       *Waves       `json:"waves,omitempty"`
	Boss        string       `json:"boss,omitempty"`
	PowerUps    *PowerUpDrop `json:"powerups,omitempty"`
}

type Goal struct {
	Type   string `json:"type"`
	Target int    `json:"target,omitempty"`
}

// Waves spawns a new wave whenever the arena is clear of enemies.
type Waves struct {
	Enemies []string `json:"enemies"`
	Size    int      `json:"size"`
	// Growth adds this many enemies per wave already spawned.
	Growth int `json:"growth,omitempty"`
	// Cycles caps the number of waves; zero means unlimited.
	Cycles int     `json:"cycles,omitempty"`
	SpawnX float64 `json:"spawn_x"`
	// BottomMargin keeps spawns this far above the arena floor.
	BottomMargin float64 `json:"bottom_margin"`
	// BossAfter spawns the level boss together with this wave.
	BossAfter int `json:"boss_after,omitempty"`
}

type PowerUpDrop struct {
	Chance float64  `json:"chance"`
	Kinds  []string `json:"kinds"`
	MinX   float64  `json:"min_x"`
	MaxX   float64  `json:"max_x"`
	Y      float64  `json:"y"`
}

func (l *Level) validate() error {
	switch l.Goal.Type {
	case GoalClearWaves:
		if l.Waves == nil || l.Waves.Cycles <= 0 {
			return fmt.Errorf("goal %s needs bounded waves", l.Goal.Type)
		}
	case GoalKillCount:
		if l.Goal.Target <= 0 || l.Waves == nil {
			return fmt.Errorf("goal %s needs a target and waves", l.Goal.Type)
		}
	case GoalBoss, GoalWavesThenBoss:
		if l.Boss == "" {
			return fmt.Errorf("goal %s needs a boss", l.Goal.Type)
		}
	default:
		return fmt.Errorf("unknown goal %q", l.Goal.Type)
	}
	if l.Waves != nil && (len(l.Waves.Enemies) == 0 || l.Waves.Size <= 0) {
		return errors.New("waves need enemies and a size")
	}
	// With waves present the boss only arrives alongside wave boss_after.
	if w := l.Waves; w != nil && l.Boss != "" {
		if w.BossAfter < 1 {
			return fmt.Errorf("boss %s never spawns: boss_after must be at least 1", l.Boss)
		}
		if w.Cycles > 0 && w.BossAfter > w.Cycles {
			return fmt.Errorf("boss %s never spawns: boss_after %d exceeds %d cycles", l.Boss, w.BossAfter, w.Cycles)
		}
	}
	if l.PowerUps != nil && len(l.PowerUps.Kinds) == 0 {
		return errors.New("powerups need kinds")
	}
	return nil
}

func LoadLevelFromFS(name string) (*Level, error) {
	file := name
	if !strings.HasSuffix(file, ".json") {
		file += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLevel, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level %s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(file, ".json")
	}
	if err := lvl.validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return &lvl, nil
}

// Names lists the embedded levels.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if n, ok := strings.CutSuffix(e.Name(), ".json"); ok {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}
