package event

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FrameReport is the snapshot handed to the presentation layer after every
// tick.
type FrameReport struct {
	Frame            int    `yaml:"frame"`
	Level            string `yaml:"level"`
	State            string `yaml:"state"`
	Health           int    `yaml:"health"`
	MaxHealth        int    `yaml:"max_health"`
	Kills            int    `yaml:"kills"`
	Score            int    `yaml:"score"`
	Charges          int    `yaml:"charges"`
	Enemies          int    `yaml:"enemies"`
	UserProjectiles  int    `yaml:"user_projectiles"`
	EnemyProjectiles int    `yaml:"enemy_projectiles"`
	PowerUps         int    `yaml:"powerups"`
	BossHealth       int    `yaml:"boss_health,omitempty"`
	BossShielded     bool   `yaml:"boss_shielded,omitempty"`
	// NextLevel is set when the level was cleared and another one follows.
	NextLevel string  `yaml:"next_level,omitempty"`
	Events    []Event `yaml:"events,omitempty"`
}

// Count returns how many events of kind the frame produced.
func (r FrameReport) Count(kind Kind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (r FrameReport) YAML() ([]byte, error) {
	out, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("event: encode report: %w", err)
	}
	return out, nil
}
