package event

import "github.com/milk9111/skystrike/component"

// Kind identifies frame event types.
type Kind string

const (
	KindShot            Kind = "shot"
	KindEnemyHit        Kind = "enemy_hit"
	KindEnemyKilled     Kind = "enemy_killed"
	KindUserHit         Kind = "user_hit"
	KindEnemyBreached   Kind = "enemy_breached"
	KindPowerUpSpawned  Kind = "powerup_spawned"
	KindPowerUpConsumed Kind = "powerup_collected"
	KindShieldUp        Kind = "shield_up"
	KindShieldDown      Kind = "shield_down"
	KindWaveSpawned     Kind = "wave_spawned"
	KindBossSpawned     Kind = "boss_spawned"
	KindStateChanged    Kind = "state_changed"
)

// Event is a single thing that happened during a tick.
type Event struct {
	Kind   Kind         `yaml:"kind"`
	Frame  int          `yaml:"frame"`
	Actor  component.ID `yaml:"actor,omitempty"`
	Other  component.ID `yaml:"other,omitempty"`
	Amount int          `yaml:"amount,omitempty"`
	Detail string       `yaml:"detail,omitempty"`
}

// Queue is a simple FIFO queue.
type Queue struct {
	frame int
	items []Event
}

// SetFrame stamps subsequent events with frame.
func (q *Queue) SetFrame(frame int) {
	if q == nil {
		return
	}
	q.frame = frame
}

// Push adds an event.
func (q *Queue) Push(evt Event) {
	if q == nil {
		return
	}
	if evt.Frame == 0 {
		evt.Frame = q.frame
	}
	q.items = append(q.items, evt)
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *Queue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
