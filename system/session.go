package system

import (
	"errors"
	"fmt"

	"github.com/milk9111/skystrike/common"
	"github.com/milk9111/skystrike/component"
	"github.com/milk9111/skystrike/event"
	"github.com/milk9111/skystrike/levels"
	"github.com/milk9111/skystrike/manager"
	"github.com/milk9111/skystrike/obj"
	"github.com/milk9111/skystrike/prefabs"
)

var (
	ErrSessionClosed = errors.New("system: session closed")
	ErrInvalidConfig = errors.New("system: invalid config")
	ErrUnknownLevel  = levels.ErrUnknownLevel
)

// Config describes everything a session needs to start a level.
type Config struct {
	Level   *levels.Level
	Catalog *prefabs.Catalog
	Seed    int64
	// Rand overrides the source built from Seed.
	Rand  common.Rand
	Scene component.Scene
	Sound component.Sound
	// Arena defaults to common.Arena().
	Arena common.Rect
	// IDs is shared by every session drawing into the same Scene. Nil gives
	// the session its own source.
	IDs *component.IDSource
}

// Session owns all mutable state of one level attempt: the user, one
// manager per actor category, the game state and the frame event queue.
// It replaces global singletons; a new level gets a new session.
type Session struct {
	level   *levels.Level
	arena   common.Rect
	rng     common.Rand
	factory *obj.Factory
	scene   component.Scene
	sound   component.Sound

	user        *obj.User
	enemies     *manager.EnemyManager
	projectiles *manager.ProjectileManager
	powerups    *manager.PowerUpManager
	collisions  *manager.CollisionManager
	state       *manager.GameState
	events      *event.Queue

	closed bool
}

func NewSession(cfg Config) (*Session, error) {
	if cfg.Level == nil {
		return nil, fmt.Errorf("%w: no level", ErrInvalidConfig)
	}
	if cfg.Catalog == nil {
		return nil, fmt.Errorf("%w: no prefab catalog", ErrInvalidConfig)
	}
	if err := checkPrefabs(cfg.Level, cfg.Catalog); err != nil {
		return nil, fmt.Errorf("%w: level %s: %w", ErrInvalidConfig, cfg.Level.Name, err)
	}
	if cfg.Arena.Empty() {
		cfg.Arena = common.Arena()
	}
	if cfg.Rand == nil {
		cfg.Rand = common.NewRand(cfg.Seed)
	}
	if cfg.Scene == nil {
		cfg.Scene = component.NopScene{}
	}
	if cfg.Sound == nil {
		cfg.Sound = &component.SilentSound{}
	}

	events := &event.Queue{}
	s := &Session{
		level:       cfg.Level,
		arena:       cfg.Arena,
		rng:         cfg.Rand,
		factory:     obj.NewFactory(cfg.Catalog, cfg.Rand, cfg.Arena, cfg.IDs),
		scene:       cfg.Scene,
		sound:       cfg.Sound,
		enemies:     manager.NewEnemyManager(cfg.Scene),
		projectiles: manager.NewProjectileManager(cfg.Scene),
		powerups:    manager.NewPowerUpManager(cfg.Scene),
		collisions:  manager.NewCollisionManager(events, cfg.Sound),
		state:       manager.NewGameState(),
		events:      events,
	}

	s.user = s.factory.NewUser()
	if hp := cfg.Level.UserHealth; hp > 0 {
		s.user.Health = component.NewHealth(hp)
	}
	s.scene.Attach(s.user)
	return s, nil
}

func checkPrefabs(lvl *levels.Level, cat *prefabs.Catalog) error {
	if lvl.Waves != nil {
		for _, name := range lvl.Waves.Enemies {
			if _, err := cat.Enemy(name); err != nil {
				return err
			}
		}
	}
	if lvl.Boss != "" {
		if _, err := cat.Enemy(lvl.Boss); err != nil {
			return err
		}
	}
	if lvl.PowerUps != nil {
		for _, name := range lvl.PowerUps.Kinds {
			if _, err := cat.PowerUp(name); err != nil {
				return err
			}
		}
	}
	return nil
}

// Close detaches every actor and invalidates the session. Accessors panic
// afterwards.
func (s *Session) Close() {
	if s == nil || s.closed {
		return
	}
	s.enemies.Clear()
	s.projectiles.Clear()
	s.powerups.Clear()
	s.scene.Detach(s.user)
	s.closed = true
}

func (s *Session) Closed() bool {
	return s == nil || s.closed
}

func (s *Session) mustOpen() {
	if s == nil || s.closed {
		panic(ErrSessionClosed)
	}
}

func (s *Session) User() *obj.User {
	s.mustOpen()
	return s.user
}

func (s *Session) Enemies() *manager.EnemyManager {
	s.mustOpen()
	return s.enemies
}

func (s *Session) Projectiles() *manager.ProjectileManager {
	s.mustOpen()
	return s.projectiles
}

func (s *Session) PowerUps() *manager.PowerUpManager {
	s.mustOpen()
	return s.powerups
}

func (s *Session) Collisions() *manager.CollisionManager {
	s.mustOpen()
	return s.collisions
}

func (s *Session) State() *manager.GameState {
	s.mustOpen()
	return s.state
}

func (s *Session) Events() *event.Queue {
	s.mustOpen()
	return s.events
}

func (s *Session) Factory() *obj.Factory {
	s.mustOpen()
	return s.factory
}

func (s *Session) Sound() component.Sound {
	s.mustOpen()
	return s.sound
}

func (s *Session) Rand() common.Rand {
	s.mustOpen()
	return s.rng
}

func (s *Session) Definition() *levels.Level {
	s.mustOpen()
	return s.level
}

func (s *Session) Arena() common.Rect {
	s.mustOpen()
	return s.arena
}
