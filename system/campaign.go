package system

import (
	"fmt"
	"log"

	"github.com/milk9111/skystrike/component"
	"github.com/milk9111/skystrike/event"
	"github.com/milk9111/skystrike/levels"
	"github.com/milk9111/skystrike/prefabs"
)

// LevelLoader resolves a level name to its definition.
type LevelLoader func(name string) (*levels.Level, error)

// Campaign sequences levels. Every level, and every restart of one, runs
// in a freshly constructed session.
type Campaign struct {
	cfg      Config
	load     LevelLoader
	name     string
	level    *Level
	restarts int
}

// NewCampaign starts at level first. cfg.Level is ignored; the rest of cfg
// is reused for every session.
func NewCampaign(first string, cfg Config, load LevelLoader) (*Campaign, error) {
	if load == nil {
		load = levels.LoadLevelFromFS
	}
	if cfg.IDs == nil {
		cfg.IDs = &component.IDSource{}
	}
	c := &Campaign{cfg: cfg, load: load}
	if err := c.enter(first); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Campaign) Name() string { return c.name }

func (c *Campaign) Level() *Level { return c.level }

func (c *Campaign) Session() *Session { return c.level.Session() }

func (c *Campaign) HandleInput(ev InputEvent) { c.level.HandleInput(ev) }

// Tick runs one frame of the current level. When the level is cleared and
// names a successor, the successor replaces it before Tick returns.
func (c *Campaign) Tick() (event.FrameReport, error) {
	r := c.level.Tick()
	if r.NextLevel == "" {
		return r, nil
	}
	if err := c.enter(r.NextLevel); err != nil {
		return r, err
	}
	return r, nil
}

// Restart rebuilds the current level from scratch.
func (c *Campaign) Restart() error {
	c.restarts++
	return c.enter(c.name)
}

// SetCatalog swaps the prefab catalog used by sessions built from now on.
func (c *Campaign) SetCatalog(cat *prefabs.Catalog) {
	c.cfg.Catalog = cat
}

func (c *Campaign) Close() {
	if c.level != nil {
		c.level.Session().Close()
	}
}

func (c *Campaign) enter(name string) error {
	def, err := c.load(name)
	if err != nil {
		return fmt.Errorf("system: load level %s: %w", name, err)
	}
	cfg := c.cfg
	cfg.Level = def
	cfg.Seed = c.cfg.Seed + int64(c.restarts)
	s, err := NewSession(cfg)
	if err != nil {
		return err
	}
	if c.level != nil {
		c.level.Session().Close()
	}
	c.level = NewLevel(s)
	c.name = def.Name
	log.Printf("level: entered %s (%s)", def.Name, def.Title)
	return nil
}
