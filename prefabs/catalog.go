package prefabs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	ErrUnknownPrefab = errors.New("prefabs: unknown prefab")
	ErrNoUser        = errors.New("prefabs: no user prefab")
)

const (
	KindUser       = "user"
	KindEnemy      = "enemy"
	KindProjectile = "projectile"
	KindPowerUp    = "powerup"
)

type header struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

// Catalog holds every actor prefab keyed by name.
type Catalog struct {
	User        UserSpec
	Enemies     map[string]EnemySpec
	Projectiles map[string]ProjectileSpec
	PowerUps    map[string]PowerUpSpec
}

// LoadCatalog decodes every prefab, embedded or added under Dir. Files on
// disk win over embedded copies of the same name.
func LoadCatalog() (*Catalog, error) {
	names, err := specNames()
	if err != nil {
		return nil, err
	}

	cat := &Catalog{
		Enemies:     map[string]EnemySpec{},
		Projectiles: map[string]ProjectileSpec{},
		PowerUps:    map[string]PowerUpSpec{},
	}
	hasUser := false
	for _, name := range names {
		h, err := LoadSpec[header](name)
		if err != nil {
			return nil, err
		}
		if h.Name == "" {
			h.Name = strings.TrimSuffix(name, filepath.Ext(name))
		}
		switch h.Kind {
		case KindUser:
			spec, err := LoadSpec[UserSpec](name)
			if err != nil {
				return nil, err
			}
			cat.User = spec
			hasUser = true
		case KindEnemy:
			spec, err := LoadSpec[EnemySpec](name)
			if err != nil {
				return nil, err
			}
			cat.Enemies[h.Name] = spec
		case KindProjectile:
			spec, err := LoadSpec[ProjectileSpec](name)
			if err != nil {
				return nil, err
			}
			cat.Projectiles[h.Name] = spec
		case KindPowerUp:
			spec, err := LoadSpec[PowerUpSpec](name)
			if err != nil {
				return nil, err
			}
			cat.PowerUps[h.Name] = spec
		default:
			return nil, fmt.Errorf("prefabs: %s: unknown kind %q", name, h.Kind)
		}
	}
	if !hasUser {
		return nil, ErrNoUser
	}
	return cat, nil
}

func (c *Catalog) Enemy(name string) (EnemySpec, error) {
	if c == nil {
		return EnemySpec{}, fmt.Errorf("%w: enemy %q", ErrUnknownPrefab, name)
	}
	spec, ok := c.Enemies[name]
	if !ok {
		return EnemySpec{}, fmt.Errorf("%w: enemy %q", ErrUnknownPrefab, name)
	}
	return spec, nil
}

func (c *Catalog) Projectile(name string) (ProjectileSpec, error) {
	if c == nil {
		return ProjectileSpec{}, fmt.Errorf("%w: projectile %q", ErrUnknownPrefab, name)
	}
	spec, ok := c.Projectiles[name]
	if !ok {
		return ProjectileSpec{}, fmt.Errorf("%w: projectile %q", ErrUnknownPrefab, name)
	}
	return spec, nil
}

func (c *Catalog) PowerUp(name string) (PowerUpSpec, error) {
	if c == nil {
		return PowerUpSpec{}, fmt.Errorf("%w: powerup %q", ErrUnknownPrefab, name)
	}
	spec, ok := c.PowerUps[name]
	if !ok {
		return PowerUpSpec{}, fmt.Errorf("%w: powerup %q", ErrUnknownPrefab, name)
	}
	return spec, nil
}

// specNames lists prefab files from the embedded set and from Dir, sorted
// and without duplicates. A missing Dir is not an error.
func specNames() ([]string, error) {
	embedded, err := fs.ReadDir(PrefabsFS, ".")
	if err != nil {
		return nil, fmt.Errorf("prefabs: list: %w", err)
	}
	onDisk, err := os.ReadDir(Dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("prefabs: list %s: %w", Dir, err)
	}

	seen := map[string]bool{}
	var names []string
	for _, e := range append(embedded, onDisk...) {
		if e.IsDir() || !isSpecFile(e.Name()) || seen[e.Name()] {
			continue
		}
		seen[e.Name()] = true
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
