package obj

import (
	"log"

	"github.com/milk9111/skystrike/component"
	"github.com/milk9111/skystrike/prefabs"
)

// User is the player's ship.
type User struct {
	component.Actor

	speed  float64
	bounds prefabs.BoundsSpec
	fire   prefabs.FireSpec

	// dirX/dirY are velocity multipliers in {-1, 0, 1}.
	dirX, dirY int

	kills   int
	score   int
	charges int

	factory *Factory
}

func (u *User) MoveUp() { u.dirY = -1 }
func (u *User) MoveDown() { u.dirY = 1 }
func (u *User) MoveLeft() { u.dirX = -1 }
func (u *User) MoveRight() { u.dirX = 1 }
func (u *User) StopVertical() { u.dirY = 0 }
func (u *User) StopHorizontal() { u.dirX = 0 }

// Velocity returns the per-frame displacement the user will apply.
func (u *User) Velocity() (vx, vy float64) {
	return float64(u.dirX) * u.speed, float64(u.dirY) * u.speed
}

// UpdatePosition moves along each axis unless that would leave the bounds.
func (u *User) UpdatePosition() {
	if u.IsDestroyed() {
		return
	}
	vx, vy := u.Velocity()
	if vy != 0 {
		if y := u.Y + vy; y >= u.bounds.MinY && y <= u.bounds.MaxY {
			u.MoveBy(0, vy)
		}
	}
	if vx != 0 {
		if x := u.X + vx; x >= u.bounds.MinX && x <= u.bounds.MaxX {
			u.MoveBy(vx, 0)
		}
	}
}

func (u *User) UpdateActor() {
	u.UpdatePosition()
}

func (u *User) Kills() int { return u.kills }
func (u *User) IncrementKills() { u.kills++ }
func (u *User) Score() int { return u.score }
func (u *User) AddScore(n int) { u.score += n }
func (u *User) Charges() int { return u.charges }
func (u *User) AddCharges(n int) { u.charges += n }
func (u *User) FireSound() string { return u.fire.Sound }

// Fire launches one projectile, or a full spread while a spreadshot charge
// remains. A spread consumes one charge.
func (u *User) Fire() []*Projectile {
	if u.IsDestroyed() || u.factory == nil || u.fire.Projectile == "" {
		return nil
	}
	x := u.X + u.fire.Offset.X
	y := u.Y + u.fire.Offset.Y

	offsets := []float64{0}
	if u.charges > 0 && len(u.fire.Spread) > 0 {
		offsets = u.fire.Spread
		u.charges--
	}

	out := make([]*Projectile, 0, len(offsets))
	for _, dy := range offsets {
		p, err := u.factory.NewProjectile(u.fire.Projectile, component.SideUser, x, y+dy)
		if err != nil {
			log.Printf("obj: user fire: %v", err)
			return out
		}
		out = append(out, p)
	}
	return out
}
