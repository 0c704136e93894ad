package component

// Side identifies which team fired a projectile.
type Side int

const (
	SideNeutral Side = iota
	SideUser
	SideEnemy
)

func (s Side) String() string {
	switch s {
	case SideUser:
		return "user"
	case SideEnemy:
		return "enemy"
	default:
		return "neutral"
	}
}

// CanHit reports whether an attacker on side a may damage a target on side b.
func CanHit(a, b Side) bool {
	if a == SideNeutral || b == SideNeutral {
		return true
	}
	return a != b
}
