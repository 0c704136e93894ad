package manager

import (
	"github.com/milk9111/skystrike/component"
	"github.com/milk9111/skystrike/obj"
)

type PowerUpManager struct {
	*Roster[*obj.PowerUp]
}

func NewPowerUpManager(scene component.Scene) *PowerUpManager {
	return &PowerUpManager{Roster: NewRoster[*obj.PowerUp](scene)}
}
