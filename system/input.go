package system

import "fmt"

type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionFire
	ActionPause
	ActionToggleMusic
	ActionToggleEffects
)

var actionNames = [...]string{
	ActionUp:            "up",
	ActionDown:          "down",
	ActionLeft:          "left",
	ActionRight:         "right",
	ActionFire:          "fire",
	ActionPause:         "pause",
	ActionToggleMusic:   "toggle_music",
	ActionToggleEffects: "toggle_effects",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// InputEvent is a discrete key press or release.
type InputEvent struct {
	Action  Action
	Pressed bool
}

func Press(a Action) InputEvent { return InputEvent{Action: a, Pressed: true} }
func Release(a Action) InputEvent { return InputEvent{Action: a} }
