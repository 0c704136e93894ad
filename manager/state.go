package manager

import "fmt"

type State int

const (
	StateInitializing State = iota
	StateLoading
	StatePlaying
	StatePaused
	StateWin
	StateGameOver
)

var stateNames = [...]string{
	StateInitializing: "INITIALIZING",
	StateLoading:      "LOADING",
	StatePlaying:      "PLAYING",
	StatePaused:       "PAUSED",
	StateWin:          "WIN",
	StateGameOver:     "GAME_OVER",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// GameState holds the current state of one session. Transitions are not
// validated here; the level loop owns the rules.
type GameState struct {
	current State
}

func NewGameState() *GameState {
	return &GameState{current: StateInitializing}
}

func (g *GameState) CurrentState() State {
	return g.current
}

// SetCurrentState stores s and returns the state it replaced.
func (g *GameState) SetCurrentState(s State) State {
	prev := g.current
	g.current = s
	return prev
}

func (g *GameState) IsNotPlaying() bool {
	return g.current != StatePlaying
}

// IsTerminal reports whether the session ended in a win or a loss.
func (g *GameState) IsTerminal() bool {
	return g.current == StateWin || g.current == StateGameOver
}
