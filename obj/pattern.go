package obj

import "github.com/milk9111/skystrike/common"

const (
	PatternLinear  = "linear"
	PatternShuffle = "shuffle"
	PatternScript  = "script"
)

// Pattern yields an enemy's displacement for one frame.
type Pattern interface {
	Step(e *Enemy) (dx, dy float64)
}

// Linear moves at a constant velocity.
type Linear struct {
	VX, VY float64
}

func (l Linear) Step(*Enemy) (float64, float64) {
	return l.VX, l.VY
}

// Shuffle cycles through a shuffled bag of vertical moves (up, down, hold),
// keeping each for hold frames and reshuffling whenever it advances.
type Shuffle struct {
	moves []float64
	index int
	same  int
	hold  int
	rng   common.Rand
}

func NewShuffle(speed float64, repeat, hold int, rng common.Rand) *Shuffle {
	if repeat <= 0 {
		repeat = 1
	}
	if hold <= 0 {
		hold = 1
	}
	moves := make([]float64, 0, repeat*3)
	for i := 0; i < repeat; i++ {
		moves = append(moves, speed, -speed, 0)
	}
	s := &Shuffle{moves: moves, hold: hold, rng: rng}
	s.shuffle()
	return s
}

func (s *Shuffle) Step(*Enemy) (float64, float64) {
	move := s.moves[s.index]
	s.same++
	if s.same == s.hold {
		s.shuffle()
		s.same = 0
		s.index++
	}
	if s.index == len(s.moves) {
		s.index = 0
	}
	return 0, move
}

func (s *Shuffle) shuffle() {
	if s.rng == nil {
		return
	}
	s.rng.Shuffle(len(s.moves), func(i, j int) {
		s.moves[i], s.moves[j] = s.moves[j], s.moves[i]
	})
}
