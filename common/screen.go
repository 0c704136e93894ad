package common

const (
	BaseWidth  = 1300
	BaseHeight = 750

	// FrameMillis is the duration of one simulation tick.
	FrameMillis = 50
	// TicksPerSecond is the number of ticks in one second of game time.
	TicksPerSecond = 1000 / FrameMillis
)

// Arena returns the full playfield rect.
func Arena() Rect {
	return Rect{Width: BaseWidth, Height: BaseHeight}
}
