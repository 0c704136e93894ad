package component

import "github.com/milk9111/skystrike/common"

// Positioned exposes geometry for collision tests.
type Positioned interface {
	ID() ID
	Bounds() common.Rect
	HitBounds() common.Rect
}

// Updatable advances per-frame behavior.
type Updatable interface {
	UpdatePosition()
	UpdateActor()
}

// Damageable exposes health operations for collision policies.
type Damageable interface {
	TakeDamage(amount int) bool
	Destroy()
	IsDestroyed() bool
}

// Destructible is what every manager stores.
type Destructible interface {
	Node
	Updatable
	Damageable
}

// Node is the view of an actor handed to the presentation layer.
type Node interface {
	Positioned
	Image() string
}

// Scene is the presentation layer's scene graph.
type Scene interface {
	Attach(n Node)
	Detach(n Node)
}

// Sound is the presentation layer's fire-and-forget audio.
type Sound interface {
	Play(name string)
	MusicMuted() bool
	SetMusicMuted(muted bool)
	EffectsMuted() bool
	SetEffectsMuted(muted bool)
}

// NopScene discards attach/detach calls.
type NopScene struct{}

func (NopScene) Attach(Node) {}
func (NopScene) Detach(Node) {}

// SilentSound tracks mute flags and plays nothing.
type SilentSound struct {
	music   bool
	effects bool
}

func (s *SilentSound) Play(string) {}
func (s *SilentSound) MusicMuted() bool { return s.music }
func (s *SilentSound) SetMusicMuted(m bool) { s.music = m }
func (s *SilentSound) EffectsMuted() bool { return s.effects }
func (s *SilentSound) SetEffectsMuted(m bool) { s.effects = m }
