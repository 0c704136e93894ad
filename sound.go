package main

import (
	"bytes"
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/skystrike/system"
)

const sampleRate = 44100

type tone struct {
	freq   float64
	millis int
	volume float64
}

var effectTones = map[string]tone{
	system.SoundShoot:    {freq: 880, millis: 60, volume: 0.25},
	"powerup":            {freq: 1320, millis: 160, volume: 0.3},
	system.SoundWin:      {freq: 660, millis: 600, volume: 0.35},
	system.SoundGameOver: {freq: 110, millis: 800, volume: 0.4},
}

// toneSound implements component.Sound with synthesized beeps and a looped
// drone for music.
type toneSound struct {
	ctx     *audio.Context
	players map[string]*audio.Player
	music   *audio.Player

	musicMuted   bool
	effectsMuted bool
}

func newToneSound(muted bool) *toneSound {
	s := &toneSound{
		ctx:          audio.NewContext(sampleRate),
		players:      map[string]*audio.Player{},
		musicMuted:   muted,
		effectsMuted: muted,
	}
	for name, t := range effectTones {
		s.players[name] = s.ctx.NewPlayerFromBytes(synth(t))
	}

	pcm := synth(tone{freq: 55, millis: 2000, volume: 0.08})
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	music, err := s.ctx.NewPlayer(loop)
	if err != nil {
		log.Printf("sound: music disabled: %v", err)
		return s
	}
	s.music = music
	if !muted {
		s.music.Play()
	}
	return s
}

func (s *toneSound) Play(name string) {
	if s.effectsMuted {
		return
	}
	p, ok := s.players[name]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("sound: rewind %s: %v", name, err)
		return
	}
	p.Play()
}

func (s *toneSound) MusicMuted() bool { return s.musicMuted }

func (s *toneSound) SetMusicMuted(muted bool) {
	s.musicMuted = muted
	if s.music == nil {
		return
	}
	if muted {
		s.music.Pause()
	} else {
		s.music.Play()
	}
}

func (s *toneSound) EffectsMuted() bool { return s.effectsMuted }

func (s *toneSound) SetEffectsMuted(muted bool) { s.effectsMuted = muted }

// synth renders a sine tone as 16-bit little-endian stereo PCM with a
// linear fade out.
func synth(t tone) []byte {
	n := sampleRate * t.millis / 1000
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		fade := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*t.freq*float64(i)/sampleRate) * t.volume * fade
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[4*i:], sample)
		binary.LittleEndian.PutUint16(buf[4*i+2:], sample)
	}
	return buf
}
