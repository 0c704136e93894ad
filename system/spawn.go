package system

import (
	"log"

	"github.com/milk9111/skystrike/common"
	"github.com/milk9111/skystrike/event"
)

// spawn adds waves, the boss and random power-ups per the level definition.
// A new wave starts only when the arena is clear of enemies and the boss has
// not appeared yet.
func (l *Level) spawn() {
	s := l.session
	w := l.def.Waves

	if w != nil && l.boss == nil && s.Enemies().Count() == 0 && !l.wavesDone() {
		l.waves++
		l.spawnWave()
		if l.def.Boss != "" && w.BossAfter > 0 && l.waves >= w.BossAfter {
			l.spawnBoss()
		}
	}
	if w == nil && l.def.Boss != "" && l.boss == nil {
		l.spawnBoss()
	}

	if d := l.def.PowerUps; d != nil && common.Chance(s.Rand(), d.Chance) {
		kind := d.Kinds[s.Rand().Intn(len(d.Kinds))]
		x := common.Between(s.Rand(), d.MinX, d.MaxX)
		p, err := s.Factory().NewPowerUp(kind, x, d.Y)
		if err != nil {
			log.Printf("level: %s: spawn powerup: %v", l.def.Name, err)
			return
		}
		s.PowerUps().Add(p)
		s.Events().Push(event.Event{Kind: event.KindPowerUpSpawned, Actor: p.ID(), Detail: kind})
	}
}

func (l *Level) wavesDone() bool {
	w := l.def.Waves
	return w == nil || (w.Cycles > 0 && l.waves >= w.Cycles)
}

func (l *Level) spawnWave() {
	s := l.session
	w := l.def.Waves
	rng := s.Rand()
	arena := s.Arena()

	size := w.Size + w.Growth*l.waves
	maxY := arena.Bottom() - w.BottomMargin
	for i := 0; i < size; i++ {
		kind := w.Enemies[rng.Intn(len(w.Enemies))]
		y := common.Between(rng, arena.Y, maxY)
		e, err := s.Factory().NewEnemy(kind, w.SpawnX, y)
		if err != nil {
			log.Printf("level: %s: spawn %s: %v", l.def.Name, kind, err)
			continue
		}
		s.Enemies().Add(e)
	}
	s.Events().Push(event.Event{Kind: event.KindWaveSpawned, Amount: size, Detail: l.def.Name})
}

func (l *Level) spawnBoss() {
	s := l.session
	boss, err := s.Factory().NewEnemy(l.def.Boss, 0, 0)
	if err != nil {
		log.Printf("level: %s: spawn boss: %v", l.def.Name, err)
		return
	}
	l.boss = boss
	s.Enemies().Add(boss)
	s.Events().Push(event.Event{Kind: event.KindBossSpawned, Actor: boss.ID(), Detail: l.def.Boss})
}
