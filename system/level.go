package system

import (
	"log"

	"github.com/milk9111/skystrike/event"
	"github.com/milk9111/skystrike/levels"
	"github.com/milk9111/skystrike/manager"
	"github.com/milk9111/skystrike/obj"
)

const (
	SoundShoot    = "shoot"
	SoundWin      = "win"
	SoundGameOver = "gameOver"
)

// Level runs the frame loop for one session.
type Level struct {
	session *Session
	def     *levels.Level

	frame int
	intro int
	input []InputEvent

	waves      int
	boss       *obj.Enemy
	bossShield bool
	next       string
}

func NewLevel(s *Session) *Level {
	def := s.Definition()
	return &Level{
		session: s,
		def:     def,
		intro:   def.IntroFrames,
	}
}

func (l *Level) Session() *Session { return l.session }

func (l *Level) Frame() int { return l.frame }

// Waves returns how many enemy waves have spawned so far.
func (l *Level) Waves() int { return l.waves }

// Start skips whatever is left of the intro.
func (l *Level) Start() {
	if l.session.State().CurrentState() == manager.StateInitializing {
		l.intro = 0
	}
}

// HandleInput queues ev for the next tick.
func (l *Level) HandleInput(ev InputEvent) {
	l.input = append(l.input, ev)
}

// Tick runs one frame and reports what happened.
func (l *Level) Tick() event.FrameReport {
	s := l.session
	l.frame++
	s.Events().SetFrame(l.frame)

	l.applyInput()

	state := s.State()
	if state.CurrentState() == manager.StateInitializing {
		if l.intro > 0 {
			l.intro--
		}
		if l.intro <= 0 {
			l.setState(manager.StatePlaying)
		}
	}
	if state.IsNotPlaying() {
		return l.report()
	}

	l.spawn()

	user := s.User()
	enemies := s.Enemies()
	projectiles := s.Projectiles()
	powerups := s.PowerUps()

	user.UpdateActor()
	enemies.UpdateAll()
	l.trackShield()
	projectiles.UpdateAll()
	powerups.UpdateAll()

	for _, p := range enemies.GenerateFire() {
		projectiles.Add(p)
	}
	for _, e := range enemies.Breached(s.Arena().X) {
		user.TakeDamage(1)
		s.Events().Push(event.Event{Kind: event.KindEnemyBreached, Actor: e.ID(), Other: user.ID(), Amount: 1})
	}
	projectiles.Cull(s.Arena())

	s.Collisions().Resolve(user, enemies, projectiles, powerups)

	enemies.RemoveDestroyed()
	projectiles.RemoveDestroyed()
	powerups.RemoveDestroyed()

	l.evaluate()
	return l.report()
}

func (l *Level) applyInput() {
	if len(l.input) == 0 {
		return
	}
	s := l.session
	state := s.State()
	user := s.User()
	for _, ev := range l.input {
		switch ev.Action {
		case ActionPause:
			if !ev.Pressed {
				continue
			}
			switch state.CurrentState() {
			case manager.StatePlaying:
				l.setState(manager.StatePaused)
			case manager.StatePaused:
				l.setState(manager.StatePlaying)
			}
		case ActionToggleMusic:
			if ev.Pressed {
				s.Sound().SetMusicMuted(!s.Sound().MusicMuted())
			}
		case ActionToggleEffects:
			if ev.Pressed {
				s.Sound().SetEffectsMuted(!s.Sound().EffectsMuted())
			}
		case ActionUp, ActionDown:
			if !ev.Pressed {
				user.StopVertical()
			} else if !state.IsNotPlaying() {
				if ev.Action == ActionUp {
					user.MoveUp()
				} else {
					user.MoveDown()
				}
			}
		case ActionLeft, ActionRight:
			if !ev.Pressed {
				user.StopHorizontal()
			} else if !state.IsNotPlaying() {
				if ev.Action == ActionLeft {
					user.MoveLeft()
				} else {
					user.MoveRight()
				}
			}
		case ActionFire:
			if ev.Pressed && !state.IsNotPlaying() {
				l.fire()
			}
		}
	}
	l.input = l.input[:0]
}

func (l *Level) fire() {
	s := l.session
	user := s.User()
	shots := user.Fire()
	if len(shots) == 0 {
		return
	}
	s.Projectiles().AddUser(shots...)
	if name := user.FireSound(); name != "" {
		s.Sound().Play(name)
	}
	s.Events().Push(event.Event{Kind: event.KindShot, Actor: user.ID(), Amount: len(shots)})
}

func (l *Level) trackShield() {
	if l.boss == nil || l.boss.IsDestroyed() || !l.boss.HasShield() {
		return
	}
	if l.boss.Shielded == l.bossShield {
		return
	}
	l.bossShield = l.boss.Shielded
	kind := event.KindShieldDown
	if l.bossShield {
		kind = event.KindShieldUp
	}
	l.session.Events().Push(event.Event{Kind: kind, Actor: l.boss.ID()})
}

func (l *Level) evaluate() {
	s := l.session
	if s.User().IsDestroyed() {
		l.setState(manager.StateGameOver)
		s.Sound().Play(SoundGameOver)
		return
	}
	if !l.goalMet() {
		return
	}
	if l.def.Next != "" {
		l.next = l.def.Next
		l.setState(manager.StateLoading)
		return
	}
	l.setState(manager.StateWin)
	s.Sound().Play(SoundWin)
}

func (l *Level) goalMet() bool {
	s := l.session
	switch l.def.Goal.Type {
	case levels.GoalClearWaves:
		return l.wavesDone() && s.Enemies().Count() == 0
	case levels.GoalKillCount:
		return s.User().Kills() >= l.def.Goal.Target
	case levels.GoalBoss:
		return l.bossDefeated()
	case levels.GoalWavesThenBoss:
		return l.bossDefeated() && s.Enemies().Count() == 0
	default:
		log.Printf("level: %s: unknown goal %q", l.def.Name, l.def.Goal.Type)
		return false
	}
}

func (l *Level) bossDefeated() bool {
	return l.boss != nil && l.boss.IsDestroyed()
}

func (l *Level) setState(next manager.State) {
	s := l.session
	prev := s.State().SetCurrentState(next)
	if prev == next {
		return
	}
	s.Events().Push(event.Event{Kind: event.KindStateChanged, Detail: prev.String() + "->" + next.String()})
}

func (l *Level) report() event.FrameReport {
	s := l.session
	user := s.User()
	r := event.FrameReport{
		Frame:            l.frame,
		Level:            l.def.Name,
		State:            s.State().CurrentState().String(),
		Health:           max(user.CurrentHP(), 0),
		MaxHealth:        user.MaxHP(),
		Kills:            user.Kills(),
		Score:            user.Score(),
		Charges:          user.Charges(),
		Enemies:          s.Enemies().Count(),
		UserProjectiles:  s.Projectiles().User().Count(),
		EnemyProjectiles: s.Projectiles().Enemy().Count(),
		PowerUps:         s.PowerUps().Count(),
		NextLevel:        l.next,
		Events:           s.Events().Drain(),
	}
	if l.boss != nil && !l.boss.IsDestroyed() {
		r.BossHealth = l.boss.CurrentHP()
		r.BossShielded = l.boss.Shielded
	}
	return r
}
