package main

import "github.com/milk9111/skystrike/system"

// autopilot lines the user up with the nearest enemy and fires on a fixed
// cadence. It forgets its held keys whenever the campaign swaps sessions,
// since the new user starts at rest.
type autopilot struct {
	session  *system.Session
	frame    int
	vertical system.Action
	moving   bool
}

const fireEvery = 5

func (a *autopilot) steer(c *system.Campaign) {
	s := c.Session()
	if s != a.session {
		*a = autopilot{session: s}
	}
	a.frame++
	user := s.User()
	uy := user.Bounds().Center().Y

	target, best, found := 0.0, 0.0, false
	for _, e := range s.Enemies().Items() {
		d := e.X - user.X
		if e.IsDestroyed() || d < 0 {
			continue
		}
		if !found || d < best {
			target, best, found = e.HitBounds().Center().Y, d, true
		}
	}

	want, move := system.ActionUp, false
	switch {
	case !found:
	case target < uy-8:
		want, move = system.ActionUp, true
	case target > uy+8:
		want, move = system.ActionDown, true
	}
	if a.moving && (!move || want != a.vertical) {
		c.HandleInput(system.Release(a.vertical))
		a.moving = false
	}
	if move && !a.moving {
		c.HandleInput(system.Press(want))
		a.vertical, a.moving = want, true
	}

	if a.frame%fireEvery == 0 {
		c.HandleInput(system.Press(system.ActionFire))
	}
}
