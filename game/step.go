package game

import "log"

// Step advances the world by one simulation tick. realDt is the wall-clock
// seconds since the previous tick; the simulated span is scaled by the
// days-per-second factor and the user rate multiplier, and the same span
// feeds both the integrator and the clocks so physics and time dilation stay
// synchronized under rate changes.
//
// Stage order is fixed: all velocity updates, then all position updates,
// then gammas, clocks, and the collision check. Anything rendering-related
// (trail, grid, HUD) consumes the results afterwards and never feeds back.
func Step(w *World, realDt float64) {
	if w.Phase != PhaseRunning {
		return
	}

	w.Tick++

	dt := SimDaysPerRealSecond * SecondsPerDay * realDt * w.Rate

	velocityUpdate(w, dt)
	positionUpdate(w, dt)
	gammaUpdate(w)
	clockUpdate(w, dt)
	collisionCheck(w)
}

// velocityUpdate accumulates gravitational acceleration into each launched
// body's velocity. Accelerations for every body are computed against the
// tick-start positions before any write happens, so bodies updated in the
// same tick never observe each other's new state.
func velocityUpdate(w *World, dt float64) {
	type pending struct {
		b      *Body
		ax, ay float64
	}

	updates := make([]pending, 0, len(w.Bodies))
	for _, b := range w.Bodies {
		if !b.Movable() || !b.Launched {
			continue
		}
		ax, ay := AccelAt(b.X, b.Y, w.Bodies, b)
		updates = append(updates, pending{b, ax, ay})
	}

	for _, u := range updates {
		u.b.VX += u.ax * dt
		u.b.VY += u.ay * dt

		// Not clamped: the launch cap keeps honest inputs sub-light, so
		// crossing c here means an extreme slingshot worth knowing about.
		if s := u.b.Speed(); s >= LightSpeed {
			log.Printf("body %s at %.0f km/s exceeds light speed", u.b.ID, s)
		}
	}
}

func positionUpdate(w *World, dt float64) {
	for _, b := range w.Bodies {
		if !b.Movable() || !b.Launched {
			continue
		}
		b.X += b.VX * dt
		b.Y += b.VY * dt
	}
}

// gammaUpdate recomputes the gamma pair from the player's finalized state.
func gammaUpdate(w *World) {
	p := w.Player()
	if p == nil {
		return
	}
	w.GammaV = VelocityGamma(p.Speed())
	w.GammaG = GravitationalGamma(p.X, p.Y, w.Bodies, p)
}

func clockUpdate(w *World, dt float64) {
	w.PlayerClock.AdvanceDilated(dt, w.GammaV, w.GammaG)
	w.ObserverClock.Advance(dt)
}

// collisionCheck tests the player against the destination (success) and then
// against every obstacle (failure). When both overlap in the same tick the
// later check wins, so failure overwrites success.
func collisionCheck(w *World) {
	p := w.Player()
	if p == nil {
		return
	}

	next := w.Phase

	if d := w.Destination(); d != nil && Collided(p, d) {
		next = PhaseFinished
	}

	for _, b := range w.Bodies {
		if b.Obstacle() && Collided(p, b) {
			next = PhaseFailed
		}
	}

	if next != w.Phase {
		if err := w.SetPhase(next); err != nil {
			log.Printf("collision outcome: %v", err)
		}
	}
}
