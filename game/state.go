package game

// Internal truth: the authoritative simulation state for one level attempt.

type World struct {
	Tick  int
	Phase Phase
	Rate  float64 // simulation rate multiplier, [SimRateMin, SimRateMax]

	Bodies []*Body

	// Gamma pair, recomputed every running tick from the player's state.
	// Never accumulated; the clocks hold the only history.
	GammaV float64
	GammaG float64

	PlayerClock   Clock // proper time
	ObserverClock Clock // coordinate time

	Launch LaunchState
}

// NewWorld builds a paused world around the given bodies.
func NewWorld(bodies []*Body) *World {
	return &World{
		Phase:  PhasePaused,
		Rate:   SimRateDefault,
		Bodies: bodies,
		GammaV: 1.0,
		GammaG: 1.0,
	}
}

// Player returns the player body, or nil during level transitions. Systems
// missing their singleton skip work for the tick rather than panicking.
func (w *World) Player() *Body {
	return w.firstOfKind(BodyPlayer)
}

// Destination returns the level goal body, or nil.
func (w *World) Destination() *Body {
	return w.firstOfKind(BodyDestination)
}

func (w *World) firstOfKind(k BodyKind) *Body {
	for _, b := range w.Bodies {
		if b.Kind == k {
			return b
		}
	}
	return nil
}

// AdjustRate nudges the simulation rate by whole steps, clamped to the legal
// range. Rate is only adjustable mid-flight; in any other phase this is a
// no-op.
func (w *World) AdjustRate(steps int) {
	if w.Phase != PhaseRunning {
		return
	}

	r := w.Rate + float64(steps)*SimRateStep
	if r < SimRateMin {
		r = SimRateMin
	}
	if r > SimRateMax {
		r = SimRateMax
	}
	w.Rate = r
}

// Reset rebuilds the world for a fresh attempt: new bodies, zeroed clocks,
// unit gammas, default rate, paused pre-launch.
func (w *World) Reset(bodies []*Body) {
	w.Tick = 0
	w.Phase = PhasePaused
	w.Rate = SimRateDefault
	w.Bodies = bodies
	w.GammaV = 1.0
	w.GammaG = 1.0
	w.PlayerClock.Reset()
	w.ObserverClock.Reset()
	w.Launch = LaunchState{}
}

// TogglePause flips between running and user-paused. Any other phase is left
// alone.
func (w *World) TogglePause() {
	switch w.Phase {
	case PhaseRunning:
		w.Phase = PhaseSimPaused
	case PhaseSimPaused:
		w.Phase = PhaseRunning
	}
}
