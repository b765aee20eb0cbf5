package game

import "fmt"

// Phase is the per-attempt outcome state machine.
type Phase uint8

const (
	// PhasePaused: pre-launch, aiming. The integrator is idle.
	PhasePaused Phase = iota
	// PhaseRunning: simulating.
	PhaseRunning
	// PhaseSimPaused: user-paused mid-flight.
	PhaseSimPaused
	// PhaseFinished: reached the destination. Terminal until an explicit
	// reset or next-level command.
	PhaseFinished
	// PhaseFailed: hit an obstacle. Terminal until the auto-reset delay fires.
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhasePaused:
		return "paused"
	case PhaseRunning:
		return "running"
	case PhaseSimPaused:
		return "sim_paused"
	case PhaseFinished:
		return "finished"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// CanTransition reports whether next is a legal edge from p.
func (p Phase) CanTransition(next Phase) bool {
	switch p {
	case PhasePaused:
		return next == PhaseRunning
	case PhaseRunning:
		return next == PhaseSimPaused || next == PhaseFinished || next == PhaseFailed
	case PhaseSimPaused:
		return next == PhaseRunning
	case PhaseFinished, PhaseFailed:
		return next == PhasePaused
	}
	return false
}

// SetPhase validates and applies a phase transition.
func (w *World) SetPhase(next Phase) error {
	if !w.Phase.CanTransition(next) {
		return fmt.Errorf("illegal phase transition %v -> %v", w.Phase, next)
	}
	w.Phase = next
	return nil
}
