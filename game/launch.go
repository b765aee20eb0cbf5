package game

import (
	"fmt"
	"math"
)

// LaunchPhase tracks the mouse-drag launch gesture.
type LaunchPhase uint8

const (
	// LaunchIdle: waiting for the initial press.
	LaunchIdle LaunchPhase = iota
	// LaunchAimLocked: press registered, direction fixed.
	LaunchAimLocked
	// LaunchPowering: dragging to set power.
	LaunchPowering
)

// LaunchState is the two-phase aim/power gesture. Angle is locked on the
// first press; power follows the drag until release.
type LaunchState struct {
	Phase LaunchPhase
	Angle float64 // radians
	Power float64 // [0, 1]
}

// Aim locks the launch direction. Only valid from idle.
func (l *LaunchState) Aim(angle float64) {
	if l.Phase != LaunchIdle {
		return
	}
	l.Phase = LaunchAimLocked
	l.Angle = angle
}

// SetPower updates the drag power once the aim is locked.
func (l *LaunchState) SetPower(power float64) {
	if l.Phase == LaunchIdle {
		return
	}
	if power < 0 {
		power = 0
	}
	if power > 1 {
		power = 1
	}
	l.Phase = LaunchPowering
	l.Power = power
}

// Release ends the gesture. Releasing while powering fires and returns the
// locked angle and power; releasing from a bare aim lock cancels.
func (l *LaunchState) Release() (angle, power float64, fired bool) {
	angle, power, fired = l.Angle, l.Power, l.Phase == LaunchPowering
	*l = LaunchState{}
	return angle, power, fired
}

// LaunchVelocity converts an aim angle and raw power fraction into a launch
// velocity. Power is eased (squared) so small drags stay gentle, then capped
// at 99% before scaling by MaxLaunchSpeed, keeping the result strictly
// below c.
func LaunchVelocity(angle, power float64) (vx, vy float64) {
	if power < 0 {
		power = 0
	}
	if power > 1 {
		power = 1
	}

	curved := math.Pow(power, LaunchPowerExponent)
	if curved > LaunchPowerCap {
		curved = LaunchPowerCap
	}

	speed := MaxLaunchSpeed * curved
	return speed * math.Cos(angle), speed * math.Sin(angle)
}

// LaunchPlayer fires the player with the given aim and starts the simulation.
// Only valid while the attempt is paused pre-launch.
func (w *World) LaunchPlayer(angle, power float64) error {
	if w.Phase != PhasePaused {
		return fmt.Errorf("cannot launch while %v", w.Phase)
	}

	p := w.Player()
	if p == nil {
		return fmt.Errorf("no player body in world")
	}

	p.VX, p.VY = LaunchVelocity(angle, power)
	p.Launched = true

	return w.SetPhase(PhaseRunning)
}
