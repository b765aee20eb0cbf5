package game

import (
	"math"
	"testing"
)

func TestLaunchVelocityZeroPower(t *testing.T) {
	vx, vy := LaunchVelocity(0.5, 0)
	if vx != 0 || vy != 0 {
		t.Fatalf("zero power velocity = (%v, %v), want (0, 0)", vx, vy)
	}
}

func TestLaunchVelocityStaysBelowLightSpeed(t *testing.T) {
	for _, power := range []float64{0.1, 0.5, 0.9, 1.0, 2.0} {
		vx, vy := LaunchVelocity(math.Pi/3, power)
		speed := math.Hypot(vx, vy)
		if speed >= LightSpeed {
			t.Fatalf("power %v launches at %v km/s, at or above c", power, speed)
		}
	}

	// Full power hits the cap exactly: 0.99 of the 0.99c max.
	vx, vy := LaunchVelocity(0, 1.0)
	want := MaxLaunchSpeed * LaunchPowerCap
	if !relClose(math.Hypot(vx, vy), want, 1e-12) {
		t.Fatalf("full power speed = %v, want %v", math.Hypot(vx, vy), want)
	}
}

func TestLaunchVelocityEasingIsMonotone(t *testing.T) {
	prev := -1.0
	for power := 0.0; power <= 1.0; power += 0.05 {
		vx, vy := LaunchVelocity(0, power)
		speed := math.Hypot(vx, vy)
		if speed < prev {
			t.Fatalf("speed decreased at power %v: %v < %v", power, speed, prev)
		}
		prev = speed
	}
}

func TestLaunchVelocityEasingIsSubLinear(t *testing.T) {
	// Squared easing: half drag gives a quarter of full speed, not half.
	vxHalf, vyHalf := LaunchVelocity(0, 0.5)
	vxFull, vyFull := LaunchVelocity(0, 0.9)

	half := math.Hypot(vxHalf, vyHalf)
	full := math.Hypot(vxFull, vyFull)

	if half >= full*0.5 {
		t.Fatalf("easing not sub-linear: half drag %v vs 0.9 drag %v", half, full)
	}
}

func TestLaunchVelocityDirection(t *testing.T) {
	vx, vy := LaunchVelocity(math.Pi/4, 0.8)
	if vx <= 0 || vy <= 0 {
		t.Fatalf("diagonal launch = (%v, %v), want both positive", vx, vy)
	}
	if !relClose(vx, vy, 1e-12) {
		t.Fatalf("45-degree launch should have equal components: %v vs %v", vx, vy)
	}
}

func TestLaunchGesture(t *testing.T) {
	var l LaunchState

	l.Aim(1.0)
	if l.Phase != LaunchAimLocked || l.Angle != 1.0 {
		t.Fatalf("after aim: phase=%v angle=%v", l.Phase, l.Angle)
	}

	// A second aim while locked must not re-lock the angle.
	l.Aim(2.0)
	if l.Angle != 1.0 {
		t.Fatalf("angle re-locked to %v", l.Angle)
	}

	l.SetPower(0.6)
	if l.Phase != LaunchPowering || l.Power != 0.6 {
		t.Fatalf("after power: phase=%v power=%v", l.Phase, l.Power)
	}

	angle, power, fired := l.Release()
	if !fired || angle != 1.0 || power != 0.6 {
		t.Fatalf("release = (%v, %v, %v), want (1.0, 0.6, true)", angle, power, fired)
	}
	if l.Phase != LaunchIdle {
		t.Fatalf("phase after release = %v, want idle", l.Phase)
	}
}

func TestLaunchGestureCancelsWithoutDrag(t *testing.T) {
	var l LaunchState

	l.Aim(1.0)
	if _, _, fired := l.Release(); fired {
		t.Fatalf("release from bare aim lock should cancel, not fire")
	}
	if l.Phase != LaunchIdle {
		t.Fatalf("phase after cancel = %v, want idle", l.Phase)
	}
}

func TestLaunchGestureIgnoresPowerWhileIdle(t *testing.T) {
	var l LaunchState

	l.SetPower(0.5)
	if l.Phase != LaunchIdle {
		t.Fatalf("power before aim moved phase to %v", l.Phase)
	}
}

func TestLaunchPowerClamped(t *testing.T) {
	var l LaunchState
	l.Aim(0)
	l.SetPower(1.5)
	if l.Power != 1.0 {
		t.Fatalf("power = %v, want clamped to 1.0", l.Power)
	}
	l.SetPower(-0.5)
	if l.Power != 0.0 {
		t.Fatalf("power = %v, want clamped to 0.0", l.Power)
	}
}

func TestLaunchPlayerStartsSimulation(t *testing.T) {
	player := &Body{ID: "player", Kind: BodyPlayer, Radius: UnitRadiusKm / 4}
	w := NewWorld([]*Body{player})

	if err := w.LaunchPlayer(0, 0.9); err != nil {
		t.Fatalf("launch failed: %v", err)
	}
	if w.Phase != PhaseRunning {
		t.Fatalf("phase after launch = %v, want running", w.Phase)
	}
	if !player.Launched || player.VX <= 0 {
		t.Fatalf("player not launched: launched=%v vx=%v", player.Launched, player.VX)
	}

	// Launching mid-flight is a caller bug, reported as an error.
	if err := w.LaunchPlayer(0, 0.9); err == nil {
		t.Fatalf("expected error launching while running")
	}
}

func TestLaunchPlayerWithoutPlayerBody(t *testing.T) {
	w := NewWorld(nil)
	if err := w.LaunchPlayer(0, 0.5); err == nil {
		t.Fatalf("expected error with no player body")
	}
	if w.Phase != PhasePaused {
		t.Fatalf("phase = %v, want still paused", w.Phase)
	}
}
