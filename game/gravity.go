package game

import "math"

// zeroFieldEpsilon is the acceleration magnitude (km/s²) below which a field
// is reported as zero with no direction.
const zeroFieldEpsilon = 1e-30

// relativisticFactor is the 1 - 2GM/(c²d) suppression term applied to a
// mass's acceleration contribution. Floored just above zero so the field
// stays finite (and keeps pointing at the mass) when a point sits inside the
// Schwarzschild-like radius.
func relativisticFactor(mass, dist float64) float64 {
	f := 1.0 - 2.0*GravitationalConst*mass/(LightSpeed*LightSpeed*dist)
	if f < GravityFactorFloor {
		f = GravityFactorFloor
	}
	return f
}

// AccelAt returns the net gravitational acceleration (km/s²) at (x, y) from
// every mass-bearing body except self. Contributions are summed in slice
// order; callers comparing results must use relative tolerances, not
// bit-exact equality.
//
// A body closer than ZeroDistanceKm is skipped entirely: the direction is
// undefined there and the defined result is a zero contribution, never NaN.
func AccelAt(x, y float64, bodies []*Body, self *Body) (ax, ay float64) {
	for _, b := range bodies {
		if b == self || b.Mass <= 0 {
			continue
		}

		dx := b.X - x
		dy := b.Y - y
		d2 := dx*dx + dy*dy
		d := math.Sqrt(d2)
		if d < ZeroDistanceKm {
			continue
		}

		accel := GravitationalConst * b.Mass / d2 * relativisticFactor(b.Mass, d)

		ax += dx / d * accel
		ay += dy / d * accel
	}
	return ax, ay
}

// FieldAt returns the field magnitude and unit direction at (x, y). With no
// masses in range, or at a degenerate point, it reports zero magnitude and a
// zero direction; callers must check the magnitude before treating the
// direction as a unit vector.
func FieldAt(x, y float64, bodies []*Body) (mag, dirX, dirY float64) {
	ax, ay := AccelAt(x, y, bodies, nil)

	mag = math.Hypot(ax, ay)
	if mag < zeroFieldEpsilon {
		return 0, 0, 0
	}
	return mag, ax / mag, ay / mag
}
