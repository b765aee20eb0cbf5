package game

import "math"

// VelocityGamma is the special-relativistic dilation factor 1/√(1-v²/c²).
// The launch power cap keeps honest speeds below c, but the integrator never
// clamps, so a gravity assist can push a body past light speed. The v²/c²
// ratio is therefore capped just under 1: at or above c this returns a huge
// finite gamma instead of a non-real result, and downstream consumers (the
// clocks, the JSON snapshot) keep working.
func VelocityGamma(speed float64) float64 {
	ratio := (speed * speed) / (LightSpeed * LightSpeed)
	if ratio > VelocityRatioCeiling {
		ratio = VelocityRatioCeiling
	}
	return 1.0 / math.Sqrt(1.0-ratio)
}

// GravitationalGamma approximates general-relativistic dilation at (x, y) as
// the product over every mass of 1/√(1 - 2GM/(c²d)), each factor floored at
// GammaFactorFloor so it stays real arbitrarily close to a mass. With no
// masses the result is exactly 1.0. Multiplying (rather than summing) the
// per-mass factors compounds independent gravity wells in exponent space.
func GravitationalGamma(x, y float64, bodies []*Body, self *Body) float64 {
	total := 1.0

	for _, b := range bodies {
		if b == self || b.Mass <= 0 {
			continue
		}

		d := math.Hypot(b.X-x, b.Y-y)
		if d < ZeroDistanceKm {
			continue
		}

		f := 1.0 - 2.0*GravitationalConst*b.Mass/(LightSpeed*LightSpeed*d)
		if f < GammaFactorFloor {
			f = GammaFactorFloor
		}

		total *= 1.0 / math.Sqrt(f)
	}

	return total
}
