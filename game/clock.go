package game

// Clock accumulates elapsed simulated time in seconds. Monotonically
// non-decreasing: advancing by a negative duration is ignored.
type Clock struct {
	Elapsed float64 // s
}

// Advance adds undilated coordinate time.
func (c *Clock) Advance(dt float64) {
	if dt > 0 {
		c.Elapsed += dt
	}
}

// AdvanceDilated adds proper time for a frame that spanned dt of coordinate
// time under the given dilation factors. Both gammas are ≥ 1 for valid
// inputs, so a dilated clock can never outrun an undilated one.
func (c *Clock) AdvanceDilated(dt, gammaV, gammaG float64) {
	c.Advance(dt / (gammaV * gammaG))
}

// Days returns the elapsed time in simulated days, the unit the HUD shows.
func (c *Clock) Days() float64 {
	return c.Elapsed / SecondsPerDay
}

func (c *Clock) Reset() {
	c.Elapsed = 0
}
