package game

// Physical constants and gameplay tuning. Distances are kilometers, masses
// kilograms, velocities km/s and times seconds unless the name says otherwise.
// Masses carry a large scale factor so gravity is playable at screen-scale
// distances; everything downstream (gammas, clocks, the grid warp) inherits it.
const (
	GravitationalConst = 6.674e-20 // km³/(kg·s²)
	LightSpeed         = 299_792.0 // km/s

	MassFactor  = 100_000_000.0
	SunMassKg   = MassFactor * 1.989e30
	EarthMassKg = MassFactor * 5.972e24

	UnitRadiusKm  = 60_000_000.0    // planet radii are multiples of this
	ScreenWidthKm = 6_000_000_000.0 // world width; level fractions scale by this

	SimDaysPerRealSecond = 0.1 // simulated days elapsing per real second at rate 1.0
	SecondsPerDay        = 86_400.0

	MaxLaunchSpeed      = 0.99 * LightSpeed // launch input can never reach c
	LaunchPowerCap      = 0.99
	LaunchPowerExponent = 2.0 // squared easing on the raw drag power

	// VelocityRatioCeiling caps v²/c² in the velocity gamma, so a body pushed
	// past light speed by a gravity assist yields a huge finite gamma rather
	// than a non-real one.
	VelocityRatioCeiling = 1.0 - 1e-9

	// Floors for the relativistic terms near a mass. The gravity floor keeps
	// the field finite inside a Schwarzschild-like radius; the gamma floor is
	// looser so dilation still spikes visibly there.
	GravityFactorFloor = 1e-6
	GammaFactorFloor   = 1e-4
	ZeroDistanceKm     = 1e-30

	SimRateMin     = 0.25
	SimRateMax     = 2.0
	SimRateStep    = 0.25
	SimRateDefault = 1.0

	FailureResetSeconds = 1.5 // real-time delay before a failed attempt resets
)
