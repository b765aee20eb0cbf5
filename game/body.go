package game

import "math"

type BodyKind uint8

const (
	// BodyStatic is a fixed planet: a field source that never moves.
	BodyStatic BodyKind = iota
	// BodyDynamic is a planet with its own velocity, advanced by the integrator.
	BodyDynamic
	// BodyPlayer is the launched craft. Carries no mass, so it is never a
	// field source for other bodies.
	BodyPlayer
	// BodyDestination is the level goal. A field source, but colliding with it
	// finishes the level instead of failing it.
	BodyDestination
)

func (k BodyKind) String() string {
	switch k {
	case BodyStatic:
		return "static"
	case BodyDynamic:
		return "dynamic"
	case BodyPlayer:
		return "player"
	case BodyDestination:
		return "destination"
	}
	return "unknown"
}

type Body struct {
	ID   string
	Kind BodyKind

	X, Y   float64 // km
	VX, VY float64 // km/s

	Mass   float64 // kg; zero for the player
	Radius float64 // km

	// Launched gates the integrator: a movable body sits still until it is
	// launched (the player) or spawned with an initial velocity (dynamic
	// planets).
	Launched bool
}

// Movable reports whether the integrator may advance this body.
func (b *Body) Movable() bool {
	return b.Kind == BodyPlayer || b.Kind == BodyDynamic
}

// Obstacle reports whether colliding with this body fails the attempt.
func (b *Body) Obstacle() bool {
	return b.Kind == BodyStatic || b.Kind == BodyDynamic
}

// Speed returns the scalar speed in km/s.
func (b *Body) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Heading returns the travel direction in radians, with the sprite convention
// that a rocket drawn pointing up has heading 0.
func (b *Body) Heading() float64 {
	if b.VX == 0 && b.VY == 0 {
		return 0
	}
	return math.Atan2(b.VY, b.VX) - math.Pi/2
}

// Collided reports whether two circles overlap. Exact tangency counts:
// the boundary is inclusive.
func Collided(a, b *Body) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	rr := a.Radius + b.Radius
	return dx*dx+dy*dy <= rr*rr
}
