// Package level loads the static level configuration: where the planets sit,
// how heavy they are, and where the player starts and must arrive. Positions
// are screen fractions, masses multiples of the reference sun/earth masses,
// radii multiples of the unit radius. A level is read once at spawn and
// rebuilt from scratch on every reset.
package level

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"relativity/game"
)

// BodySpec is one configured body. SunMasses and EarthMasses add together,
// so a spec normally sets one of the two. A non-zero initial velocity makes
// a planet dynamic: it is advanced by the same integrator as the player.
type BodySpec struct {
	Name        string  `yaml:"name"`
	X           float64 `yaml:"x"` // screen fraction
	Y           float64 `yaml:"y"` // screen fraction
	SunMasses   float64 `yaml:"sun_masses,omitempty"`
	EarthMasses float64 `yaml:"earth_masses,omitempty"`
	RadiusUnits float64 `yaml:"radius_units"`
	VX          float64 `yaml:"vx,omitempty"` // km/s
	VY          float64 `yaml:"vy,omitempty"` // km/s
}

type Level struct {
	Name        string     `yaml:"name"`
	Player      BodySpec   `yaml:"player"`
	Planets     []BodySpec `yaml:"planets"`
	Destination BodySpec   `yaml:"destination"`
}

// Set is an ordered level progression, the root of the YAML file.
type Set struct {
	Levels []Level `yaml:"levels"`
}

// Load reads a level set from a YAML file.
func Load(path string) (*Set, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Set
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(s.Levels) == 0 {
		return nil, fmt.Errorf("%s contains no levels", path)
	}
	return &s, nil
}

func (s *BodySpec) mass() float64 {
	return s.SunMasses*game.SunMassKg + s.EarthMasses*game.EarthMassKg
}

func (s *BodySpec) body(id string, kind game.BodyKind) *game.Body {
	launched := kind == game.BodyDynamic && (s.VX != 0 || s.VY != 0)

	return &game.Body{
		ID:   id,
		Kind: kind,
		// Both axes scale by the world width so level fractions stay square.
		X:        s.X * game.ScreenWidthKm,
		Y:        s.Y * game.ScreenWidthKm,
		VX:       s.VX,
		VY:       s.VY,
		Mass:     s.mass(),
		Radius:   s.RadiusUnits * game.UnitRadiusKm,
		Launched: launched,
	}
}

// Build converts the level into fresh simulation bodies.
func (l *Level) Build() []*game.Body {
	bodies := make([]*game.Body, 0, len(l.Planets)+2)

	bodies = append(bodies, l.Player.body("player", game.BodyPlayer))

	for i, p := range l.Planets {
		kind := game.BodyStatic
		if p.VX != 0 || p.VY != 0 {
			kind = game.BodyDynamic
		}
		id := p.Name
		if id == "" {
			id = fmt.Sprintf("planet-%d", i+1)
		}
		bodies = append(bodies, p.body(id, kind))
	}

	bodies = append(bodies, l.Destination.body("destination", game.BodyDestination))

	return bodies
}

// Default is the built-in progression used when no level file is configured.
func Default() *Set {
	return &Set{Levels: []Level{
		{
			Name:   "first-light",
			Player: BodySpec{Name: "player", X: 0.30, Y: 0.30, RadiusUnits: 0.25},
			Planets: []BodySpec{
				{Name: "sun", X: 0.50, Y: 0.50, SunMasses: 1.0, RadiusUnits: 3.0},
				{Name: "sun2", X: 0.80, Y: 0.70, SunMasses: 0.4, RadiusUnits: 2.0},
				{Name: "earth", X: 0.28, Y: 0.28, EarthMasses: 1.0, RadiusUnits: 2.0},
			},
			Destination: BodySpec{Name: "destination", X: 0.90, Y: 0.90, SunMasses: 0.6, RadiusUnits: 4.0},
		},
		{
			Name:   "wanderer",
			Player: BodySpec{Name: "player", X: 0.10, Y: 0.50, RadiusUnits: 0.25},
			Planets: []BodySpec{
				{Name: "sun", X: 0.45, Y: 0.45, SunMasses: 1.2, RadiusUnits: 3.0},
				// Drifting planet: crosses the direct route to the goal.
				{Name: "drifter", X: 0.60, Y: 0.20, EarthMasses: 2.0, RadiusUnits: 1.5, VY: 40_000},
			},
			Destination: BodySpec{Name: "destination", X: 0.90, Y: 0.55, SunMasses: 0.5, RadiusUnits: 3.0},
		},
	}}
}
