package level

import (
	"os"
	"path/filepath"
	"testing"

	"relativity/game"
)

func TestDefaultProgression(t *testing.T) {
	s := Default()
	if len(s.Levels) == 0 {
		t.Fatal("default set is empty")
	}

	first := s.Levels[0]
	if first.Name != "first-light" {
		t.Fatalf("first level name = %q", first.Name)
	}
	if len(first.Planets) != 3 {
		t.Fatalf("first level planet count = %d, want 3", len(first.Planets))
	}
}

func TestBuildFirstLight(t *testing.T) {
	bodies := Default().Levels[0].Build()

	if len(bodies) != 5 {
		t.Fatalf("body count = %d, want player + 3 planets + destination", len(bodies))
	}

	byID := map[string]*game.Body{}
	for _, b := range bodies {
		byID[b.ID] = b
	}

	player := byID["player"]
	if player == nil || player.Kind != game.BodyPlayer {
		t.Fatalf("player body missing or wrong kind: %+v", player)
	}
	if player.Mass != 0 {
		t.Fatalf("player mass = %v, want 0", player.Mass)
	}
	if player.X != 0.30*game.ScreenWidthKm || player.Y != 0.30*game.ScreenWidthKm {
		t.Fatalf("player position = (%v, %v)", player.X, player.Y)
	}
	if player.Launched {
		t.Fatal("player starts launched")
	}

	sun := byID["sun"]
	if sun == nil || sun.Kind != game.BodyStatic {
		t.Fatalf("sun body missing or wrong kind: %+v", sun)
	}
	if sun.Mass != game.SunMassKg {
		t.Fatalf("sun mass = %v, want %v", sun.Mass, game.SunMassKg)
	}
	if sun.Radius != 3.0*game.UnitRadiusKm {
		t.Fatalf("sun radius = %v", sun.Radius)
	}

	earth := byID["earth"]
	if earth == nil || earth.Mass != game.EarthMassKg {
		t.Fatalf("earth body wrong: %+v", earth)
	}

	dest := byID["destination"]
	if dest == nil || dest.Kind != game.BodyDestination {
		t.Fatalf("destination body missing or wrong kind: %+v", dest)
	}
	if dest.Mass != 0.6*game.SunMassKg {
		t.Fatalf("destination mass = %v", dest.Mass)
	}
}

func TestBuildDynamicPlanet(t *testing.T) {
	bodies := Default().Levels[1].Build()

	var drifter *game.Body
	for _, b := range bodies {
		if b.ID == "drifter" {
			drifter = b
		}
	}
	if drifter == nil {
		t.Fatal("drifter not built")
	}
	if drifter.Kind != game.BodyDynamic {
		t.Fatalf("drifter kind = %v, want dynamic", drifter.Kind)
	}
	if !drifter.Launched {
		t.Fatal("drifter with initial velocity should start launched")
	}
	if drifter.VY != 40_000 {
		t.Fatalf("drifter vy = %v", drifter.VY)
	}
}

func TestBuildNamesAnonymousPlanets(t *testing.T) {
	l := Level{
		Player:      BodySpec{X: 0.1, Y: 0.1, RadiusUnits: 0.25},
		Planets:     []BodySpec{{X: 0.5, Y: 0.5, SunMasses: 1, RadiusUnits: 1}},
		Destination: BodySpec{X: 0.9, Y: 0.9, RadiusUnits: 1},
	}

	bodies := l.Build()
	if got := bodies[1].ID; got != "planet-1" {
		t.Fatalf("anonymous planet id = %q, want planet-1", got)
	}
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.yaml")
	raw := `levels:
  - name: roundtrip
    player:
      name: player
      x: 0.2
      y: 0.3
      radius_units: 0.25
    planets:
      - name: sun
        x: 0.5
        y: 0.5
        sun_masses: 1.5
        radius_units: 3
      - name: moon
        x: 0.6
        y: 0.4
        earth_masses: 0.0123
        radius_units: 0.5
        vx: 25000
    destination:
      name: destination
      x: 0.9
      y: 0.9
      sun_masses: 0.5
      radius_units: 4
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.Levels) != 1 {
		t.Fatalf("level count = %d", len(s.Levels))
	}

	l := s.Levels[0]
	if l.Name != "roundtrip" {
		t.Fatalf("name = %q", l.Name)
	}
	if l.Planets[0].SunMasses != 1.5 {
		t.Fatalf("sun_masses = %v", l.Planets[0].SunMasses)
	}
	if l.Planets[1].VX != 25000 {
		t.Fatalf("vx = %v", l.Planets[1].VX)
	}

	bodies := l.Build()
	if bodies[2].Kind != game.BodyDynamic {
		t.Fatalf("moving moon kind = %v, want dynamic", bodies[2].Kind)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestLoadEmptySet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("levels: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("want error for a file with no levels")
	}
}
