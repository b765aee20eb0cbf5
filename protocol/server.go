package protocol

import "relativity/render"

type Welcome struct {
	PlayerID string `json:"playerId"`
	TickHz   int    `json:"tickHz"`
}

// State is the per-broadcast snapshot: everything the render collaborator
// needs for one frame.
type State struct {
	Tick  int     `json:"tick"`
	Phase string  `json:"phase"`
	Rate  float64 `json:"rate"`
	Level string  `json:"level"`

	Bodies []BodySnapshot      `json:"bodies"`
	Hud    HudSnapshot         `json:"hud"`
	Trail  []render.TrailPoint `json:"trail,omitempty"`
	Grid   *GridSnapshot       `json:"grid,omitempty"`
	Launch *LaunchSnapshot     `json:"launch,omitempty"`
}

// BodySnapshot places one body in screen space.
type BodySnapshot struct {
	ID       string  `json:"id"`
	Kind     string  `json:"kind"`
	X        float64 `json:"x"`        // px
	Y        float64 `json:"y"`        // px
	RadiusPx float64 `json:"radiusPx"`
	Angle    float64 `json:"a,omitempty"` // sprite heading, radians
}

// HudSnapshot carries the clock and gamma readouts. Times are simulated
// days; Velocity is the player speed as a fraction of c, preformatted the
// way the HUD shows it.
type HudSnapshot struct {
	PlayerDays   float64     `json:"tp"`
	ObserverDays float64     `json:"to"`
	GammaV       float64     `json:"gv"`
	GammaG       float64     `json:"gg"`
	Velocity     string      `json:"v"`
	Color        render.RGBA `json:"color"` // combined-gamma HUD tint
}

// GridSnapshot is the warped gravity grid: displaced vertices plus colored
// wireframe segments indexing into them.
type GridSnapshot struct {
	Vertices []render.Vertex  `json:"vertices"`
	Segments []render.Segment `json:"segments"`
}

// LaunchSnapshot mirrors the in-progress aim gesture so clients can draw the
// direction line and power bar.
type LaunchSnapshot struct {
	Phase string  `json:"phase"`
	Angle float64 `json:"angle"`
	Power float64 `json:"power"`
}
