package render

import colorful "github.com/lucasb-eyer/go-colorful"

// Gradient anchors. Cool is the γ≈1 rest color, warm is the γ≥3 extreme; the
// HUD gradient passes through a purple midpoint for a three-stop ramp while
// the trail blends straight from cool to warm.
var (
	coolAnchor = colorful.Color{R: 0.2, G: 0.6, B: 1.0}
	midAnchor  = colorful.Color{R: 0.6, G: 0.2, B: 0.8}
	warmAnchor = colorful.Color{R: 1.0, G: 0.3, B: 0.0}
)

// RGBA is a straight-alpha color with channels in [0, 1].
type RGBA struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// GammaBlend normalizes a dilation factor into [0, 1]: γ=1 maps to 0 and
// γ≥3 saturates at 1.
func GammaBlend(gamma float64) float64 {
	t := (gamma - 1.0) / 2.0
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// TrailColor maps a combined γ_v·γ_g to the trail's cool→warm gradient.
// Alpha rises with gamma so hot sections of the trajectory read brighter.
func TrailColor(gamma float64) RGBA {
	t := GammaBlend(gamma)
	c := coolAnchor.BlendRgb(warmAnchor, t)
	return RGBA{R: c.R, G: c.G, B: c.B, A: 0.7 + 0.2*t}
}

// HudColor maps a gamma to the HUD readout's three-stop cool→mid→warm ramp.
func HudColor(gamma float64) RGBA {
	t := GammaBlend(gamma)

	var c colorful.Color
	if t < 0.5 {
		c = coolAnchor.BlendRgb(midAnchor, t*2.0)
	} else {
		c = midAnchor.BlendRgb(warmAnchor, (t-0.5)*2.0)
	}
	return RGBA{R: c.R, G: c.G, B: c.B, A: 1.0}
}
