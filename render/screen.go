// Package render holds the derived visual mappings: world-to-screen
// projection, gamma-to-color gradients, the warped gravity grid, and the
// trajectory trail. Everything here is a read-only consumer of the
// simulation; nothing feeds back into physics.
package render

import "relativity/game"

const (
	ScreenWidthPx  = 1920.0
	ScreenHeightPx = 1080.0

	// World height follows the screen aspect ratio.
	ScreenHeightKm = game.ScreenWidthKm * ScreenHeightPx / ScreenWidthPx
)

// ScreenFromWorld projects a world position (km) into screen pixels, origin
// bottom-left.
func ScreenFromWorld(xKm, yKm float64) (px, py float64) {
	return xKm / game.ScreenWidthKm * ScreenWidthPx, yKm / ScreenHeightKm * ScreenHeightPx
}

// PixelsFromLength converts a world length to pixels along the x axis.
func PixelsFromLength(km float64) float64 {
	return km / game.ScreenWidthKm * ScreenWidthPx
}
