package render

import (
	"fmt"

	"relativity/game"
)

// FormatDays renders a clock value the way the HUD shows it.
func FormatDays(label string, days float64) string {
	return fmt.Sprintf("%s = %2.2f", label, days)
}

// FormatVelocityFraction renders a speed as a fraction of light speed,
// e.g. "v = 0.71c".
func FormatVelocityFraction(speedKms float64) string {
	return fmt.Sprintf("v = %.2fc", speedKms/game.LightSpeed)
}
