package render

// MaxTrailPoints caps the trail buffer; oldest samples are evicted first.
const MaxTrailPoints = 2000

// TrailPoint is one recorded sample: screen position plus the gamma-derived
// color at the moment it was recorded.
type TrailPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color RGBA    `json:"color"`
}

// Trail is a bounded ordered buffer of trajectory samples, one appended per
// running tick. Purely a rendering aid; it has no physical meaning and is
// cleared on level reset.
type Trail struct {
	Points []TrailPoint
}

// Record appends a sample for the given screen position and combined gamma,
// evicting the oldest points past capacity.
func (t *Trail) Record(x, y, gamma float64) {
	t.Points = append(t.Points, TrailPoint{X: x, Y: y, Color: TrailColor(gamma)})

	if excess := len(t.Points) - MaxTrailPoints; excess > 0 {
		t.Points = append(t.Points[:0], t.Points[excess:]...)
	}
}

func (t *Trail) Clear() {
	t.Points = t.Points[:0]
}
