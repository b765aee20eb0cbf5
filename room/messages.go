package room

// Conn is the transport a room writes snapshots to.
type Conn interface {
	Send([]byte) error
	Close() error
}

// Join: issued once after hello is parsed.
type Join struct {
	Conn  Conn
	Name  string
	Reply chan<- JoinResult
}

type JoinResult struct {
	PlayerID string
}

// Aim: update the launch preview while dragging.
type Aim struct {
	PlayerID string
	Angle    float64
	Power    float64
}

// Launch: commit the gesture and fire.
type Launch struct {
	PlayerID string
	Angle    float64
	Power    float64
}

// RateAdjust: nudge the simulation rate by whole steps.
type RateAdjust struct {
	PlayerID string
	Steps    int
}

// PauseToggle: flip between running and user-paused.
type PauseToggle struct {
	PlayerID string
}

// Reset: abandon the attempt and respawn the current level.
type Reset struct {
	PlayerID string
}

// NextLevel: after a success, advance the progression.
type NextLevel struct {
	PlayerID string
}

// Leave: issued on disconnect.
type Leave struct {
	PlayerID string
}
