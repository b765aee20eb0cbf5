package protocol

// Messages coming in from the client.

type Hello struct {
	V    int    `json:"v"`              // protocol version
	Name string `json:"name,omitempty"` // optional display name
}

// Launch carries the aim gesture. Sent as MsgAim while the player drags
// (updates the preview state) and as MsgLaunch on release (fires).
type Launch struct {
	Angle float64 `json:"angle"` // radians
	Power float64 `json:"power"` // [0, 1]; eased and capped server-side
}

// Rate nudges the simulation rate by whole steps (±1 per key press).
type Rate struct {
	Steps int `json:"steps"`
}

// Pause, Reset and NextLevel carry no payload beyond the envelope type, but
// the envelope codec requires a non-nil body.
type Empty struct{}
