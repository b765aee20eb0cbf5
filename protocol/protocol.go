package protocol

import "encoding/json"

// Message types on the wire.
const (
	MsgHello   = "hello"
	MsgWelcome = "welcome"
	MsgState   = "state"
	MsgAim     = "aim"
	MsgLaunch  = "launch"
	MsgRate    = "rate"
	MsgPause   = "pause"
	MsgReset   = "reset"
	MsgNext    = "next_level"
)

// Timing. The simulation steps at SimTickHz; snapshots go out at BroadcastHz,
// which must divide it evenly.
const (
	SimTickHz   = 40
	BroadcastHz = 20
)

// Envelope wraps every message with a type tag and a raw payload.
type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"`
}
