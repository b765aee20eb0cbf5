package room

import (
	"log"
	"time"

	"github.com/google/uuid"

	"relativity/game"
	"relativity/level"
	"relativity/protocol"
	"relativity/render"
)

// Room runs one simulation session: the tick loop, the level progression,
// the trail buffer and the failure auto-reset timer. All state is owned by
// the Run goroutine; clients talk to it through Inbox.
type Room struct {
	Inbox chan any

	tickHz         int
	broadcastEvery int

	levels   *level.Set
	levelIdx int
	world    *game.World
	trail    render.Trail
	frame    int

	// failTicksLeft counts down real-time ticks after a failure before the
	// level auto-resets. Deliberately independent of the simulation rate.
	failTicksLeft int

	clients map[string]Conn
	quit    chan struct{}

	Code    string           // room code (e.g. "ABC123")
	OnEmpty func(code string) // called when the last player leaves
}

func New(levels *level.Set) *Room {
	broadcastEvery := protocol.SimTickHz / protocol.BroadcastHz
	if broadcastEvery <= 0 {
		broadcastEvery = 1
	}

	r := &Room{
		Inbox:          make(chan any, 256),
		tickHz:         protocol.SimTickHz,
		broadcastEvery: broadcastEvery,
		levels:         levels,
		clients:        make(map[string]Conn),
		quit:           make(chan struct{}),
	}
	r.world = game.NewWorld(r.currentLevel().Build())
	return r
}

func (r *Room) Stop() {
	close(r.quit)
}

// NumPlayers returns the current number of connected clients.
func (r *Room) NumPlayers() int {
	return len(r.clients)
}

func (r *Room) currentLevel() *level.Level {
	return &r.levels.Levels[r.levelIdx]
}

func (r *Room) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(r.tickHz))
	defer ticker.Stop()

	realDt := 1.0 / float64(r.tickHz)

	for {
		select {
		case <-r.quit:
			return
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		case <-ticker.C:
			r.tick(realDt)
		}
	}
}

// tick advances the simulation one frame and broadcasts on schedule. The
// trail sample is recorded after Step so it sees the tick's final gammas.
func (r *Room) tick(realDt float64) {
	wasRunning := r.world.Phase == game.PhaseRunning

	game.Step(r.world, realDt)

	if wasRunning {
		if p := r.world.Player(); p != nil {
			sx, sy := render.ScreenFromWorld(p.X, p.Y)
			r.trail.Record(sx, sy, r.world.GammaV*r.world.GammaG)
		}
	}

	if wasRunning && r.world.Phase == game.PhaseFailed {
		r.failTicksLeft = int(game.FailureResetSeconds * float64(r.tickHz))
	} else if r.world.Phase == game.PhaseFailed && r.failTicksLeft > 0 {
		r.failTicksLeft--
		if r.failTicksLeft == 0 {
			r.resetLevel()
		}
	}

	r.frame++
	if r.frame%r.broadcastEvery == 0 {
		r.broadcastState()
	}
}

func (r *Room) resetLevel() {
	r.world.Reset(r.currentLevel().Build())
	r.trail.Clear()
	r.failTicksLeft = 0
}

func (r *Room) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		playerID := uuid.NewString()
		r.clients[playerID] = c.Conn
		c.Reply <- JoinResult{PlayerID: playerID}
		r.sendStateTo(c.Conn)
	case Aim:
		if !r.known(c.PlayerID) {
			return
		}
		r.world.Launch.Aim(c.Angle)
		r.world.Launch.SetPower(c.Power)
	case Launch:
		if !r.known(c.PlayerID) {
			return
		}
		r.world.Launch.Aim(c.Angle)
		r.world.Launch.SetPower(c.Power)
		angle, power, fired := r.world.Launch.Release()
		if !fired {
			return
		}
		if err := r.world.LaunchPlayer(angle, power); err != nil {
			log.Printf("launch rejected: %v", err)
		}
	case RateAdjust:
		if !r.known(c.PlayerID) {
			return
		}
		r.world.AdjustRate(c.Steps)
	case PauseToggle:
		if !r.known(c.PlayerID) {
			return
		}
		r.world.TogglePause()
	case Reset:
		if !r.known(c.PlayerID) {
			return
		}
		r.resetLevel()
	case NextLevel:
		if !r.known(c.PlayerID) {
			return
		}
		if r.world.Phase != game.PhaseFinished {
			return
		}
		if r.levelIdx+1 < len(r.levels.Levels) {
			r.levelIdx++
		}
		r.resetLevel()
	case Leave:
		r.handleLeave(c.PlayerID)
	}
}

func (r *Room) known(playerID string) bool {
	_, ok := r.clients[playerID]
	return ok
}

func (r *Room) handleLeave(playerID string) {
	if c, ok := r.clients[playerID]; ok {
		_ = c.Close()
		delete(r.clients, playerID)
	}
	if len(r.clients) == 0 && r.OnEmpty != nil && r.Code != "" {
		r.OnEmpty(r.Code)
	}
}

func (r *Room) removePlayer(playerID string) {
	if c, ok := r.clients[playerID]; ok {
		_ = c.Close()
	}
	delete(r.clients, playerID)
}

func (r *Room) broadcastState() {
	b, err := protocol.Encode(protocol.MsgState, r.buildSnapshot())
	if err != nil {
		return
	}

	var failed []string
	for id, c := range r.clients {
		if err := c.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		r.removePlayer(id)
	}
}

func (r *Room) sendStateTo(c Conn) {
	b, err := protocol.Encode(protocol.MsgState, r.buildSnapshot())
	if err != nil {
		return
	}
	_ = c.Send(b)
}

func (r *Room) buildSnapshot() protocol.State {
	w := r.world

	snapshot := protocol.State{
		Tick:   w.Tick,
		Phase:  w.Phase.String(),
		Rate:   w.Rate,
		Level:  r.currentLevel().Name,
		Bodies: make([]protocol.BodySnapshot, 0, len(w.Bodies)),
	}

	for _, b := range w.Bodies {
		sx, sy := render.ScreenFromWorld(b.X, b.Y)
		bs := protocol.BodySnapshot{
			ID:       b.ID,
			Kind:     b.Kind.String(),
			X:        sx,
			Y:        sy,
			RadiusPx: render.PixelsFromLength(b.Radius),
		}
		if b.Kind == game.BodyPlayer {
			bs.Angle = b.Heading()
		}
		snapshot.Bodies = append(snapshot.Bodies, bs)
	}

	totalGamma := w.GammaV * w.GammaG
	snapshot.Hud = protocol.HudSnapshot{
		PlayerDays:   w.PlayerClock.Days(),
		ObserverDays: w.ObserverClock.Days(),
		GammaV:       w.GammaV,
		GammaG:       w.GammaG,
		Color:        render.HudColor(totalGamma),
	}
	if p := w.Player(); p != nil {
		snapshot.Hud.Velocity = render.FormatVelocityFraction(p.Speed())
	}

	snapshot.Trail = r.trail.Points

	grid := render.BuildGrid(w.Bodies)
	snapshot.Grid = &protocol.GridSnapshot{
		Vertices: grid.Vertices,
		Segments: grid.Segments(),
	}

	if w.Launch.Phase != game.LaunchIdle {
		phase := "aim_locked"
		if w.Launch.Phase == game.LaunchPowering {
			phase = "powering"
		}
		snapshot.Launch = &protocol.LaunchSnapshot{
			Phase: phase,
			Angle: w.Launch.Angle,
			Power: w.Launch.Power,
		}
	}

	return snapshot
}
