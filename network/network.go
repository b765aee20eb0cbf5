package network

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"relativity/protocol"
	"relativity/room"
)

var upgrader = websocket.Upgrader{
	// For dev, allow all origins. Lock this down in prod.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsConn adapts a websocket connection to room.Conn. Writes are serialized
// because the room goroutine and the ping loop both send.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) Send(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.conn.WriteMessage(websocket.TextMessage, b)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

// Handler upgrades a request to a websocket, joins the requested room
// (?room=CODE, default "lobby"), and pumps client messages into it.
func Handler(m *room.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		conn, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}

		code := req.URL.Query().Get("room")
		if code == "" {
			code = "lobby"
		}
		r := m.GetOrCreateRoom(code)
		if r == nil {
			_ = conn.Close()
			return
		}

		conn.SetReadLimit(1 << 20) // 1MB
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
			return nil
		})

		c := &wsConn{conn: conn}

		// Ping loop keeps the connection healthy through idle aiming.
		done := make(chan struct{})
		go func() {
			ticker := time.NewTicker(25 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					c.mu.Lock()
					_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
					err := conn.WriteMessage(websocket.PingMessage, nil)
					c.mu.Unlock()
					if err != nil {
						return
					}
				case <-done:
					return
				}
			}
		}()

		playerID := handshake(r, c, conn)
		if playerID == "" {
			close(done)
			_ = conn.Close()
			return
		}

		readLoop(r, conn, playerID)

		close(done)
		r.Inbox <- room.Leave{PlayerID: playerID}
	}
}

// handshake waits for the hello message and joins the room.
func handshake(r *room.Room, c *wsConn, conn *websocket.Conn) string {
	_, raw, err := conn.ReadMessage()
	if err != nil {
		return ""
	}

	env, err := protocol.DecodeEnvelope(raw)
	if err != nil || env.T != protocol.MsgHello {
		return ""
	}
	hello, err := protocol.DecodePayload[protocol.Hello](env)
	if err != nil {
		return ""
	}

	reply := make(chan room.JoinResult, 1)
	r.Inbox <- room.Join{Conn: c, Name: hello.Name, Reply: reply}
	res := <-reply

	welcome, err := protocol.Encode(protocol.MsgWelcome, protocol.Welcome{
		PlayerID: res.PlayerID,
		TickHz:   protocol.SimTickHz,
	})
	if err != nil {
		return ""
	}
	if err := c.Send(welcome); err != nil {
		return ""
	}

	return res.PlayerID
}

func readLoop(r *room.Room, conn *websocket.Conn, playerID string) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		env, err := protocol.DecodeEnvelope(raw)
		if err != nil {
			continue
		}

		switch env.T {
		case protocol.MsgAim:
			aim, err := protocol.DecodePayload[protocol.Launch](env)
			if err != nil {
				continue
			}
			r.Inbox <- room.Aim{PlayerID: playerID, Angle: aim.Angle, Power: aim.Power}
		case protocol.MsgLaunch:
			launch, err := protocol.DecodePayload[protocol.Launch](env)
			if err != nil {
				continue
			}
			r.Inbox <- room.Launch{PlayerID: playerID, Angle: launch.Angle, Power: launch.Power}
		case protocol.MsgRate:
			rate, err := protocol.DecodePayload[protocol.Rate](env)
			if err != nil {
				continue
			}
			r.Inbox <- room.RateAdjust{PlayerID: playerID, Steps: rate.Steps}
		case protocol.MsgPause:
			r.Inbox <- room.PauseToggle{PlayerID: playerID}
		case protocol.MsgReset:
			r.Inbox <- room.Reset{PlayerID: playerID}
		case protocol.MsgNext:
			r.Inbox <- room.NextLevel{PlayerID: playerID}
		}
	}
}
