package room

import (
	"crypto/rand"
	"math/big"
	"sync"

	"relativity/level"
)

// RoomInfo is returned by the API for the server list.
type RoomInfo struct {
	Code    string `json:"code"`
	Players int    `json:"players"`
}

// Manager holds multiple rooms by code. Rooms are created on first join or
// via CreateRoom, and removed when the last player leaves. Every room runs
// the same level progression.
type Manager struct {
	mu     sync.RWMutex
	rooms  map[string]*Room
	levels *level.Set
}

func NewManager(levels *level.Set) *Manager {
	return &Manager{
		rooms:  make(map[string]*Room),
		levels: levels,
	}
}

// GetOrCreateRoom returns the room for the given code, creating it if needed.
func (m *Manager) GetOrCreateRoom(code string) *Room {
	if code == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[code]; ok {
		return r
	}
	return m.newRoomLocked(code)
}

// newRoomLocked creates, registers and starts a room. Callers must hold mu.
func (m *Manager) newRoomLocked(code string) *Room {
	r := New(m.levels)
	r.Code = code
	r.OnEmpty = func(c string) {
		m.removeRoom(c)
	}
	m.rooms[code] = r
	go r.Run()
	return r
}

func (m *Manager) removeRoom(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[code]; ok {
		r.Stop()
		delete(m.rooms, code)
	}
}

const codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CreateRoom generates a unique 6-char code, creates the room, and returns
// the code. The uniqueness check and the insert happen under one write lock
// so concurrent calls can never claim the same code.
func (m *Manager) CreateRoom() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	for {
		code := randomCode(6)
		if _, exists := m.rooms[code]; exists {
			continue
		}
		m.newRoomLocked(code)
		return code
	}
}

// ListRooms describes every live room for the lobby view.
func (m *Manager) ListRooms() []RoomInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	infos := make([]RoomInfo, 0, len(m.rooms))
	for code, r := range m.rooms {
		infos = append(infos, RoomInfo{Code: code, Players: r.NumPlayers()})
	}
	return infos
}

func randomCode(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(codeChars)))
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			b[i] = codeChars[0]
			continue
		}
		b[i] = codeChars[idx.Int64()]
	}
	return string(b)
}
