package room

import (
	"strings"
	"sync"
	"testing"
	"time"

	"relativity/level"
)

func TestGetOrCreateRoomReuses(t *testing.T) {
	m := NewManager(level.Default())

	a := m.GetOrCreateRoom("LOBBY1")
	b := m.GetOrCreateRoom("LOBBY1")
	if a != b {
		t.Fatal("same code produced two rooms")
	}
	defer a.Stop()

	if m.GetOrCreateRoom("") != nil {
		t.Fatal("empty code should not create a room")
	}
}

func TestCreateRoomCode(t *testing.T) {
	m := NewManager(level.Default())

	code := m.CreateRoom()
	if len(code) != 6 {
		t.Fatalf("code %q length = %d, want 6", code, len(code))
	}
	for _, c := range code {
		if !strings.ContainsRune(codeChars, c) {
			t.Fatalf("code %q contains invalid char %q", code, c)
		}
	}

	r := m.GetOrCreateRoom(code)
	defer r.Stop()
	if r.Code != code {
		t.Fatalf("room code = %q, want %q", r.Code, code)
	}
}

func TestCreateRoomConcurrent(t *testing.T) {
	m := NewManager(level.Default())

	const n = 32
	codes := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			codes <- m.CreateRoom()
		}()
	}
	wg.Wait()
	close(codes)

	seen := make(map[string]bool, n)
	for code := range codes {
		if seen[code] {
			t.Fatalf("code %q handed out twice", code)
		}
		seen[code] = true
	}

	if got := len(m.ListRooms()); got != n {
		t.Fatalf("room count = %d, want %d", got, n)
	}
	for code := range seen {
		m.removeRoom(code)
	}
}

func TestListRooms(t *testing.T) {
	m := NewManager(level.Default())

	if got := len(m.ListRooms()); got != 0 {
		t.Fatalf("fresh manager lists %d rooms", got)
	}

	r := m.GetOrCreateRoom("LOBBY2")
	defer r.Stop()

	infos := m.ListRooms()
	if len(infos) != 1 || infos[0].Code != "LOBBY2" || infos[0].Players != 0 {
		t.Fatalf("ListRooms = %+v", infos)
	}
}

func TestRoomRemovedWhenEmpty(t *testing.T) {
	m := NewManager(level.Default())

	// The manager's room runs its own goroutine, so drive it through the
	// inbox like a real client.
	r := m.GetOrCreateRoom("LOBBY3")
	reply := make(chan JoinResult, 1)
	r.Inbox <- Join{Conn: &fakeConn{}, Reply: reply}
	res := <-reply

	r.Inbox <- Leave{PlayerID: res.PlayerID}

	deadline := time.Now().Add(2 * time.Second)
	for len(m.ListRooms()) != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("room not removed after last leave: %+v", m.ListRooms())
		}
		time.Sleep(5 * time.Millisecond)
	}
}
