package main

import (
	"encoding/json"
	"log"
	"net/http"

	"relativity/config"
	"relativity/level"
	"relativity/network"
	"relativity/room"
)

func main() {
	cfg := config.Load()

	levels, err := level.Load(cfg.LevelFile)
	if err != nil {
		log.Printf("level file %s unavailable (%v), using built-in levels", cfg.LevelFile, err)
		levels = level.Default()
	}
	log.Printf("loaded %d levels", len(levels.Levels))

	manager := room.NewManager(levels)

	http.HandleFunc("/ws", network.Handler(manager))

	http.HandleFunc("/rooms", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(manager.ListRooms())
	})

	http.HandleFunc("/rooms/create", func(w http.ResponseWriter, r *http.Request) {
		code := manager.CreateRoom()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"code": code})
	})

	log.Printf("listening on %s (ws endpoint: /ws)", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, nil))
}
