// Package websocket provides WebSocket transport for the Boggle server.
//
// The websocket package implements:
//   - Session-aware watcher connections
//   - Automatic state broadcasting on changes
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a read and a
// write goroutine; the hub's Run loop owns registration and fan-out.
//
// Message Protocol:
//
// Watchers only receive. Every outgoing frame is a JSON Message with an
// event name:
//   - state_update: the full GameState after a submission, reset or computer turn
//   - word_found: a GameEvent for each word claimed by either player
//
// Messages queued while a frame is being written are appended to it,
// separated by newlines.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//	defer hub.Close()
//
//	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
//		hub.ServeWS(w, r, r.URL.Query().Get("session"))
//	})
package websocket
