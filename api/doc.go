// Package api provides the HTTP REST API for the Boggle server.
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create a session ({"config_id": "standard"})
//   - GET /api/sessions - List sessions (sort=created|accessed, order, limit)
//   - GET /api/sessions/unified - Multi-session view (sessionIds or configName)
//   - GET /api/sessions/{id} - Get a session
//   - DELETE /api/sessions/{id} - Delete a session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Current game state
//   - POST /api/sessions/{id}/words - Submit a word ({"word": "star"})
//   - POST /api/sessions/{id}/trace - Find a path without claiming the word
//   - POST /api/sessions/{id}/computer-turn - Let the computer finish the round
//   - POST /api/sessions/{id}/reset - Start a new round
//   - GET /api/sessions/{id}/history - Paginated attempt history
//   - GET /api/sessions/{id}/cells/{row}/{col} - A cell and its neighbors
//
// Configuration:
//   - GET /api/configs - List configurations
//   - GET /api/configs/{name} - Get a configuration
//   - POST /api/configs - Save a configuration
//
// Other:
//   - GET /health
//   - GET /ws?session={id} - WebSocket watcher
//
// Rejected words are not errors: a submission always returns 200 with the
// verdict in the attempt. Unknown sessions return 404.
//
// Usage:
//
//	server := api.NewServer(gameService, hub)
//	http.ListenAndServe(":8080", server)
package api
