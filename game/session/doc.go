// Package session provides session management for the Boggle server.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session persistence to JSON files or SQLite
//   - Session cleanup and expiration
//
// Core Types:
//
// Manager is the main session manager that handles all session operations.
// Each session owns its own engine, and every engine shares the manager's
// read-only dictionary.
//
// Session Identifiers:
//
// Sessions use 4-character hex IDs for easy reference. Lookups are
// case-insensitive.
//
// Persistence:
//
// SessionPersistence has two implementations. FilePersistence writes one JSON
// document per session; SQLitePersistence keeps the same document in a
// sessions table. Both store the game config next to the state so a session
// restores with the rules it was created under, and both rebuild the round's
// seen words from the saved human and computer words.
//
// Usage:
//
//	dict, _ := dictionary.Default()
//	store, _ := session.NewFilePersistence(dir, configs, dict)
//	manager := session.NewManagerWithPersistence(dict, store)
//
//	sess, err := manager.Create("", config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err = manager.Get(sessionID)
package session
