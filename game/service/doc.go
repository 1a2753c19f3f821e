// Package service provides the business logic layer for the Boggle server.
//
// The service package implements:
//   - Multi-session game management
//   - Word submission, tracing and the computer's turn
//   - Paginated word attempt history
//   - Configuration listing, loading and saving
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages game configuration loading and validation.
//
// Architecture:
//
// The service layer sits between the transports (HTTP, WebSocket and MCP) and
// the game engine. Mutating operations are serialized by a service-wide lock
// and each session is saved after it changes. Results carry GameEvents that
// the transports broadcast to watchers.
//
// Usage:
//
//	sessionMgr := session.NewManager(dict)
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	info, err := gameService.CreateSession(ctx, "standard")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.SubmitWord(ctx, info.ID, "star")
//	turn, err := gameService.ComputerTurn(ctx, info.ID)
package service
