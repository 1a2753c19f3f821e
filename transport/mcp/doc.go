// Package mcp provides a Model Context Protocol front end for the Boggle server.
//
// The client is thin: every tool call is translated into a REST request
// against the api package and the JSON response is rendered as text for
// the agent.
//
// MCP Tools:
//   - create_session, list_sessions, get_session
//   - game_state: board, scores and found words
//   - submit_word, submit_words: claim words and report verdicts
//   - trace_word: find a path without claiming the word
//   - computer_turn: let the computer finish the round
//   - reset_game: start a new round
//   - word_history: paginated submissions
//   - list_configs, describe_cell, game_instructions
//
// Transport Modes:
//   - Stdio: server.ServeStdio(client.GetMCPServer())
//   - HTTP: POST /mcp, handled by MCPServer.HandleMessage
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
