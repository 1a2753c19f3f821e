// Package engine provides the core game logic for Boggle.
//
// The engine package implements the game mechanics including:
//   - Board construction from dice or fixed letters
//   - Path tracing of a single word across adjacent tiles
//   - Exhaustive enumeration of dictionary words with prefix pruning
//   - Word acceptance rules and scoring
//   - Round state management and persistence
//
// Core Types:
//
// Board is an immutable grid of letters addressed by Cell. FindPath traces a
// single word; Enumerate finds every word that a Dictionary accepts. SeenWords
// is the set of words already claimed in a round and is shared between the
// human turn (CheckWord) and the computer turn (Enumerate) so nothing is
// credited twice. GameEngine ties these together for one round and exposes a
// JSON-serializable GameState.
//
// Usage:
//
//	config, err := engine.LoadConfigByName("configs", "standard")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameEngine, err := engine.NewEngine(config, dict, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	attempt := gameEngine.SubmitWord("tram")
//	computerWords := gameEngine.ComputerTurn()
//
// Game Rules:
//
// Words are traced through horizontally, vertically or diagonally adjacent
// tiles, using each tile at most once. Words must be at least four letters
// long and score one point for four letters plus one for each extra letter.
// After the human turn the computer claims every remaining word.
//
// The search functions never log, block or mutate anything other than the
// SeenWords passed to them.
package engine
