// Package config provides configuration management for the Boggle server.
//
// The config package handles:
//   - Loading game configurations from JSON files
//   - Configuration validation and caching
//   - Default configuration management
//   - Process settings read from the environment
//
// Configuration Format:
//
// Game configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - The board size (4 for the standard dice, 5 for Big Boggle)
//   - Optionally a fixed board as a row-major letter string
//   - Game messages for accepted words, rejections and the computer turn
//
// Available Configurations:
//   - standard: random 4x4 board rolled from the sixteen standard dice
//   - big: random 5x5 board rolled from the twenty-five Big Boggle dice
//   - demo: a fixed 4x4 board, useful for demonstrations and tests
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameConfig, err := manager.LoadConfig("big")
//	defaultConfig := manager.GetDefault()
//	configs, err := manager.ListConfigs()
//
// Settings:
//
// Settings are parsed with caarlos0/env from variables such as PORT,
// CONFIG_DIR, DICTIONARY_FILE and SESSION_STORE. Session storage defaults to
// the XDG data directory.
package config
