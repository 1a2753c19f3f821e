package engine

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

// ValidateGameConfig validates a game configuration for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}

	// Validate required fields
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	size := BoardSize(config.BoardSize)
	if !size.Valid() {
		return fmt.Errorf("config validation: board_size must be %d or %d, got %d", Standard, Big, config.BoardSize)
	}

	// Fixed boards must be exactly the right length so nothing is silently truncated
	if config.Letters != "" {
		if len(config.Letters) != size.Cells() {
			return fmt.Errorf("config validation: letters must have %d characters for a %s board, got %d",
				size.Cells(), size, len(config.Letters))
		}
		if _, err := ParseBoard(size, config.Letters); err != nil {
			return fmt.Errorf("config validation: letters: %w", err)
		}
	}

	// Validate messages
	if config.Messages.Welcome == "" {
		return fmt.Errorf("config validation: messages.welcome is required")
	}
	if !rendersCleanly(config.Messages.WordAccepted, "WORD", 1) {
		return fmt.Errorf("config validation: messages.word_accepted must contain %%s for the word followed by %%d for the score")
	}
	if !rendersCleanly(config.Messages.WordRejected, "reason") {
		return fmt.Errorf("config validation: messages.word_rejected must contain a single %%s for the reason")
	}
	if !rendersCleanly(config.Messages.ComputerDone, 1, 1) {
		return fmt.Errorf("config validation: messages.computer_done must contain two %%d for word count and score")
	}

	return nil
}

// rendersCleanly reports whether msg formats args with no missing, extra or
// mismatched verbs
func rendersCleanly(msg string, args ...any) bool {
	if msg == "" {
		return false
	}
	return !strings.Contains(fmt.Sprintf(msg, args...), "%!")
}

// LoadGameConfig loads a game configuration from a JSON file
func LoadGameConfig(filename string) (*GameConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadConfigByName loads a game configuration by name from dir
func LoadConfigByName(dir, configName string) (*GameConfig, error) {
	if !strings.HasSuffix(configName, ".json") {
		configName = configName + ".json"
	}

	configPath := filepath.Join(dir, configName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file '%s' not found", configName)
	}

	config, err := LoadGameConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("invalid config '%s': %w", configName, err)
	}
	return config, nil
}

// DefaultGameConfig returns the built-in configuration: a random 4x4 board
func DefaultGameConfig() *GameConfig {
	config := &GameConfig{
		Name:        "standard",
		Description: "Classic 4x4 board rolled from the sixteen standard dice",
		BoardSize:   int(Standard),
	}
	config.Messages.Welcome = "Find words of four or more letters by tracing adjacent tiles."
	config.Messages.WordAccepted = "%s accepted for %d points"
	config.Messages.WordRejected = "Not accepted: %s"
	config.Messages.ComputerDone = "The computer found %d more words for %d points"
	return config
}

// BuildBoard returns the fixed board of config, or rolls a random one
func BuildBoard(config *GameConfig, rng *rand.Rand) (*Board, error) {
	size := BoardSize(config.BoardSize)
	if config.Letters != "" {
		return ParseBoard(size, config.Letters)
	}
	return RandomBoard(size, rng)
}

// InitGameState creates a fresh round on board using the messages of config
func InitGameState(config *GameConfig, board *Board) *GameState {
	rows, cols := board.Dimensions()
	return &GameState{
		Letters:       board.Letters(),
		Rows:          rows,
		Cols:          cols,
		Grid:          board.Rows(),
		Phase:         PhaseHuman,
		Round:         1,
		ConfigName:    config.Name,
		Message:       config.Messages.Welcome,
		HumanWords:    []FoundWord{},
		ComputerWords: []FoundWord{},
		Attempts:      []WordAttempt{},
	}
}
