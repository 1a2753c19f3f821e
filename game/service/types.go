package service

import (
	"time"

	"github.com/wricardo/mcp-training/boggle/game/engine"
)

// Event types emitted by game operations
const (
	EventWordAccepted = "word_accepted"
	EventWordRejected = "word_rejected"
	EventComputerWord = "computer_word"
	EventRoundOver    = "round_over"
	EventReset        = "reset"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// WordResult contains the outcome of a human word submission
type WordResult struct {
	Accepted  bool                `json:"accepted"`
	Attempt   *engine.WordAttempt `json:"attempt"`
	Reason    string              `json:"reason,omitempty"`
	Message   string              `json:"message"`
	GameState *engine.GameState   `json:"game_state"`
	Events    []GameEvent         `json:"events,omitempty"`
}

// TraceResult reports whether a word can be traced on a session's board.
// Tracing never changes the session.
type TraceResult struct {
	Word  string      `json:"word"`
	Found bool        `json:"found"`
	Path  engine.Path `json:"path,omitempty"`
}

// ComputerTurnResult contains the words the computer found and the final tally
type ComputerTurnResult struct {
	Words         []engine.FoundWord `json:"words"`
	WordCount     int                `json:"word_count"`
	Points        int                `json:"points"`
	HumanScore    int                `json:"human_score"`
	ComputerScore int                `json:"computer_score"`
	Winner        engine.Player      `json:"winner,omitempty"`
	AlreadyOver   bool               `json:"already_over,omitempty"`
	GameState     *engine.GameState  `json:"game_state"`
	Events        []GameEvent        `json:"events,omitempty"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string      `json:"type"` // "word_accepted", "word_rejected", "computer_word", "round_over", "reset"
	Message   string      `json:"message"`
	Timestamp time.Time   `json:"timestamp"`
	Word      string      `json:"word,omitempty"`
	Path      engine.Path `json:"path,omitempty"`
	Score     int         `json:"score,omitempty"`
}

// HistoryOptions configures attempt history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated word attempts
type HistoryResponse struct {
	Attempts      []engine.WordAttempt `json:"attempts"`
	TotalAttempts int                  `json:"total_attempts"`
	Page          int                  `json:"page"`
	PageSize      int                  `json:"page_size"`
	TotalPages    int                  `json:"total_pages"`
	HasNext       bool                 `json:"has_next"`
	HasPrevious   bool                 `json:"has_previous"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	BoardSize   int    `json:"board_size"`
	FixedBoard  bool   `json:"fixed_board"`
}
