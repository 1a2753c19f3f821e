package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var ErrNoDictionary = errors.New("dictionary is required")

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Reset(rng *rand.Rand) (*GameState, error)
	IsRoundOver() bool
	GetBoard() *Board

	// Turns
	SubmitWord(word string) *WordAttempt
	TracePath(word string) (Path, bool)
	ComputerTurn() []FoundWord

	// Configuration
	GetConfig() *GameConfig
	SetConfig(config *GameConfig, rng *rand.Rand) error

	// History
	GetAttemptHistory() []WordAttempt
	GetLastAttempt() *WordAttempt

	// Local view
	DescribeCell(c Cell) (*CellView, error)
}

// GameEngine implements the Engine interface. One engine owns the board and
// the SeenWords set of the current round.
type GameEngine struct {
	state  *GameState
	config *GameConfig
	dict   Dictionary
	board  *Board
	seen   *SeenWords
}

// NewEngine creates a new game engine with the provided configuration.
// A nil config uses DefaultGameConfig and a nil rng is seeded from the clock.
func NewEngine(config *GameConfig, dict Dictionary, rng *rand.Rand) (*GameEngine, error) {
	if dict == nil {
		return nil, ErrNoDictionary
	}
	if config == nil {
		config = DefaultGameConfig()
	}
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	e := &GameEngine{config: config, dict: dict}
	if err := e.newRound(rng); err != nil {
		return nil, err
	}
	return e, nil
}

// newRound rolls a board and clears the per-round state
func (e *GameEngine) newRound(rng *rand.Rand) error {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	board, err := BuildBoard(e.config, rng)
	if err != nil {
		return fmt.Errorf("build board: %w", err)
	}
	e.board = board
	e.seen = NewSeenWords()
	e.state = InitGameState(e.config, board)
	return nil
}

// GetState returns the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// SetState sets the game state (used for persistence loading). The board and
// the seen words are rebuilt from the state.
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	board, err := NewBoard(state.Rows, state.Cols, state.Letters)
	if err != nil {
		return fmt.Errorf("restore board: %w", err)
	}

	seen := NewSeenWords()
	for _, fw := range state.HumanWords {
		seen.Add(fw.Word)
	}
	for _, fw := range state.ComputerWords {
		seen.Add(fw.Word)
	}

	if state.Grid == nil {
		state.Grid = board.Rows()
	}
	e.board = board
	e.seen = seen
	e.state = state
	return nil
}

// Reset starts a new round on a fresh board. Attempt history is cumulative
// across rounds.
func (e *GameEngine) Reset(rng *rand.Rand) (*GameState, error) {
	prevAttempts := e.state.Attempts
	prevTotal := e.state.TotalAttempts
	prevRound := e.state.Round

	if err := e.newRound(rng); err != nil {
		return nil, err
	}

	e.state.Attempts = prevAttempts
	e.state.TotalAttempts = prevTotal
	e.state.Round = prevRound + 1
	return e.state, nil
}

// IsRoundOver returns whether the computer has taken its turn
func (e *GameEngine) IsRoundOver() bool {
	return e.state.Phase == PhaseOver
}

// GetBoard returns the board of the current round
func (e *GameEngine) GetBoard() *Board {
	return e.board
}

// Seen returns the words claimed so far this round
func (e *GameEngine) Seen() *SeenWords {
	return e.seen
}

// SubmitWord checks a word entered by the human player and credits it when accepted
func (e *GameEngine) SubmitWord(word string) *WordAttempt {
	w := NormalizeWord(word)
	attempt := WordAttempt{
		Word:          w,
		Timestamp:     time.Now().Unix(),
		AttemptNumber: e.state.TotalAttempts + 1,
	}

	if e.IsRoundOver() {
		attempt.Verdict = VerdictTurnOver
	} else {
		path, verdict := CheckWord(e.board, e.dict, e.seen, w)
		attempt.Verdict = verdict
		if verdict == VerdictAccepted {
			e.seen.Add(w)
			attempt.Path = path
			attempt.Score = Score(w)
			e.state.HumanWords = append(e.state.HumanWords, FoundWord{
				Word:      w,
				Path:      path,
				Score:     attempt.Score,
				Player:    Human,
				Timestamp: attempt.Timestamp,
			})
			e.state.HumanScore += attempt.Score
		}
	}

	if attempt.Accepted() {
		e.state.Message = fmt.Sprintf(e.config.Messages.WordAccepted, w, attempt.Score)
	} else {
		e.state.Message = fmt.Sprintf(e.config.Messages.WordRejected, attempt.Verdict.Describe())
	}
	e.recordAttempt(attempt)
	return &attempt
}

// recordAttempt appends to the bounded attempt history
func (e *GameEngine) recordAttempt(a WordAttempt) {
	e.state.TotalAttempts++
	e.state.Attempts = append(e.state.Attempts, a)
	if over := len(e.state.Attempts) - MaxAttemptHistory; over > 0 {
		e.state.Attempts = e.state.Attempts[over:]
	}
}

// TracePath finds a path for word on the current board without changing any state
func (e *GameEngine) TracePath(word string) (Path, bool) {
	return FindPath(e.board, NormalizeWord(word))
}

// ComputerTurn enumerates every remaining word on the board, credits them to
// the computer and ends the round. Calling it again returns nothing.
func (e *GameEngine) ComputerTurn() []FoundWord {
	if e.IsRoundOver() {
		return nil
	}

	now := time.Now().Unix()
	found := []FoundWord{}
	EnumerateFunc(e.board, e.dict, e.seen, func(d Discovery) {
		found = append(found, FoundWord{
			Word:      d.Word,
			Path:      d.Path,
			Score:     Score(d.Word),
			Player:    Computer,
			Timestamp: now,
		})
	})

	for _, fw := range found {
		e.state.ComputerScore += fw.Score
	}
	e.state.ComputerWords = append(e.state.ComputerWords, found...)
	e.state.Phase = PhaseOver
	e.state.Message = fmt.Sprintf(e.config.Messages.ComputerDone, len(found), e.state.ComputerScore)
	return found
}

// GetConfig returns the current game configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// SetConfig sets a new game configuration and starts a new round
func (e *GameEngine) SetConfig(config *GameConfig, rng *rand.Rand) error {
	if err := ValidateGameConfig(config); err != nil {
		return err
	}

	e.config = config
	return e.newRound(rng)
}

// GetAttemptHistory returns the recorded word attempts
func (e *GameEngine) GetAttemptHistory() []WordAttempt {
	return e.state.Attempts
}

// GetLastAttempt returns the last attempt made, or nil if no attempts
func (e *GameEngine) GetLastAttempt() *WordAttempt {
	if len(e.state.Attempts) == 0 {
		return nil
	}
	return &e.state.Attempts[len(e.state.Attempts)-1]
}

// DescribeCell returns the letter at c and its neighbours
func (e *GameEngine) DescribeCell(c Cell) (*CellView, error) {
	return DescribeCell(e.board, c)
}

// Winner returns the player with the higher score, or "" on a tie
func (e *GameEngine) Winner() Player {
	switch {
	case e.state.HumanScore > e.state.ComputerScore:
		return Human
	case e.state.ComputerScore > e.state.HumanScore:
		return Computer
	default:
		return ""
	}
}
