package engine

// Phase is the stage of a game round
type Phase string

const (
	// PhaseHuman accepts words from the human player
	PhaseHuman Phase = "human"
	// PhaseOver means the computer has taken its turn and the round is finished
	PhaseOver Phase = "over"
)

// Player identifies who found a word
type Player string

const (
	Human    Player = "human"
	Computer Player = "computer"
)

// Verdict is the outcome of checking a submitted word
type Verdict string

const (
	VerdictAccepted     Verdict = "accepted"
	VerdictTooShort     Verdict = "too_short"
	VerdictAlreadyFound Verdict = "already_found"
	VerdictNotAWord     Verdict = "not_a_word"
	VerdictNotOnBoard   Verdict = "not_on_board"
	VerdictTurnOver     Verdict = "turn_over"

	// Validation constants
	MinWordLength     = 4
	MinBoardDimension = 1
	MaxAttemptHistory = 500
)

// Dictionary answers exact-word and prefix membership queries.
// Implementations must be case-insensitive and answer in time proportional
// to the length of the query, not the size of the word list.
type Dictionary interface {
	ContainsWord(word string) bool
	ContainsPrefix(prefix string) bool
}

// Discovery is a word reported by the enumerator together with the path that spells it
type Discovery struct {
	Word string `json:"word"`
	Path Path   `json:"path"`
}

// FoundWord is a scored word credited to a player
type FoundWord struct {
	Word      string `json:"word"`
	Path      Path   `json:"path"`
	Score     int    `json:"score"`
	Player    Player `json:"player"`
	Timestamp int64  `json:"timestamp"`
}

// WordAttempt records a single human submission, accepted or not
type WordAttempt struct {
	Word          string  `json:"word"`
	Verdict       Verdict `json:"verdict"`
	Path          Path    `json:"path,omitempty"`
	Score         int     `json:"score"`
	Timestamp     int64   `json:"timestamp"`
	AttemptNumber int     `json:"attempt_number"`
}

// Accepted reports whether the attempt was credited to the player
func (a *WordAttempt) Accepted() bool {
	return a.Verdict == VerdictAccepted
}

// GameConfig represents the game configuration from JSON
type GameConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	BoardSize   int    `json:"board_size"`
	// Letters fixes the board (row-major). A random board is rolled when empty.
	Letters  string `json:"letters,omitempty"`
	Messages struct {
		Welcome      string `json:"welcome"`
		WordAccepted string `json:"word_accepted"`
		WordRejected string `json:"word_rejected"`
		ComputerDone string `json:"computer_done"`
	} `json:"messages"`
}

// GameState represents the complete state of one round
type GameState struct {
	Letters    string   `json:"letters"`
	Rows       int      `json:"rows"`
	Cols       int      `json:"cols"`
	Grid       []string `json:"grid"`
	Phase      Phase    `json:"phase"`
	Round      int      `json:"round"`
	ConfigName string   `json:"config_name"`
	Message    string   `json:"message"`

	HumanWords    []FoundWord `json:"human_words"`
	ComputerWords []FoundWord `json:"computer_words"`
	HumanScore    int         `json:"human_score"`
	ComputerScore int         `json:"computer_score"`

	// Attempts keeps the most recent submissions; TotalAttempts counts all of them.
	Attempts      []WordAttempt `json:"attempts"`
	TotalAttempts int           `json:"total_attempts"`
}

// Clone returns a copy of the state that shares no slices with s.
// Callers that hand state to other goroutines take a clone while holding
// the lock that guards the engine.
func (s *GameState) Clone() *GameState {
	if s == nil {
		return nil
	}
	c := *s
	c.Grid = append([]string(nil), s.Grid...)
	c.HumanWords = cloneWords(s.HumanWords)
	c.ComputerWords = cloneWords(s.ComputerWords)
	c.Attempts = make([]WordAttempt, len(s.Attempts))
	for i, a := range s.Attempts {
		a.Path = append(Path(nil), a.Path...)
		c.Attempts[i] = a
	}
	return &c
}

func cloneWords(words []FoundWord) []FoundWord {
	out := make([]FoundWord, len(words))
	for i, w := range words {
		w.Path = append(Path(nil), w.Path...)
		out[i] = w
	}
	return out
}
