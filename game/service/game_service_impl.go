package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/wricardo/mcp-training/boggle/game/engine"
)

// ErrSessionNotFound wraps any session lookup failure
var ErrSessionNotFound = errors.New("session not found")

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// session looks up a session and marks it accessed. Callers hold s.mu for writing.
func (s *gameServiceImpl) session(sessionID string) (*Session, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSessionNotFound, sessionID, err)
	}
	s.sessions.UpdateLastAccessed(sessionID)
	return sess, nil
}

// save persists a session after a mutation. Failures are logged, not returned.
func (s *gameServiceImpl) save(sessionID, op string) {
	if err := s.sessions.Save(sessionID); err != nil {
		log.Warn().Err(err).Str("session", sessionID).Str("op", op).Msg("failed to persist session")
	}
}

func (s *gameServiceImpl) info(sess *Session) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     s.getConfigID(sess.Config.Name),
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      sess.Engine.GetState().Clone(),
		GameConfig:     sess.Config,
	}
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	info := s.info(session)
	if configName != "" {
		info.ConfigName = strings.TrimSuffix(configName, ".json")
	}

	log.Info().Str("session", session.ID).Str("config", info.ConfigName).
		Str("board", session.Engine.GetState().Letters).Msg("session created")

	return info, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	return s.info(sess), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.info(sess))
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Delete(sessionID); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSessionNotFound, sessionID, err)
	}
	return nil
}

// SubmitWord checks a human word against the session's board and credits it when accepted
func (s *gameServiceImpl) SubmitWord(ctx context.Context, sessionID, word string) (*WordResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	attempt := sess.Engine.SubmitWord(word)
	state := sess.Engine.GetState().Clone()

	result := &WordResult{
		Accepted:  attempt.Accepted(),
		Attempt:   attempt,
		Message:   state.Message,
		GameState: state,
	}

	now := time.Now()
	if attempt.Accepted() {
		result.Events = []GameEvent{{
			Type:      EventWordAccepted,
			Message:   state.Message,
			Timestamp: now,
			Word:      attempt.Word,
			Path:      attempt.Path,
			Score:     attempt.Score,
		}}
	} else {
		result.Reason = attempt.Verdict.Describe()
		result.Events = []GameEvent{{
			Type:      EventWordRejected,
			Message:   result.Reason,
			Timestamp: now,
			Word:      attempt.Word,
		}}
	}

	s.save(sessionID, "submit_word")
	return result, nil
}

// TraceWord finds a path for word on the session's board without recording anything
func (s *gameServiceImpl) TraceWord(ctx context.Context, sessionID, word string) (*TraceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	path, found := sess.Engine.TracePath(word)
	return &TraceResult{
		Word:  engine.NormalizeWord(word),
		Found: found,
		Path:  path,
	}, nil
}

// ComputerTurn lets the computer claim every remaining word and ends the round
func (s *gameServiceImpl) ComputerTurn(ctx context.Context, sessionID string) (*ComputerTurnResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	alreadyOver := sess.Engine.IsRoundOver()
	words := sess.Engine.ComputerTurn()
	if words == nil {
		words = []engine.FoundWord{}
	}
	state := sess.Engine.GetState().Clone()

	result := &ComputerTurnResult{
		Words:         words,
		WordCount:     len(words),
		Points:        engine.TotalScore(words),
		HumanScore:    state.HumanScore,
		ComputerScore: state.ComputerScore,
		Winner:        sess.Engine.Winner(),
		AlreadyOver:   alreadyOver,
		GameState:     state,
	}
	if alreadyOver {
		return result, nil
	}

	for _, fw := range words {
		result.Events = append(result.Events, GameEvent{
			Type:      EventComputerWord,
			Message:   fmt.Sprintf("Computer found %s", fw.Word),
			Timestamp: time.Now(),
			Word:      fw.Word,
			Path:      fw.Path,
			Score:     fw.Score,
		})
	}
	result.Events = append(result.Events, GameEvent{
		Type:      EventRoundOver,
		Message:   roundOverMessage(state, result.Winner),
		Timestamp: time.Now(),
	})

	log.Info().Str("session", sessionID).Int("words", len(words)).
		Int("human", state.HumanScore).Int("computer", state.ComputerScore).Msg("round over")

	s.save(sessionID, "computer_turn")
	return result, nil
}

func roundOverMessage(state *engine.GameState, winner engine.Player) string {
	score := fmt.Sprintf("human %d, computer %d", state.HumanScore, state.ComputerScore)
	switch winner {
	case engine.Human:
		return "You win: " + score
	case engine.Computer:
		return "The computer wins: " + score
	default:
		return "Tie: " + score
	}
}

// Reset starts a new round with a fresh board
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	state, err := sess.Engine.Reset(nil)
	if err != nil {
		return nil, fmt.Errorf("reset session %s: %w", sessionID, err)
	}

	s.save(sessionID, "reset")
	return state.Clone(), nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Engine.GetState().Clone(), nil
}

// GetWordHistory returns paginated word attempts
func (s *gameServiceImpl) GetWordHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSessionNotFound, sessionID, err)
	}

	history := sess.Engine.GetAttemptHistory()
	total := len(history)

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	attempts := []engine.WordAttempt{}
	if opts.Order == "desc" {
		// Most recent first
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			attempts = append(attempts, history[i])
		}
	} else if start < total {
		attempts = append(attempts, history[start:end]...)
	}

	return &HistoryResponse{
		Attempts:      attempts,
		TotalAttempts: sess.Engine.GetState().TotalAttempts,
		Page:          opts.Page,
		PageSize:      opts.Limit,
		TotalPages:    totalPages,
		HasNext:       opts.Page < totalPages,
		HasPrevious:   opts.Page > 1,
	}, nil
}

// DescribeCell returns a cell's letter and neighbours on the session's board
func (s *gameServiceImpl) DescribeCell(ctx context.Context, sessionID string, cell engine.Cell) (*engine.CellView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Engine.DescribeCell(cell)
}

// ListConfigs returns available game configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific game configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a game configuration to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}
