package service_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/wricardo/mcp-training/boggle/game/dictionary"
	"github.com/wricardo/mcp-training/boggle/game/engine"
	"github.com/wricardo/mcp-training/boggle/game/service"
)

// Fixed board for the "test" config:
//
//	S T A R
//	P L E A
//	H I M N
//	O U D E
const testLetters = "STARPLEAHIMNOUDE"

func testDictionary() *dictionary.Trie {
	d := dictionary.New()
	for _, w := range []string{"STAR", "LIME", "TALE", "MEAN", "DIME", "QUIZ"} {
		d.Add(w)
	}
	return d
}

// MockSessionManager implements service.SessionManager for testing
type MockSessionManager struct {
	sessions map[string]*service.Session
	saves    int
}

func NewMockSessionManager() *MockSessionManager {
	return &MockSessionManager{
		sessions: make(map[string]*service.Session),
	}
}

func (m *MockSessionManager) Create(id string, config *engine.GameConfig) (*service.Session, error) {
	if id == "" {
		id = fmt.Sprintf("test_%d", len(m.sessions)+1)
	}

	if _, exists := m.sessions[id]; exists {
		return nil, errors.New("session already exists")
	}

	eng, err := engine.NewEngine(config, testDictionary(), nil)
	if err != nil {
		return nil, err
	}

	session := &service.Session{
		ID:             id,
		Engine:         eng,
		Config:         config,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}

	m.sessions[id] = session
	return session, nil
}

func (m *MockSessionManager) Get(id string) (*service.Session, error) {
	session, exists := m.sessions[id]
	if !exists {
		return nil, errors.New("session not found")
	}
	return session, nil
}

func (m *MockSessionManager) GetOrCreate(id string, config *engine.GameConfig) (*service.Session, error) {
	if session, exists := m.sessions[id]; exists {
		return session, nil
	}
	return m.Create(id, config)
}

func (m *MockSessionManager) List() []*service.Session {
	result := make([]*service.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		result = append(result, session)
	}
	return result
}

func (m *MockSessionManager) Delete(id string) error {
	if _, exists := m.sessions[id]; !exists {
		return errors.New("session not found")
	}
	delete(m.sessions, id)
	return nil
}

func (m *MockSessionManager) UpdateLastAccessed(id string) error {
	if session, exists := m.sessions[id]; exists {
		session.LastAccessedAt = time.Now()
		return nil
	}
	return errors.New("session not found")
}

func (m *MockSessionManager) Save(id string) error {
	if _, exists := m.sessions[id]; !exists {
		return errors.New("session not found")
	}
	m.saves++
	return nil
}

// MockConfigManager implements service.ConfigManager for testing
type MockConfigManager struct {
	configs map[string]*engine.GameConfig
}

func NewMockConfigManager() *MockConfigManager {
	fixed := engine.DefaultGameConfig()
	fixed.Name = "test"
	fixed.Description = "Test configuration"
	fixed.Letters = testLetters

	return &MockConfigManager{
		configs: map[string]*engine.GameConfig{
			"test":    fixed,
			"default": fixed,
		},
	}
}

func (m *MockConfigManager) LoadConfig(name string) (*engine.GameConfig, error) {
	config, exists := m.configs[strings.TrimSuffix(name, ".json")]
	if !exists {
		return nil, errors.New("configuration not found")
	}
	return config, nil
}

func (m *MockConfigManager) ListConfigs() ([]*service.ConfigInfo, error) {
	result := make([]*service.ConfigInfo, 0, len(m.configs))
	for name, config := range m.configs {
		result = append(result, &service.ConfigInfo{
			Filename:    name + ".json",
			ConfigID:    name,
			Name:        config.Name,
			Description: config.Description,
			BoardSize:   config.BoardSize,
			FixedBoard:  config.Letters != "",
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ConfigID < result[j].ConfigID })
	return result, nil
}

func (m *MockConfigManager) GetDefault() *engine.GameConfig {
	return m.configs["default"]
}

func (m *MockConfigManager) SaveConfig(name string, config *engine.GameConfig) error {
	if err := engine.ValidateGameConfig(config); err != nil {
		return err
	}
	m.configs[name] = config
	return nil
}

func newTestService(t *testing.T) (service.GameService, *MockSessionManager, string) {
	t.Helper()
	sessions := NewMockSessionManager()
	svc := service.NewGameService(sessions, NewMockConfigManager())
	info, err := svc.CreateSession(context.Background(), "test")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	return svc, sessions, info.ID
}

func TestGameService_CreateSession(t *testing.T) {
	ctx := context.Background()
	svc := service.NewGameService(NewMockSessionManager(), NewMockConfigManager())

	tests := []struct {
		name       string
		configName string
		wantConfig string
		wantErr    bool
	}{
		{"create with default config", "", "default", false},
		{"create with specific config", "test", "test", false},
		{"create with json suffix", "test.json", "test", false},
		{"create with invalid config", "nonexistent", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := svc.CreateSession(ctx, tt.configName)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateSession() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if session.GameState == nil || session.GameState.Letters != testLetters {
				t.Errorf("Expected board %s, got %+v", testLetters, session.GameState)
			}
			if session.GameState.Phase != engine.PhaseHuman {
				t.Errorf("Expected human phase, got %s", session.GameState.Phase)
			}
			if session.ConfigName != tt.wantConfig {
				t.Errorf("Expected config %s, got %s", tt.wantConfig, session.ConfigName)
			}
		})
	}
}

func TestGameService_CreateSessionListsAvailableConfigs(t *testing.T) {
	svc := service.NewGameService(NewMockSessionManager(), NewMockConfigManager())
	_, err := svc.CreateSession(context.Background(), "missing")
	if err == nil {
		t.Fatal("Expected error for missing config")
	}
	want := "config 'missing' not found. Available configs: [default test]"
	if err.Error() != want {
		t.Errorf("Unexpected error:\n got %q\nwant %q", err.Error(), want)
	}
}

func TestGameService_SubmitWord(t *testing.T) {
	ctx := context.Background()
	svc, sessions, id := newTestService(t)

	tests := []struct {
		name        string
		word        string
		wantVerdict engine.Verdict
		wantScore   int
	}{
		{"accepted", "star", engine.VerdictAccepted, 1},
		{"too short", "TAR", engine.VerdictTooShort, 0},
		{"already found", "STAR", engine.VerdictAlreadyFound, 0},
		{"not a word", "RATE", engine.VerdictNotAWord, 0},
		{"not on board", "QUIZ", engine.VerdictNotOnBoard, 0},
		{"empty", "", engine.VerdictTooShort, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.SubmitWord(ctx, id, tt.word)
			if err != nil {
				t.Fatalf("SubmitWord: %v", err)
			}
			if result.Attempt.Verdict != tt.wantVerdict {
				t.Errorf("Expected %s, got %s", tt.wantVerdict, result.Attempt.Verdict)
			}
			if result.Attempt.Score != tt.wantScore {
				t.Errorf("Expected score %d, got %d", tt.wantScore, result.Attempt.Score)
			}
			if len(result.Events) != 1 {
				t.Fatalf("Expected one event, got %+v", result.Events)
			}

			if tt.wantVerdict == engine.VerdictAccepted {
				if !result.Accepted || result.Events[0].Type != service.EventWordAccepted {
					t.Errorf("Expected accepted event, got %+v", result.Events[0])
				}
				if len(result.Attempt.Path) != len(result.Attempt.Word) {
					t.Errorf("Expected a path per letter, got %v", result.Attempt.Path)
				}
			} else {
				if result.Accepted || result.Events[0].Type != service.EventWordRejected {
					t.Errorf("Expected rejected event, got %+v", result.Events[0])
				}
				if result.Reason != tt.wantVerdict.Describe() {
					t.Errorf("Expected reason %q, got %q", tt.wantVerdict.Describe(), result.Reason)
				}
			}
		})
	}

	state, _ := svc.GetGameState(ctx, id)
	if state.HumanScore != 1 || len(state.HumanWords) != 1 {
		t.Errorf("Expected one scored word, got score %d words %v", state.HumanScore, state.HumanWords)
	}
	if state.TotalAttempts != len(tests) {
		t.Errorf("Expected %d attempts, got %d", len(tests), state.TotalAttempts)
	}
	if sessions.saves != len(tests) {
		t.Errorf("Expected a save per submission, got %d", sessions.saves)
	}

	if _, err := svc.SubmitWord(ctx, "nope", "STAR"); !errors.Is(err, service.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestGameService_TraceWord(t *testing.T) {
	ctx := context.Background()
	svc, _, id := newTestService(t)

	tests := []struct {
		name     string
		word     string
		wantPath engine.Path
	}{
		{"traceable", "star", engine.Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}}},
		{"short words trace too", "TAR", engine.Path{{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}}},
		{"not traceable", "SASS", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.TraceWord(ctx, id, tt.word)
			if err != nil {
				t.Fatalf("TraceWord: %v", err)
			}
			if result.Found != (tt.wantPath != nil) {
				t.Errorf("Expected found=%v, got %v", tt.wantPath != nil, result.Found)
			}
			if diff := cmp.Diff(tt.wantPath, result.Path); diff != "" {
				t.Errorf("Path mismatch (-want +got):\n%s", diff)
			}
		})
	}

	// Tracing records nothing
	state, _ := svc.GetGameState(ctx, id)
	if state.TotalAttempts != 0 || len(state.HumanWords) != 0 {
		t.Errorf("TraceWord must not change state, got %+v", state)
	}
}

func TestGameService_ComputerTurn(t *testing.T) {
	ctx := context.Background()
	svc, _, id := newTestService(t)

	if _, err := svc.SubmitWord(ctx, id, "LIME"); err != nil {
		t.Fatal(err)
	}

	result, err := svc.ComputerTurn(ctx, id)
	if err != nil {
		t.Fatalf("ComputerTurn: %v", err)
	}

	var words []string
	for _, fw := range result.Words {
		words = append(words, fw.Word)
		if fw.Player != engine.Computer {
			t.Errorf("Expected computer word, got %+v", fw)
		}
	}
	sort.Strings(words)
	if diff := cmp.Diff([]string{"DIME", "MEAN", "STAR", "TALE"}, words); diff != "" {
		t.Errorf("Computer words mismatch (-want +got):\n%s", diff)
	}

	if result.Points != 4 || result.ComputerScore != 4 || result.HumanScore != 1 {
		t.Errorf("Unexpected tally: %+v", result)
	}
	if result.Winner != engine.Computer {
		t.Errorf("Expected computer to win, got %q", result.Winner)
	}
	if n := len(result.Events); n != 5 || result.Events[n-1].Type != service.EventRoundOver {
		t.Errorf("Expected four word events and a round_over event, got %+v", result.Events)
	}
	if result.GameState.Phase != engine.PhaseOver {
		t.Errorf("Expected round over, got %s", result.GameState.Phase)
	}

	t.Run("second turn finds nothing", func(t *testing.T) {
		again, err := svc.ComputerTurn(ctx, id)
		if err != nil {
			t.Fatal(err)
		}
		if !again.AlreadyOver || again.WordCount != 0 || len(again.Events) != 0 {
			t.Errorf("Expected empty repeat turn, got %+v", again)
		}
	})

	t.Run("submissions after the round", func(t *testing.T) {
		res, err := svc.SubmitWord(ctx, id, "STAR")
		if err != nil {
			t.Fatal(err)
		}
		if res.Attempt.Verdict != engine.VerdictTurnOver {
			t.Errorf("Expected turn_over, got %s", res.Attempt.Verdict)
		}
	})
}

func TestGameService_Reset(t *testing.T) {
	ctx := context.Background()
	svc, _, id := newTestService(t)

	svc.SubmitWord(ctx, id, "STAR")
	svc.ComputerTurn(ctx, id)

	state, err := svc.Reset(ctx, id)
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if state.Round != 2 || state.Phase != engine.PhaseHuman {
		t.Errorf("Expected round 2 in human phase, got round %d phase %s", state.Round, state.Phase)
	}
	if state.HumanScore != 0 || len(state.ComputerWords) != 0 {
		t.Errorf("Expected cleared scores, got %+v", state)
	}
	if state.TotalAttempts != 1 {
		t.Errorf("Attempt history should survive reset, got %d", state.TotalAttempts)
	}

	// Words are claimable again on the new round
	res, _ := svc.SubmitWord(ctx, id, "STAR")
	if !res.Accepted {
		t.Errorf("Expected STAR accepted after reset, got %s", res.Attempt.Verdict)
	}

	if _, err := svc.Reset(ctx, "missing"); !errors.Is(err, service.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestGameService_GetWordHistory(t *testing.T) {
	ctx := context.Background()
	svc, _, id := newTestService(t)

	words := []string{"STAR", "TALE", "MEAN", "DIME", "LIME"}
	for _, w := range words {
		svc.SubmitWord(ctx, id, w)
	}

	tests := []struct {
		name      string
		opts      service.HistoryOptions
		wantWords []string
		wantPages int
		wantNext  bool
	}{
		{"defaults are newest first", service.HistoryOptions{}, []string{"LIME", "DIME", "MEAN", "TALE", "STAR"}, 1, false},
		{"ascending page 1", service.HistoryOptions{Page: 1, Limit: 2, Order: "asc"}, []string{"STAR", "TALE"}, 3, true},
		{"ascending last page", service.HistoryOptions{Page: 3, Limit: 2, Order: "asc"}, []string{"LIME"}, 3, false},
		{"descending page 2", service.HistoryOptions{Page: 2, Limit: 2, Order: "desc"}, []string{"MEAN", "TALE"}, 3, true},
		{"page past the end", service.HistoryOptions{Page: 9, Limit: 2, Order: "asc"}, []string{}, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history, err := svc.GetWordHistory(ctx, id, tt.opts)
			if err != nil {
				t.Fatalf("GetWordHistory: %v", err)
			}
			got := []string{}
			for _, a := range history.Attempts {
				got = append(got, a.Word)
			}
			if diff := cmp.Diff(tt.wantWords, got); diff != "" {
				t.Errorf("Attempts mismatch (-want +got):\n%s", diff)
			}
			if history.TotalAttempts != len(words) || history.TotalPages != tt.wantPages || history.HasNext != tt.wantNext {
				t.Errorf("Unexpected pagination: %+v", history)
			}
		})
	}

	if _, err := svc.GetWordHistory(ctx, "missing", service.HistoryOptions{}); !errors.Is(err, service.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestGameService_DescribeCell(t *testing.T) {
	ctx := context.Background()
	svc, _, id := newTestService(t)

	view, err := svc.DescribeCell(ctx, id, engine.Cell{Row: 0, Col: 0})
	if err != nil {
		t.Fatalf("DescribeCell: %v", err)
	}
	if view.Letter != "S" || len(view.Neighbors) != 3 {
		t.Errorf("Unexpected corner view: %+v", view)
	}

	if _, err := svc.DescribeCell(ctx, id, engine.Cell{Row: 4, Col: 0}); !errors.Is(err, engine.ErrInvalidDimensions) {
		t.Errorf("Expected ErrInvalidDimensions, got %v", err)
	}
}

func TestGameService_ListAndDeleteSessions(t *testing.T) {
	ctx := context.Background()
	svc := service.NewGameService(NewMockSessionManager(), NewMockConfigManager())

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateSession(ctx, "test"); err != nil {
			t.Fatal(err)
		}
	}

	sessions, err := svc.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(sessions))
	}

	if err := svc.DeleteSession(ctx, sessions[0].ID); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	if _, err := svc.GetSession(ctx, sessions[0].ID); !errors.Is(err, service.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound after delete, got %v", err)
	}
	if err := svc.DeleteSession(ctx, sessions[0].ID); !errors.Is(err, service.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound on second delete, got %v", err)
	}
}

func TestGameService_Configs(t *testing.T) {
	ctx := context.Background()
	svc := service.NewGameService(NewMockSessionManager(), NewMockConfigManager())

	configs, err := svc.ListConfigs(ctx)
	if err != nil || len(configs) != 2 {
		t.Fatalf("ListConfigs = %v, %v", configs, err)
	}
	if !configs[1].FixedBoard || configs[1].ConfigID != "test" {
		t.Errorf("Unexpected config info: %+v", configs[1])
	}

	big := engine.DefaultGameConfig()
	big.Name = "big"
	big.BoardSize = 5
	if err := svc.SaveConfig(ctx, "big", big); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	loaded, err := svc.LoadConfig(ctx, "big")
	if err != nil || loaded.BoardSize != 5 {
		t.Errorf("LoadConfig = %+v, %v", loaded, err)
	}

	info, err := svc.CreateSession(ctx, "big")
	if err != nil {
		t.Fatalf("CreateSession(big): %v", err)
	}
	if info.GameState.Rows != 5 || len(info.GameState.Letters) != 25 {
		t.Errorf("Expected a 5x5 board, got %dx%d", info.GameState.Rows, info.GameState.Cols)
	}
}
