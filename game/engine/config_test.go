package engine

import (
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func createValidConfig() *GameConfig {
	config := DefaultGameConfig()
	config.Name = "Test Config"
	config.Description = "A valid test configuration"
	return config
}

func TestValidateGameConfig(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*GameConfig)
		wantErr string
	}{
		{
			name:   "valid random config",
			modify: func(c *GameConfig) {},
		},
		{
			name:   "valid fixed board",
			modify: func(c *GameConfig) { c.Letters = "ABCDEFGHIJKLMNOP" },
		},
		{
			name: "valid big board",
			modify: func(c *GameConfig) {
				c.BoardSize = 5
				c.Letters = strings.Repeat("A", 25)
			},
		},
		{
			name:    "missing name",
			modify:  func(c *GameConfig) { c.Name = "" },
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			modify:  func(c *GameConfig) { c.Description = "" },
			wantErr: "description is required",
		},
		{
			name:    "unsupported size",
			modify:  func(c *GameConfig) { c.BoardSize = 6 },
			wantErr: "board_size must be 4 or 5",
		},
		{
			name:    "letters wrong length",
			modify:  func(c *GameConfig) { c.Letters = "ABCDEFGHIJKLMNOPQ" },
			wantErr: "letters must have 16 characters",
		},
		{
			name:    "letters not alphabetic",
			modify:  func(c *GameConfig) { c.Letters = "ABCDEFGHIJKLMN-P" },
			wantErr: "letters:",
		},
		{
			name:    "missing welcome",
			modify:  func(c *GameConfig) { c.Messages.Welcome = "" },
			wantErr: "messages.welcome is required",
		},
		{
			name:    "word accepted without score",
			modify:  func(c *GameConfig) { c.Messages.WordAccepted = "%s accepted" },
			wantErr: "messages.word_accepted",
		},
		{
			name:    "word rejected without reason",
			modify:  func(c *GameConfig) { c.Messages.WordRejected = "Nope" },
			wantErr: "messages.word_rejected",
		},
		{
			name:    "word accepted with swapped verbs",
			modify:  func(c *GameConfig) { c.Messages.WordAccepted = "%d points for %s" },
			wantErr: "messages.word_accepted",
		},
		{
			name:    "word accepted with extra verb",
			modify:  func(c *GameConfig) { c.Messages.WordAccepted = "%s accepted for %d points (%d total)" },
			wantErr: "messages.word_accepted",
		},
		{
			name:    "word rejected with extra verb",
			modify:  func(c *GameConfig) { c.Messages.WordRejected = "Not accepted: %s (%s)" },
			wantErr: "messages.word_rejected",
		},
		{
			name:    "word rejected with number verb",
			modify:  func(c *GameConfig) { c.Messages.WordRejected = "Not accepted: %d" },
			wantErr: "messages.word_rejected",
		},
		{
			name:    "computer done with three verbs",
			modify:  func(c *GameConfig) { c.Messages.ComputerDone = "Found %d words for %d points in %d ms" },
			wantErr: "messages.computer_done",
		},
		{
			name:   "literal percent is allowed",
			modify: func(c *GameConfig) { c.Messages.WordAccepted = "%s accepted for %d points, 100%% valid" },
		},
		{
			name:    "computer done with one verb",
			modify:  func(c *GameConfig) { c.Messages.ComputerDone = "Found %d words" },
			wantErr: "messages.computer_done",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := createValidConfig()
			tt.modify(config)
			err := ValidateGameConfig(config)

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}

	if err := ValidateGameConfig(nil); err == nil {
		t.Error("expected error for nil config")
	}
}

func TestLoadConfigByName(t *testing.T) {
	dir := t.TempDir()
	config := createValidConfig()
	config.Name = "fixed"
	config.Letters = "STARPLEAHIMNOUDE"

	data, err := json.Marshal(config)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "fixed.json"), data, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Run("by name", func(t *testing.T) {
		loaded, err := LoadConfigByName(dir, "fixed")
		if err != nil {
			t.Fatalf("LoadConfigByName: %v", err)
		}
		if loaded.Letters != config.Letters {
			t.Errorf("letters = %s, want %s", loaded.Letters, config.Letters)
		}
	})

	t.Run("with extension", func(t *testing.T) {
		if _, err := LoadConfigByName(dir, "fixed.json"); err != nil {
			t.Fatalf("LoadConfigByName: %v", err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, err := LoadConfigByName(dir, "nope")
		if err == nil || !strings.Contains(err.Error(), "not found") {
			t.Errorf("expected not found error, got %v", err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		if _, err := LoadConfigByName(dir, "broken"); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestBuildBoard(t *testing.T) {
	fixed := createValidConfig()
	fixed.Letters = "abcdefghijklmnop"

	b, err := BuildBoard(fixed, nil)
	if err != nil {
		t.Fatalf("BuildBoard fixed: %v", err)
	}
	if b.Letters() != "ABCDEFGHIJKLMNOP" {
		t.Errorf("fixed board letters = %s", b.Letters())
	}

	random := createValidConfig()
	random.BoardSize = 5
	b, err = BuildBoard(random, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("BuildBoard random: %v", err)
	}
	if rows, cols := b.Dimensions(); rows != 5 || cols != 5 {
		t.Errorf("random board is %dx%d", rows, cols)
	}
}

func TestInitGameState(t *testing.T) {
	config := createValidConfig()
	b := mustBoard(t, 4, 4, "ABCDEFGHIJKLMNOP")
	state := InitGameState(config, b)

	if state.Phase != PhaseHuman {
		t.Errorf("phase = %s, want human", state.Phase)
	}
	if state.Letters != "ABCDEFGHIJKLMNOP" || state.Rows != 4 || state.Cols != 4 {
		t.Errorf("unexpected board in state: %+v", state)
	}
	if len(state.Grid) != 4 || state.Grid[1] != "EFGH" {
		t.Errorf("grid = %v", state.Grid)
	}
	if state.Message != config.Messages.Welcome {
		t.Errorf("message = %q", state.Message)
	}
	if state.Round != 1 || state.ConfigName != config.Name {
		t.Errorf("round/config = %d/%s", state.Round, state.ConfigName)
	}
}
