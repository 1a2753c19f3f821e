package session

import (
	"testing"
	"time"
)

func TestManagerWithPersistence(t *testing.T) {
	tempDir := t.TempDir()
	configManager := newTestConfigManager(t)

	persistence, err := NewFilePersistence(tempDir, configManager, testDictionary())
	if err != nil {
		t.Fatalf("Failed to create file persistence: %v", err)
	}

	manager := NewManagerWithPersistence(testDictionary(), persistence)
	gameConfig, _ := configManager.LoadConfig("demo")

	t.Run("Create Session Auto-Saves", func(t *testing.T) {
		session, err := manager.Create("auto1", gameConfig)
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if !persistence.Exists(session.ID) {
			t.Error("Session should be auto-saved on creation")
		}
	})

	t.Run("Get Session Loads from Persistence", func(t *testing.T) {
		manager2 := NewManagerWithPersistence(testDictionary(), persistence)

		session, err := manager2.Get("auto1")
		if err != nil {
			t.Fatalf("Failed to get session from persistence: %v", err)
		}
		if session.ID != "auto1" {
			t.Errorf("Expected ID auto1, got %s", session.ID)
		}
		if manager2.Count() != 1 {
			t.Error("Session should be cached in memory after loading from persistence")
		}
	})

	t.Run("Save Method Persists Changes", func(t *testing.T) {
		session, _ := manager.Get("auto1")
		if attempt := session.Engine.SubmitWord("TALE"); !attempt.Accepted() {
			t.Fatalf("Expected TALE accepted, got %s", attempt.Verdict)
		}
		if err := manager.Save("auto1"); err != nil {
			t.Fatalf("Save: %v", err)
		}

		loaded, err := persistence.Load("auto1")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		words := loaded.Engine.GetState().HumanWords
		if len(words) != 1 || words[0].Word != "TALE" {
			t.Errorf("Expected persisted TALE, got %+v", words)
		}
	})

	t.Run("Delete Removes from Persistence", func(t *testing.T) {
		manager.Create("gone", gameConfig)
		if err := manager.Delete("gone"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if persistence.Exists("gone") {
			t.Error("Delete should remove the persisted copy")
		}
	})

	t.Run("Delete From Memory Keeps Persisted Copy", func(t *testing.T) {
		manager.Create("kept", gameConfig)
		if err := manager.DeleteFromMemory("kept"); err != nil {
			t.Fatalf("DeleteFromMemory: %v", err)
		}
		if !persistence.Exists("kept") {
			t.Error("Persisted copy should survive DeleteFromMemory")
		}
		if _, err := manager.Get("kept"); err != nil {
			t.Errorf("Get should reload from persistence: %v", err)
		}
	})

	t.Run("Load Persisted Sessions on Startup", func(t *testing.T) {
		fresh := NewManagerWithPersistence(testDictionary(), persistence)
		if err := fresh.LoadPersistedSessions(); err != nil {
			t.Fatalf("LoadPersistedSessions: %v", err)
		}
		if fresh.Count() != 2 {
			t.Errorf("Expected 2 sessions loaded, got %d", fresh.Count())
		}
	})

	t.Run("Update Last Accessed Persists", func(t *testing.T) {
		session, _ := manager.Get("auto1")
		session.LastAccessedAt = time.Now().Add(-time.Hour)

		if err := manager.UpdateLastAccessed("auto1"); err != nil {
			t.Fatalf("UpdateLastAccessed: %v", err)
		}

		loaded, err := persistence.Load("auto1")
		if err != nil {
			t.Fatal(err)
		}
		if time.Since(loaded.LastAccessedAt) > time.Minute {
			t.Errorf("Expected persisted access time to be recent, got %v", loaded.LastAccessedAt)
		}
	})

	t.Run("Save All Sessions", func(t *testing.T) {
		if err := manager.SaveAllSessions(); err != nil {
			t.Errorf("SaveAllSessions: %v", err)
		}
	})
}
