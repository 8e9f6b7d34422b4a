package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveSession("carnival", score, score/2, 60); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}
	if _, err := store.SaveSession("carnival_frenzy", 500, 10, 120); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	sessions, err := store.TopSessions("carnival", 10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}

	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(sessions))
	}
	if sessions[0].Score != 200 || sessions[1].Score != 100 || sessions[2].Score != 50 {
		t.Errorf("Sessions not sorted by score descending: %v", sessions)
	}
	if sessions[0].WallsBuilt != 100 {
		t.Errorf("WallsBuilt = %d, expected 100", sessions[0].WallsBuilt)
	}

	frenzy, err := store.TopSessions("carnival_frenzy", 10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(frenzy) != 1 {
		t.Errorf("Expected 1 frenzy session, got %d", len(frenzy))
	}
}

func TestStoreTopSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveSession("carnival", (i+1)*100, 0, 0)
	}

	sessions, err := store.TopSessions("carnival", 3)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}

	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions with limit, got %d", len(sessions))
	}
	if sessions[0].Score != 500 || sessions[1].Score != 400 || sessions[2].Score != 300 {
		t.Errorf("Sessions not in expected order: %v", sessions)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("carnival")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveSession("carnival", 100, 0, 0)
	store.SaveSession("carnival", 300, 0, 0)
	store.SaveSession("carnival", 200, 0, 0)

	high, err = store.HighScore("carnival")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession("carnival", 100, 0, 0)
	store.SaveSession("carnival", 200, 0, 0)
	store.SaveSession("carnival_frenzy", 300, 0, 0)

	if err := store.ClearSessions("carnival"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	normal, _ := store.TopSessions("carnival", 10)
	if len(normal) != 0 {
		t.Errorf("Expected 0 carnival sessions after clear, got %d", len(normal))
	}

	frenzy, _ := store.TopSessions("carnival_frenzy", 10)
	if len(frenzy) != 1 {
		t.Error("Frenzy sessions should not be affected by clearing carnival")
	}
}

func TestStoreAllSessions(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveSession("carnival", i*10, 0, 0)
	}

	sessions, err := store.AllSessions("carnival")
	if err != nil {
		t.Fatalf("AllSessions() failed: %v", err)
	}
	if len(sessions) != 20 {
		t.Errorf("Expected 20 sessions, got %d", len(sessions))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession("carnival", 10, 5, 30)
	store.SaveSession("carnival", 20, 15, 60)

	stats, err := store.GetGameStats("carnival")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.Sessions != 2 {
		t.Errorf("Sessions = %d, expected 2", stats.Sessions)
	}
	if stats.HighScore != 20 {
		t.Errorf("HighScore = %d, expected 20", stats.HighScore)
	}
	if stats.TotalRocks != 30 {
		t.Errorf("TotalRocks = %d, expected 30", stats.TotalRocks)
	}
	if stats.TotalWalls != 20 {
		t.Errorf("TotalWalls = %d, expected 20", stats.TotalWalls)
	}
	if stats.AvgScore != 15 {
		t.Errorf("AvgScore = %v, expected 15", stats.AvgScore)
	}
}

func TestStoreGameStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("carnival")
	if err != nil {
		t.Fatalf("GetGameStats() on empty store failed: %v", err)
	}
	if stats.Sessions != 0 || stats.HighScore != 0 {
		t.Errorf("Empty stats = %+v", stats)
	}
}
