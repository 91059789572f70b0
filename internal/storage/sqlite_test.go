package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, s *Store, gameID string, score, chain int) {
	t.Helper()
	if err := s.SaveScore(Record{GameID: gameID, Score: score, Chain: chain}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "crush", 100, 2)
	mustSave(t, store, "crush", 50, 1)
	mustSave(t, store, "crush", 200, 4)
	mustSave(t, store, "crush_endless", 500, 3)

	scores, err := store.TopScores("crush", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []struct{ score, chain int }{{200, 4}, {100, 2}, {50, 1}}
	for i, w := range want {
		if scores[i].Score != w.score || scores[i].Chain != w.chain {
			t.Errorf("scores[%d] = %d/x%d, want %d/x%d", i, scores[i].Score, scores[i].Chain, w.score, w.chain)
		}
		if scores[i].CreatedAt.IsZero() {
			t.Errorf("scores[%d] has no timestamp", i)
		}
	}

	endless, err := store.TopScores("crush_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endless))
	}
}

func TestStoreTopScoresTieBreaksOnChain(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "crush", 300, 1)
	mustSave(t, store, "crush", 300, 5)

	scores, err := store.TopScores("crush", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Chain != 5 {
		t.Errorf("tie not broken by chain: %+v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, "test", (i+1)*100, 0)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("crush")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, "crush", 100, 1)
	mustSave(t, store, "crush", 300, 1)
	mustSave(t, store, "crush", 200, 1)

	high, err = store.HighScore("crush")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "crush", 100, 1)
	mustSave(t, store, "crush", 200, 1)
	mustSave(t, store, "crush_endless", 300, 1)

	n, err := store.ClearScores("crush")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("cleared %d rows, want 2", n)
	}

	if scores, _ := store.TopScores("crush", 10); len(scores) != 0 {
		t.Errorf("Expected 0 campaign scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("crush_endless", 10); len(scores) != 1 {
		t.Error("Endless scores should not be affected by clearing campaign")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "crush", 100, 2)
	if err := store.SaveScore(Record{GameID: "crush", Score: 300, Chain: 6, Level: 5, Won: true}); err != nil {
		t.Fatal(err)
	}

	stats, err := store.GetGameStats("crush")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.BestChain != 6 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Wins != 1 || stats.BestLevel != 5 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestStoreMigratesOldSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`
		CREATE TABLE scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO scores (game_id, score) VALUES ('crush', 42);
	`)
	if err != nil {
		t.Fatal(err)
	}
	db.Close()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on old schema failed: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores("crush", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 42 || scores[0].Chain != 0 || scores[0].Level != 0 || scores[0].Won {
		t.Errorf("migrated scores = %+v", scores)
	}
	mustSave(t, store, "crush", 10, 3)
}

func TestStoreRecordRoundTrip(t *testing.T) {
	store := openTestStore(t)

	want := Record{GameID: "crush", Score: 1500, Chain: 4, Level: 3, Won: true}
	if err := store.SaveScore(want); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	scores, err := store.TopScores("crush", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Record != want {
		t.Errorf("stored = %+v, want %+v", scores, want)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
