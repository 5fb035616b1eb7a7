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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	entries := []ResultEntry{
		{Difficulty: "easy", Word: "cat", Won: true, AttemptsUsed: 1, MaxAttempts: 6},
		{Difficulty: "easy", Word: "dog", Won: false, AttemptsUsed: 6, MaxAttempts: 6},
		{Difficulty: "hard", Word: "rhythm", Won: true, AttemptsUsed: 3, MaxAttempts: 6},
	}
	for _, e := range entries {
		if _, err := store.SaveResult(e); err != nil {
			t.Fatalf("SaveResult(%+v) failed: %v", e, err)
		}
	}

	results, err := store.RecentResults("easy", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 easy results, got %d", len(results))
	}

	// Newest first
	if results[0].Word != "dog" {
		t.Errorf("Expected newest result first, got %q", results[0].Word)
	}
	if results[0].Won {
		t.Error("dog game should be recorded as a loss")
	}
	if results[1].Word != "cat" || !results[1].Won {
		t.Errorf("Unexpected second entry: %+v", results[1])
	}

	all, err := store.RecentResults("", 10)
	if err != nil {
		t.Fatalf("RecentResults(\"\") failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 results across difficulties, got %d", len(all))
	}
}

func TestStoreRecentResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult(ResultEntry{Difficulty: "medium", Word: "garden", Won: true, AttemptsUsed: i, MaxAttempts: 6})
	}

	results, err := store.RecentResults("medium", 3)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("Expected 3 results with limit, got %d", len(results))
	}
}

func TestStoreTally(t *testing.T) {
	store := openTestStore(t)

	// No games yet
	tally, err := store.Tally("")
	if err != nil {
		t.Fatalf("Tally() failed: %v", err)
	}
	if tally.Wins != 0 || tally.Losses != 0 {
		t.Errorf("Expected empty tally, got %+v", tally)
	}

	store.SaveResult(ResultEntry{Difficulty: "easy", Word: "cat", Won: true, AttemptsUsed: 0, MaxAttempts: 6})
	store.SaveResult(ResultEntry{Difficulty: "easy", Word: "dog", Won: false, AttemptsUsed: 6, MaxAttempts: 6})
	store.SaveResult(ResultEntry{Difficulty: "impossible", Word: "sphinx", Won: false, AttemptsUsed: 1, MaxAttempts: 1})

	tally, err = store.Tally("")
	if err != nil {
		t.Fatalf("Tally() failed: %v", err)
	}
	if tally.Wins != 1 || tally.Losses != 2 {
		t.Errorf("Tally(\"\") = %+v, expected 1 win 2 losses", tally)
	}

	tally, err = store.Tally("easy")
	if err != nil {
		t.Fatalf("Tally(easy) failed: %v", err)
	}
	if tally.Wins != 1 || tally.Losses != 1 {
		t.Errorf("Tally(easy) = %+v, expected 1 win 1 loss", tally)
	}
}

func TestStoreStatsByDifficulty(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(ResultEntry{Difficulty: "easy", Word: "cat", Won: true, AttemptsUsed: 2, MaxAttempts: 6})
	store.SaveResult(ResultEntry{Difficulty: "easy", Word: "sun", Won: true, AttemptsUsed: 0, MaxAttempts: 6})
	store.SaveResult(ResultEntry{Difficulty: "hard", Word: "glyph", Won: false, AttemptsUsed: 6, MaxAttempts: 6})

	stats, err := store.StatsByDifficulty()
	if err != nil {
		t.Fatalf("StatsByDifficulty() failed: %v", err)
	}

	easy, ok := stats["easy"]
	if !ok {
		t.Fatal("Expected stats for easy")
	}
	if easy.Games != 2 || easy.Wins != 2 || easy.Losses != 0 {
		t.Errorf("easy stats = %+v", easy)
	}
	if easy.WinRate() != 1.0 {
		t.Errorf("easy WinRate() = %f, expected 1.0", easy.WinRate())
	}

	hard, ok := stats["hard"]
	if !ok {
		t.Fatal("Expected stats for hard")
	}
	if hard.Games != 1 || hard.Wins != 0 || hard.Losses != 1 {
		t.Errorf("hard stats = %+v", hard)
	}
	if hard.WinRate() != 0 {
		t.Errorf("hard WinRate() = %f, expected 0", hard.WinRate())
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(ResultEntry{Difficulty: "easy", Word: "cat", Won: true, AttemptsUsed: 0, MaxAttempts: 6})
	store.SaveResult(ResultEntry{Difficulty: "hard", Word: "crypt", Won: false, AttemptsUsed: 6, MaxAttempts: 6})

	// Clear only easy results
	if err := store.ClearResults("easy"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	easyResults, _ := store.RecentResults("easy", 10)
	if len(easyResults) != 0 {
		t.Errorf("Expected 0 easy results after clear, got %d", len(easyResults))
	}

	hardResults, _ := store.RecentResults("hard", 10)
	if len(hardResults) != 1 {
		t.Error("Hard results should not be affected by clearing easy")
	}

	// Clear everything
	if err := store.ClearResults(""); err != nil {
		t.Fatalf("ClearResults(\"\") failed: %v", err)
	}
	all, _ := store.RecentResults("", 10)
	if len(all) != 0 {
		t.Errorf("Expected 0 results after full clear, got %d", len(all))
	}
}
