package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestScoresSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		player string
		score  int
		level  int
	}{
		{"alice", 100, 1},
		{"bob", 50, 1},
		{"alice", 200, 2},
	} {
		if _, err := store.SaveScore(s.player, s.score, s.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].Player != "alice" || scores[0].Level != 2 {
		t.Errorf("Top entry fields wrong: %+v", scores[0])
	}
}

func TestScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("p", (i+1)*100, 1)
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[2].Score != 300 {
		t.Errorf("Scores not top-3: %v", scores)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty table, got %d", high)
	}

	store.SaveScore("p", 100, 1)
	store.SaveScore("p", 300, 2)
	store.SaveScore("p", 200, 1)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected 300, got %d", high)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("p", 100, 1)
	store.SaveScore("p", 200, 1)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func testSnapshot(name string) breakout.Snapshot {
	e := breakout.NewEngine()
	e.SetRandomSeed(7)
	e.LaunchBall()
	for i := 0; i < 60; i++ {
		e.Update(1.0 / 60.0)
	}
	return e.Snapshot(name, "default")
}

func TestEndgameSaveLoadRoundTrip(t *testing.T) {
	store := openTestStore(t)
	snap := testSnapshot("midgame_1")

	if err := store.SaveEndgame(snap, false); err != nil {
		t.Fatalf("SaveEndgame() failed: %v", err)
	}

	loaded, err := store.LoadEndgame("midgame_1")
	if err != nil {
		t.Fatalf("LoadEndgame() failed: %v", err)
	}

	if loaded.Version != snap.Version || loaded.Score != snap.Score || loaded.Level != snap.Level {
		t.Errorf("loaded snapshot differs: %+v vs %+v", loaded, snap)
	}
	if loaded.BallPos != snap.BallPos || loaded.BallVel != snap.BallVel {
		t.Error("ball state did not survive the msgpack round trip")
	}
	if len(loaded.Bricks) != len(snap.Bricks) {
		t.Fatalf("brick count differs: %d vs %d", len(loaded.Bricks), len(snap.Bricks))
	}
	for i := range snap.Bricks {
		if loaded.Bricks[i] != snap.Bricks[i] {
			t.Errorf("brick %d differs after round trip", i)
		}
	}
}

func TestEndgameOverwriteSemantics(t *testing.T) {
	store := openTestStore(t)

	first := testSnapshot("save_1")
	if err := store.SaveEndgame(first, false); err != nil {
		t.Fatalf("SaveEndgame() failed: %v", err)
	}

	// Same name without overwrite fails.
	second := testSnapshot("save_1")
	second.Score = first.Score + 999
	if err := store.SaveEndgame(second, false); !errors.Is(err, ErrEndgameExists) {
		t.Errorf("expected ErrEndgameExists, got %v", err)
	}

	// With overwrite it replaces the row.
	if err := store.SaveEndgame(second, true); err != nil {
		t.Fatalf("SaveEndgame(overwrite) failed: %v", err)
	}
	loaded, err := store.LoadEndgame("save_1")
	if err != nil {
		t.Fatalf("LoadEndgame() failed: %v", err)
	}
	if loaded.Score != second.Score {
		t.Errorf("overwrite did not replace: score %d, want %d", loaded.Score, second.Score)
	}
}

func TestEndgameNameValidation(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"", "has space", "slash/name", "dot.name", "q;drop"} {
		snap := testSnapshot("valid")
		snap.Name = name
		if err := store.SaveEndgame(snap, false); err == nil {
			t.Errorf("name %q should be rejected", name)
		}
	}

	for _, name := range []string{"save1", "SAVE_2", "a", "_"} {
		if !ValidEndgameName(name) {
			t.Errorf("name %q should be accepted", name)
		}
	}
}

func TestEndgameListAndDelete(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"one", "two", "three"} {
		if err := store.SaveEndgame(testSnapshot(name), false); err != nil {
			t.Fatalf("SaveEndgame(%s) failed: %v", name, err)
		}
	}

	infos, err := store.ListEndgames()
	if err != nil {
		t.Fatalf("ListEndgames() failed: %v", err)
	}
	if len(infos) != 3 {
		t.Fatalf("Expected 3 endgames, got %d", len(infos))
	}
	for _, info := range infos {
		if info.ConfigName != "default" {
			t.Errorf("endgame %q config name = %q, want default", info.Name, info.ConfigName)
		}
	}

	if err := store.DeleteEndgame("two"); err != nil {
		t.Fatalf("DeleteEndgame() failed: %v", err)
	}
	if _, err := store.LoadEndgame("two"); !errors.Is(err, ErrEndgameNotFound) {
		t.Errorf("expected ErrEndgameNotFound after delete, got %v", err)
	}

	if err := store.DeleteEndgame("missing"); !errors.Is(err, ErrEndgameNotFound) {
		t.Errorf("deleting a missing endgame should return ErrEndgameNotFound, got %v", err)
	}

	infos, _ = store.ListEndgames()
	if len(infos) != 2 {
		t.Errorf("Expected 2 endgames after delete, got %d", len(infos))
	}
}
