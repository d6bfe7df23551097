package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rkoschmitzky/Terminal-Tic-Tac-Toe/internal/board"
	"github.com/rkoschmitzky/Terminal-Tic-Tac-Toe/internal/match"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Parent directories and the file itself should exist.
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestSaveAndRecentResults(t *testing.T) {
	store := openTestStore(t)

	results := []match.Result{
		{Winner: board.PlayerA, Axes: []board.Axis{board.Horizontal}, Size: 3, Moves: 5, Duration: 42 * time.Second},
		{Winner: board.PlayerB, Axes: []board.Axis{board.DiagonalAscending}, Size: 4, Moves: 9, Duration: time.Minute},
		{Winner: board.Empty, Size: 3, Moves: 9, Duration: 30 * time.Second},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult(%+v) failed: %v", r, err)
		}
	}

	entries, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	// Newest first.
	if entries[0].Winner != board.Empty {
		t.Errorf("newest winner = %v, want Empty (draw)", entries[0].Winner)
	}
	if entries[2].Winner != board.PlayerA {
		t.Errorf("oldest winner = %v, want PlayerA", entries[2].Winner)
	}
	if entries[2].Axes != "horizontally" {
		t.Errorf("oldest axes = %q, want %q", entries[2].Axes, "horizontally")
	}
	if entries[1].Size != 4 || entries[1].Moves != 9 {
		t.Errorf("middle entry = %+v, want size 4, moves 9", entries[1])
	}
	if entries[1].DurationSecs != 60 {
		t.Errorf("middle duration = %d, want 60", entries[1].DurationSecs)
	}
}

func TestRecentResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult(match.Result{Winner: board.PlayerA, Size: 3, Moves: 5})
	}

	entries, err := store.RecentResults(3)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("got %d entries with limit 3, want 3", len(entries))
	}
}

func TestTally(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(match.Result{Winner: board.PlayerA, Size: 3, Moves: 5})
	store.SaveResult(match.Result{Winner: board.PlayerA, Size: 4, Moves: 7})
	store.SaveResult(match.Result{Winner: board.PlayerB, Size: 3, Moves: 6})
	store.SaveResult(match.Result{Winner: board.Empty, Size: 3, Moves: 9})

	all, err := store.Tally(0)
	if err != nil {
		t.Fatalf("Tally(0) failed: %v", err)
	}
	if all.WinsA != 2 || all.WinsB != 1 || all.Draws != 1 {
		t.Errorf("Tally(0) = %+v, want 2/1/1", all)
	}
	if all.Games() != 4 {
		t.Errorf("Games() = %d, want 4", all.Games())
	}

	size3, err := store.Tally(3)
	if err != nil {
		t.Fatalf("Tally(3) failed: %v", err)
	}
	if size3.WinsA != 1 || size3.WinsB != 1 || size3.Draws != 1 {
		t.Errorf("Tally(3) = %+v, want 1/1/1", size3)
	}
}

func TestTallyEmpty(t *testing.T) {
	store := openTestStore(t)

	c, err := store.Tally(0)
	if err != nil {
		t.Fatalf("Tally(0) failed: %v", err)
	}
	if c.Games() != 0 {
		t.Errorf("Games() = %d on empty store, want 0", c.Games())
	}
}

func TestClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(match.Result{Winner: board.PlayerA, Size: 3, Moves: 5})
	store.SaveResult(match.Result{Winner: board.PlayerB, Size: 3, Moves: 6})

	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	entries, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries after clear, want 0", len(entries))
	}
}

func TestJoinAxes(t *testing.T) {
	if got := joinAxes(nil); got != "" {
		t.Errorf("joinAxes(nil) = %q, want empty", got)
	}
	got := joinAxes([]board.Axis{board.Horizontal, board.Vertical})
	if got != "horizontally, vertically" {
		t.Errorf("joinAxes = %q, want %q", got, "horizontally, vertically")
	}
}
