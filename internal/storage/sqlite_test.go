package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
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

func sampleRun(score int) core.RunLog {
	return core.RunLog{
		Seed:     42,
		TickRate: 60,
		Ticks:    300,
		Jumps:    []int{0, 25, 61},
		Score:    score,
		Reason:   "collision",
		Duration: 4983 * time.Millisecond,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

func TestSaveRunRoundTrip(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.SaveRun("dodge", sampleRun(4))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("SaveRun() returned an empty ID")
	}

	got, err := store.RunByID(saved.ID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if !got.CreatedAt.Equal(saved.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, saved.CreatedAt)
	}
	got.CreatedAt = saved.CreatedAt
	if !reflect.DeepEqual(got, saved) {
		t.Errorf("RunByID() = %+v, want %+v", got, saved)
	}
	if !reflect.DeepEqual(got.Log(), sampleRun(4)) {
		t.Errorf("Log() = %+v, want %+v", got.Log(), sampleRun(4))
	}
}

func TestSaveRunWithoutJumps(t *testing.T) {
	store := openTestStore(t)

	run := sampleRun(0)
	run.Jumps = nil
	saved, err := store.SaveRun("dodge", run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.RunByID(saved.ID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got.Jumps == nil || len(got.Jumps) != 0 {
		t.Errorf("jumps = %#v, want empty slice", got.Jumps)
	}
}

func TestRunByIDNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.RunByID("missing")
	if !errors.Is(err, ErrRunNotFound) {
		t.Errorf("RunByID() error = %v, want ErrRunNotFound", err)
	}
}

func TestRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 3; i++ {
		if _, err := store.SaveRun("dodge", sampleRun(i)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun("dodge_classic", sampleRun(9)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.RecentRuns("dodge", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	// Newest first
	for i, want := range []int{3, 2, 1} {
		if runs[i].Score != want {
			t.Errorf("runs[%d].Score = %d, want %d", i, runs[i].Score, want)
		}
		if runs[i].GameID != "dodge" {
			t.Errorf("runs[%d].GameID = %q", i, runs[i].GameID)
		}
	}

	limited, err := store.RecentRuns("", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(limited) != 2 || limited[0].GameID != "dodge_classic" {
		t.Errorf("RecentRuns(\"\", 2) = %+v", limited)
	}
}

func TestCountRuns(t *testing.T) {
	store := openTestStore(t)

	if n, err := store.CountRuns(""); err != nil || n != 0 {
		t.Fatalf("CountRuns() on empty journal = %d, %v", n, err)
	}

	store.SaveRun("dodge", sampleRun(1))
	store.SaveRun("dodge", sampleRun(2))
	store.SaveRun("dodge_classic", sampleRun(3))

	tests := []struct {
		gameID string
		want   int
	}{
		{"", 3},
		{"dodge", 2},
		{"dodge_classic", 1},
		{"other", 0},
	}
	for _, tt := range tests {
		n, err := store.CountRuns(tt.gameID)
		if err != nil {
			t.Fatalf("CountRuns(%q) failed: %v", tt.gameID, err)
		}
		if n != tt.want {
			t.Errorf("CountRuns(%q) = %d, want %d", tt.gameID, n, tt.want)
		}
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	saved, err := store1.SaveRun("dodge", sampleRun(5))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	got, err := store2.RunByID(saved.ID)
	if err != nil {
		t.Fatalf("RunByID() after reopen failed: %v", err)
	}
	if got.Score != 5 {
		t.Errorf("Score = %d, want 5", got.Score)
	}
}
