package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its parent directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{Seed: 1, Frames: 10, Score: 2, Replay: []byte("x")}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	// Migrations must be idempotent
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	n, err := store.CountRuns()
	if err != nil {
		t.Fatalf("CountRuns() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("CountRuns() = %d, expected 1", n)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	replay := []byte("version: 1\nseed: 42\n")
	id, err := store.SaveRun(Run{Seed: 42, Frames: 900, Score: 7, Replay: replay})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}

	if run.ID != id || run.Seed != 42 || run.Frames != 900 || run.Score != 7 {
		t.Errorf("RunByID() = %+v, unexpected fields", run)
	}
	if string(run.Replay) != string(replay) {
		t.Errorf("Replay = %q, expected %q", run.Replay, replay)
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	} else if time.Since(run.CreatedAt) > 24*time.Hour {
		t.Errorf("CreatedAt = %v, expected a recent time", run.CreatedAt)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		if _, err := store.SaveRun(Run{Seed: int64(i), Frames: i * 10, Score: i, Replay: []byte("r")}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Newest first
	for i, expected := range []int64{4, 3, 2} {
		if runs[i].Seed != expected {
			t.Errorf("runs[%d].Seed = %d, expected %d", i, runs[i].Seed, expected)
		}
		if runs[i].Replay != nil {
			t.Errorf("runs[%d].Replay should not be loaded", i)
		}
	}

	// Default limit
	all, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("RecentRuns(0) returned %d runs, expected 5", len(all))
	}
}

func TestStoreRunNotFound(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.RunByID(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("RunByID() error = %v, expected ErrNotFound", err)
	}
	if err := store.DeleteRun(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteRun() error = %v, expected ErrNotFound", err)
	}
}

func TestStoreDeleteRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{Seed: 1, Replay: []byte("r")})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.DeleteRun(id); err != nil {
		t.Fatalf("DeleteRun() failed: %v", err)
	}
	if _, err := store.RunByID(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("run should be gone, RunByID() error = %v", err)
	}
}

func TestStoreEmpty(t *testing.T) {
	store := openTestStore(t)

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs, got %d", len(runs))
	}
}

func TestParseTime(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name     string
		in       any
		expected time.Time
	}{
		{"time value", now, now},
		{"sqlite string", "2025-01-02 03:04:05", now},
		{"garbage string", "yesterday", time.Time{}},
		{"nil", nil, time.Time{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseTime(tc.in); !got.Equal(tc.expected) {
				t.Errorf("parseTime(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}
