package storage

import (
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{LevelID: "01", ProperDays: 12.5, ObserverDays: 14, LaunchFraction: 0.5, Rate: 1},
		{LevelID: "01", ProperDays: 8.25, ObserverDays: 13, LaunchFraction: 0.9, Rate: 2, Player: "ana"},
		{LevelID: "01", ProperDays: 20, ObserverDays: 20.5, LaunchFraction: 0.2, Rate: 0.5},
		{LevelID: "02", ProperDays: 3, ObserverDays: 4, LaunchFraction: 0.7, Rate: 1},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	best, err := store.BestRuns("01", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(best))
	}

	// Should be sorted by proper time ascending
	for i, want := range []float64{8.25, 12.5, 20} {
		if best[i].ProperDays != want {
			t.Errorf("run %d ProperDays = %v, want %v", i, best[i].ProperDays, want)
		}
	}
	if best[0].Player != "ana" || best[0].Rate != 2 || best[0].LaunchFraction != 0.9 {
		t.Errorf("fields not round-tripped: %+v", best[0])
	}
	if best[0].Difficulty != "normal" {
		t.Errorf("Difficulty = %q, want the normal default", best[0].Difficulty)
	}
	if best[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}

	other, err := store.BestRuns("02", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 run for level 02, got %d", len(other))
	}
}

func TestStoreSaveRunNeedsLevel(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(Run{ProperDays: 1}); err == nil {
		t.Error("SaveRun() without a level id should fail")
	}
}

func TestStoreBestRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveRun(Run{LevelID: "x", ProperDays: float64(5 - i)})
	}

	runs, err := store.BestRuns("x", 3)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].ProperDays != 1 || runs[1].ProperDays != 2 || runs[2].ProperDays != 3 {
		t.Errorf("Runs not in expected order: %v", runs)
	}

	all, err := store.AllRuns("x")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(all))
	}
}

func TestStoreBestProperTime(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.BestProperTime("01")
	if err != nil {
		t.Fatalf("BestProperTime() failed: %v", err)
	}
	if ok {
		t.Error("empty level should report no best time")
	}

	store.SaveRun(Run{LevelID: "01", ProperDays: 9})
	store.SaveRun(Run{LevelID: "01", ProperDays: 4.5})

	best, ok, err := store.BestProperTime("01")
	if err != nil {
		t.Fatalf("BestProperTime() failed: %v", err)
	}
	if !ok || best != 4.5 {
		t.Errorf("BestProperTime() = %v, %v, want 4.5, true", best, ok)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"01", "02", "03"} {
		store.SaveRun(Run{LevelID: id, ProperDays: 1})
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].LevelID != "03" || runs[1].LevelID != "02" {
		t.Errorf("RecentRuns() = %+v, want 03 then 02", runs)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{LevelID: "01", ProperDays: 1})
	store.SaveRun(Run{LevelID: "01", ProperDays: 2})
	store.SaveRun(Run{LevelID: "02", ProperDays: 3})

	if err := store.ClearRuns("01"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.AllRuns("01"); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if runs, _ := store.AllRuns("02"); len(runs) != 1 {
		t.Error("Level 02 should not be affected by clearing 01")
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetLevelStats("01")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(Run{LevelID: "01", ProperDays: 2, ObserverDays: 4, LaunchFraction: 0.3})
	store.SaveRun(Run{LevelID: "01", ProperDays: 6, ObserverDays: 8, LaunchFraction: 0.8})
	store.SaveRun(Run{LevelID: "02", ProperDays: 1, ObserverDays: 1, LaunchFraction: 0.1})

	stats, err := store.GetLevelStats("01")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.BestProper != 2 || stats.AvgProper != 4 || stats.AvgObserver != 6 || stats.FastestLaunch != 0.8 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not parsed")
	}

	all, err := store.GetAllLevelStats()
	if err != nil {
		t.Fatalf("GetAllLevelStats() failed: %v", err)
	}
	if len(all) != 2 || all["02"].Runs != 1 {
		t.Errorf("GetAllLevelStats() = %v", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
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
