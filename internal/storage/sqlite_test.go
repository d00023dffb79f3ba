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

func TestStoreReopenKeepsProgress(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetLevel(DefaultProfile, 4); err != nil {
		t.Fatalf("SetLevel() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	level, err := store.Level(DefaultProfile)
	if err != nil || level != 4 {
		t.Errorf("Level() = %d, %v; expected 4", level, err)
	}
}

func TestLevelProgress(t *testing.T) {
	store := openTestStore(t)

	level, err := store.Level("alice")
	if err != nil {
		t.Fatalf("Level() failed: %v", err)
	}
	if level != 1 {
		t.Errorf("Expected default level 1, got %d", level)
	}

	tests := []struct {
		won  int
		want int
	}{
		{1, 2},
		{2, 3},
		{1, 3}, // replaying an earlier level never lowers progress
		{5, 6},
	}
	for _, tc := range tests {
		got, err := store.AdvanceLevel("alice", tc.won)
		if err != nil {
			t.Fatalf("AdvanceLevel(%d) failed: %v", tc.won, err)
		}
		if got != tc.want {
			t.Errorf("AdvanceLevel(%d) = %d, expected %d", tc.won, got, tc.want)
		}
	}

	// Profiles are independent
	if level, _ := store.Level("bob"); level != 1 {
		t.Errorf("bob's level = %d, expected 1", level)
	}

	if err := store.SetLevel("alice", 0); err == nil {
		t.Error("SetLevel(0) should fail")
	}
}

func TestInstructionsSeen(t *testing.T) {
	store := openTestStore(t)

	seen, err := store.HasSeenInstructions(DefaultProfile)
	if err != nil || seen {
		t.Fatalf("HasSeenInstructions() = %v, %v; expected false", seen, err)
	}

	if err := store.SetInstructionsSeen(DefaultProfile, true); err != nil {
		t.Fatalf("SetInstructionsSeen() failed: %v", err)
	}
	if seen, _ := store.HasSeenInstructions(DefaultProfile); !seen {
		t.Error("expected instructions to be marked seen")
	}

	if err := store.ResetProgress(DefaultProfile); err != nil {
		t.Fatalf("ResetProgress() failed: %v", err)
	}
	if seen, _ := store.HasSeenInstructions(DefaultProfile); seen {
		t.Error("ResetProgress should clear the flag")
	}
}

func TestRunsHistory(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Profile: "alice", Level: 1, Seed: 1, Outcome: "win", Reason: "Level Complete!", TimeLeft: 40, MagnetsUsed: 2},
		{Profile: "alice", Level: 2, Seed: 1, Outcome: "gameover", Reason: "Time's Up!", MagnetsUsed: 3},
		{Profile: "alice", Level: 2, Seed: 1, Outcome: "win", Reason: "Level Complete!", TimeLeft: 12.5, MagnetsUsed: 4},
		{Profile: "alice", Level: 2, Seed: 2, Outcome: "win", Reason: "Level Complete!", TimeLeft: 30, MagnetsUsed: 1},
		{Profile: "bob", Level: 9, Seed: 3, Outcome: "win", TimeLeft: 50},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns("alice", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Seed != 2 || recent[1].TimeLeft != 12.5 {
		t.Errorf("RecentRuns() = %+v, expected the last two alice runs newest first", recent)
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be parsed")
	}

	best, err := store.BestRuns("alice", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("Expected 3 wins, got %d", len(best))
	}
	if best[0].Level != 2 || best[0].TimeLeft != 30 || best[1].TimeLeft != 12.5 || best[2].Level != 1 {
		t.Errorf("BestRuns() not ordered by level then time left: %+v", best)
	}

	st, err := store.Stats("alice")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 4 || st.Wins != 3 || st.BestLevel != 2 {
		t.Errorf("Stats() = %+v", st)
	}
	if diff := st.AvgTimeLeft - 27.5; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("AvgTimeLeft = %v, expected 27.5", st.AvgTimeLeft)
	}

	profiles, err := store.Profiles()
	if err != nil || len(profiles) != 2 || profiles[0] != "alice" {
		t.Errorf("Profiles() = %v, %v", profiles, err)
	}
}

func TestStatsEmptyProfile(t *testing.T) {
	store := openTestStore(t)

	st, err := store.Stats("nobody")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 0 || st.Wins != 0 || st.BestLevel != 0 || !st.LastPlayed.IsZero() {
		t.Errorf("Stats() for an empty profile = %+v", st)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Profile: "alice", Level: 1, Outcome: "win"})
	store.SaveRun(Run{Profile: "bob", Level: 1, Outcome: "win"})

	if err := store.ClearRuns("alice"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if runs, _ := store.RecentRuns("alice", 10); len(runs) != 0 {
		t.Errorf("Expected no alice runs after clear, got %d", len(runs))
	}
	if runs, _ := store.RecentRuns("bob", 10); len(runs) != 1 {
		t.Error("bob's runs should not be affected")
	}
}
