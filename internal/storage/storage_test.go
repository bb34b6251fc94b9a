package storage

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open(%q) returned error: %v", path, err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenMigratesToLatestVersion(t *testing.T) {
	db := openTestDB(t)
	version, err := db.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() returned error: %v", err)
	}
	if version != 1 {
		t.Errorf("CurrentVersion() = %d, want 1", version)
	}
}

func TestRecordAndGetRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	solution := "RUF"
	id, err := repo.Record(Solve{
		Scramble:  "scramble-text",
		Solution:  &solution,
		MaxDepth:  21,
		TimeoutMs: 10000,
		ElapsedMs: 42,
	})
	if err != nil {
		t.Fatalf("Record() returned error: %v", err)
	}

	got, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get(%q) returned error: %v", id, err)
	}
	if got == nil {
		t.Fatalf("Get(%q) returned nil, want the recorded solve", id)
	}
	if got.Scramble != "scramble-text" {
		t.Errorf("Scramble = %q, want %q", got.Scramble, "scramble-text")
	}
	if got.Solution == nil || *got.Solution != "RUF" {
		t.Errorf("Solution = %v, want %q", got.Solution, "RUF")
	}
	if got.MaxDepth != 21 {
		t.Errorf("MaxDepth = %d, want 21", got.MaxDepth)
	}
}

func TestGetUnknownIDReturnsNil(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	got, err := repo.Get("does-not-exist")
	if err != nil {
		t.Fatalf("Get() returned error: %v", err)
	}
	if got != nil {
		t.Errorf("Get() of unknown id = %+v, want nil", got)
	}
}

func TestListReturnsNewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := repo.Record(Solve{Scramble: "s", MaxDepth: 21, TimeoutMs: 1000})
		if err != nil {
			t.Fatalf("Record() returned error: %v", err)
		}
		ids = append(ids, id)
	}

	solves, err := repo.List(10)
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if len(solves) != 3 {
		t.Fatalf("List() returned %d solves, want 3", len(solves))
	}
	if solves[0].SolveID != ids[2] || solves[2].SolveID != ids[0] {
		t.Errorf("List() order = %s, %s, %s; want newest first", solves[0].SolveID, solves[1].SolveID, solves[2].SolveID)
	}
}

func TestDeleteRemovesSolve(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	id, err := repo.Record(Solve{Scramble: "s", MaxDepth: 21, TimeoutMs: 1000})
	if err != nil {
		t.Fatalf("Record() returned error: %v", err)
	}

	if err := repo.Delete(id); err != nil {
		t.Fatalf("Delete(%q) returned error: %v", id, err)
	}

	got, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get() after delete returned error: %v", err)
	}
	if got != nil {
		t.Errorf("Get() after delete = %+v, want nil", got)
	}
}
