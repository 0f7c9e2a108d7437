package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOrganizer_Plan(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeTestFile(t, dir, "photo.jpg", 2048, now)
	writeTestFile(t, dir, "song.mp3", 2048, now)
	writeTestFile(t, dir, "mystery.xyz", 2048, now)
	writeTestFile(t, dir, "subdir/inner.jpg", 2048, now)

	organizer := NewOrganizer(DefaultConfig())
	plan, err := organizer.Plan(dir)
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}

	if !plan.DryRun {
		t.Error("expected plan to be a dry run")
	}
	// Subdirectory contents stay put; only top-level files are planned.
	if plan.FilesAnalyzed != 3 {
		t.Errorf("expected 3 files analyzed, got %d", plan.FilesAnalyzed)
	}
	// The uncategorized file has no target, so two moves.
	if len(plan.Moves) != 2 {
		t.Fatalf("expected 2 moves, got %+v", plan.Moves)
	}
	if plan.Moves[0].File != "photo.jpg" || plan.Moves[0].Category != "images" {
		t.Errorf("unexpected first move: %+v", plan.Moves[0])
	}
	if plan.Moves[1].File != "song.mp3" || plan.Moves[1].Category != "audio" {
		t.Errorf("unexpected second move: %+v", plan.Moves[1])
	}
	for _, move := range plan.Moves {
		if move.Action != "move" {
			t.Errorf("expected action move, got %q", move.Action)
		}
	}
}

func TestOrganizer_PlanInaccessiblePath(t *testing.T) {
	organizer := NewOrganizer(DefaultConfig())
	if _, err := organizer.Plan("/no/such/downloads"); err == nil {
		t.Error("expected error for inaccessible path")
	}
}

func TestOrganizer_ApplyWithConflict(t *testing.T) {
	source := t.TempDir()
	target := t.TempDir()
	now := time.Now()
	writeTestFile(t, source, "photo.jpg", 1024, now)
	writeTestFile(t, target, "photo.jpg", 2048, now)

	organizer := NewOrganizer(DefaultConfig())
	plan, err := organizer.Plan(source)
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}
	if len(plan.Moves) != 1 {
		t.Fatalf("expected 1 move, got %+v", plan.Moves)
	}
	// Redirect the move into our controlled target dir.
	plan.Moves[0].To = target

	applied, err := organizer.Apply(plan)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if applied != 1 {
		t.Errorf("expected 1 applied move, got %d", applied)
	}

	if _, err := os.Stat(filepath.Join(target, "photo_1.jpg")); err != nil {
		t.Errorf("expected conflict-renamed photo_1.jpg: %v", err)
	}
	if _, err := os.Stat(filepath.Join(target, "photo.jpg")); err != nil {
		t.Errorf("existing file should be untouched: %v", err)
	}
	if _, err := os.Stat(filepath.Join(source, "photo.jpg")); !os.IsNotExist(err) {
		t.Error("source file should have been moved")
	}
}
