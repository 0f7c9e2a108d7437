package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/chuckfs/fileintel/models"
)

func TestWalker_Snapshot(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeTestFile(t, dir, "top.txt", 100, now)
	writeTestFile(t, dir, "nested/deep/file.jpg", 200, now)
	writeTestFile(t, dir, "empty.log", 0, now)

	walker := NewWalker(models.ScanConfig{RootPaths: []string{dir}})
	records, err := walker.Snapshot()
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records (empty file skipped), got %d", len(records))
	}

	byName := make(map[string]models.FileRecord)
	for _, rec := range records {
		byName[rec.Name] = rec
	}

	jpg, ok := byName["file.jpg"]
	if !ok {
		t.Fatal("expected nested file.jpg in snapshot")
	}
	if jpg.Category != "images" {
		t.Errorf("expected category images, got %s", jpg.Category)
	}
	if jpg.Size != 200 {
		t.Errorf("expected size 200, got %d", jpg.Size)
	}
	if jpg.Dir != filepath.Join(dir, "nested", "deep") {
		t.Errorf("unexpected dir %s", jpg.Dir)
	}
}

func TestWalker_ExcludePatterns(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeTestFile(t, dir, "keep.txt", 100, now)
	writeTestFile(t, dir, "node_modules/pkg/index.js", 100, now)
	writeTestFile(t, dir, "cache/tmp.dat", 100, now)

	walker := NewWalker(models.ScanConfig{
		RootPaths: []string{dir},
		ExcludePaths: []string{
			filepath.Join(dir, "**/node_modules/**"),
			filepath.Join(dir, "cache"),
		},
	})

	records, err := walker.Snapshot()
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}

	if len(records) != 1 || records[0].Name != "keep.txt" {
		t.Fatalf("expected only keep.txt, got %+v", records)
	}
}

func TestWalker_ExcludePrefixStopsAtSeparator(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeTestFile(t, dir, "cache/drop.dat", 100, now)
	writeTestFile(t, dir, "cache2/keep.dat", 100, now)

	walker := NewWalker(models.ScanConfig{
		RootPaths:    []string{dir},
		ExcludePaths: []string{filepath.Join(dir, "cache")},
	})

	records, err := walker.Snapshot()
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if len(records) != 1 || records[0].Name != "keep.dat" {
		t.Fatalf("expected only cache2/keep.dat to survive, got %+v", records)
	}
}

func TestWalker_MissingRootsSkipped(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeTestFile(t, dir, "present.txt", 100, now)

	walker := NewWalker(models.ScanConfig{
		RootPaths: []string{"/no/such/root", dir},
	})

	records, err := walker.Snapshot()
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 record, got %d", len(records))
	}
}

func TestWalker_AllRootsInaccessible(t *testing.T) {
	walker := NewWalker(models.ScanConfig{
		RootPaths: []string{"/no/such/root", "/also/missing"},
	})

	if _, err := walker.Snapshot(); err == nil {
		t.Error("expected error when no root is accessible")
	}
}

func TestWalker_MaxFilesBudget(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	for _, name := range []string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt"} {
		writeTestFile(t, dir, name, 100, now)
	}

	walker := NewWalker(models.ScanConfig{RootPaths: []string{dir}, MaxFiles: 3})
	records, err := walker.Snapshot()
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if len(records) > 3 {
		t.Errorf("expected at most 3 records, got %d", len(records))
	}
}
