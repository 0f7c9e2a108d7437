package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chuckfs/fileintel/models"
)

// writeTestFile creates a file of the given size filled with a repeating
// byte so content is deterministic.
func writeTestFile(t *testing.T, dir, name string, size int64, modTime time.Time) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, bytes.Repeat([]byte{'x'}, int(size)), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	if !modTime.IsZero() {
		if err := os.Chtimes(path, modTime, modTime); err != nil {
			t.Fatalf("failed to set mtime for %s: %v", name, err)
		}
	}
	return path
}

func writeTestText(t *testing.T, dir, name, content string, modTime time.Time) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	if !modTime.IsZero() {
		if err := os.Chtimes(path, modTime, modTime); err != nil {
			t.Fatalf("failed to set mtime for %s: %v", name, err)
		}
	}
	return path
}

// setupScenarioDir builds the reference directory: two images (3MB and
// 1MB) and two documents (10KB and 20KB).
func setupScenarioDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	now := time.Now()
	writeTestFile(t, dir, "vacation.jpg", 3*1024*1024, now.AddDate(0, 0, -2))
	writeTestFile(t, dir, "birthday.png", 1*1024*1024, now.AddDate(0, -2, 0))
	writeTestFile(t, dir, "report.pdf", 10*1024, now.AddDate(0, 0, -40))
	writeTestFile(t, dir, "notes.docx", 20*1024, now.AddDate(0, 0, -1))
	return dir
}

// testConfig returns the default config rooted at dir with no history db.
func testConfig(t *testing.T, dir string) *models.AppConfig {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Scan.RootPaths = []string{dir}
	return cfg
}

func setupTestHistory(t *testing.T) *History {
	t.Helper()

	history, err := NewHistory(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("failed to create history store: %v", err)
	}
	t.Cleanup(func() { history.Close() })
	return history
}
