package app

import (
	"testing"
	"time"

	"github.com/chuckfs/fileintel/models"
)

func record(name, ext string, size int64, modTime time.Time) models.FileRecord {
	return models.FileRecord{
		Path:     "/tmp/" + name,
		Name:     name,
		Dir:      "/tmp",
		Ext:      ext,
		Size:     size,
		ModTime:  modTime,
		Category: Categorize(ext),
	}
}

func TestScoreFilename(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		filename string
		keywords []string
		min, max float64
	}{
		{"exact stem match", "report.pdf", []string{"report"}, 1.0, 1.0},
		{"substring match", "annual-report-2025.pdf", []string{"report"}, 0.8, 0.8},
		{"partial word hits", "report-draft.txt", []string{"report", "final"}, 0.2, 0.2},
		{"fuzzy near miss", "reprot.pdf", []string{"report"}, 0.5, 0.7},
		{"no match", "holiday.jpg", []string{"invoice"}, 0, 0},
		{"empty filter matches everything", "report.pdf", nil, 0.8, 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := record(tt.filename, ".pdf", 1024, now)
			score := scoreFilename(rec, models.Filter{Keywords: tt.keywords})
			if score < tt.min || score > tt.max {
				t.Errorf("expected score in [%v, %v], got %v", tt.min, tt.max, score)
			}
		})
	}

	// No keywords but another constraint present: the category strategy
	// owns the match, filename contributes nothing.
	rec := record("report.pdf", ".pdf", 1024, now)
	if score := scoreFilename(rec, models.Filter{Category: "documents"}); score != 0 {
		t.Errorf("expected 0 for keyword-free category filter, got %v", score)
	}
}

func TestScoreContent(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	textPath := writeTestText(t, dir, "meeting.txt", "Quarterly budget review notes", now)
	binPath := writeTestFile(t, dir, "image.jpg", 2048, now)

	textRec := models.FileRecord{Path: textPath, Name: "meeting.txt", Ext: ".txt", Size: 29}
	binRec := models.FileRecord{Path: binPath, Name: "image.jpg", Ext: ".jpg", Size: 2048}

	if score := scoreContent(textRec, models.Filter{Keywords: []string{"budget"}}, 1024*1024); score != 0.6 {
		t.Errorf("expected 0.6 for keyword hit, got %v", score)
	}
	if score := scoreContent(textRec, models.Filter{Keywords: []string{"missing"}}, 1024*1024); score != 0 {
		t.Errorf("expected 0 for keyword miss, got %v", score)
	}
	if score := scoreContent(binRec, models.Filter{Keywords: []string{"budget"}}, 1024*1024); score != 0 {
		t.Errorf("expected 0 for binary file, got %v", score)
	}
	// Oversized text files are skipped.
	if score := scoreContent(textRec, models.Filter{Keywords: []string{"budget"}}, 10); score != 0 {
		t.Errorf("expected 0 for oversized file, got %v", score)
	}
}

func TestScoreType(t *testing.T) {
	now := time.Now()
	image := record("photo.jpg", ".jpg", 1024, now)
	doc := record("report.pdf", ".pdf", 1024, now)

	if score := scoreType(image, models.Filter{Category: "images"}); score != 0.9 {
		t.Errorf("expected 0.9 for category match, got %v", score)
	}
	if score := scoreType(doc, models.Filter{Category: "images"}); score != 0 {
		t.Errorf("expected 0 for category mismatch, got %v", score)
	}
	if score := scoreType(image, models.Filter{}); score != 0 {
		t.Errorf("expected 0 without category filter, got %v", score)
	}
}

func TestScoreDate(t *testing.T) {
	now := time.Now()
	after := now.AddDate(0, 0, -7)

	tests := []struct {
		name     string
		modTime  time.Time
		min, max float64
	}{
		{"inside range", now.AddDate(0, 0, -2), 1.0, 1.0},
		{"just outside", after.AddDate(0, 0, -3), 0.85, 0.95},
		{"far outside", after.AddDate(0, 0, -60), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := record("file.txt", ".txt", 1024, tt.modTime)
			score := scoreDate(rec, models.Filter{ModifiedAfter: after}, now)
			if score < tt.min || score > tt.max {
				t.Errorf("expected score in [%v, %v], got %v", tt.min, tt.max, score)
			}
		})
	}

	rec := record("file.txt", ".txt", 1024, now)
	if score := scoreDate(rec, models.Filter{}, now); score != 0 {
		t.Errorf("expected 0 without date filter, got %v", score)
	}
}

func TestScoreSize(t *testing.T) {
	now := time.Now()

	large := record("movie.mp4", ".mp4", 50*1024*1024, now)
	small := record("note.txt", ".txt", 1024, now)

	if score := scoreSize(large, models.Filter{MinSize: 10 * 1024 * 1024}); score != 1.0 {
		t.Errorf("expected 1.0 for large file, got %v", score)
	}
	if score := scoreSize(small, models.Filter{MinSize: 10 * 1024 * 1024}); score != 0 {
		t.Errorf("expected 0 for small file under min filter, got %v", score)
	}
	if score := scoreSize(small, models.Filter{MaxSize: 100 * 1024}); score != 1.0 {
		t.Errorf("expected 1.0 for small file under max filter, got %v", score)
	}
	if score := scoreSize(large, models.Filter{}); score != 0 {
		t.Errorf("expected 0 without size filter, got %v", score)
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		ext      string
		expected string
	}{
		{".jpg", "images"},
		{".JPG", "images"},
		{".pdf", "documents"},
		{".csv", "spreadsheets"},
		{".mp3", "audio"},
		{".mkv", "video"},
		{".zip", "archives"},
		{".go", "code"},
		{".yaml", "data"},
		{".xyz", "other"},
		{"", "other"},
	}

	for _, tt := range tests {
		if got := Categorize(tt.ext); got != tt.expected {
			t.Errorf("Categorize(%q) = %q, expected %q", tt.ext, got, tt.expected)
		}
	}
}
