package app

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chuckfs/fileintel/models"

	"github.com/cespare/xxhash/v2"
)

// Suggestion rule thresholds.
const (
	archiveSizeThresholdMB  = 1000
	uncategorizedThreshold  = 20
	archiveCountThreshold   = 5
	duplicateGroupThreshold = 1
)

// Analyzer walks a directory tree once and aggregates per-category counts
// and sizes, then evaluates a fixed rule set against the aggregates to
// produce suggestions.
type Analyzer struct {
	cfg     *models.AppConfig
	history *History

	now func() time.Time
}

func NewAnalyzer(cfg *models.AppConfig, history *History) *Analyzer {
	return &Analyzer{cfg: cfg, history: history, now: time.Now}
}

// Analyze aggregates one snapshot. An empty path analyzes the configured
// scan roots; a path naming a regular file yields a single-file report.
// Directory reports are stored in the history store when one is attached,
// so insights can be derived from them later.
func (a *Analyzer) Analyze(path string) (*models.AnalysisReport, error) {
	scanCfg := a.cfg.Scan
	if path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("path is not accessible: %w", err)
		}
		if !info.IsDir() {
			return a.analyzeFile(path, info), nil
		}
		scanCfg.RootPaths = []string{path}
	}

	snapshot, err := NewWalker(scanCfg).Snapshot()
	if err != nil {
		return nil, err
	}

	report := a.aggregate(snapshot)
	report.Path = path
	report.Suggestions = a.suggest(report, snapshot)
	report.AnalyzedAt = a.now()

	if a.history != nil {
		if err := a.history.SaveAnalysis(report); err != nil {
			log.Printf("Failed to store analysis snapshot: %v", err)
		}
	}

	return report, nil
}

// analyzeFile builds the report for one regular file. Word and line counts
// are added for text files small enough to load whole; single-file reports
// are not persisted since insights summarize directory scans.
func (a *Analyzer) analyzeFile(path string, info os.FileInfo) *models.AnalysisReport {
	ext := strings.ToLower(filepath.Ext(path))
	rec := models.FileRecord{
		Path:     path,
		Name:     filepath.Base(path),
		Dir:      filepath.Dir(path),
		Ext:      ext,
		Size:     info.Size(),
		ModTime:  info.ModTime(),
		Category: Categorize(ext),
	}

	report := a.aggregate([]models.FileRecord{rec})
	report.Path = path
	report.Suggestions = []models.Suggestion{}
	report.AnalyzedAt = a.now()
	report.File = &models.FileDetail{
		Name:      rec.Name,
		Extension: ext,
		Category:  rec.Category,
		SizeMB:    roundMB(rec.Size),
		Modified:  rec.ModTime,
	}

	maxBytes := a.cfg.Search.MaxContentBytes
	if textExtensions[ext] && (maxBytes <= 0 || rec.Size <= maxBytes) {
		if data, err := os.ReadFile(path); err != nil {
			log.Printf("File analysis skipping content of %s: %v", path, err)
		} else {
			report.File.Words = len(strings.Fields(string(data)))
			report.File.Lines = strings.Count(string(data), "\n") + 1
		}
	}

	return report
}

func (a *Analyzer) aggregate(snapshot []models.FileRecord) *models.AnalysisReport {
	report := &models.AnalysisReport{
		Categories:    make(map[string]int64),
		CategoryBytes: make(map[string]int64),
		CategorySizes: make(map[string]float64),
	}

	for _, rec := range snapshot {
		report.TotalFiles++
		report.TotalSize += rec.Size
		report.Categories[rec.Category]++
		report.CategoryBytes[rec.Category] += rec.Size
	}

	report.TotalSizeMB = roundMB(report.TotalSize)
	for category, size := range report.CategoryBytes {
		report.CategorySizes[category] = roundMB(size)
	}

	return report
}

// suggest applies the static rule set. Priorities are fixed per rule, not
// derived from the data.
func (a *Analyzer) suggest(report *models.AnalysisReport, snapshot []models.FileRecord) []models.Suggestion {
	suggestions := []models.Suggestion{}

	if report.TotalSizeMB > archiveSizeThresholdMB {
		category, size := largestCategory(report.CategoryBytes)
		suggestions = append(suggestions, models.Suggestion{
			Type:     "storage_optimization",
			Message:  fmt.Sprintf("Your %s files are using %.1fMB. Consider archiving old files.", category, float64(size)/(1024*1024)),
			Priority: "medium",
		})
	}

	if other := report.Categories["other"]; other > uncategorizedThreshold {
		suggestions = append(suggestions, models.Suggestion{
			Type:     "organization",
			Message:  fmt.Sprintf("You have %d uncategorized files. I can help organize them automatically.", other),
			Priority: "high",
		})
	}

	if archives := report.Categories["archives"]; archives > archiveCountThreshold {
		suggestions = append(suggestions, models.Suggestion{
			Type:     "cleanup",
			Message:  fmt.Sprintf("You have %d archive files. Some might be safe to remove after extraction.", archives),
			Priority: "low",
		})
	}

	if groups := countDuplicateGroups(snapshot); groups >= duplicateGroupThreshold {
		suggestions = append(suggestions, models.Suggestion{
			Type:     "cleanup",
			Message:  fmt.Sprintf("Found %d groups of files with identical content. Removing duplicates would free space.", groups),
			Priority: "low",
		})
	}

	return suggestions
}

// countDuplicateGroups groups files by exact content hash. Only files with
// at least one size twin are hashed; partial or near matches are out of
// scope.
func countDuplicateGroups(snapshot []models.FileRecord) int {
	bySize := make(map[int64][]models.FileRecord)
	for _, rec := range snapshot {
		bySize[rec.Size] = append(bySize[rec.Size], rec)
	}

	byHash := make(map[uint64]int)
	for _, candidates := range bySize {
		if len(candidates) < 2 {
			continue
		}
		for _, rec := range candidates {
			sum, err := hashFile(rec.Path)
			if err != nil {
				log.Printf("Duplicate check skipping %s: %v", rec.Path, err)
				continue
			}
			byHash[sum]++
		}
	}

	groups := 0
	for _, count := range byHash {
		if count > 1 {
			groups++
		}
	}
	return groups
}

func hashFile(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return 0, err
	}
	return digest.Sum64(), nil
}

func largestCategory(sizes map[string]int64) (string, int64) {
	var name string
	var largest int64 = math.MinInt64
	for category, size := range sizes {
		if size > largest || (size == largest && category < name) {
			name = category
			largest = size
		}
	}
	return name, largest
}
