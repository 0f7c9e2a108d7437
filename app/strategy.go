package app

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/chuckfs/fileintel/models"

	"github.com/hbollon/go-edlib"
)

// textExtensions are the file types content search is willing to open.
var textExtensions = map[string]bool{
	".txt": true, ".md": true, ".py": true, ".js": true, ".go": true,
	".html": true, ".css": true, ".json": true, ".csv": true, ".yaml": true,
	".xml": true, ".log": true,
}

const fuzzyCutoff = 0.85

// Strategy is one independent matching heuristic. Evaluate returns a
// relevance score in [0,1]; zero means the record is not a candidate for
// this strategy.
type Strategy struct {
	Name     string
	Weight   float64
	Evaluate func(rec models.FileRecord, filter models.Filter) float64
}

// buildStrategies returns the fixed strategy dispatch table. All five run
// over the same snapshot; a file may match several of them.
func buildStrategies(cfg models.SearchConfig, now func() time.Time) []Strategy {
	weight := func(name string, fallback float64) float64 {
		if w, ok := cfg.Weights[name]; ok {
			return w
		}
		return fallback
	}

	return []Strategy{
		{
			Name:     "filename",
			Weight:   weight("filename", 1.0),
			Evaluate: scoreFilename,
		},
		{
			Name:   "content",
			Weight: weight("content", 0.7),
			Evaluate: func(rec models.FileRecord, filter models.Filter) float64 {
				return scoreContent(rec, filter, cfg.MaxContentBytes)
			},
		},
		{
			Name:     "type",
			Weight:   weight("type", 0.9),
			Evaluate: scoreType,
		},
		{
			Name:   "date",
			Weight: weight("date", 0.4),
			Evaluate: func(rec models.FileRecord, filter models.Filter) float64 {
				return scoreDate(rec, filter, now())
			},
		},
		{
			Name:     "size",
			Weight:   weight("size", 0.5),
			Evaluate: scoreSize,
		},
	}
}

// scoreFilename matches query keywords against the file name: exact name
// match, substring match, partial word hits, then a Jaro-Winkler fuzzy
// fallback for near-misses.
func scoreFilename(rec models.FileRecord, filter models.Filter) float64 {
	if len(filter.Keywords) == 0 {
		// A filter with no constraints at all matches every file, like an
		// empty substring does. Ranking then falls to the recency bonus.
		if filter.IsEmpty() {
			return 0.8
		}
		return 0
	}

	name := strings.ToLower(rec.Name)
	stem := strings.TrimSuffix(name, strings.ToLower(rec.Ext))
	phrase := strings.Join(filter.Keywords, " ")

	if phrase == name || phrase == stem {
		return 1.0
	}
	if strings.Contains(name, phrase) {
		return 0.8
	}

	hits := 0
	for _, keyword := range filter.Keywords {
		if strings.Contains(name, keyword) {
			hits++
		}
	}
	if hits > 0 {
		return 0.4 * float64(hits) / float64(len(filter.Keywords))
	}

	best := 0.0
	for _, keyword := range filter.Keywords {
		sim, err := edlib.StringsSimilarity(keyword, stem, edlib.JaroWinkler)
		if err != nil {
			continue
		}
		if s := float64(sim); s >= fuzzyCutoff && s > best {
			best = s
		}
	}
	if best > 0 {
		return best * 0.7
	}
	return 0
}

// scoreContent looks for a keyword inside readable text files. Binary or
// oversized files are skipped rather than treated as errors.
func scoreContent(rec models.FileRecord, filter models.Filter, maxBytes int64) float64 {
	if len(filter.Keywords) == 0 || !textExtensions[rec.Ext] {
		return 0
	}
	if maxBytes > 0 && rec.Size > maxBytes {
		return 0
	}

	data, err := os.ReadFile(rec.Path)
	if err != nil {
		log.Printf("Content search skipping %s: %v", rec.Path, err)
		return 0
	}

	content := strings.ToLower(string(data))
	for _, keyword := range filter.Keywords {
		if strings.Contains(content, keyword) {
			return 0.6
		}
	}
	return 0
}

func scoreType(rec models.FileRecord, filter models.Filter) float64 {
	if filter.Category != "" && rec.Category == filter.Category {
		return 0.9
	}
	return 0
}

// scoreDate gives full score inside the requested range and decays
// linearly with the distance outside it, zeroing out after 30 days.
func scoreDate(rec models.FileRecord, filter models.Filter, now time.Time) float64 {
	if filter.ModifiedAfter.IsZero() && filter.ModifiedTo.IsZero() {
		return 0
	}

	var outside time.Duration
	if !filter.ModifiedAfter.IsZero() && rec.ModTime.Before(filter.ModifiedAfter) {
		outside = filter.ModifiedAfter.Sub(rec.ModTime)
	}
	if !filter.ModifiedTo.IsZero() && rec.ModTime.After(filter.ModifiedTo) {
		outside = rec.ModTime.Sub(filter.ModifiedTo)
	}

	if outside == 0 {
		return 1.0
	}
	days := outside.Hours() / 24
	if days >= 30 {
		return 0
	}
	return 1.0 - days/30
}

func scoreSize(rec models.FileRecord, filter models.Filter) float64 {
	if filter.MinSize == 0 && filter.MaxSize == 0 {
		return 0
	}
	if filter.MinSize > 0 && rec.Size <= filter.MinSize {
		return 0
	}
	if filter.MaxSize > 0 && rec.Size >= filter.MaxSize {
		return 0
	}
	return 1.0
}
