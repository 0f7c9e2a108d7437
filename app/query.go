package app

import (
	"strings"
	"time"

	"github.com/chuckfs/fileintel/models"
)

// typeKeywords maps query cue words to file categories.
var typeKeywords = map[string]string{
	"photo":        "images",
	"picture":      "images",
	"image":        "images",
	"document":     "documents",
	"doc":          "documents",
	"text":         "documents",
	"spreadsheet":  "spreadsheets",
	"presentation": "presentations",
	"slides":       "presentations",
	"music":        "audio",
	"song":         "audio",
	"audio":        "audio",
	"video":        "video",
	"movie":        "video",
	"code":         "code",
	"script":       "code",
	"program":      "code",
}

var recentKeywords = []string{"today", "recent", "new", "latest"}
var oldKeywords = []string{"old", "archive", "backup"}
var largeKeywords = []string{"large", "big", "huge"}
var smallKeywords = []string{"small", "tiny"}

// stopWords are query filler that never helps filename matching.
var stopWords = map[string]bool{
	"a": true, "all": true, "any": true, "file": true, "files": true,
	"find": true, "for": true, "from": true, "get": true, "in": true,
	"me": true, "my": true, "of": true, "on": true, "search": true,
	"show": true, "the": true, "to": true, "with": true,
}

// QueryParser turns free text into a structured Filter. Parsing never
// fails: input with no recognizable cues simply produces keyword filters,
// and empty input produces an empty filter that matches everything.
type QueryParser struct {
	LargeFileBytes int64
	SmallFileBytes int64
	RecentDays     int
	OldDays        int

	now func() time.Time
}

func NewQueryParser(cfg models.SearchConfig) *QueryParser {
	return &QueryParser{
		LargeFileBytes: cfg.LargeFileBytes,
		SmallFileBytes: cfg.SmallFileBytes,
		RecentDays:     cfg.RecentDays,
		OldDays:        cfg.OldDays,
		now:            time.Now,
	}
}

func (p *QueryParser) Parse(query string) models.Filter {
	var filter models.Filter

	words := strings.Fields(strings.ToLower(query))
	now := p.now()

	for _, word := range words {
		word = strings.Trim(word, `"'.,!?`)
		if word == "" || stopWords[word] {
			continue
		}

		if filter.Category == "" {
			if category, ok := matchTypeKeyword(word); ok {
				filter.Category = category
				continue
			}
		}

		if containsWord(recentKeywords, word) {
			filter.ModifiedAfter = now.AddDate(0, 0, -p.RecentDays)
			continue
		}
		if containsWord(oldKeywords, word) {
			filter.ModifiedTo = now.AddDate(0, 0, -p.OldDays)
			continue
		}
		if containsWord(largeKeywords, word) {
			filter.MinSize = p.LargeFileBytes
			continue
		}
		if containsWord(smallKeywords, word) {
			filter.MaxSize = p.SmallFileBytes
			continue
		}

		filter.Keywords = append(filter.Keywords, word)
	}

	return filter
}

// matchTypeKeyword accepts simple plurals so "photos" hits "photo".
func matchTypeKeyword(word string) (string, bool) {
	if category, ok := typeKeywords[word]; ok {
		return category, true
	}
	if category, ok := typeKeywords[strings.TrimSuffix(word, "s")]; ok {
		return category, true
	}
	return "", false
}

func containsWord(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}
