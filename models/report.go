package models

import "time"

// Suggestion is a rule-triggered recommendation generated during analysis.
type Suggestion struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

// Insight is shaped for the insights endpoint, derived from the most
// recent stored analysis.
type Insight struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

// FileDetail describes a single analyzed file. Word and line counts are
// filled for readable text files only.
type FileDetail struct {
	Name      string    `json:"filename"`
	Extension string    `json:"extension"`
	Category  string    `json:"category"`
	SizeMB    float64   `json:"size_mb"`
	Modified  time.Time `json:"modified"`
	Words     int       `json:"word_count,omitempty"`
	Lines     int       `json:"line_count,omitempty"`
}

// AnalysisReport aggregates one directory walk, or describes a single file
// when File is set. CategoryBytes keeps the exact per-category byte totals;
// CategorySizes is the same data rounded to megabytes for API consumers.
type AnalysisReport struct {
	Path          string             `json:"path,omitempty"`
	File          *FileDetail        `json:"file,omitempty"`
	TotalFiles    int64              `json:"total_files"`
	TotalSize     int64              `json:"total_size"`
	TotalSizeMB   float64            `json:"total_size_mb"`
	Categories    map[string]int64   `json:"categories"`
	CategoryBytes map[string]int64   `json:"-"`
	CategorySizes map[string]float64 `json:"category_sizes"`
	Suggestions   []Suggestion       `json:"suggestions"`
	AnalyzedAt    time.Time          `json:"analyzed_at"`
}

// OrganizeMove is a single planned file relocation.
type OrganizeMove struct {
	File     string `json:"file"`
	From     string `json:"from"`
	To       string `json:"to"`
	Category string `json:"category"`
	Action   string `json:"action"`
}

type OrganizePlan struct {
	FilesAnalyzed int            `json:"files_analyzed"`
	Moves         []OrganizeMove `json:"organization_plan"`
	DryRun        bool           `json:"dry_run"`
}

// SearchHistoryEntry is one remembered query from the history store.
type SearchHistoryEntry struct {
	Query     string    `json:"query"`
	Timestamp time.Time `json:"timestamp"`
}
