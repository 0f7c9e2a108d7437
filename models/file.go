package models

import "time"

// FileRecord is a snapshot of a single file taken at scan time. Records are
// built fresh for every search or analysis and are never persisted.
type FileRecord struct {
	Path     string    `json:"full_path"`
	Name     string    `json:"filename"`
	Dir      string    `json:"path"`
	Ext      string    `json:"-"`
	Size     int64     `json:"size"`
	ModTime  time.Time `json:"modified"`
	Category string    `json:"category"`
}

// SearchResult pairs a record with its combined relevance score.
type SearchResult struct {
	FileRecord
	SizeMB         float64 `json:"size_mb"`
	RelevanceScore float64 `json:"relevance_score"`
}

type SearchResponse struct {
	Query      string         `json:"query"`
	Results    []SearchResult `json:"results"`
	TotalFound int            `json:"total_found"`
	SearchTime float64        `json:"search_time"`
}
