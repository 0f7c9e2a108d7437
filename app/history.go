package app

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chuckfs/fileintel/models"

	_ "modernc.org/sqlite"
)

// History persists search queries and analysis snapshots. It is the
// explicit replacement for implicit global "learned pattern" memory:
// everything derived from past activity flows through this store.
type History struct {
	db *sql.DB
}

func NewHistory(dbPath string) (*History, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history db %s: %w", dbPath, err)
	}
	db.Exec(`PRAGMA journal_mode = WAL`)
	db.Exec(`PRAGMA busy_timeout = 5000`)

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate history db: %w", err)
	}

	return &History{db: db}, nil
}

func (h *History) Close() error {
	return h.db.Close()
}

func (h *History) RecordSearch(query string) error {
	if query == "" {
		return nil
	}
	_, err := h.db.Exec(
		`INSERT INTO search_history(query, searched_at) VALUES (?, ?)`,
		query, time.Now().Unix(),
	)
	return err
}

func (h *History) RecentSearches(limit int) ([]models.SearchHistoryEntry, error) {
	rows, err := h.db.Query(`
		SELECT query, searched_at
		FROM search_history
		ORDER BY searched_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.SearchHistoryEntry
	for rows.Next() {
		var entry models.SearchHistoryEntry
		var ts int64
		if err := rows.Scan(&entry.Query, &ts); err != nil {
			log.Printf("Skipping unreadable history row: %v", err)
			continue
		}
		entry.Timestamp = time.Unix(ts, 0)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (h *History) SaveAnalysis(report *models.AnalysisReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}
	_, err = h.db.Exec(
		`INSERT INTO analysis_history(analyzed_at, report_json) VALUES (?, ?)`,
		report.AnalyzedAt.Unix(), string(payload),
	)
	return err
}

// LatestAnalysis returns the most recent stored report, or nil when no
// analysis has run yet.
func (h *History) LatestAnalysis() (*models.AnalysisReport, error) {
	var payload string
	err := h.db.QueryRow(`
		SELECT report_json
		FROM analysis_history
		ORDER BY analyzed_at DESC, id DESC
		LIMIT 1`).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var report models.AnalysisReport
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		return nil, err
	}
	return &report, nil
}
