package app

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chuckfs/fileintel/models"
)

// Organizer plans category-based file moves out of a drop folder, the
// Downloads directory by default. Planning is the default mode; nothing
// touches the disk unless Apply is called.
type Organizer struct {
	cfg *models.AppConfig
}

func NewOrganizer(cfg *models.AppConfig) *Organizer {
	return &Organizer{cfg: cfg}
}

func categoryTargetDir(category string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	switch category {
	case "images":
		return filepath.Join(home, "Pictures")
	case "documents":
		return filepath.Join(home, "Documents")
	case "audio":
		return filepath.Join(home, "Music")
	case "video":
		return filepath.Join(home, "Videos")
	}
	return ""
}

// Plan inspects the top level of path and proposes one move per file that
// has a category target different from its current directory.
func (o *Organizer) Plan(path string) (*models.OrganizePlan, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, "Downloads")
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("path is not accessible: %w", err)
	}

	plan := &models.OrganizePlan{DryRun: true, Moves: []models.OrganizeMove{}}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.Size() == 0 {
			continue
		}

		plan.FilesAnalyzed++
		category := Categorize(filepath.Ext(entry.Name()))
		target := categoryTargetDir(category)
		if target == "" || target == path {
			continue
		}

		plan.Moves = append(plan.Moves, models.OrganizeMove{
			File:     entry.Name(),
			From:     path,
			To:       target,
			Category: category,
			Action:   "move",
		})
	}

	sort.Slice(plan.Moves, func(i, j int) bool {
		return plan.Moves[i].File < plan.Moves[j].File
	})

	return plan, nil
}

// Apply executes a plan. Name conflicts in the target directory get a
// numeric suffix instead of overwriting. Failed moves are logged and
// skipped, the rest of the plan still runs.
func (o *Organizer) Apply(plan *models.OrganizePlan) (int, error) {
	applied := 0
	for _, move := range plan.Moves {
		if err := os.MkdirAll(move.To, 0755); err != nil {
			log.Printf("Could not create %s: %v", move.To, err)
			continue
		}

		source := filepath.Join(move.From, move.File)
		target := filepath.Join(move.To, move.File)

		ext := filepath.Ext(move.File)
		stem := strings.TrimSuffix(move.File, ext)
		for counter := 1; ; counter++ {
			if _, err := os.Stat(target); os.IsNotExist(err) {
				break
			}
			target = filepath.Join(move.To, fmt.Sprintf("%s_%d%s", stem, counter, ext))
		}

		if err := os.Rename(source, target); err != nil {
			log.Printf("Could not move %s: %v", source, err)
			continue
		}
		applied++
	}

	plan.DryRun = false
	return applied, nil
}
