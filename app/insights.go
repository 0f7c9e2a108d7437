package app

import (
	"fmt"

	"github.com/chuckfs/fileintel/models"
)

// defaultInsights are shown before any analysis has run.
var defaultInsights = []models.Insight{
	{
		Type:     "organization",
		Title:    "File Organization Patterns",
		Message:  "Run an analysis so I can learn how your files are organized.",
		Priority: "medium",
	},
	{
		Type:     "storage",
		Title:    "Storage Optimization",
		Message:  "Regular cleanup of temporary files can free up valuable storage space.",
		Priority: "low",
	},
	{
		Type:     "productivity",
		Title:    "Search Efficiency",
		Message:  "Using natural language search queries gets better results than exact filename matching.",
		Priority: "high",
	},
}

var insightTitles = map[string]string{
	"storage_optimization": "Storage Optimization",
	"organization":         "File Organization",
	"cleanup":              "Cleanup Opportunity",
}

// GetInsights derives insight entries from the most recent stored
// analysis. Without a history store, or before the first analysis, the
// static default set is returned.
func GetInsights(history *History) ([]models.Insight, error) {
	if history == nil {
		return defaultInsights, nil
	}

	report, err := history.LatestAnalysis()
	if err != nil {
		return nil, err
	}
	if report == nil {
		return defaultInsights, nil
	}

	insights := []models.Insight{
		{
			Type:     "summary",
			Title:    "File System Overview",
			Message:  fmt.Sprintf("Your last analysis covered %d files totaling %.2fMB across %d categories.", report.TotalFiles, report.TotalSizeMB, len(report.Categories)),
			Priority: "medium",
		},
	}

	for _, suggestion := range report.Suggestions {
		title, ok := insightTitles[suggestion.Type]
		if !ok {
			title = "Suggestion"
		}
		insights = append(insights, models.Insight{
			Type:     suggestion.Type,
			Title:    title,
			Message:  suggestion.Message,
			Priority: suggestion.Priority,
		})
	}

	return insights, nil
}
