package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/chuckfs/fileintel/app"
	"github.com/chuckfs/fileintel/models"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (optional)")
	path := flag.String("path", "", "Directory to analyze (defaults to configured scan roots)")
	flag.Parse()

	cfg := loadConfig(*configPath)

	history, err := app.NewHistory(cfg.History.DBPath)
	if err != nil {
		log.Printf("History store unavailable, continuing without it: %v", err)
		history = nil
	} else {
		defer history.Close()
	}

	analyzer := app.NewAnalyzer(cfg, history)
	report, err := analyzer.Analyze(*path)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	printReport(report)
}

func loadConfig(path string) *models.AppConfig {
	if path == "" {
		return app.DefaultConfig()
	}
	cfg, err := app.LoadConfig(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func printReport(report *models.AnalysisReport) {
	fmt.Printf("Analyzed %d files, %.2f MB total\n\n", report.TotalFiles, report.TotalSizeMB)

	fmt.Println("Categories:")
	for category, count := range report.Categories {
		fmt.Printf("  %-14s %6d files  %10.2f MB\n", category, count, report.CategorySizes[category])
	}

	if len(report.Suggestions) > 0 {
		fmt.Println("\nSuggestions:")
		for _, suggestion := range report.Suggestions {
			fmt.Printf("  [%s] %s\n", suggestion.Priority, suggestion.Message)
		}
	}
}
