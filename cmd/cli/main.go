package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/chuckfs/fileintel/app"
)

func main() {
	query := flag.String("q", "", "Search query")
	configPath := flag.String("config", "", "Path to configuration file (optional)")
	maxResults := flag.Int("n", 0, "Max results (0 = configured default)")
	flag.Parse()

	if *query == "" {
		fmt.Fprintln(os.Stderr, "Error: search query is required. Use -q <query>")
		os.Exit(1)
	}

	cfg := app.DefaultConfig()
	if *configPath != "" {
		loaded, err := app.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	searcher := app.NewSearcher(cfg, nil)
	resp, err := searcher.Search(context.Background(), *query, flag.Args(), *maxResults)
	if err != nil {
		log.Fatalf("Search error: %v", err)
	}

	for _, result := range resp.Results {
		fmt.Printf("%.2f  %s\n", result.RelevanceScore, result.Path)
	}
	fmt.Fprintf(os.Stderr, "%d results in %.3fs\n", resp.TotalFound, resp.SearchTime)
}
