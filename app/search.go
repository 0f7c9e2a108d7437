package app

import (
	"context"
	"log"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/chuckfs/fileintel/models"

	"golang.org/x/sync/errgroup"
)

// Searcher runs the natural language search pipeline: parse the query,
// snapshot the file system, evaluate every strategy over the snapshot and
// merge the candidates into one deterministic ranking.
type Searcher struct {
	cfg        *models.AppConfig
	parser     *QueryParser
	strategies []Strategy
	history    *History

	now func() time.Time
}

func NewSearcher(cfg *models.AppConfig, history *History) *Searcher {
	now := time.Now
	return &Searcher{
		cfg:        cfg,
		parser:     NewQueryParser(cfg.Search),
		strategies: buildStrategies(cfg.Search, now),
		history:    history,
		now:        now,
	}
}

// Search runs one query. paths overrides the configured scan roots when
// non-empty; maxResults <= 0 falls back to the configured limit. An empty
// or stop-word-only query is not an error: its filter carries no
// constraints, so it matches everything, ranked by recency and truncated
// to maxResults.
func (s *Searcher) Search(ctx context.Context, query string, paths []string, maxResults int) (*models.SearchResponse, error) {
	start := s.now()

	if maxResults <= 0 {
		maxResults = s.cfg.Search.MaxResults
	}

	filter := s.parser.Parse(query)

	scanCfg := s.cfg.Scan
	if len(paths) > 0 {
		scanCfg.RootPaths = paths
	}

	snapshot, err := NewWalker(scanCfg).Snapshot()
	if err != nil {
		return nil, err
	}

	scores, err := s.evaluate(ctx, snapshot, filter)
	if err != nil {
		return nil, err
	}

	results := s.rank(snapshot, scores, maxResults)

	if s.history != nil {
		if err := s.history.RecordSearch(query); err != nil {
			log.Printf("Failed to record search history: %v", err)
		}
	}

	return &models.SearchResponse{
		Query:      query,
		Results:    results,
		TotalFound: len(results),
		SearchTime: s.now().Sub(start).Seconds(),
	}, nil
}

// evaluate runs all strategies over the snapshot. Strategies share no
// mutable state, so they are evaluated in parallel, one goroutine each.
func (s *Searcher) evaluate(ctx context.Context, snapshot []models.FileRecord, filter models.Filter) (map[string]float64, error) {
	combined := make(map[string]float64)
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, strategy := range s.strategies {
		strategy := strategy
		g.Go(func() error {
			partial := make(map[string]float64)
			for _, rec := range snapshot {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				if score := strategy.Evaluate(rec, filter); score > 0 {
					partial[rec.Path] = score * strategy.Weight
				}
			}

			mu.Lock()
			for path, score := range partial {
				combined[path] += score
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return combined, nil
}

// rank orders candidates by combined score with a recency bonus. Ties are
// broken by newest modification time, then lexical path order, so the same
// snapshot and query always produce the same list.
func (s *Searcher) rank(snapshot []models.FileRecord, scores map[string]float64, maxResults int) []models.SearchResult {
	now := s.now()

	var results []models.SearchResult
	for _, rec := range snapshot {
		score, ok := scores[rec.Path]
		if !ok {
			continue
		}

		daysOld := now.Sub(rec.ModTime).Hours() / 24
		switch {
		case daysOld < 7:
			score += 0.1
		case daysOld < 30:
			score += 0.05
		}

		results = append(results, models.SearchResult{
			FileRecord:     rec,
			SizeMB:         roundMB(rec.Size),
			RelevanceScore: math.Round(score*100) / 100,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].RelevanceScore != results[j].RelevanceScore {
			return results[i].RelevanceScore > results[j].RelevanceScore
		}
		if !results[i].ModTime.Equal(results[j].ModTime) {
			return results[i].ModTime.After(results[j].ModTime)
		}
		return results[i].Path < results[j].Path
	})

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

func roundMB(bytes int64) float64 {
	return math.Round(float64(bytes)/(1024*1024)*100) / 100
}
