package app

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/chuckfs/fileintel/models"

	"github.com/bmatcuk/doublestar/v4"
)

// Walker produces FileRecord snapshots from the local file system. A walk
// never aborts on unreadable entries; they are logged and skipped. Empty
// files are dropped as well since they carry no signal for search or
// analysis.
type Walker struct {
	RootPaths    []string
	ExcludePaths []string
	NumWorkers   int
	MaxFiles     int64 // 0 = unbounded
}

func NewWalker(cfg models.ScanConfig) *Walker {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU() * 2
	}
	return &Walker{
		RootPaths:    cfg.RootPaths,
		ExcludePaths: cfg.ExcludePaths,
		NumWorkers:   workers,
		MaxFiles:     cfg.MaxFiles,
	}
}

// Snapshot walks all roots and collects the records. It fails only when
// none of the configured roots is accessible.
func (w *Walker) Snapshot() ([]models.FileRecord, error) {
	accessible := 0
	for _, root := range w.RootPaths {
		if info, err := os.Stat(root); err == nil && info.IsDir() {
			accessible++
		}
	}
	if len(w.RootPaths) > 0 && accessible == 0 {
		return nil, fmt.Errorf("no accessible scan root among %v", w.RootPaths)
	}

	var records []models.FileRecord
	for rec := range w.Walk() {
		records = append(records, rec)
	}
	return records, nil
}

// Walk streams records from all roots over a channel. Roots that do not
// exist are skipped silently so callers can pass a default root set.
func (w *Walker) Walk() <-chan models.FileRecord {
	filesCh := make(chan models.FileRecord, 4096)
	var emitted int64

	go func() {
		defer close(filesCh)

		for _, root := range w.RootPaths {
			if info, err := os.Stat(root); err != nil || !info.IsDir() {
				continue
			}
			w.walkRootParallel(root, filesCh, &emitted)
		}
	}()

	return filesCh
}

func (w *Walker) walkRootParallel(root string, filesCh chan<- models.FileRecord, emitted *int64) {
	dirQueue := make(chan string, 65536)
	var wg sync.WaitGroup
	var activeDirs int32

	dirQueue <- root
	atomic.AddInt32(&activeDirs, 1)

	for i := 0; i < w.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.dirWorker(dirQueue, filesCh, &activeDirs, emitted)
		}()
	}

	wg.Wait()
}

func (w *Walker) dirWorker(dirQueue chan string, filesCh chan<- models.FileRecord, activeDirs *int32, emitted *int64) {
	for dir := range dirQueue {
		w.processDirectory(dir, dirQueue, filesCh, activeDirs, emitted)

		if atomic.AddInt32(activeDirs, -1) == 0 {
			// Last pending directory, nobody will enqueue more work.
			close(dirQueue)
			return
		}
	}
}

func (w *Walker) processDirectory(dir string, dirQueue chan string, filesCh chan<- models.FileRecord, activeDirs *int32, emitted *int64) {
	if w.excluded(dir) {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("Skipping unreadable directory %s: %v", dir, err)
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if w.excluded(path) {
			continue
		}

		if entry.IsDir() {
			atomic.AddInt32(activeDirs, 1)
			select {
			case dirQueue <- path:
			default:
				// Queue full, recurse in place to avoid deadlock.
				atomic.AddInt32(activeDirs, -1)
				w.processDirectory(path, dirQueue, filesCh, activeDirs, emitted)
			}
			continue
		}

		info, err := entry.Info()
		if err != nil {
			log.Printf("Skipping unreadable entry %s: %v", path, err)
			continue
		}
		if info.Size() == 0 {
			continue
		}
		if w.MaxFiles > 0 && atomic.AddInt64(emitted, 1) > w.MaxFiles {
			return
		}

		ext := filepath.Ext(entry.Name())
		filesCh <- models.FileRecord{
			Path:     path,
			Name:     entry.Name(),
			Dir:      dir,
			Ext:      strings.ToLower(ext),
			Size:     info.Size(),
			ModTime:  info.ModTime(),
			Category: Categorize(ext),
		}
	}
}

func (w *Walker) excluded(path string) bool {
	for _, pattern := range w.ExcludePaths {
		if matched, err := doublestar.Match(pattern, path); err == nil && matched {
			return true
		}
		// Literal prefixes only cut at a path boundary, so excluding
		// /data/cache does not drop /data/cache2.
		if path == pattern || strings.HasPrefix(path, pattern+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
