// Package worker runs per-document refresh jobs across a bounded pool
// of goroutines. Each job touches exactly one document path, so the
// cache sees at most one write per path regardless of worker count.
package worker

import (
	"context"
	"sync"

	"github.com/ppiankov/annotext/internal/model"
)

// RefreshFunc loads and analyzes a single document path.
type RefreshFunc func(ctx context.Context, path string) (*model.AnalyzedDoc, error)

// RefreshResult is the outcome of one path's refresh.
type RefreshResult struct {
	Path string
	Doc  *model.AnalyzedDoc
	Err  error
}

// RunRefresh processes paths concurrently with the given worker count
// and returns one result per path, in input order. It blocks until all
// paths are done or the context is canceled; canceled paths report the
// context error.
func RunRefresh(ctx context.Context, paths []string, workers int, fn RefreshFunc) []RefreshResult {
	if workers <= 0 {
		workers = 1
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	results := make([]RefreshResult, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				path := paths[i]
				if err := ctx.Err(); err != nil {
					results[i] = RefreshResult{Path: path, Err: err}
					continue
				}
				doc, err := fn(ctx, path)
				results[i] = RefreshResult{Path: path, Doc: doc, Err: err}
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
