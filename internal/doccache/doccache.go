// Package doccache holds the process-wide cache of analyzer-ready
// documents, keyed by path. Entries are created or replaced wholesale
// by a refresh and read by the aggregate statistics queries; the cache
// lives for the life of the process and is never patched incrementally.
package doccache

import (
	"context"
	"fmt"
	"strings"

	gocache "github.com/patrickmn/go-cache"

	"github.com/ppiankov/annotext/internal/model"
	"github.com/ppiankov/annotext/internal/worker"
)

// LoadFunc reads the raw text of a document.
type LoadFunc func(ctx context.Context, path string) (string, error)

// AnalyzeFunc turns document text into its analyzer-ready form.
type AnalyzeFunc func(ctx context.Context, path, text string) (*model.AnalyzedDoc, error)

// Cache maps document paths to their most recent analyzed form.
type Cache struct {
	docs    *gocache.Cache
	workers int
}

// New creates an empty cache. Entries never expire; the cache is torn
// down with the process.
func New(workers int) *Cache {
	return &Cache{
		docs:    gocache.New(gocache.NoExpiration, 0),
		workers: workers,
	}
}

// Get returns the cached analyzed form of a document.
func (c *Cache) Get(path string) (*model.AnalyzedDoc, bool) {
	if v, found := c.docs.Get(path); found {
		return v.(*model.AnalyzedDoc), true
	}
	return nil, false
}

// Put stores the analyzed form of a document, replacing any previous
// entry for the path.
func (c *Cache) Put(doc *model.AnalyzedDoc) {
	c.docs.Set(doc.Path, doc, gocache.NoExpiration)
}

// Paths returns the cached document paths.
func (c *Cache) Paths() []string {
	items := c.docs.Items()
	paths := make([]string, 0, len(items))
	for path := range items {
		paths = append(paths, path)
	}
	return paths
}

// Len returns the number of cached documents.
func (c *Cache) Len() int {
	return c.docs.ItemCount()
}

// RefreshAll loads and analyzes every path and writes the results into
// the cache. Successfully processed paths stay cached even when others
// fail; failures are collected and reported once, at the end of the
// batch. Callers must not start a second refresh while one is running.
func (c *Cache) RefreshAll(ctx context.Context, paths []string, load LoadFunc, analyze AnalyzeFunc) (map[string]*model.AnalyzedDoc, error) {
	if len(paths) == 0 {
		return map[string]*model.AnalyzedDoc{}, nil
	}

	results := worker.RunRefresh(ctx, paths, c.workers, func(ctx context.Context, path string) (*model.AnalyzedDoc, error) {
		text, err := load(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		doc, err := analyze(ctx, path, text)
		if err != nil {
			return nil, fmt.Errorf("analyze %s: %w", path, err)
		}
		return doc, nil
	})

	refreshed := make(map[string]*model.AnalyzedDoc, len(paths))
	var failures []string
	for _, r := range results {
		if r.Err != nil {
			failures = append(failures, r.Err.Error())
			continue
		}
		c.Put(r.Doc)
		refreshed[r.Path] = r.Doc
	}

	if len(failures) > 0 {
		return refreshed, fmt.Errorf("refresh: %d of %d paths failed: %s",
			len(failures), len(paths), strings.Join(failures, "; "))
	}
	return refreshed, nil
}
