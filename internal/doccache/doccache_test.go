package doccache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/ppiankov/annotext/internal/model"
)

func testAnalyze(ctx context.Context, path, text string) (*model.AnalyzedDoc, error) {
	return NewAnalyzeFunc(model.AnalysisConfig{PerSentence: true}, nil)(ctx, path, text)
}

func TestRefreshAll_PartialFailurePreserved(t *testing.T) {
	c := New(2)

	load := func(ctx context.Context, path string) (string, error) {
		if path == "two" {
			return "", errors.New("permission denied")
		}
		return "Some plain text for " + path + ".", nil
	}

	refreshed, err := c.RefreshAll(context.Background(), []string{"one", "two", "three"}, load, testAnalyze)

	if err == nil {
		t.Fatal("Expected the batch to report failure")
	}
	if !strings.Contains(err.Error(), "1 of 3") {
		t.Errorf("Expected a single end-of-batch report, got %v", err)
	}
	if len(refreshed) != 2 {
		t.Errorf("Expected 2 refreshed docs, got %d", len(refreshed))
	}
	if _, ok := c.Get("one"); !ok {
		t.Error("Expected path one cached despite batch failure")
	}
	if _, ok := c.Get("three"); !ok {
		t.Error("Expected path three cached despite batch failure")
	}
	if _, ok := c.Get("two"); ok {
		t.Error("Expected failing path absent from cache")
	}
}

func TestRefreshAll_ReplacesWholesale(t *testing.T) {
	c := New(1)
	paths := []string{"doc"}

	load1 := func(ctx context.Context, path string) (string, error) { return "Old happy text.", nil }
	load2 := func(ctx context.Context, path string) (string, error) { return "New text entirely.", nil }

	if _, err := c.RefreshAll(context.Background(), paths, load1, testAnalyze); err != nil {
		t.Fatalf("First refresh failed: %v", err)
	}
	if _, err := c.RefreshAll(context.Background(), paths, load2, testAnalyze); err != nil {
		t.Fatalf("Second refresh failed: %v", err)
	}

	doc, ok := c.Get("doc")
	if !ok {
		t.Fatal("Expected doc cached")
	}
	if doc.Text != "New text entirely." {
		t.Errorf("Expected entry replaced wholesale, got %q", doc.Text)
	}
	if c.Len() != 1 {
		t.Errorf("Expected at most one handle per path, got %d entries", c.Len())
	}
}

func TestBagOfWords_FiltersStopwordsAndNonWords(t *testing.T) {
	c := New(1)
	load := func(ctx context.Context, path string) (string, error) {
		return "The cat saw the cat near a 42 fence. The fence!", nil
	}
	if _, err := c.RefreshAll(context.Background(), []string{"doc"}, load, testAnalyze); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	bag, err := c.BagOfWords("doc")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if bag["cat"] != 2 {
		t.Errorf("Expected cat counted twice, got %d", bag["cat"])
	}
	if bag["fence"] != 2 {
		t.Errorf("Expected fence counted twice, got %d", bag["fence"])
	}
	if _, found := bag["the"]; found {
		t.Error("Expected stop-word filtered out")
	}
	if _, found := bag["42"]; found {
		t.Error("Expected numeric token filtered out")
	}
}

func TestTermSet_Sorted(t *testing.T) {
	c := New(1)
	load := func(ctx context.Context, path string) (string, error) {
		return "zebra apple mango apple", nil
	}
	if _, err := c.RefreshAll(context.Background(), []string{"doc"}, load, testAnalyze); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	terms, err := c.TermSet("doc")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := []string{"apple", "mango", "zebra"}
	if len(terms) != len(want) {
		t.Fatalf("Expected %d terms, got %v", len(want), terms)
	}
	for i, w := range want {
		if terms[i] != w {
			t.Errorf("Term %d: expected %s, got %s", i, w, terms[i])
		}
	}
}

func TestAverageSentiment_PerSentence(t *testing.T) {
	c := New(1)
	load := func(ctx context.Context, path string) (string, error) {
		return "This is excellent. This is excellent. This is terrible.", nil
	}
	if _, err := c.RefreshAll(context.Background(), []string{"doc"}, load, testAnalyze); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	score, err := c.AverageSentiment("doc")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if score <= 0 {
		t.Errorf("Expected net positive average, got %f", score)
	}
}

func TestAggregates_UncachedPath(t *testing.T) {
	c := New(1)

	if _, err := c.BagOfWords("missing"); err == nil {
		t.Error("Expected error for uncached path")
	}
	if _, err := c.AverageSentiment("missing"); err == nil {
		t.Error("Expected error for uncached path")
	}
}

func TestLoadFile_PlainAndHTML(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "note.md")
	if err := os.WriteFile(plain, []byte("plain body"), 0o644); err != nil {
		t.Fatal(err)
	}
	page := filepath.Join(dir, "page.html")
	htmlBody := `<html><head><script>var x=1;</script></head><body><p>visible words</p></body></html>`
	if err := os.WriteFile(page, []byte(htmlBody), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(context.Background(), plain)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != "plain body" {
		t.Errorf("Expected raw text, got %q", got)
	}

	got, err = LoadFile(context.Background(), page)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(got, "visible words") {
		t.Errorf("Expected visible text extracted, got %q", got)
	}
	if strings.Contains(got, "var x") {
		t.Errorf("Expected script content stripped, got %q", got)
	}
}

func TestRefreshAll_ManyPaths(t *testing.T) {
	c := New(4)

	var paths []string
	for i := 0; i < 25; i++ {
		paths = append(paths, fmt.Sprintf("doc-%d", i))
	}
	load := func(ctx context.Context, path string) (string, error) {
		return "Text for " + path + ".", nil
	}

	refreshed, err := c.RefreshAll(context.Background(), paths, load, testAnalyze)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(refreshed) != len(paths) {
		t.Errorf("Expected %d docs refreshed, got %d", len(paths), len(refreshed))
	}
	if c.Len() != len(paths) {
		t.Errorf("Expected %d cached entries, got %d", len(paths), c.Len())
	}
}

func TestPaths_ListsCachedDocuments(t *testing.T) {
	c := New(2)
	c.Put(&model.AnalyzedDoc{Path: "a.txt"})
	c.Put(&model.AnalyzedDoc{Path: "b.txt"})

	paths := c.Paths()
	sort.Strings(paths)
	if len(paths) != 2 || paths[0] != "a.txt" || paths[1] != "b.txt" {
		t.Errorf("Expected [a.txt b.txt], got %v", paths)
	}
}
