// Package pipeline runs all source adapters, merges their output into
// one deduplicated, date-ordered collection, and reports per-source
// progress. A failing source never aborts the run.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"milanfeed/internal/sources"
	"milanfeed/pkg/models"
)

// SourceResult summarizes one adapter's contribution to a run.
type SourceResult struct {
	Source   string
	Count    int
	Err      error
	Duration time.Duration
}

// Result holds the merged output of one pipeline run.
type Result struct {
	Articles      []models.Article
	SourceResults []SourceResult
	TotalFetched  int
	Duration      time.Duration
}

// Pipeline aggregates articles from a fixed, ordered set of sources.
type Pipeline struct {
	fetchers []sources.Fetcher
}

// New creates a Pipeline over the given sources. Slice order is the
// dedup priority order.
func New(fetchers []sources.Fetcher) *Pipeline {
	return &Pipeline{fetchers: fetchers}
}

// Run fetches every source, then deduplicates and sorts the combined
// candidates. Sources are fetched concurrently, but contributions are
// merged in registry order so that deduplication ties resolve the same
// way as a sequential run.
func (p *Pipeline) Run(ctx context.Context) *Result {
	start := time.Now()

	contributions := make([][]models.Article, len(p.fetchers))
	results := make([]SourceResult, len(p.fetchers))

	var wg sync.WaitGroup
	for i, f := range p.fetchers {
		wg.Add(1)
		go func(i int, f sources.Fetcher) {
			defer wg.Done()

			fetchStart := time.Now()
			articles, err := f.Fetch(ctx)
			results[i] = SourceResult{
				Source:   f.Name(),
				Count:    len(articles),
				Err:      err,
				Duration: time.Since(fetchStart),
			}
			if err != nil {
				slog.Warn("source failed", "source", f.Name(), "error", err)
				return
			}
			contributions[i] = articles
		}(i, f)
	}
	wg.Wait()

	var all []models.Article
	for _, c := range contributions {
		all = append(all, c...)
	}

	merged := Sort(Dedupe(all))

	return &Result{
		Articles:      merged,
		SourceResults: results,
		TotalFetched:  len(all),
		Duration:      time.Since(start),
	}
}

// Dedupe keeps the first article seen for each ID, preserving order.
// First-seen-wins makes source order the tie-break for articles that
// appear in more than one source.
func Dedupe(articles []models.Article) []models.Article {
	seen := make(map[string]struct{}, len(articles))
	out := make([]models.Article, 0, len(articles))

	for _, a := range articles {
		if _, ok := seen[a.ID]; ok {
			continue
		}
		seen[a.ID] = struct{}{}
		out = append(out, a)
	}

	return out
}

// Sort orders articles newest first. Dated articles precede undated
// ones; undated articles keep their relative (emission) order.
func Sort(articles []models.Article) []models.Article {
	out := make([]models.Article, len(articles))
	copy(out, articles)

	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].Date, out[j].Date
		switch {
		case di != nil && dj != nil:
			return di.After(*dj)
		case di != nil:
			return true
		default:
			return false
		}
	})

	return out
}

// Summary renders a one-line progress message for a source result.
func (r SourceResult) Summary() string {
	if r.Err != nil {
		return fmt.Sprintf("  Error fetching %s: %v", r.Source, r.Err)
	}
	return fmt.Sprintf("  Found %d articles from %s", r.Count, r.Source)
}
