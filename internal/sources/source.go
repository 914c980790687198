// Package sources defines the per-source extraction adapters. Each
// source is declarative configuration (URLs, selector lists, URL rules)
// driving one of two adapter variants: syndication feeds and scraped
// HTML listing pages.
package sources

import (
	"context"
	"time"

	"milanfeed/pkg/models"
)

const (
	// maxItemsPerSource bounds each adapter's contribution.
	maxItemsPerSource = 20

	defaultTimeout = 30 * time.Second

	// Browser-like identity; some sites reject obvious bot user agents.
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// browserHeaders is sent with every page fetch alongside the user agent.
var browserHeaders = map[string]string{
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.5",
}

// Fetcher is one news source. Fetch returns the source's candidate
// articles; an error means the whole source contributed nothing this
// run, and the pipeline carries on with the remaining sources.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) ([]models.Article, error)
}

// Translator is the capability injected into sources whose content
// needs translating. Implementations are best-effort: they return the
// input unchanged rather than failing.
type Translator interface {
	Translate(text string) string
}

// Options configures the registry's adapters.
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	Translator Translator // applied to Italian-language feeds
}

// Registry returns all sources in their fixed priority order. The order
// is meaningful: deduplication keeps the first occurrence of a URL, so
// earlier sources win ties.
func Registry(opts Options) []Fetcher {
	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}

	return []Fetcher{
		&FeedSource{
			SourceName: "milannews.it",
			FeedURL:    "https://www.milannews.it/rss",
			Translator: opts.Translator,
			Timeout:    opts.Timeout,
			UserAgent:  opts.UserAgent,
		},
		&FeedSource{
			SourceName: "football-italia.net",
			FeedURL:    "https://football-italia.net/category/teams/milan/feed/",
			Timeout:    opts.Timeout,
			UserAgent:  opts.UserAgent,
		},
		&FeedSource{
			SourceName:   "sempremilan.com",
			FeedURL:      "https://sempremilan.com/feed",
			StripBylines: true,
			Timeout:      opts.Timeout,
			UserAgent:    opts.UserAgent,
		},
		&HTMLSource{
			SourceName:    "acmilan.com",
			PageURL:       "https://www.acmilan.com/en/news/articles/latest",
			BaseURL:       "https://www.acmilan.com",
			CardSelector:  "article, .news-card, .card, [class*='article'], [class*='news']",
			RequireInPath: "/news/",
			Timeout:       opts.Timeout,
			UserAgent:     opts.UserAgent,
		},
	}
}
