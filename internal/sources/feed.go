package sources

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"milanfeed/internal/dates"
	"milanfeed/pkg/models"
)

// FeedSource reads a syndication feed (RSS or Atom) and turns its
// entries into article candidates.
type FeedSource struct {
	SourceName string
	FeedURL    string

	// Translator, when set, converts title and summary to English
	// before the article is constructed.
	Translator Translator

	// StripBylines removes a leading "By: <author>" line that some
	// feeds prepend to their descriptions.
	StripBylines bool

	Timeout   time.Duration
	UserAgent string
}

func (f *FeedSource) Name() string {
	return f.SourceName
}

func (f *FeedSource) Fetch(ctx context.Context) ([]models.Article, error) {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: f.Timeout}
	parser.UserAgent = f.UserAgent

	feed, err := parser.ParseURLWithContext(f.FeedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: parse feed: %w", f.SourceName, err)
	}

	articles := make([]models.Article, 0, maxItemsPerSource)

	for _, item := range feed.Items {
		if len(articles) >= maxItemsPerSource {
			break
		}

		link := strings.TrimSpace(item.Link)
		title := strings.TrimSpace(item.Title)
		if link == "" || title == "" {
			continue
		}

		summary := stripHTML(item.Description)
		if f.StripBylines {
			summary = stripByline(summary)
		}
		summary = models.Truncate(summary, models.SummaryMaxLen)

		if f.Translator != nil {
			title = f.Translator.Translate(title)
			if summary != "" {
				summary = f.Translator.Translate(summary)
			}
			summary = models.Truncate(summary, models.SummaryMaxLen)
		}

		articles = append(articles, models.Article{
			ID:      models.GenerateArticleID(link),
			Title:   title,
			URL:     link,
			Source:  f.SourceName,
			Date:    dates.FromFeedItem(item),
			Summary: summary,
		})
	}

	return articles, nil
}

// stripHTML reduces a feed description to its plain text.
func stripHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	doc.Find("img").Remove()
	return strings.TrimSpace(doc.Text())
}

// stripByline drops a "By: Author" first line from a description.
func stripByline(s string) string {
	if !strings.HasPrefix(s, "By:") {
		return s
	}
	parts := strings.SplitN(s, "\n", 2)
	if len(parts) < 2 {
		return s
	}
	return strings.TrimSpace(parts[1])
}
