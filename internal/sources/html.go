package sources

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"milanfeed/internal/dates"
	"milanfeed/pkg/models"
)

// minTitleLen rejects navigation fragments masquerading as headlines.
const minTitleLen = 10

// Class-name patterns for the extraction heuristics. Sites rarely use
// stable class names, so matching is by substring pattern.
var (
	reCardClass    = regexp.MustCompile(`card|article|news`)
	reTitleClass   = regexp.MustCompile(`title|heading`)
	reDateClass    = regexp.MustCompile(`date|time`)
	reSummaryClass = regexp.MustCompile(`excerpt|summary|desc|text`)
)

// HTMLSource scrapes a news listing page. Its selector lists and URL
// rules are data, not code: adjusting to a markup change means editing
// the source entry in the registry.
type HTMLSource struct {
	SourceName string
	PageURL    string
	BaseURL    string

	// CardSelector is the primary selector set for article cards. If it
	// matches nothing, a class-pattern heuristic over div elements is
	// tried instead.
	CardSelector string

	// RequireInPath keeps only URLs containing this segment;
	// ExcludeInPath drops URLs containing any of these. Together they
	// filter index and navigation links out of the candidate set.
	RequireInPath string
	ExcludeInPath []string

	Timeout   time.Duration
	UserAgent string
}

func (h *HTMLSource) Name() string {
	return h.SourceName
}

func (h *HTMLSource) Fetch(ctx context.Context) ([]models.Article, error) {
	doc, err := h.fetchDocument(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", h.SourceName, err)
	}
	return h.extract(doc)
}

// fetchDocument retrieves the listing page and parses it into a
// document tree.
func (h *HTMLSource) fetchDocument(ctx context.Context) (*goquery.Document, error) {
	c := colly.NewCollector(colly.UserAgent(h.UserAgent))
	c.SetRequestTimeout(h.Timeout)

	c.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			r.Abort()
			return
		}
		for k, v := range browserHeaders {
			r.Headers.Set(k, v)
		}
	})

	var doc *goquery.Document
	var parseErr error
	c.OnResponse(func(r *colly.Response) {
		doc, parseErr = goquery.NewDocumentFromReader(bytes.NewReader(r.Body))
	})

	if err := c.Visit(h.PageURL); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", h.PageURL, err)
	}
	c.Wait()

	if parseErr != nil {
		return nil, fmt.Errorf("parse %s: %w", h.PageURL, parseErr)
	}
	if doc == nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("fetch %s: no response", h.PageURL)
	}
	return doc, nil
}

func (h *HTMLSource) extract(doc *goquery.Document) ([]models.Article, error) {
	base, err := url.Parse(h.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url %s: %w", h.BaseURL, err)
	}

	cards := doc.Find(h.CardSelector)
	if cards.Length() == 0 {
		// Secondary heuristic: any div whose class looks card-like.
		cards = doc.Find("div").FilterFunction(func(_ int, s *goquery.Selection) bool {
			return classMatches(s, reCardClass)
		})
	}

	articles := make([]models.Article, 0, maxItemsPerSource)

	cards.EachWithBreak(func(_ int, card *goquery.Selection) bool {
		if len(articles) >= maxItemsPerSource {
			return false
		}

		href := firstHref(card)
		if href == "" {
			return true
		}

		articleURL := resolveURL(base, href)
		if articleURL == "" || !h.allowURL(articleURL) {
			return true
		}

		title := h.extractTitle(card)
		if len([]rune(title)) < minTitleLen {
			return true
		}

		articles = append(articles, models.Article{
			ID:      models.GenerateArticleID(articleURL),
			Title:   title,
			URL:     articleURL,
			Source:  h.SourceName,
			Date:    extractDate(card),
			Summary: extractSummary(card),
		})
		return true
	})

	return articles, nil
}

// allowURL applies the source's path rules to an absolute URL.
func (h *HTMLSource) allowURL(u string) bool {
	if h.RequireInPath != "" && !strings.Contains(u, h.RequireInPath) {
		return false
	}
	for _, excl := range h.ExcludeInPath {
		if strings.Contains(u, excl) {
			return false
		}
	}
	return true
}

// extractTitle tries a class-pattern hint over heading-like elements,
// then any heading tag, then the first anchor's own text.
func (h *HTMLSource) extractTitle(card *goquery.Selection) string {
	hinted := card.Find("h1, h2, h3, h4, span").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return classMatches(s, reTitleClass)
	})
	if hinted.Length() > 0 {
		return strings.TrimSpace(hinted.First().Text())
	}

	if heading := card.Find("h1, h2, h3, h4").First(); heading.Length() > 0 {
		return strings.TrimSpace(heading.Text())
	}

	var anchorText string
	card.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if href, ok := a.Attr("href"); ok && href != "" && href != "#" {
			anchorText = strings.TrimSpace(a.Text())
			return false
		}
		return true
	})
	return anchorText
}

// extractDate looks for a date-like element, preferring its
// machine-readable datetime attribute over display text.
func extractDate(card *goquery.Selection) *time.Time {
	elem := card.Find("time, span").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return classMatches(s, reDateClass)
	}).First()
	if elem.Length() == 0 {
		return nil
	}

	if dt, ok := elem.Attr("datetime"); ok && strings.TrimSpace(dt) != "" {
		return dates.Parse(dt)
	}
	return dates.Parse(elem.Text())
}

func extractSummary(card *goquery.Selection) string {
	elem := card.Find("p, div").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return classMatches(s, reSummaryClass)
	}).First()
	if elem.Length() == 0 {
		return ""
	}
	return models.Truncate(strings.TrimSpace(elem.Text()), models.SummaryMaxLen)
}

// firstHref returns the first usable link target inside the card, or ""
// when the card links nowhere real.
func firstHref(card *goquery.Selection) string {
	var href string
	card.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		h, ok := a.Attr("href")
		if !ok {
			return true
		}
		h = strings.TrimSpace(h)
		if h == "" || h == "#" {
			return true
		}
		href = h
		return false
	})
	return href
}

func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

func classMatches(s *goquery.Selection, re *regexp.Regexp) bool {
	class, ok := s.Attr("class")
	return ok && re.MatchString(class)
}
