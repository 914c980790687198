// Package dates normalizes the date formats seen across news sources
// into UTC instants. Absence of a date is a normal outcome, not an error.
package dates

import (
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// layouts is tried in order; first match wins. Covers ISO 8601 with and
// without offset, plain date/datetime forms, slash dates, month-name
// forms, and the RFC-822 style used by RSS feeds.
var layouts = []string{
	time.RFC3339,          // 2026-01-31T14:12:02+01:00 / ...Z
	"2006-01-02T15:04:05", // ISO without offset
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006 15:04",
	"02/01/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	time.RFC1123Z, // Mon, 02 Jan 2006 15:04:05 -0700 (RSS)
	time.RFC1123,  // Mon, 02 Jan 2006 15:04:05 MST
}

// Parse attempts each known layout in priority order and returns the
// parsed instant in UTC, or nil if no layout matches. Layouts that carry
// no offset are assumed to be UTC already.
func Parse(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err != nil {
			continue
		}
		utc := t.UTC()
		return &utc
	}

	return nil
}

// FromFeedItem resolves the publish date of a feed entry. The feed
// parser's pre-parsed publish time wins, then the pre-parsed update
// time, then string parsing of the raw published/updated fields.
func FromFeedItem(item *gofeed.Item) *time.Time {
	if item == nil {
		return nil
	}
	if item.PublishedParsed != nil {
		utc := item.PublishedParsed.UTC()
		return &utc
	}
	if item.UpdatedParsed != nil {
		utc := item.UpdatedParsed.UTC()
		return &utc
	}
	if item.Published != "" {
		if t := Parse(item.Published); t != nil {
			return t
		}
	}
	if item.Updated != "" {
		return Parse(item.Updated)
	}
	return nil
}
