package dates

import (
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
)

func TestParse_KnownLayouts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{
			name: "ISO 8601 with offset",
			in:   "2026-01-31T14:12:02+01:00",
			want: time.Date(2026, 1, 31, 13, 12, 2, 0, time.UTC),
		},
		{
			name: "ISO 8601 zulu",
			in:   "2026-01-31T13:12:02Z",
			want: time.Date(2026, 1, 31, 13, 12, 2, 0, time.UTC),
		},
		{
			name: "ISO 8601 without offset assumes UTC",
			in:   "2026-01-31T13:12:02",
			want: time.Date(2026, 1, 31, 13, 12, 2, 0, time.UTC),
		},
		{
			name: "date and time",
			in:   "2026-01-31 13:12:02",
			want: time.Date(2026, 1, 31, 13, 12, 2, 0, time.UTC),
		},
		{
			name: "bare date",
			in:   "2026-01-31",
			want: time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "slash date with time",
			in:   "31/01/2026 13:12",
			want: time.Date(2026, 1, 31, 13, 12, 0, 0, time.UTC),
		},
		{
			name: "slash date",
			in:   "31/01/2026",
			want: time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "long month name",
			in:   "January 31, 2026",
			want: time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "short month name",
			in:   "Jan 31, 2026",
			want: time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "day first long month",
			in:   "31 January 2026",
			want: time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "day first short month",
			in:   "31 Jan 2026",
			want: time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "RSS format with offset",
			in:   "Sat, 31 Jan 2026 14:12:02 +0100",
			want: time.Date(2026, 1, 31, 13, 12, 2, 0, time.UTC),
		},
		{
			name: "surrounding whitespace",
			in:   "  2026-01-31  ",
			want: time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.in)
			if got == nil {
				t.Fatalf("Parse(%q) = nil, want %v", tt.in, tt.want)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got.Location() != time.UTC {
				t.Errorf("Parse(%q) location = %v, want UTC", tt.in, got.Location())
			}
		})
	}
}

func TestParse_RoundTripsISO(t *testing.T) {
	in := "2026-01-31T13:12:02Z"
	got := Parse(in)
	if got == nil {
		t.Fatalf("Parse(%q) = nil", in)
	}
	if out := got.Format(time.RFC3339); out != in {
		t.Errorf("round trip = %q, want %q", out, in)
	}
}

func TestParse_Unparseable(t *testing.T) {
	for _, in := range []string{
		"",
		"   ",
		"not a date",
		"31st of January",
		"2026/01/31", // slashes in the wrong order are not a recognized layout
	} {
		if got := Parse(in); got != nil {
			t.Errorf("Parse(%q) = %v, want nil", in, got)
		}
	}
}

func TestFromFeedItem_PrefersParsedPublished(t *testing.T) {
	published := time.Date(2026, 1, 31, 14, 12, 2, 0, time.FixedZone("CET", 3600))
	updated := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	item := &gofeed.Item{
		Published:       "Sat, 31 Jan 2026 14:12:02 +0100",
		PublishedParsed: &published,
		Updated:         "2026-02-01T09:00:00Z",
		UpdatedParsed:   &updated,
	}

	got := FromFeedItem(item)
	if got == nil {
		t.Fatal("FromFeedItem() = nil")
	}
	want := time.Date(2026, 1, 31, 13, 12, 2, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("FromFeedItem() = %v, want %v", got, want)
	}
	if got.Location() != time.UTC {
		t.Errorf("FromFeedItem() location = %v, want UTC", got.Location())
	}
}

func TestFromFeedItem_FallbackOrder(t *testing.T) {
	updated := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	t.Run("updated parsed when published missing", func(t *testing.T) {
		item := &gofeed.Item{UpdatedParsed: &updated}
		got := FromFeedItem(item)
		if got == nil || !got.Equal(updated) {
			t.Errorf("FromFeedItem() = %v, want %v", got, updated)
		}
	})

	t.Run("raw published string when nothing pre-parsed", func(t *testing.T) {
		item := &gofeed.Item{Published: "Sat, 31 Jan 2026 14:12:02 +0100"}
		got := FromFeedItem(item)
		want := time.Date(2026, 1, 31, 13, 12, 2, 0, time.UTC)
		if got == nil || !got.Equal(want) {
			t.Errorf("FromFeedItem() = %v, want %v", got, want)
		}
	})

	t.Run("raw updated string last", func(t *testing.T) {
		item := &gofeed.Item{Updated: "2026-02-01"}
		got := FromFeedItem(item)
		want := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		if got == nil || !got.Equal(want) {
			t.Errorf("FromFeedItem() = %v, want %v", got, want)
		}
	})

	t.Run("nothing usable", func(t *testing.T) {
		if got := FromFeedItem(&gofeed.Item{Published: "garbage"}); got != nil {
			t.Errorf("FromFeedItem() = %v, want nil", got)
		}
	})
}
