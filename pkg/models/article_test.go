package models

import (
	"strings"
	"testing"
)

func TestGenerateArticleID_Deterministic(t *testing.T) {
	url := "https://www.acmilan.com/en/news/articles/latest/some-article"

	id1 := GenerateArticleID(url)
	id2 := GenerateArticleID(url)

	if id1 != id2 {
		t.Fatalf("GenerateArticleID not deterministic: %q vs %q", id1, id2)
	}
	if len(id1) != 12 {
		t.Fatalf("GenerateArticleID length = %d, want 12", len(id1))
	}
	for _, c := range id1 {
		if !strings.ContainsRune("0123456789abcdef", c) {
			t.Fatalf("GenerateArticleID produced non-hex char %q in %q", c, id1)
		}
	}
}

func TestGenerateArticleID_DistinctURLs(t *testing.T) {
	urls := []string{
		"https://www.milannews.it/news/1",
		"https://www.milannews.it/news/2",
		"https://sempremilan.com/match-report",
		"https://football-italia.net/milan-win-derby",
		"https://x/a",
		"https://x/a?", // trailing "?" is a different byte string, not normalized away
	}

	seen := make(map[string]string)
	for _, u := range urls {
		id := GenerateArticleID(u)
		if prev, ok := seen[id]; ok {
			t.Fatalf("collision: %q and %q both map to %q", prev, u, id)
		}
		seen[id] = u
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		n     int
		wantN int
	}{
		{name: "shorter than limit", in: "short", n: 300, wantN: 5},
		{name: "exactly at limit", in: strings.Repeat("a", 300), n: 300, wantN: 300},
		{name: "over limit", in: strings.Repeat("a", 350), n: 300, wantN: 300},
		{name: "empty", in: "", n: 300, wantN: 0},
		{name: "multibyte not split", in: strings.Repeat("è", 400), n: 300, wantN: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.n)
			if gotN := len([]rune(got)); gotN != tt.wantN {
				t.Errorf("Truncate() rune length = %d, want %d", gotN, tt.wantN)
			}
			if !strings.HasPrefix(tt.in, got) {
				t.Errorf("Truncate() result %q is not a prefix of input", got)
			}
		})
	}
}
