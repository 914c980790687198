package models

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// SummaryMaxLen caps article summaries everywhere in the pipeline.
const SummaryMaxLen = 300

// Article is a single normalized news item.
type Article struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	URL     string     `json:"url"`
	Source  string     `json:"source"`
	Date    *time.Time `json:"date"` // nil when no parseable date was found
	Summary string     `json:"summary"`
}

// Snapshot is the complete output artifact of one pipeline run.
// It wholly replaces the previous snapshot on disk.
type Snapshot struct {
	LastUpdated time.Time `json:"lastUpdated"`
	Articles    []Article `json:"articles"`
}

// GenerateArticleID creates a deterministic ID from a URL.
// The ID is a SHA-256 hash (first 12 hex chars) of the URL bytes.
// No URL normalization is applied: byte-distinct URLs get distinct IDs.
func GenerateArticleID(url string) string {
	hash := sha256.Sum256([]byte(url))
	return hex.EncodeToString(hash[:])[:12]
}

// Truncate cuts s to at most n characters, counting runes so that
// multi-byte text is never split mid-character.
func Truncate(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n])
}
