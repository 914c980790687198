// Package snapshot persists the final article collection as a single
// JSON artifact, replacing the previous one in full.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"milanfeed/pkg/models"
)

// Writer serializes snapshots to a fixed output path.
type Writer struct {
	path string
	now  func() time.Time
}

// NewWriter creates a Writer targeting path.
func NewWriter(path string) *Writer {
	return &Writer{path: path, now: time.Now}
}

// Write builds a snapshot around the articles and replaces the output
// artifact atomically: the JSON is written to a temp file in the target
// directory and renamed into place, so readers never observe a partial
// file. A write failure is fatal to the run and is returned as-is.
func (w *Writer) Write(articles []models.Article) (models.Snapshot, error) {
	snap := models.Snapshot{
		LastUpdated: w.now().UTC(),
		Articles:    articles,
	}

	data, err := Encode(snap)
	if err != nil {
		return snap, fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return snap, fmt.Errorf("create output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(w.path)+".tmp-*")
	if err != nil {
		return snap, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return snap, fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return snap, fmt.Errorf("close snapshot: %w", err)
	}

	if err := os.Rename(tmpName, w.path); err != nil {
		os.Remove(tmpName)
		return snap, fmt.Errorf("replace %s: %w", w.path, err)
	}

	return snap, nil
}

// Encode renders a snapshot as indented JSON. HTML escaping is off so
// that non-ASCII text (Italian names, typographic quotes) is stored
// verbatim; key order follows the struct definitions, which keeps
// successive snapshots diff-friendly.
func Encode(snap models.Snapshot) ([]byte, error) {
	if snap.Articles == nil {
		snap.Articles = []models.Article{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
