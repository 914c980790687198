// Package translate provides best-effort text translation. Failures of
// any kind fall back to the original text; translation is an enrichment,
// never a hard dependency of the pipeline.
package translate

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	maxResponseBytes = 256 * 1024
	maxInputRunes    = 500

	// Inputs shorter than this are returned untouched; there is nothing
	// meaningful to translate in one or two characters.
	minInputRunes = 3
)

const (
	defaultGoogleEndpoint   = "https://translate.googleapis.com/translate_a/single"
	defaultMyMemoryEndpoint = "https://api.mymemory.translated.net/get"
)

// Config holds translator configuration.
type Config struct {
	SourceLang string // e.g. "it"
	TargetLang string // e.g. "en"
	Timeout    time.Duration
}

// Translator translates text between a fixed language pair using public
// translation endpoints, trying Google's gtx API first and MyMemory as a
// fallback. It is stateless per call and safe for concurrent use.
type Translator struct {
	config     Config
	httpClient *http.Client

	googleEndpoint   string
	myMemoryEndpoint string
}

// New creates a Translator for the given language pair.
func New(config Config) *Translator {
	if config.Timeout == 0 {
		config.Timeout = 20 * time.Second
	}
	return &Translator{
		config:           config,
		httpClient:       &http.Client{Timeout: config.Timeout},
		googleEndpoint:   defaultGoogleEndpoint,
		myMemoryEndpoint: defaultMyMemoryEndpoint,
	}
}

// Translate returns the translation of text, or text itself when the
// input is trivially short or every backend fails.
func (t *Translator) Translate(text string) string {
	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) < minInputRunes {
		return text
	}
	if rs := []rune(trimmed); len(rs) > maxInputRunes {
		trimmed = string(rs[:maxInputRunes])
	}

	if out := t.viaGoogle(trimmed); out != "" {
		return out
	}
	if out := t.viaMyMemory(trimmed); out != "" {
		return out
	}

	return text
}

// viaGoogle uses the public Google Translate gtx API (no key required).
// Response shape: [[["translated","original",...],...],...]
func (t *Translator) viaGoogle(text string) string {
	apiURL := fmt.Sprintf("%s?client=gtx&sl=%s&tl=%s&dt=t&q=%s",
		t.googleEndpoint,
		url.QueryEscape(t.config.SourceLang),
		url.QueryEscape(t.config.TargetLang),
		url.QueryEscape(text),
	)

	req, err := http.NewRequest(http.MethodGet, apiURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		slog.Debug("translate (google-gtx) failed", "error", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("translate (google-gtx) bad status", "status", resp.StatusCode)
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return ""
	}

	var raw []any
	if err := json.Unmarshal(body, &raw); err != nil {
		slog.Debug("translate (google-gtx) decode failed", "error", err)
		return ""
	}
	if len(raw) == 0 {
		return ""
	}

	outer, ok := raw[0].([]any)
	if !ok {
		return ""
	}

	var result strings.Builder
	for _, seg := range outer {
		pair, ok := seg.([]any)
		if !ok || len(pair) < 1 {
			continue
		}
		if s, ok := pair[0].(string); ok {
			result.WriteString(s)
		}
	}

	return strings.TrimSpace(result.String())
}

func (t *Translator) viaMyMemory(text string) string {
	apiURL := fmt.Sprintf("%s?langpair=%s|%s&q=%s",
		t.myMemoryEndpoint,
		url.QueryEscape(t.config.SourceLang),
		url.QueryEscape(t.config.TargetLang),
		url.QueryEscape(text),
	)

	resp, err := t.httpClient.Get(apiURL)
	if err != nil {
		slog.Debug("translate (mymemory) failed", "error", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("translate (mymemory) bad status", "status", resp.StatusCode)
		return ""
	}

	var out struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return ""
	}

	return strings.TrimSpace(out.ResponseData.TranslatedText)
}
