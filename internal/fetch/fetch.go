// Package fetch downloads a web page and extracts its readable article
// content for import into the library.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"

	"github.com/heartmarshall/lingreader-backend/internal/config"
)

// Extract is the readable part of a fetched page. TextContent is plain
// text with markup stripped; Byline may be empty.
type Extract struct {
	Title       string
	Byline      string
	TextContent string
}

// Fetcher downloads pages and runs readability extraction on them.
type Fetcher struct {
	httpClient *http.Client
	cfg        config.FetchConfig
	log        *slog.Logger
}

// New creates a Fetcher. The HTTP client timeout comes from cfg.
func New(logger *slog.Logger, cfg config.FetchConfig) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		log:        logger.With("adapter", "fetch"),
	}
}

// Fetch downloads rawURL and extracts its article content. The response
// body is capped at cfg.MaxBytes; larger pages are rejected, never
// truncated, so imported text is always complete.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Extract, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: parse url: %w", err)
	}
	if pageURL.Scheme != "http" && pageURL.Scheme != "https" {
		return nil, fmt.Errorf("fetch: unsupported scheme %q", pageURL.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: create request: %w", err)
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	f.log.DebugContext(ctx, "fetching page", slog.String("url", rawURL))

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch: unexpected status %d", resp.StatusCode)
	}

	// Read one byte past the cap to tell "exactly at the limit" from "over it".
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.cfg.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("fetch: read body: %w", err)
	}
	if int64(len(body)) > f.cfg.MaxBytes {
		return nil, fmt.Errorf("fetch: page exceeds %d bytes", f.cfg.MaxBytes)
	}

	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: extract article: %w", err)
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return nil, fmt.Errorf("fetch: no readable content at %q", rawURL)
	}

	f.log.DebugContext(ctx, "page extracted",
		slog.String("url", rawURL),
		slog.String("title", article.Title),
		slog.Int("text_len", len(text)),
	)

	return &Extract{
		Title:       strings.TrimSpace(article.Title),
		Byline:      strings.TrimSpace(article.Byline),
		TextContent: text,
	}, nil
}
