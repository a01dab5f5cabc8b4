package scraper

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"
)

// Fetcher issues the outbound page requests for all extractors over one
// shared client with a fixed per-request timeout.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

func NewFetcher(cfg Config) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: cfg.Timeout(),
		},
		userAgent: cfg.UserAgent,
	}
}

// Document fetches a page and parses it into a goquery document.
func (f *Fetcher) Document(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse HTML failed: %w", err)
	}

	return doc, nil
}
