package scraper

import (
	"context"
	"time"
)

// RawArticle is one scraped listing entry before ingestion.
type RawArticle struct {
	Title         string
	URL           string
	Source        string
	PublishedDate *time.Time
	Category      string
}

type FailureKind string

const (
	// FailureFetch covers network errors, timeouts and non-2xx statuses.
	FailureFetch FailureKind = "fetch"
	// FailureParse covers documents that could not be parsed at all.
	FailureParse FailureKind = "parse"
)

// SiteError classifies a whole-site extraction failure.
type SiteError struct {
	Source string
	Kind   FailureKind
	Err    error
}

func (e *SiteError) Error() string {
	return e.Source + " " + string(e.Kind) + " failure: " + e.Err.Error()
}

func (e *SiteError) Unwrap() error {
	return e.Err
}

// SiteResult carries either the articles extracted from one source or a
// classified failure. One site failing never blocks the others; the
// aggregator logs the failure and moves on.
type SiteResult struct {
	Source   string
	Articles []RawArticle
	Err      *SiteError
}

// Extractor pulls article records out of one news source's listing page.
type Extractor interface {
	Source() string
	Extract(ctx context.Context) SiteResult
}

func fetchFailure(source string, err error) SiteResult {
	return SiteResult{
		Source: source,
		Err:    &SiteError{Source: source, Kind: FailureFetch, Err: err},
	}
}
