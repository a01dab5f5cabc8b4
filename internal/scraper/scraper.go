package scraper

import (
	"context"
	"log/slog"
)

// Scraper runs the fixed registry of site extractors in order and
// concatenates their output. No parallelism, no retries: a site that
// fails contributes zero articles and the rest still run.
type Scraper struct {
	extractors []Extractor
}

func New(cfg Config) *Scraper {
	fetcher := NewFetcher(cfg)

	return &Scraper{
		extractors: []Extractor{
			NewGramwzielone(fetcher, cfg),
			NewWysokienapiecie(fetcher, cfg),
			NewWnp(fetcher, cfg),
		},
	}
}

// NewWithExtractors builds a scraper over an explicit extractor set.
func NewWithExtractors(extractors ...Extractor) *Scraper {
	return &Scraper{extractors: extractors}
}

// Results runs every extractor sequentially and returns the per-site
// outcomes, failures included, in registry order.
func (s *Scraper) Results(ctx context.Context) []SiteResult {
	results := make([]SiteResult, 0, len(s.extractors))
	for _, ex := range s.extractors {
		res := ex.Extract(ctx)
		if res.Err != nil {
			slog.Error("Site scrape failed",
				"source", res.Source,
				"kind", res.Err.Kind,
				"error", res.Err.Err,
			)
		} else {
			slog.Info("Site scraped", "source", res.Source, "articles", len(res.Articles))
		}
		results = append(results, res)
	}
	return results
}

// ScrapeAll concatenates the article lists of all sites in order.
func (s *Scraper) ScrapeAll(ctx context.Context) []RawArticle {
	slog.Info("Starting to scrape all sources...")

	var all []RawArticle
	for _, res := range s.Results(ctx) {
		all = append(all, res.Articles...)
	}

	slog.Info("Scrape completed", "total", len(all))
	return all
}
