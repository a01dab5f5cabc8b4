package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/windnewsmapper/wind-news-mapper/internal/domain"
	"github.com/windnewsmapper/wind-news-mapper/internal/scraper"
)

// ArticleSaver is the slice of the article store ingestion needs: a
// batch insert that skips already-stored urls and commits once.
type ArticleSaver interface {
	SaveScraped(ctx context.Context, articles []domain.NewsArticle) (int, error)
}

// Result reports one ingestion run.
type Result struct {
	TotalScraped int
	NewSaved     int
}

// Service runs the scrape-then-persist pipeline. Duplicate urls are
// dropped by the store; a persistence failure aborts the whole batch
// and propagates.
type Service struct {
	scraper *scraper.Scraper
	saver   ArticleSaver
}

func NewService(s *scraper.Scraper, saver ArticleSaver) *Service {
	return &Service{scraper: s, saver: saver}
}

func (s *Service) Run(ctx context.Context) (*Result, error) {
	runID := uuid.New()
	log := slog.With("run_id", runID)
	log.Info("Ingestion run started")

	raw := s.scraper.ScrapeAll(ctx)

	now := time.Now().UTC()
	articles := make([]domain.NewsArticle, 0, len(raw))
	for _, r := range raw {
		category := r.Category
		if category == "" {
			category = domain.ArticleDefaultCategory
		}
		articles = append(articles, domain.NewsArticle{
			Title:         r.Title,
			URL:           r.URL,
			Source:        r.Source,
			PublishedDate: r.PublishedDate,
			Category:      category,
			ScrapedAt:     now,
		})
	}

	saved, err := s.saver.SaveScraped(ctx, articles)
	if err != nil {
		return nil, fmt.Errorf("failed to save scraped articles: %w", err)
	}

	log.Info("Ingestion run completed", "total_scraped", len(raw), "new_saved", saved)

	return &Result{TotalScraped: len(raw), NewSaved: saved}, nil
}
