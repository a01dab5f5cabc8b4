package scraper

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const gramwzieloneSource = "gramwzielone.pl"

// GramwzieloneExtractor scrapes the wind energy section of
// gramwzielone.pl. Titles live in h2 (older posts use h3) and the link
// can sit anywhere inside the post block.
type GramwzieloneExtractor struct {
	fetcher *Fetcher
	pageURL string
	limit   int
	log     *slog.Logger
}

func NewGramwzielone(f *Fetcher, cfg Config) *GramwzieloneExtractor {
	return &GramwzieloneExtractor{
		fetcher: f,
		pageURL: cfg.Sites.Gramwzielone,
		limit:   cfg.ItemLimit,
		log:     slog.With("source", gramwzieloneSource),
	}
}

func (e *GramwzieloneExtractor) Source() string {
	return gramwzieloneSource
}

func (e *GramwzieloneExtractor) Extract(ctx context.Context) SiteResult {
	doc, err := e.fetcher.Document(ctx, e.pageURL)
	if err != nil {
		return fetchFailure(gramwzieloneSource, err)
	}

	var articles []RawArticle
	doc.Find("article.post").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(articles) >= e.limit {
			return false
		}

		heading := s.Find("h2").First()
		if heading.Length() == 0 {
			heading = s.Find("h3").First()
		}
		title := strings.TrimSpace(heading.Text())

		href, _ := s.Find("a").First().Attr("href")
		if title == "" || href == "" {
			e.log.Warn("skipping malformed post block")
			return true
		}

		articles = append(articles, RawArticle{
			Title:         title,
			URL:           href,
			Source:        gramwzieloneSource,
			PublishedDate: extractTime(s),
			Category:      "news",
		})
		return true
	})

	return SiteResult{Source: gramwzieloneSource, Articles: articles}
}

// extractTime reads an optional <time> marker, preferring its
// machine-readable datetime attribute over the visible text.
func extractTime(s *goquery.Selection) *time.Time {
	timeElem := s.Find("time").First()
	if timeElem.Length() == 0 {
		return nil
	}

	dateStr, ok := timeElem.Attr("datetime")
	if !ok || dateStr == "" {
		dateStr = strings.TrimSpace(timeElem.Text())
	}
	return ParseDate(dateStr)
}
