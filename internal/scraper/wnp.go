package scraper

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const wnpSource = "wnp.pl"

// WnpExtractor scrapes the OZE section of wnp.pl. The listing serves
// relative hrefs, so extracted urls get the site origin prepended when
// no scheme is present. No date marker exists on the listing page.
type WnpExtractor struct {
	fetcher *Fetcher
	pageURL string
	baseURL string
	limit   int
	log     *slog.Logger
}

func NewWnp(f *Fetcher, cfg Config) *WnpExtractor {
	return &WnpExtractor{
		fetcher: f,
		pageURL: cfg.Sites.Wnp,
		baseURL: cfg.Sites.WnpBase,
		limit:   cfg.ItemLimit,
		log:     slog.With("source", wnpSource),
	}
}

func (e *WnpExtractor) Source() string {
	return wnpSource
}

func (e *WnpExtractor) Extract(ctx context.Context) SiteResult {
	doc, err := e.fetcher.Document(ctx, e.pageURL)
	if err != nil {
		return fetchFailure(wnpSource, err)
	}

	var articles []RawArticle
	doc.Find("div.news-item").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(articles) >= e.limit {
			return false
		}

		link := s.Find("a").First()
		title := strings.TrimSpace(link.Text())
		href, _ := link.Attr("href")
		if title == "" || href == "" {
			e.log.Warn("skipping news item without link")
			return true
		}

		if !strings.HasPrefix(href, "http") {
			href = e.baseURL + href
		}

		articles = append(articles, RawArticle{
			Title:    title,
			URL:      href,
			Source:   wnpSource,
			Category: "news",
		})
		return true
	})

	return SiteResult{Source: wnpSource, Articles: articles}
}
