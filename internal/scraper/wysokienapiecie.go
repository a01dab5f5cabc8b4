package scraper

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const wysokienapiecieSource = "wysokienapiecie.pl"

// WysokienapiecieExtractor scrapes wysokienapiecie.pl's wind energy
// category. The article link must be nested inside the entry-title
// heading; links elsewhere in the block point at tags and authors.
type WysokienapiecieExtractor struct {
	fetcher *Fetcher
	pageURL string
	limit   int
	log     *slog.Logger
}

func NewWysokienapiecie(f *Fetcher, cfg Config) *WysokienapiecieExtractor {
	return &WysokienapiecieExtractor{
		fetcher: f,
		pageURL: cfg.Sites.Wysokienapiecie,
		limit:   cfg.ItemLimit,
		log:     slog.With("source", wysokienapiecieSource),
	}
}

func (e *WysokienapiecieExtractor) Source() string {
	return wysokienapiecieSource
}

func (e *WysokienapiecieExtractor) Extract(ctx context.Context) SiteResult {
	doc, err := e.fetcher.Document(ctx, e.pageURL)
	if err != nil {
		return fetchFailure(wysokienapiecieSource, err)
	}

	var articles []RawArticle
	doc.Find("article").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(articles) >= e.limit {
			return false
		}

		heading := s.Find("h2.entry-title").First()
		if heading.Length() == 0 {
			heading = s.Find("h2").First()
		}

		link := heading.Find("a").First()
		title := strings.TrimSpace(link.Text())
		href, _ := link.Attr("href")
		if title == "" || href == "" {
			e.log.Warn("skipping article block without titled link")
			return true
		}

		articles = append(articles, RawArticle{
			Title:         title,
			URL:           href,
			Source:        wysokienapiecieSource,
			PublishedDate: extractTime(s),
			Category:      "news",
		})
		return true
	})

	return SiteResult{Source: wysokienapiecieSource, Articles: articles}
}
