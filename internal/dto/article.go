package dto

import "github.com/windnewsmapper/wind-news-mapper/pkg/pagination"

type ListArticlesParams struct {
	pagination.LimitOffset
	Category string `query:"category"`
}

// ScrapeResult is the POST /news/scrape response. The endpoint reports
// success regardless of how many sites failed; degraded runs only show
// up in the counts.
type ScrapeResult struct {
	Message          string `json:"message"`
	TotalScraped     int    `json:"total_scraped"`
	NewArticlesSaved int    `json:"new_articles_saved"`
}
