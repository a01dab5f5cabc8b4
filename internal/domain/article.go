package domain

import "time"

const ArticleDefaultCategory = "news"

type NewsArticle struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	URL           string     `json:"url"`
	Source        string     `json:"source"`
	PublishedDate *time.Time `json:"published_date"`
	Content       *string    `json:"content"`
	Summary       *string    `json:"summary"`
	WindFarmName  *string    `json:"wind_farm_name"`
	Location      *string    `json:"location"`
	Latitude      *float64   `json:"latitude"`
	Longitude     *float64   `json:"longitude"`
	Category      string     `json:"category"`
	ScrapedAt     time.Time  `json:"scraped_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Located reports whether the article carries both coordinates,
// which is what qualifies it for the map payload.
func (a *NewsArticle) Located() bool {
	return a.Latitude != nil && a.Longitude != nil
}
