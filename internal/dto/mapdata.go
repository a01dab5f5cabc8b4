package dto

import "github.com/windnewsmapper/wind-news-mapper/internal/domain"

// MapData combines every wind farm with the recently published articles
// that carry coordinates, for geographic display.
type MapData struct {
	WindFarms     []domain.WindFarm    `json:"wind_farms"`
	NewsLocations []domain.NewsArticle `json:"news_locations"`
}
