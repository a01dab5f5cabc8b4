package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/windnewsmapper/wind-news-mapper/internal/dto"
	"github.com/windnewsmapper/wind-news-mapper/internal/storage"
)

// locatedArticleLimit caps how many located articles the map payload
// carries; the farm list is intentionally unbounded.
const locatedArticleLimit = 50

type MapRouter struct {
	g        *echo.Group
	farms    storage.WindFarmStore
	articles storage.ArticleStore
}

func NewMapRouter(g *echo.Group, farms storage.WindFarmStore, articles storage.ArticleStore) *MapRouter {
	return &MapRouter{g: g, farms: farms, articles: articles}
}

func (r *MapRouter) Bind() {
	r.g.GET("/map-data", r.mapDataHandler)
	r.g.GET("/stats", r.statsHandler)
}

func (r *MapRouter) mapDataHandler(c echo.Context) error {
	ctx := c.Request().Context()

	farms, err := r.farms.ListAll(ctx)
	if err != nil {
		return err
	}

	located, err := r.articles.ListLocated(ctx, locatedArticleLimit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MapData{
		WindFarms:     farms,
		NewsLocations: located,
	})
}

func (r *MapRouter) statsHandler(c echo.Context) error {
	stats, err := r.farms.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}
