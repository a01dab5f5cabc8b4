package router

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/windnewsmapper/wind-news-mapper/internal/apperr"
	"github.com/windnewsmapper/wind-news-mapper/internal/dto"
	"github.com/windnewsmapper/wind-news-mapper/internal/ingest"
	"github.com/windnewsmapper/wind-news-mapper/internal/storage"
)

const defaultNewsLimit = 50

// Ingestor triggers one synchronous scrape-and-persist run.
type Ingestor interface {
	Run(ctx context.Context) (*ingest.Result, error)
}

type NewsRouter struct {
	g        *echo.Group
	articles storage.ArticleStore
	ingestor Ingestor
}

func NewNewsRouter(g *echo.Group, articles storage.ArticleStore, ingestor Ingestor) *NewsRouter {
	return &NewsRouter{
		g:        g,
		articles: articles,
		ingestor: ingestor,
	}
}

func (r *NewsRouter) Bind() {
	r.g.GET("/news", r.listHandler)
	r.g.GET("/news/:id", r.getByIDHandler)
	r.g.POST("/news/scrape", r.scrapeHandler)
}

// listHandler returns articles, newest published first, with optional
// category filter and skip/limit paging.
func (r *NewsRouter) listHandler(c echo.Context) error {
	var params dto.ListArticlesParams
	if err := c.Bind(&params); err != nil {
		return apperr.NewValidationWrap("invalid query parameters", err)
	}
	params.Normalize(defaultNewsLimit)

	articles, err := r.articles.List(c.Request().Context(), storage.ArticleQuery{
		Category: params.Category,
		Limit:    params.Limit,
		Skip:     params.Skip,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, articles)
}

func (r *NewsRouter) getByIDHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return apperr.NewValidation("article id must be a number")
	}

	article, err := r.articles.GetByID(c.Request().Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.NewNotFound("Article not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, article)
}

// scrapeHandler runs the whole pipeline synchronously. Site failures
// never surface here; only a persistence fault produces an error.
func (r *NewsRouter) scrapeHandler(c echo.Context) error {
	result, err := r.ingestor.Run(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ScrapeResult{
		Message:          "News scraping completed",
		TotalScraped:     result.TotalScraped,
		NewArticlesSaved: result.NewSaved,
	})
}
