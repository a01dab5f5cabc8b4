package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windnewsmapper/wind-news-mapper/internal/apperr"
	"github.com/windnewsmapper/wind-news-mapper/internal/domain"
	"github.com/windnewsmapper/wind-news-mapper/internal/ingest"
	"github.com/windnewsmapper/wind-news-mapper/internal/storage"
)

type fakeFarmStore struct {
	farms     map[int64]domain.WindFarm
	nextID    int64
	lastQuery storage.WindFarmQuery
}

func newFakeFarmStore() *fakeFarmStore {
	return &fakeFarmStore{farms: map[int64]domain.WindFarm{}, nextID: 1}
}

func (f *fakeFarmStore) Create(_ context.Context, farm domain.WindFarm) (*domain.WindFarm, error) {
	farm.ID = f.nextID
	f.nextID++
	now := time.Now().UTC()
	farm.CreatedAt = now
	farm.UpdatedAt = now
	f.farms[farm.ID] = farm
	return &farm, nil
}

func (f *fakeFarmStore) GetByID(_ context.Context, id int64) (*domain.WindFarm, error) {
	farm, ok := f.farms[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &farm, nil
}

func (f *fakeFarmStore) List(_ context.Context, q storage.WindFarmQuery) ([]domain.WindFarm, error) {
	f.lastQuery = q
	var out []domain.WindFarm
	for _, farm := range f.farms {
		out = append(out, farm)
	}
	return out, nil
}

func (f *fakeFarmStore) ListAll(_ context.Context) ([]domain.WindFarm, error) {
	return f.List(context.Background(), storage.WindFarmQuery{})
}

func (f *fakeFarmStore) Stats(_ context.Context) (*domain.FarmStats, error) {
	return &domain.FarmStats{TotalWindFarms: int64(len(f.farms))}, nil
}

type fakeArticleStore struct {
	articles  map[int64]domain.NewsArticle
	lastQuery storage.ArticleQuery
}

func newFakeArticleStore() *fakeArticleStore {
	return &fakeArticleStore{articles: map[int64]domain.NewsArticle{}}
}

func (f *fakeArticleStore) GetByID(_ context.Context, id int64) (*domain.NewsArticle, error) {
	a, ok := f.articles[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &a, nil
}

func (f *fakeArticleStore) List(_ context.Context, q storage.ArticleQuery) ([]domain.NewsArticle, error) {
	f.lastQuery = q
	var out []domain.NewsArticle
	for _, a := range f.articles {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeArticleStore) ListLocated(_ context.Context, limit int) ([]domain.NewsArticle, error) {
	var out []domain.NewsArticle
	for _, a := range f.articles {
		if a.Located() {
			out = append(out, a)
		}
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (f *fakeArticleStore) SaveScraped(_ context.Context, articles []domain.NewsArticle) (int, error) {
	return len(articles), nil
}

type fakeIngestor struct {
	result ingest.Result
	err    error
}

func (f *fakeIngestor) Run(_ context.Context) (*ingest.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &f.result, nil
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestWindFarmRouter_CreateAndGet(t *testing.T) {
	e := newTestEcho()
	store := newFakeFarmStore()
	NewWindFarmRouter(e.Group("/api"), store).Bind()

	rec := doRequest(e, http.MethodPost, "/api/wind-farms",
		`{"name":"Baltica","location":"Baltic Sea","latitude":55.0,"longitude":17.0}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var created domain.WindFarm
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Baltica", created.Name)
	assert.Equal(t, domain.FarmStatusPlanned, created.Status)
	assert.False(t, created.CreatedAt.IsZero())

	rec = doRequest(e, http.MethodGet, "/api/wind-farms/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched domain.WindFarm
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Name, fetched.Name)
}

func TestWindFarmRouter_CreateMissingRequiredField(t *testing.T) {
	e := newTestEcho()
	NewWindFarmRouter(e.Group("/api"), newFakeFarmStore()).Bind()

	cases := []string{
		`{"location":"Baltic Sea","latitude":55.0,"longitude":17.0}`,
		`{"name":"Baltica","latitude":55.0,"longitude":17.0}`,
		`{"name":"Baltica","location":"Baltic Sea","longitude":17.0}`,
		`{"name":"Baltica","location":"Baltic Sea","latitude":55.0}`,
	}
	for _, body := range cases {
		rec := doRequest(e, http.MethodPost, "/api/wind-farms", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestWindFarmRouter_GetNotFound(t *testing.T) {
	e := newTestEcho()
	NewWindFarmRouter(e.Group("/api"), newFakeFarmStore()).Bind()

	rec := doRequest(e, http.MethodGet, "/api/wind-farms/42", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Wind farm not found")
}

func TestWindFarmRouter_ListPassesFilterAndPaging(t *testing.T) {
	e := newTestEcho()
	store := newFakeFarmStore()
	NewWindFarmRouter(e.Group("/api"), store).Bind()

	rec := doRequest(e, http.MethodGet, "/api/wind-farms?status=operational&limit=5&skip=10", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, storage.WindFarmQuery{Status: "operational", Limit: 5, Skip: 10}, store.lastQuery)
}

func TestWindFarmRouter_ListAppliesDefaultLimit(t *testing.T) {
	e := newTestEcho()
	store := newFakeFarmStore()
	NewWindFarmRouter(e.Group("/api"), store).Bind()

	rec := doRequest(e, http.MethodGet, "/api/wind-farms", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, defaultFarmLimit, store.lastQuery.Limit)
	assert.Equal(t, 0, store.lastQuery.Skip)
}

func TestNewsRouter_ListAppliesDefaults(t *testing.T) {
	e := newTestEcho()
	store := newFakeArticleStore()
	NewNewsRouter(e.Group("/api"), store, &fakeIngestor{}).Bind()

	rec := doRequest(e, http.MethodGet, "/api/news?category=investment", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "investment", store.lastQuery.Category)
	assert.Equal(t, defaultNewsLimit, store.lastQuery.Limit)
}

func TestNewsRouter_GetNotFound(t *testing.T) {
	e := newTestEcho()
	NewNewsRouter(e.Group("/api"), newFakeArticleStore(), &fakeIngestor{}).Bind()

	rec := doRequest(e, http.MethodGet, "/api/news/7", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Article not found")
}

func TestNewsRouter_GetInvalidID(t *testing.T) {
	e := newTestEcho()
	NewNewsRouter(e.Group("/api"), newFakeArticleStore(), &fakeIngestor{}).Bind()

	rec := doRequest(e, http.MethodGet, "/api/news/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNewsRouter_ScrapeReportsCounts(t *testing.T) {
	e := newTestEcho()
	ing := &fakeIngestor{result: ingest.Result{TotalScraped: 12, NewSaved: 5}}
	NewNewsRouter(e.Group("/api"), newFakeArticleStore(), ing).Bind()

	rec := doRequest(e, http.MethodPost, "/api/news/scrape", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "News scraping completed", body["message"])
	assert.EqualValues(t, 12, body["total_scraped"])
	assert.EqualValues(t, 5, body["new_articles_saved"])
}

func TestMapRouter_MapDataShape(t *testing.T) {
	e := newTestEcho()
	farms := newFakeFarmStore()
	articles := newFakeArticleStore()

	lat, lon := 54.5, 16.9
	articles.articles[1] = domain.NewsArticle{ID: 1, Title: "located", URL: "u1", Latitude: &lat, Longitude: &lon}
	articles.articles[2] = domain.NewsArticle{ID: 2, Title: "unlocated", URL: "u2"}

	NewMapRouter(e.Group("/api"), farms, articles).Bind()

	rec := doRequest(e, http.MethodGet, "/api/map-data", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		WindFarms     []domain.WindFarm    `json:"wind_farms"`
		NewsLocations []domain.NewsArticle `json:"news_locations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.NewsLocations, 1)
	assert.Equal(t, "located", body.NewsLocations[0].Title)
}

func TestMapRouter_Stats(t *testing.T) {
	e := newTestEcho()
	farms := newFakeFarmStore()
	_, err := farms.Create(context.Background(), domain.WindFarm{Name: "A"})
	require.NoError(t, err)

	NewMapRouter(e.Group("/api"), farms, newFakeArticleStore()).Bind()

	rec := doRequest(e, http.MethodGet, "/api/stats", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var stats domain.FarmStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.EqualValues(t, 1, stats.TotalWindFarms)
}
