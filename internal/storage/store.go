package storage

import (
	"context"
	"errors"

	"github.com/windnewsmapper/wind-news-mapper/internal/domain"
)

// ErrNotFound is returned by lookups that matched no row.
var ErrNotFound = errors.New("not found")

// WindFarmQuery filters and pages the wind farm listing.
type WindFarmQuery struct {
	Status string
	Limit  int
	Skip   int
}

// ArticleQuery filters and pages the news listing.
type ArticleQuery struct {
	Category string
	Limit    int
	Skip     int
}

type WindFarmStore interface {
	// Create persists a new farm and returns it with id and timestamps set.
	Create(ctx context.Context, farm domain.WindFarm) (*domain.WindFarm, error)
	// GetByID returns ErrNotFound when no farm has the id.
	GetByID(ctx context.Context, id int64) (*domain.WindFarm, error)
	// List returns farms ordered by name ascending.
	List(ctx context.Context, q WindFarmQuery) ([]domain.WindFarm, error)
	// ListAll returns every farm, unbounded, for the map payload.
	ListAll(ctx context.Context) ([]domain.WindFarm, error)
	// Stats aggregates counts and total capacity across both tables.
	Stats(ctx context.Context) (*domain.FarmStats, error)
}

type ArticleStore interface {
	// GetByID returns ErrNotFound when no article has the id.
	GetByID(ctx context.Context, id int64) (*domain.NewsArticle, error)
	// List returns articles ordered by published date descending,
	// articles without a date last.
	List(ctx context.Context, q ArticleQuery) ([]domain.NewsArticle, error)
	// ListLocated returns up to limit articles that carry both
	// coordinates, most recently published first.
	ListLocated(ctx context.Context, limit int) ([]domain.NewsArticle, error)
	// SaveScraped inserts the articles whose url is not stored yet and
	// commits once for the whole batch. Returns how many were inserted.
	SaveScraped(ctx context.Context, articles []domain.NewsArticle) (int, error)
}
