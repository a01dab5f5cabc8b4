package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/windnewsmapper/wind-news-mapper/internal/domain"
	"github.com/windnewsmapper/wind-news-mapper/internal/storage"
)

const articleColumns = `id, title, url, source, published_date, content, summary, wind_farm_name, location, latitude, longitude, category, scraped_at, created_at`

type ArticleStore struct {
	db *pgxpool.Pool
}

func NewArticleStore(pool *ConnectionPool) *ArticleStore {
	return &ArticleStore{db: pool.conn}
}

func (s *ArticleStore) GetByID(ctx context.Context, id int64) (*domain.NewsArticle, error) {
	query := `SELECT ` + articleColumns + ` FROM news_articles WHERE id = $1`

	rows, err := s.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query article: %w", err)
	}

	article, err := pgx.CollectOneRow(rows, scanArticle)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan article: %w", err)
	}

	return &article, nil
}

func (s *ArticleStore) List(ctx context.Context, q storage.ArticleQuery) ([]domain.NewsArticle, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM news_articles
		WHERE ($1 = '' OR category = $1)
		ORDER BY published_date DESC NULLS LAST, id DESC
		OFFSET $2 LIMIT $3
	`
	rows, err := s.db.Query(ctx, query, q.Category, q.Skip, q.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	articles, err := pgx.CollectRows(rows, scanArticle)
	if err != nil {
		return nil, fmt.Errorf("failed to scan articles: %w", err)
	}

	return articles, nil
}

func (s *ArticleStore) ListLocated(ctx context.Context, limit int) ([]domain.NewsArticle, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM news_articles
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL
		ORDER BY published_date DESC NULLS LAST, id DESC
		LIMIT $1
	`
	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list located articles: %w", err)
	}

	articles, err := pgx.CollectRows(rows, scanArticle)
	if err != nil {
		return nil, fmt.Errorf("failed to scan located articles: %w", err)
	}

	return articles, nil
}

// SaveScraped inserts every article whose url is not stored yet, inside
// one transaction with a single commit at the end. A failure rolls back
// the whole batch.
func (s *ArticleStore) SaveScraped(ctx context.Context, articles []domain.NewsArticle) (int, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	saved := 0
	now := time.Now().UTC()

	for _, a := range articles {
		var exists bool
		err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM news_articles WHERE url = $1)`, a.URL).Scan(&exists)
		if err != nil {
			return 0, fmt.Errorf("failed to check url %s: %w", a.URL, err)
		}
		if exists {
			continue
		}

		if a.Category == "" {
			a.Category = domain.ArticleDefaultCategory
		}
		if a.ScrapedAt.IsZero() {
			a.ScrapedAt = now
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO news_articles (title, url, source, published_date, content, summary, wind_farm_name, location, latitude, longitude, category, scraped_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`,
			a.Title,
			a.URL,
			a.Source,
			a.PublishedDate,
			a.Content,
			a.Summary,
			a.WindFarmName,
			a.Location,
			a.Latitude,
			a.Longitude,
			a.Category,
			a.ScrapedAt,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert article %s: %w", a.URL, err)
		}
		saved++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit article batch: %w", err)
	}

	return saved, nil
}

func scanArticle(row pgx.CollectableRow) (domain.NewsArticle, error) {
	var a domain.NewsArticle
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.URL,
		&a.Source,
		&a.PublishedDate,
		&a.Content,
		&a.Summary,
		&a.WindFarmName,
		&a.Location,
		&a.Latitude,
		&a.Longitude,
		&a.Category,
		&a.ScrapedAt,
		&a.CreatedAt,
	)
	return a, err
}
