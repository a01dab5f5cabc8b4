package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/windnewsmapper/wind-news-mapper/internal/domain"
	"github.com/windnewsmapper/wind-news-mapper/internal/storage"
)

type WindFarmStore struct {
	db *pgxpool.Pool
}

func NewWindFarmStore(pool *ConnectionPool) *WindFarmStore {
	return &WindFarmStore{db: pool.conn}
}

func (s *WindFarmStore) Create(ctx context.Context, farm domain.WindFarm) (*domain.WindFarm, error) {
	if farm.Status == "" {
		farm.Status = domain.FarmStatusPlanned
	}

	cmd := `
		INSERT INTO wind_farms (name, location, latitude, longitude, capacity_mw, status, operator, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at;
	`
	err := s.db.QueryRow(
		ctx,
		cmd,
		farm.Name,
		farm.Location,
		farm.Latitude,
		farm.Longitude,
		farm.CapacityMW,
		farm.Status,
		farm.Operator,
		farm.Description,
	).Scan(&farm.ID, &farm.CreatedAt, &farm.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert wind farm: %w", err)
	}

	return &farm, nil
}

func (s *WindFarmStore) GetByID(ctx context.Context, id int64) (*domain.WindFarm, error) {
	query := `
		SELECT id, name, location, latitude, longitude, capacity_mw, status, operator, description, created_at, updated_at
		FROM wind_farms
		WHERE id = $1
	`
	rows, err := s.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query wind farm: %w", err)
	}

	farm, err := pgx.CollectOneRow(rows, scanWindFarm)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan wind farm: %w", err)
	}

	return &farm, nil
}

func (s *WindFarmStore) List(ctx context.Context, q storage.WindFarmQuery) ([]domain.WindFarm, error) {
	query := `
		SELECT id, name, location, latitude, longitude, capacity_mw, status, operator, description, created_at, updated_at
		FROM wind_farms
		WHERE ($1 = '' OR status = $1)
		ORDER BY name ASC
		OFFSET $2 LIMIT $3
	`
	rows, err := s.db.Query(ctx, query, q.Status, q.Skip, q.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list wind farms: %w", err)
	}

	farms, err := pgx.CollectRows(rows, scanWindFarm)
	if err != nil {
		return nil, fmt.Errorf("failed to scan wind farms: %w", err)
	}

	return farms, nil
}

func (s *WindFarmStore) ListAll(ctx context.Context) ([]domain.WindFarm, error) {
	query := `
		SELECT id, name, location, latitude, longitude, capacity_mw, status, operator, description, created_at, updated_at
		FROM wind_farms
		ORDER BY name ASC
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list wind farms: %w", err)
	}

	farms, err := pgx.CollectRows(rows, scanWindFarm)
	if err != nil {
		return nil, fmt.Errorf("failed to scan wind farms: %w", err)
	}

	return farms, nil
}

func (s *WindFarmStore) Stats(ctx context.Context) (*domain.FarmStats, error) {
	query := `
		SELECT
			(SELECT count(*) FROM wind_farms),
			(SELECT count(*) FROM wind_farms WHERE status = $1),
			(SELECT count(*) FROM wind_farms WHERE status = $2),
			(SELECT COALESCE(SUM(capacity_mw), 0) FROM wind_farms WHERE capacity_mw IS NOT NULL),
			(SELECT count(*) FROM news_articles)
	`
	var stats domain.FarmStats
	err := s.db.QueryRow(ctx, query, domain.FarmStatusOperational, domain.FarmStatusPlanned).Scan(
		&stats.TotalWindFarms,
		&stats.OperationalFarms,
		&stats.PlannedFarms,
		&stats.TotalCapacityMW,
		&stats.TotalNewsArticles,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}

	return &stats, nil
}

func scanWindFarm(row pgx.CollectableRow) (domain.WindFarm, error) {
	var farm domain.WindFarm
	err := row.Scan(
		&farm.ID,
		&farm.Name,
		&farm.Location,
		&farm.Latitude,
		&farm.Longitude,
		&farm.CapacityMW,
		&farm.Status,
		&farm.Operator,
		&farm.Description,
		&farm.CreatedAt,
		&farm.UpdatedAt,
	)
	return farm, err
}
