package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/windnewsmapper/wind-news-mapper/internal/ingest"
	"github.com/windnewsmapper/wind-news-mapper/internal/router"
	"github.com/windnewsmapper/wind-news-mapper/internal/scraper"
	"github.com/windnewsmapper/wind-news-mapper/internal/server"
	"github.com/windnewsmapper/wind-news-mapper/internal/storage/pg"
)

const apiVersion = "1.0.0"

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	cfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	pool, err := pg.NewConnectionPool(context.Background(), pg.PoolConfig{ConnStr: cfg.DatabaseURL})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	s := server.New(cfg, pg.NewHealthChecker(pool))

	s.Echo.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "WindNewsMapper API",
			"version": apiVersion,
			"status":  "running",
		})
	})

	farmStore := pg.NewWindFarmStore(pool)
	articleStore := pg.NewArticleStore(pool)

	scraperCfg, err := loadScraperConfig(cfg.SourcesPath)
	if err != nil {
		slog.Error("Failed to load scraper config", "error", err)
		os.Exit(1)
	}
	ingestor := ingest.NewService(scraper.New(scraperCfg), articleStore)

	api := s.Echo.Group("/api")
	router.NewNewsRouter(api, articleStore, ingestor).Bind()
	router.NewWindFarmRouter(api, farmStore).Bind()
	router.NewMapRouter(api, farmStore, articleStore).Bind()

	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}

func loadScraperConfig(path string) (scraper.Config, error) {
	if path == "" {
		return scraper.DefaultConfig(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return scraper.Config{}, err
	}
	defer f.Close()

	cfg, err := scraper.LoadConfig(f)
	if err != nil {
		return scraper.Config{}, err
	}
	return *cfg, nil
}
