package main

import (
	"context"
	"log/slog"
	"os"

	"priceserver/brand"
	"priceserver/database"
	"priceserver/internal/config"
	"priceserver/pipeline"
	"priceserver/server"
)

// pipelineRunner адаптер конвейера под интерфейс сервера.
type pipelineRunner struct {
	p *pipeline.Pipeline
}

func (r pipelineRunner) Run(ctx context.Context) (server.RunStats, error) {
	res, err := r.p.Run(ctx)
	if err != nil {
		return server.RunStats{}, err
	}
	return server.RunStats{
		FilesProcessed: res.FilesProcessed,
		FilesSkipped:   res.FilesSkipped,
		RowsIngested:   res.RowsIngested,
		RowsExported:   res.RowsExported,
		Brands:         res.Brands,
	}, nil
}

func main() {
	cfg := config.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(log)

	db, err := database.NewCatalogDB(cfg.DatabasePath, log)
	if err != nil {
		log.Error("не удалось открыть базу", "ошибка", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := os.MkdirAll(cfg.PriceDir, 0o755); err != nil {
		log.Error("не удалось создать каталог прайсов", "ошибка", err)
		os.Exit(1)
	}

	resolver := brand.NewResolverWithThreshold(brand.DefaultDictionary(), cfg.FuzzyThreshold)
	p := pipeline.New(nil, db, resolver, cfg.PriceDir, cfg.ExportPath, log)

	srv := server.New(pipelineRunner{p: p}, db, cfg.RefreshPerHour, log)
	if err := srv.ListenAndServe(":" + cfg.Port); err != nil {
		log.Error("сервер остановлен с ошибкой", "ошибка", err)
		os.Exit(1)
	}
}
