package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"priceserver/brand"
	"priceserver/database"
	"priceserver/internal/config"
	"priceserver/pipeline"
)

// Разовый прогон конвейера из консоли: прочитать прайсы, собрать каталог,
// сохранить и выгрузить. Для запуска по расписанию из cron.
func main() {
	cfg := config.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewCatalogDB(cfg.DatabasePath, log)
	if err != nil {
		log.Error("не удалось открыть базу", "ошибка", err)
		os.Exit(1)
	}
	defer db.Close()

	resolver := brand.NewResolverWithThreshold(brand.DefaultDictionary(), cfg.FuzzyThreshold)
	p := pipeline.New(nil, db, resolver, cfg.PriceDir, cfg.ExportPath, log)

	res, err := p.Run(ctx)
	if err != nil {
		log.Error("прогон не удался", "ошибка", err)
		os.Exit(1)
	}
	log.Info("готово",
		"файлов", res.FilesProcessed,
		"строк в каталоге", res.RowsExported,
		"брендов", res.Brands,
	)
}
